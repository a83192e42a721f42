// Package storage persists the student and lesson book.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v3"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
)

// Badger key layout.
const (
	studentKeyPrefix = "student/"
	lessonKeyPrefix  = "lesson/"
	studentOrderKey  = "order/students"
	lessonOrderKey   = "order/lessons"
)

// gcDiscardRatio is passed to RunValueLogGC on Close.
const gcDiscardRatio = 0.5

// BadgerStore keeps each entity under its own key.
type BadgerStore struct {
	mu     sync.Mutex
	db     *badger.DB
	logger *slog.Logger
	closed bool
}

// NewBadgerStore opens (or creates) a Badger database in dir.
func NewBadgerStore(dir string, logger *slog.Logger) (*BadgerStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("badger: dir is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = &badgerLogger{logger: logger}
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open db: %w", err)
	}

	logger.Info("badger store opened", "dir", dir)
	return &BadgerStore{db: db, logger: logger}, nil
}

// Load rebuilds the snapshot from entity keys in recorded order.
func (s *BadgerStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap := &domain.Snapshot{}
	err := s.db.View(func(txn *badger.Txn) error {
		studentIDs, err := readOrder(txn, studentOrderKey)
		if err != nil {
			return err
		}
		lessonIDs, err := readOrder(txn, lessonOrderKey)
		if err != nil {
			return err
		}

		for _, id := range studentIDs {
			var st domain.Student
			if err := readJSON(txn, studentKeyPrefix+id, &st); err != nil {
				return err
			}
			snap.Students = append(snap.Students, &st)
		}
		for _, id := range lessonIDs {
			var l domain.Lesson
			if err := readJSON(txn, lessonKeyPrefix+id, &l); err != nil {
				return err
			}
			snap.Lessons = append(snap.Lessons, &l)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return snap, nil
}

// Save replaces every entity key and the order records in one transaction.
func (s *BadgerStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		for _, prefix := range []string{studentKeyPrefix, lessonKeyPrefix} {
			if err := deletePrefix(txn, prefix); err != nil {
				return err
			}
		}

		studentIDs := make([]string, 0, len(snap.Students))
		for _, st := range snap.Students {
			if err := writeJSON(txn, studentKeyPrefix+st.ID, st); err != nil {
				return err
			}
			studentIDs = append(studentIDs, st.ID)
		}
		lessonIDs := make([]string, 0, len(snap.Lessons))
		for _, l := range snap.Lessons {
			if err := writeJSON(txn, lessonKeyPrefix+l.ID, l); err != nil {
				return err
			}
			lessonIDs = append(lessonIDs, l.ID)
		}

		if err := writeJSON(txn, studentOrderKey, studentIDs); err != nil {
			return err
		}
		return writeJSON(txn, lessonOrderKey, lessonIDs)
	})
}

// Keys returns every stored key with the given prefix, sorted.
func (s *BadgerStore) Keys(prefix string) ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return keys, err
}

// Close runs one value-log GC pass and closes the database.
func (s *BadgerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.db.RunValueLogGC(gcDiscardRatio); err != nil &&
		!errors.Is(err, badger.ErrNoRewrite) && !errors.Is(err, badger.ErrRejected) {
		s.logger.Warn("badger gc failed", "error", err)
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("badger: close db: %w", err)
	}
	s.logger.Info("badger store closed")
	return nil
}

// readOrder returns the ID list under key. A missing student order means
// nothing was ever saved.
func readOrder(txn *badger.Txn, key string) ([]string, error) {
	var ids []string
	err := readJSON(txn, key, &ids)
	if errors.Is(err, badger.ErrKeyNotFound) {
		if key == studentOrderKey {
			return nil, ErrNotFound
		}
		return nil, nil
	}
	return ids, err
}

func readJSON(txn *badger.Txn, key string, v any) error {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		if err := json.Unmarshal(val, v); err != nil {
			return domain.ErrDataConversion.WithDetails(key).WithCause(err)
		}
		return nil
	})
}

func writeJSON(txn *badger.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("badger: encode %s: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}

func deletePrefix(txn *badger.Txn, prefix string) error {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)

	var keys [][]byte
	for it.Rewind(); it.Valid(); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, k := range keys {
		if err := txn.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

// badgerLogger adapts slog.Logger to Badger's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}
