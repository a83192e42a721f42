// Package storage persists the student and lesson book.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
)

const documentVersion = 1

// document is the on-disk JSON shape.
type document struct {
	Version  int               `json:"version"`
	SavedAt  time.Time         `json:"saved_at"`
	Students []*domain.Student `json:"students"`
	Lessons  []*domain.Lesson  `json:"lessons"`
}

// JSONStore keeps the book in one JSON file.
type JSONStore struct {
	mu         sync.Mutex
	path       string
	passphrase []byte
	logger     *slog.Logger
	closed     bool
}

// NewJSONStore returns a store for path. A non-empty passphrase seals the
// file on save and is required to load a sealed file.
func NewJSONStore(path string, passphrase []byte, logger *slog.Logger) (*JSONStore, error) {
	if path == "" {
		return nil, fmt.Errorf("storage: file path is required")
	}
	if len(passphrase) > 0 && len(passphrase) < MinPassphraseLength {
		return nil, ErrPassphraseTooWeak
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONStore{path: path, passphrase: passphrase, logger: logger}, nil
}

// Path returns the data file path.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads and validates the data file.
func (s *JSONStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: read %s: %w", s.path, err)
	}
	if isSealed(data) {
		if data, err = unseal(data, s.passphrase); err != nil {
			return nil, err
		}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.ErrDataConversion.WithDetails(s.path).WithCause(err)
	}
	if doc.Version != documentVersion {
		return nil, domain.ErrDataConversion.WithDetails(fmt.Sprintf("unsupported version %d", doc.Version))
	}

	snap := &domain.Snapshot{Students: doc.Students, Lessons: doc.Lessons}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug("data file loaded",
		"path", s.path,
		"students", len(snap.Students),
		"lessons", len(snap.Lessons))
	return snap, nil
}

// Save writes snap to a temp file in the same directory and renames it
// over the data file.
func (s *JSONStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := document{
		Version:  documentVersion,
		SavedAt:  time.Now().UTC(),
		Students: snap.Students,
		Lessons:  snap.Lessons,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode: %w", err)
	}
	if len(s.passphrase) > 0 {
		if data, err = seal(data, s.passphrase); err != nil {
			return err
		}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: create dir: %w", err)
	}
	file, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: create temp file: %w", err)
	}
	tempPath := file.Name()
	defer os.Remove(tempPath)

	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("storage: write: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return fmt.Errorf("storage: sync: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("storage: close: %w", err)
	}
	if err := os.Rename(tempPath, s.path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}

	s.logger.Debug("data file saved", "path", s.path, "bytes", len(data), "sealed", len(s.passphrase) > 0)
	return nil
}

// Close marks the store closed.
func (s *JSONStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
