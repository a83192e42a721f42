// Package logic runs input lines against the book.
package logic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/logic/command"
	"github.com/yndnr/teachwhat-go/internal/logic/parser"
	"github.com/yndnr/teachwhat-go/internal/model"
	"github.com/yndnr/teachwhat-go/internal/storage"
	"github.com/yndnr/teachwhat-go/internal/telemetry/logger"
	"github.com/yndnr/teachwhat-go/internal/telemetry/metric"
)

// MsgSaveFailed prefixes the error shown when the book cannot be saved.
const MsgSaveFailed = "Could not save data to file: "

// SaveError reports a command that ran but whose save failed.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return MsgSaveFailed + e.Err.Error()
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// Option configures a Manager.
type Option func(*Manager)

// WithDispatcher replaces the default command table.
func WithDispatcher(d *parser.Dispatcher) Option {
	return func(m *Manager) {
		m.dispatcher = d
	}
}

// WithMetrics records line outcomes and saves in reg.
func WithMetrics(reg *metric.Registry) Option {
	return func(m *Manager) {
		m.metrics = reg
	}
}

// WithLogger sets the logger used for line records.
func WithLogger(l logger.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// WithClock overrides time.Now, used for sample data dates.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// Manager executes input lines. Lines are handled one at a time.
type Manager struct {
	mu sync.Mutex

	dispatcher *parser.Dispatcher
	book       *model.Book
	store      storage.Store
	metrics    *metric.Registry
	logger     logger.Logger
	now        func() time.Time

	// saved is the fingerprint of the last loaded or saved snapshot.
	saved uint64
}

// NewManager creates a manager over an empty book backed by store.
func NewManager(store storage.Store, opts ...Option) *Manager {
	m := &Manager{
		dispatcher: parser.NewDispatcher(parser.DefaultTable()),
		book:       model.NewBook(),
		store:      store,
		logger:     logger.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.metrics != nil {
		// Fails only when the registry already has a book collector.
		if err := m.metrics.Register(metric.NewBookCollector(m.book.Len)); err != nil {
			m.logger.Debug("book size metrics not registered", "error", err.Error())
		}
	}
	return m
}

// Model returns the book commands operate on.
func (m *Manager) Model() model.Model {
	return m.book
}

// Words returns the command words the manager accepts.
func (m *Manager) Words() []string {
	return m.dispatcher.Table().Words()
}

// Load restores the saved book. When nothing was saved and sample is true
// the book starts with sample data, which the first command then saves.
func (m *Manager) Load(ctx context.Context, sample bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	log := m.logger
	snap, err := m.store.Load(ctx)
	switch {
	case err == nil:
		if err := m.book.Restore(snap); err != nil {
			return fmt.Errorf("restore book: %w", err)
		}
		fp, err := storage.Fingerprint(m.book.Snapshot())
		if err != nil {
			return err
		}
		m.saved = fp
		log.Info("book loaded", "students", len(snap.Students), "lessons", len(snap.Lessons))
		return nil

	case errors.Is(err, storage.ErrNotFound):
		if !sample {
			log.Info("no saved book, starting empty")
			return nil
		}
		snap, err := model.SampleSnapshot(m.now())
		if err != nil {
			return fmt.Errorf("build sample data: %w", err)
		}
		if err := m.book.Restore(snap); err != nil {
			return fmt.Errorf("restore sample data: %w", err)
		}
		log.Info("no saved book, starting with sample data")
		return nil

	default:
		return fmt.Errorf("load book: %w", err)
	}
}

// Execute parses and runs one line, then saves the book if it changed.
// Parse failures are *parser.ParseError values and command failures are
// *domain.DomainError values. A failed save returns the command's result
// together with a *SaveError.
func (m *Manager) Execute(ctx context.Context, line string) (command.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	start := time.Now()
	ctx = logger.WithLogger(ctx, m.logger)
	ctx = logger.WithLineID(ctx, strings.ToLower(ulid.Make().String()))
	log := logger.L(ctx)

	cmd, err := m.dispatcher.Parse(line)
	if err != nil {
		kind := parser.KindOf(err)
		log.Debug("line rejected", "kind", kind.String(), "error", err.Error())
		m.observeParseError(m.wordOf(line), kind, time.Since(start))
		return command.Result{}, err
	}

	word := cmd.Word()
	result, err := cmd.Execute(ctx, m.book)
	if err != nil {
		log.Debug("command failed", "word", word, "error", err.Error())
		m.observeCommand(word, metric.OutcomeExecError, time.Since(start))
		return command.Result{}, err
	}

	if err := m.saveIfChanged(ctx); err != nil {
		log.Error("save failed", "word", word, "error", err.Error())
		m.observeCommand(word, metric.OutcomeExecError, time.Since(start))
		return result, &SaveError{Err: err}
	}

	log.Debug("command executed", "word", word, "duration_ms", time.Since(start).Milliseconds())
	m.observeCommand(word, metric.OutcomeOK, time.Since(start))
	return result, nil
}

// Restore replaces the whole book with snap and saves it.
func (m *Manager) Restore(ctx context.Context, snap *domain.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.book.Restore(snap); err != nil {
		return fmt.Errorf("restore book: %w", err)
	}
	m.logger.Info("book restored", "students", len(snap.Students), "lessons", len(snap.Lessons))
	return m.saveIfChanged(ctx)
}

// Flush saves the book if it changed since the last save.
func (m *Manager) Flush(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveIfChanged(ctx)
}

// Close flushes the book and closes the store.
func (m *Manager) Close(ctx context.Context) error {
	flushErr := m.Flush(ctx)
	return errors.Join(flushErr, m.store.Close())
}

func (m *Manager) saveIfChanged(ctx context.Context) error {
	snap := m.book.Snapshot()
	fp, err := storage.Fingerprint(snap)
	if err != nil {
		return err
	}
	if fp == m.saved {
		if m.metrics != nil {
			m.metrics.SavesSkipped.Inc()
		}
		return nil
	}

	err = m.store.Save(ctx, snap)
	if m.metrics != nil {
		m.metrics.ObserveSave(err)
	}
	if err != nil {
		return err
	}
	m.saved = fp
	return nil
}

// wordOf returns the command word of line if the table knows it, so that
// metric labels stay bounded.
func (m *Manager) wordOf(line string) string {
	word, _, err := parser.SplitCommand(line)
	if err != nil {
		return ""
	}
	if _, ok := m.dispatcher.Table().Lookup(word); !ok {
		return ""
	}
	return word
}

func (m *Manager) observeParseError(word string, kind parser.Kind, elapsed time.Duration) {
	if m.metrics == nil {
		return
	}
	m.metrics.ObserveParseError(kind.String())
	m.metrics.ObserveCommand(word, metric.OutcomeParseError, elapsed)
}

func (m *Manager) observeCommand(word, outcome string, elapsed time.Duration) {
	if m.metrics != nil {
		m.metrics.ObserveCommand(word, outcome, elapsed)
	}
}
