// Package storage persists the student and lesson book.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spaolacci/murmur3"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
)

// Common errors
var (
	// ErrNotFound is returned by Load when no data has been saved yet.
	ErrNotFound = errors.New("storage: no saved data")
	ErrClosed   = errors.New("storage: store closed")
)

// Engine names.
const (
	EngineJSON   = "json"
	EngineBadger = "badger"
)

// Store loads and saves whole snapshots of the book.
type Store interface {
	// Load returns the saved snapshot, or ErrNotFound.
	Load(ctx context.Context) (*domain.Snapshot, error)

	// Save replaces the saved snapshot.
	Save(ctx context.Context, snap *domain.Snapshot) error

	// Close releases resources held by the store.
	Close() error
}

// Config selects and configures an engine.
type Config struct {
	// Engine is EngineJSON (default) or EngineBadger.
	Engine string

	// File is the JSON document path.
	File string

	// Dir is the Badger directory.
	Dir string

	// Passphrase seals the JSON document when set.
	Passphrase string

	Logger *slog.Logger
}

// Open returns the store described by cfg.
func Open(cfg Config) (Store, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	switch cfg.Engine {
	case "", EngineJSON:
		s, err := NewJSONStore(cfg.File, []byte(cfg.Passphrase), cfg.Logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case EngineBadger:
		s, err := NewBadgerStore(cfg.Dir, cfg.Logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("storage: unknown engine %q", cfg.Engine)
	}
}

// Fingerprint returns a 64-bit hash of the snapshot's JSON encoding.
func Fingerprint(snap *domain.Snapshot) (uint64, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return 0, fmt.Errorf("storage: encode snapshot: %w", err)
	}
	return murmur3.Sum64(data), nil
}
