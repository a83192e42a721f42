// Package config defines the TeachWhat configuration structure.
package config

import (
	"errors"
	"fmt"

	"github.com/yndnr/teachwhat-go/internal/storage"
	"github.com/yndnr/teachwhat-go/internal/telemetry/logger"
)

// Verify validates the configuration.
func Verify(cfg *Config) error {
	if err := verifyData(&cfg.Data); err != nil {
		return err
	}
	if err := verifyLog(&cfg.Log); err != nil {
		return err
	}
	return verifyCLI(&cfg.CLI)
}

func verifyData(cfg *DataSection) error {
	switch cfg.Engine {
	case storage.EngineJSON:
		if cfg.File == "" {
			return errors.New("data.file is required for the json engine")
		}
		if cfg.Passphrase != "" && len(cfg.Passphrase) < storage.MinPassphraseLength {
			return fmt.Errorf("data.passphrase must be at least %d characters", storage.MinPassphraseLength)
		}
	case storage.EngineBadger:
		if cfg.Dir == "" {
			return errors.New("data.dir is required for the badger engine")
		}
		if cfg.Passphrase != "" {
			return errors.New("data.passphrase is only supported by the json engine")
		}
	default:
		return fmt.Errorf("data.engine must be %q or %q, got %q", storage.EngineJSON, storage.EngineBadger, cfg.Engine)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if !logger.ValidLevel(cfg.Level) {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cfg.Level)
	}
	switch cfg.Format {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("log.format must be json or text, got %q", cfg.Format)
	}
}

func verifyCLI(cfg *CLISection) error {
	switch cfg.Output {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("cli.output must be table, json or yaml, got %q", cfg.Output)
	}
	if cfg.HistorySize < 0 {
		return errors.New("cli.history_size must not be negative")
	}
	return nil
}
