// Package config defines the TeachWhat configuration structure.
package config

import (
	"os"
	"path/filepath"
)

// Default configuration values.
const (
	DefaultEngine   = "json"
	DefaultDataFile = "data/teachwhat.json"
	DefaultDataDir  = "data/teachwhat.db"

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"

	DefaultOutput      = "table"
	DefaultPrompt      = "teachwhat> "
	DefaultHistorySize = 500
)

// DefaultHistoryFile returns ~/.teachwhat/history, or "" without a home
// directory.
func DefaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".teachwhat", "history")
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Data: DataSection{
			Engine:          DefaultEngine,
			File:            DefaultDataFile,
			Dir:             DefaultDataDir,
			SampleOnMissing: true,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		CLI: CLISection{
			Output:      DefaultOutput,
			Prompt:      DefaultPrompt,
			HistoryFile: DefaultHistoryFile(),
			HistorySize: DefaultHistorySize,
		},
	}
}

// DefaultMap returns Default as flat "section.key" values for the loader.
func DefaultMap() map[string]any {
	d := Default()
	return map[string]any{
		"data.engine":            d.Data.Engine,
		"data.file":              d.Data.File,
		"data.dir":               d.Data.Dir,
		"data.passphrase":        d.Data.Passphrase,
		"data.sample_on_missing": d.Data.SampleOnMissing,
		"log.level":              d.Log.Level,
		"log.format":             d.Log.Format,
		"cli.output":             d.CLI.Output,
		"cli.prompt":             d.CLI.Prompt,
		"cli.history_file":       d.CLI.HistoryFile,
		"cli.history_size":       d.CLI.HistorySize,
		"metrics.textfile":       d.Metrics.Textfile,
	}
}
