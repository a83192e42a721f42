// Package config defines the TeachWhat configuration structure.
package config

// Config is the root configuration.
type Config struct {
	Data    DataSection    `koanf:"data" yaml:"data"`
	Log     LogSection     `koanf:"log" yaml:"log"`
	CLI     CLISection     `koanf:"cli" yaml:"cli"`
	Metrics MetricsSection `koanf:"metrics" yaml:"metrics"`
}

// DataSection configures persistence.
type DataSection struct {
	// Engine is "json" or "badger".
	Engine string `koanf:"engine" yaml:"engine"`

	// File is the JSON data file.
	File string `koanf:"file" yaml:"file"`

	// Dir is the Badger directory.
	Dir string `koanf:"dir" yaml:"dir"`

	// Passphrase seals the JSON data file. Empty disables sealing.
	Passphrase string `koanf:"passphrase" yaml:"passphrase"`

	// SampleOnMissing seeds the book with sample data when nothing was saved.
	SampleOnMissing bool `koanf:"sample_on_missing" yaml:"sample_on_missing"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// CLISection configures the interactive shell.
type CLISection struct {
	// Output is the result format: table, json or yaml.
	Output      string `koanf:"output" yaml:"output"`
	Prompt      string `koanf:"prompt" yaml:"prompt"`
	HistoryFile string `koanf:"history_file" yaml:"history_file"`
	HistorySize int    `koanf:"history_size" yaml:"history_size"`
}

// MetricsSection configures metrics export.
type MetricsSection struct {
	// Textfile receives Prometheus metrics on exit. Empty disables export.
	Textfile string `koanf:"textfile" yaml:"textfile"`
}
