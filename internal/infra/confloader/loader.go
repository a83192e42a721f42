// Package confloader loads TeachWhat configuration with koanf.
package confloader

import (
	"fmt"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the prefix of TeachWhat environment variables.
const DefaultEnvPrefix = "TEACHWHAT_"

// envSectionSep separates sections in environment variable names.
const envSectionSep = "__"

// Loader merges defaults, a YAML file, the environment and overrides.
type Loader struct {
	mu        sync.Mutex
	k         *koanf.Koanf
	envPrefix string
	noEnv     bool
	filePath  string
	defaults  map[string]any
	overrides map[string]any
	loaded    bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithoutEnv skips environment variables.
func WithoutEnv() Option {
	return func(l *Loader) {
		l.noEnv = true
	}
}

// WithConfigFile sets the YAML file to load. An empty path skips the file.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// WithDefaults sets the flat "section.key" defaults.
func WithDefaults(defaults map[string]any) Option {
	return func(l *Loader) {
		l.defaults = defaults
	}
}

// WithOverrides sets flat "section.key" values that win over every other
// source, typically from command-line flags.
func WithOverrides(overrides map[string]any) Option {
	return func(l *Loader) {
		l.overrides = overrides
	}
}

// NewLoader creates a loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FilePath returns the configured YAML file path.
func (l *Loader) FilePath() string {
	return l.filePath
}

// Load reads every source in priority order and unmarshals into target.
func (l *Loader) Load(target any) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load(target)
}

// Reload discards previously loaded values and loads again. The watcher
// calls it after the file changes.
func (l *Loader) Reload(target any) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.k = koanf.New(".")
	l.loaded = false
	return l.load(target)
}

func (l *Loader) load(target any) error {
	if len(l.defaults) > 0 {
		if err := l.LoadMap(l.defaults); err != nil {
			return fmt.Errorf("load defaults: %w", err)
		}
	}
	if err := l.LoadFile(l.filePath); err != nil {
		return fmt.Errorf("load config file: %w", err)
	}
	if !l.noEnv {
		if err := l.LoadEnv(); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}
	if len(l.overrides) > 0 {
		if err := l.LoadMap(l.overrides); err != nil {
			return fmt.Errorf("load overrides: %w", err)
		}
	}
	if err := l.Unmarshal(target); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	l.loaded = true
	return nil
}

// LoadFile merges a YAML file. An empty path is a no-op.
func (l *Loader) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("load file %s: %w", path, err)
	}
	return nil
}

// LoadEnv merges environment variables carrying the prefix.
func (l *Loader) LoadEnv() error {
	provider := env.Provider(l.envPrefix, ".", l.envKey)
	if err := l.k.Load(provider, nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// envKey maps TEACHWHAT_CLI__HISTORY_FILE to cli.history_file.
func (l *Loader) envKey(s string) string {
	s = strings.TrimPrefix(s, l.envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, envSectionSep, ".")
}

// LoadMap merges a flat "section.key" map.
func (l *Loader) LoadMap(data map[string]any) error {
	if err := l.k.Load(mapProvider(data), nil); err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	return nil
}

// Unmarshal decodes the merged configuration into target using koanf tags.
func (l *Loader) Unmarshal(target any) error {
	return l.k.Unmarshal("", target)
}

// GetString returns a merged value as a string.
func (l *Loader) GetString(key string) string {
	return l.k.String(key)
}

// GetInt returns a merged value as an int.
func (l *Loader) GetInt(key string) int {
	return l.k.Int(key)
}

// GetBool returns a merged value as a bool.
func (l *Loader) GetBool(key string) bool {
	return l.k.Bool(key)
}

// IsLoaded reports whether Load completed successfully.
func (l *Loader) IsLoaded() bool {
	return l.loaded
}

// All returns the merged configuration as a flat map.
func (l *Loader) All() map[string]any {
	return l.k.All()
}
