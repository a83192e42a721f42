package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Data struct {
		File   string `koanf:"file"`
		Engine string `koanf:"engine"`
	} `koanf:"data"`
	CLI struct {
		HistoryFile string `koanf:"history_file"`
		HistorySize int    `koanf:"history_size"`
	} `koanf:"cli"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "teachwhat.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoader_Priority(t *testing.T) {
	path := writeConfig(t, `
data:
  file: from-file.json
  engine: badger
cli:
  history_size: 50
`)
	t.Setenv("TEACHWHAT_DATA__FILE", "from-env.json")
	t.Setenv("TEACHWHAT_CLI__HISTORY_FILE", "/tmp/history")

	l := NewLoader(
		WithConfigFile(path),
		WithDefaults(map[string]any{
			"data.file":        "default.json",
			"data.engine":      "json",
			"cli.history_size": 100,
		}),
		WithOverrides(map[string]any{"data.engine": "json"}),
	)

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Data.File != "from-env.json" {
		t.Errorf("data.file = %q, want env value", cfg.Data.File)
	}
	if cfg.Data.Engine != "json" {
		t.Errorf("data.engine = %q, want override", cfg.Data.Engine)
	}
	if cfg.CLI.HistorySize != 50 {
		t.Errorf("cli.history_size = %d, want file value 50", cfg.CLI.HistorySize)
	}
	if cfg.CLI.HistoryFile != "/tmp/history" {
		t.Errorf("cli.history_file = %q, want env value", cfg.CLI.HistoryFile)
	}
	if !l.IsLoaded() {
		t.Error("IsLoaded() = false after Load")
	}
}

func TestLoader_DefaultsOnly(t *testing.T) {
	l := NewLoader(WithDefaults(map[string]any{"data.file": "book.json"}))
	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Data.File != "book.json" {
		t.Errorf("data.file = %q", cfg.Data.File)
	}
	if l.GetString("data.file") != "book.json" {
		t.Errorf("GetString() = %q", l.GetString("data.file"))
	}
}

func TestLoader_MissingFile(t *testing.T) {
	l := NewLoader(WithConfigFile("/nonexistent/teachwhat.yaml"))
	var cfg testConfig
	if err := l.Load(&cfg); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoader_Reload(t *testing.T) {
	path := writeConfig(t, "data:\n  engine: json\n")
	l := NewLoader(WithConfigFile(path))

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("data:\n  file: new.json\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var reloaded testConfig
	if err := l.Reload(&reloaded); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if reloaded.Data.File != "new.json" {
		t.Errorf("data.file = %q, want new.json", reloaded.Data.File)
	}
	if reloaded.Data.Engine != "" {
		t.Errorf("data.engine = %q, stale value kept after reload", reloaded.Data.Engine)
	}
	if got := l.GetInt("cli.history_size"); got != 0 {
		t.Errorf("GetInt() = %d, want 0", got)
	}
	if l.GetBool("cli.missing") {
		t.Error("GetBool() on missing key should be false")
	}
	if len(l.All()) != 1 {
		t.Errorf("All() = %v", l.All())
	}
}

func TestEnvKey(t *testing.T) {
	l := NewLoader()
	tests := map[string]string{
		"TEACHWHAT_DATA__FILE":        "data.file",
		"TEACHWHAT_CLI__HISTORY_SIZE": "cli.history_size",
		"TEACHWHAT_LOG__LEVEL":        "log.level",
	}
	for in, want := range tests {
		if got := l.envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoader_WithoutEnv(t *testing.T) {
	t.Setenv("TEACHWHAT_DATA__FILE", "from-env.json")

	l := NewLoader(
		WithoutEnv(),
		WithDefaults(map[string]any{"data.file": "default.json"}),
	)
	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Data.File != "default.json" {
		t.Errorf("Data.File = %q, want the default", cfg.Data.File)
	}
}
