// Package command provides the teachwhat command-line application.
package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/teachwhat-go/internal/cli/output"
	"github.com/yndnr/teachwhat-go/internal/config"
	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/infra/buildinfo"
	"github.com/yndnr/teachwhat-go/internal/infra/confloader"
	"github.com/yndnr/teachwhat-go/internal/logic"
	"github.com/yndnr/teachwhat-go/internal/storage"
	"github.com/yndnr/teachwhat-go/internal/telemetry/logger"
	"github.com/yndnr/teachwhat-go/internal/telemetry/metric"
)

// ErrReported is returned after a failure was already shown to the user.
var ErrReported = errors.New("error already reported")

const envKey = "env"

// flagKeys maps global flags to the configuration keys they override.
var flagKeys = map[string]string{
	"data-file": "data.file",
	"engine":    "data.engine",
	"sample":    "data.sample_on_missing",
	"output":    "cli.output",
	"log-level": "log.level",
	"metrics":   "metrics.textfile",
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "teachwhat",
		Usage:   "Keep track of your students and lessons",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Before:  setup,
		Action:  runShell,
		Commands: []*cli.Command{
			ExecCommand(),
			CommandsCommand(),
			ConfigCommand(),
			BackupCommand(),
			SystemCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML configuration file",
			EnvVars: []string{"TEACHWHAT_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "data-file",
			Usage: "JSON data file",
		},
		&cli.StringFlag{
			Name:  "engine",
			Usage: "Storage engine: json, badger",
		},
		&cli.BoolFlag{
			Name:  "sample",
			Usage: "Start with sample data when nothing was saved",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "metrics",
			Usage: "Write Prometheus metrics to this file on exit",
		},
	}
}

// env is the per-run state built before any action runs.
type env struct {
	cfg     *config.Config
	loader  *confloader.Loader
	log     logger.Logger
	metrics *metric.Registry
	wide    bool
}

// setup loads and verifies the configuration and installs the logger.
func setup(c *cli.Context) error {
	overrides := make(map[string]any)
	for flag, key := range flagKeys {
		if !c.IsSet(flag) {
			continue
		}
		if flag == "sample" {
			overrides[key] = c.Bool(flag)
		} else {
			overrides[key] = c.String(flag)
		}
	}

	loader := confloader.NewLoader(
		confloader.WithConfigFile(c.String("config")),
		confloader.WithDefaults(config.DefaultMap()),
		confloader.WithOverrides(overrides),
	)
	cfg := &config.Config{}
	if err := loader.Load(cfg); err != nil {
		return err
	}
	if err := config.Verify(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return err
	}
	logger.SetDefault(log)

	c.App.Metadata[envKey] = &env{
		cfg:     cfg,
		loader:  loader,
		log:     log,
		metrics: metric.NewRegistry(),
		wide:    c.Bool("wide"),
	}
	return nil
}

func getEnv(c *cli.Context) *env {
	e, _ := c.App.Metadata[envKey].(*env)
	return e
}

// formatter returns the formatter selected by cli.output.
func (e *env) formatter() output.Formatter {
	return output.NewFormatter(output.Format(e.cfg.CLI.Output), e.wide)
}

func (e *env) storageConfig() storage.Config {
	return storage.Config{
		Engine:     e.cfg.Data.Engine,
		File:       e.cfg.Data.File,
		Dir:        e.cfg.Data.Dir,
		Passphrase: e.cfg.Data.Passphrase,
		Logger:     logger.Slog(e.log),
	}
}

// openManager opens storage and loads the book.
func (e *env) openManager(ctx context.Context) (*logic.Manager, error) {
	store, err := storage.Open(e.storageConfig())
	if err != nil {
		return nil, err
	}
	m := logic.NewManager(store, logic.WithMetrics(e.metrics), logic.WithLogger(e.log))
	if err := m.Load(ctx, e.cfg.Data.SampleOnMissing); err != nil {
		store.Close()
		return nil, err
	}
	return m, nil
}

// loadSaved reads the saved book without touching it.
func (e *env) loadSaved(ctx context.Context) (*domain.Snapshot, error) {
	store, err := storage.Open(e.storageConfig())
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Load(ctx)
}

// writeMetrics exports metrics when metrics.textfile is set.
func (e *env) writeMetrics() error {
	if e.cfg.Metrics.Textfile == "" {
		return nil
	}
	return e.metrics.WriteTextfile(e.cfg.Metrics.Textfile)
}
