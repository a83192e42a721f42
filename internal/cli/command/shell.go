// Package command provides the teachwhat command-line application.
package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/teachwhat-go/internal/cli/repl"
	"github.com/yndnr/teachwhat-go/internal/config"
	"github.com/yndnr/teachwhat-go/internal/infra/confloader"
	"github.com/yndnr/teachwhat-go/internal/infra/shutdown"
	"github.com/yndnr/teachwhat-go/internal/telemetry/logger"
)

const shutdownTimeout = 10 * time.Second

const welcome = "Welcome to Teach What! Type help to see the commands, exit to leave."

// runShell starts the interactive shell.
func runShell(c *cli.Context) error {
	e := getEnv(c)
	mgr, err := e.openManager(c.Context)
	if err != nil {
		return err
	}

	history := repl.NewHistory(e.cfg.CLI.HistoryFile, e.cfg.CLI.HistorySize)
	if err := history.Load(); err != nil {
		e.log.Warn("history not loaded", "file", e.cfg.CLI.HistoryFile, "error", err.Error())
	}

	shell := repl.New(mgr,
		repl.WithIO(c.App.Reader, c.App.Writer, c.App.ErrWriter),
		repl.WithPrompt(e.cfg.CLI.Prompt),
		repl.WithFormatter(e.formatter()),
		repl.WithHistory(history),
	)

	h := shutdown.NewHandler(shutdownTimeout)
	h.OnShutdown(func(context.Context) error { return e.writeMetrics() })
	h.OnShutdown(mgr.Close)
	h.OnShutdown(func(context.Context) error { return history.Save() })
	if w := e.watchConfig(); w != nil {
		h.OnShutdown(func(context.Context) error { return w.Stop() })
	}

	fmt.Fprintln(c.App.Writer, welcome)
	return h.Run(c.Context, shell.Run)
}

// watchConfig applies log level changes made to the configuration file
// while the shell runs. Other settings take effect on the next start.
func (e *env) watchConfig() *confloader.Watcher {
	path := e.loader.FilePath()
	if path == "" {
		return nil
	}

	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(logger.Slog(e.log)))
	if err != nil {
		e.log.Warn("config watch disabled", "error", err.Error())
		return nil
	}
	if err := w.Watch(path); err != nil {
		e.log.Warn("config watch disabled", "file", path, "error", err.Error())
		if err := w.Stop(); err != nil {
			e.log.Debug("config watcher stop failed", "error", err.Error())
		}
		return nil
	}

	w.OnChange(func(string) {
		e.reload()
	})
	w.StartAsync()
	return w
}

// reload re-reads the configuration and applies the new log level.
func (e *env) reload() {
	cfg := &config.Config{}
	if err := e.loader.Reload(cfg); err != nil {
		e.log.Warn("config reload failed", "error", err.Error())
		return
	}
	if err := config.Verify(cfg); err != nil {
		e.log.Warn("config reload rejected", "error", err.Error())
		return
	}
	if cfg.Log.Level != logger.GetLevel() {
		logger.SetLevel(cfg.Log.Level)
		e.log.Info("log level changed", "level", cfg.Log.Level)
	}
}
