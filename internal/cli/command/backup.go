// Package command provides the teachwhat command-line application.
package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/logic"
	"github.com/yndnr/teachwhat-go/internal/storage"
	"github.com/yndnr/teachwhat-go/internal/telemetry/logger"
)

// BackupCommand returns the backup subcommand group.
func BackupCommand() *cli.Command {
	passphrase := &cli.StringFlag{
		Name:    "passphrase",
		Usage:   "Seal or unseal the backup file with this passphrase",
		EnvVars: []string{"TEACHWHAT_BACKUP_PASSPHRASE"},
	}
	return &cli.Command{
		Name:  "backup",
		Usage: "Copy the book to and from standalone JSON files",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Write the current book to FILE",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{passphrase},
				Action:    backupCreate,
			},
			{
				Name:      "restore",
				Usage:     "Replace the book with the content of FILE",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					passphrase,
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Replace a book that is not empty",
					},
				},
				Action: backupRestore,
			},
			{
				Name:      "info",
				Usage:     "Describe the content of FILE",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{passphrase},
				Action:    backupInfo,
			},
		},
	}
}

// backupSummary describes one backup file.
type backupSummary struct {
	File        string `json:"file" yaml:"file"`
	Students    int    `json:"students" yaml:"students"`
	Lessons     int    `json:"lessons" yaml:"lessons"`
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

func summarize(path string, snap *domain.Snapshot) (backupSummary, error) {
	fp, err := storage.Fingerprint(snap)
	if err != nil {
		return backupSummary{}, err
	}
	return backupSummary{
		File:        path,
		Students:    len(snap.Students),
		Lessons:     len(snap.Lessons),
		Fingerprint: fmt.Sprintf("%016x", fp),
	}, nil
}

func backupFile(c *cli.Context) (*storage.JSONStore, error) {
	path := c.Args().First()
	if path == "" {
		return nil, errors.New("backup file path required")
	}
	return storage.NewJSONStore(path, []byte(c.String("passphrase")), logger.Slog(getEnv(c).log))
}

// withManager opens the book, runs fn and closes the book.
func withManager(c *cli.Context, fn func(*logic.Manager) error) error {
	e := getEnv(c)
	mgr, err := e.openManager(c.Context)
	if err != nil {
		return err
	}
	runErr := fn(mgr)
	return errors.Join(runErr, mgr.Close(context.WithoutCancel(c.Context)), e.writeMetrics())
}

func backupCreate(c *cli.Context) error {
	target, err := backupFile(c)
	if err != nil {
		return err
	}
	defer target.Close()

	e := getEnv(c)
	snap, err := e.loadSaved(c.Context)
	if errors.Is(err, storage.ErrNotFound) {
		return errors.New("there is no saved book to back up")
	}
	if err != nil {
		return err
	}
	if err := target.Save(c.Context, snap); err != nil {
		return err
	}
	sum, err := summarize(target.Path(), snap)
	if err != nil {
		return err
	}
	return e.formatter().Format(c.App.Writer, sum)
}

func backupRestore(c *cli.Context) error {
	source, err := backupFile(c)
	if err != nil {
		return err
	}
	defer source.Close()

	snap, err := source.Load(c.Context)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("backup file %s does not exist", source.Path())
	}
	if err != nil {
		return err
	}

	e := getEnv(c)
	current, err := e.loadSaved(c.Context)
	switch {
	case err == nil:
		students, lessons := len(current.Students), len(current.Lessons)
		if (students > 0 || lessons > 0) && !c.Bool("force") {
			return fmt.Errorf("the book has %d students and %d lessons, use --force to replace it", students, lessons)
		}
	case !errors.Is(err, storage.ErrNotFound):
		return err
	}

	return withManager(c, func(mgr *logic.Manager) error {
		if err := mgr.Restore(c.Context, snap); err != nil {
			return err
		}
		sum, err := summarize(source.Path(), snap)
		if err != nil {
			return err
		}
		return e.formatter().Format(c.App.Writer, sum)
	})
}

func backupInfo(c *cli.Context) error {
	source, err := backupFile(c)
	if err != nil {
		return err
	}
	defer source.Close()

	snap, err := source.Load(c.Context)
	if err != nil {
		return err
	}
	sum, err := summarize(source.Path(), snap)
	if err != nil {
		return err
	}
	return getEnv(c).formatter().Format(c.App.Writer, sum)
}
