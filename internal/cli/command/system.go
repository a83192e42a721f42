// Package command provides the teachwhat command-line application.
package command

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/teachwhat-go/internal/infra/buildinfo"
	"github.com/yndnr/teachwhat-go/internal/storage"
)

// SystemCommand returns the system subcommand group.
func SystemCommand() *cli.Command {
	return &cli.Command{
		Name:    "system",
		Aliases: []string{"sys"},
		Usage:   "Installation and data store information",
		Subcommands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Show version, storage and book size",
				Action: systemStatus,
			},
		},
	}
}

// status is the output of system status.
type status struct {
	Version    string `json:"version" yaml:"version"`
	Commit     string `json:"commit" yaml:"commit"`
	GoVersion  string `json:"go_version" yaml:"go_version"`
	ConfigFile string `json:"config_file" yaml:"config_file"`
	Engine     string `json:"engine" yaml:"engine"`
	Location   string `json:"location" yaml:"location"`
	Sealed     bool   `json:"sealed" yaml:"sealed"`
	Students   int    `json:"students" yaml:"students"`
	Lessons    int    `json:"lessons" yaml:"lessons"`
}

func systemStatus(c *cli.Context) error {
	e := getEnv(c)
	info := buildinfo.Get()

	st := status{
		Version:    info.Version,
		Commit:     info.Commit,
		GoVersion:  info.GoVersion,
		ConfigFile: e.loader.FilePath(),
		Engine:     e.cfg.Data.Engine,
		Location:   e.cfg.Data.File,
		Sealed:     e.cfg.Data.Passphrase != "",
	}
	if st.Engine == storage.EngineBadger {
		st.Location = e.cfg.Data.Dir
	}

	snap, err := e.loadSaved(c.Context)
	switch {
	case err == nil:
		st.Students, st.Lessons = len(snap.Students), len(snap.Lessons)
	case !errors.Is(err, storage.ErrNotFound):
		return err
	}
	return e.formatter().Format(c.App.Writer, st)
}
