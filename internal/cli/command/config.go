// Package command provides the teachwhat command-line application.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/teachwhat-go/internal/config"
	"github.com/yndnr/teachwhat-go/internal/infra/confloader"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"cfg"},
		Usage:   "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:      "validate",
				Usage:     "Validate a configuration file",
				ArgsUsage: "FILE",
				Action:    configValidate,
			},
		},
	}
}

// configShow prints the merged configuration with secrets masked.
func configShow(c *cli.Context) error {
	e := getEnv(c)
	if path := e.loader.FilePath(); path != "" {
		fmt.Fprintf(c.App.ErrWriter, "# config file: %s\n", path)
	}
	return e.formatter().Format(c.App.Writer, config.Sanitize(e.cfg))
}

// configValidate checks a file merged over the defaults, without
// environment variables or flags.
func configValidate(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("configuration file path required")
	}

	loader := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithDefaults(config.DefaultMap()),
		confloader.WithoutEnv(),
	)
	cfg := &config.Config{}
	if err := loader.Load(cfg); err != nil {
		return err
	}
	if err := config.Verify(cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintf(c.App.Writer, "Configuration file is valid: %s\n", path)
	return nil
}
