// Package command provides the teachwhat command-line application.
//
// It uses urfave/cli/v2. Without a subcommand the interactive shell
// starts; exec runs a single line for scripting. Global flags override the
// configuration file and TEACHWHAT_* environment variables.
package command
