// Package command provides the teachwhat command-line application.
package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/teachwhat-go/internal/cli/repl"
	lcommand "github.com/yndnr/teachwhat-go/internal/logic/command"
	"github.com/yndnr/teachwhat-go/internal/logic/parser"
)

// ExecCommand runs one input line without starting the shell.
func ExecCommand() *cli.Command {
	return &cli.Command{
		Name:      "exec",
		Aliases:   []string{"x"},
		Usage:     "Run a single command line and exit",
		ArgsUsage: "COMMAND_WORD [ARGUMENTS]...",
		Action:    execLine,
	}
}

func execLine(c *cli.Context) error {
	line := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(line) == "" {
		return errors.New("a command line is required, for example: exec list-students")
	}

	e := getEnv(c)
	mgr, err := e.openManager(c.Context)
	if err != nil {
		return err
	}
	shell := repl.New(mgr,
		repl.WithIO(c.App.Reader, c.App.Writer, c.App.ErrWriter),
		repl.WithFormatter(e.formatter()),
	)

	_, runErr := shell.Eval(c.Context, line)
	if runErr != nil {
		shell.PrintError(runErr)
	}
	closeErr := mgr.Close(context.WithoutCancel(c.Context))
	metricsErr := e.writeMetrics()

	if runErr != nil {
		return ErrReported
	}
	return errors.Join(closeErr, metricsErr)
}

// commandSummary is one row of the commands listing.
type commandSummary struct {
	Word    string `json:"word" yaml:"word"`
	Summary string `json:"summary" yaml:"summary"`
	Policy  string `json:"preamble" yaml:"preamble" table:"preamble,wide"`
}

// CommandsCommand lists the shell vocabulary.
func CommandsCommand() *cli.Command {
	return &cli.Command{
		Name:      "commands",
		Usage:     "List shell commands, or show the usage of one",
		ArgsUsage: "[COMMAND_WORD]",
		Action:    listCommands,
	}
}

func listCommands(c *cli.Context) error {
	e := getEnv(c)
	table := parser.DefaultTable()

	if word := c.Args().First(); word != "" {
		if _, ok := table.Lookup(word); !ok {
			msg := fmt.Sprintf("unknown command %q", word)
			if s := repl.NewCompleter(table.Words()).Suggest(word); s != "" {
				msg += fmt.Sprintf(", did you mean %q?", s)
			}
			return errors.New(msg)
		}
		_, err := fmt.Fprintln(c.App.Writer, lcommand.Usage(word))
		return err
	}

	rows := make([]commandSummary, 0, len(table.Words()))
	for _, word := range table.Words() {
		p, _ := table.Lookup(word)
		rows = append(rows, commandSummary{
			Word:    word,
			Summary: summaryOf(lcommand.Usage(word)),
			Policy:  p.Preamble().String(),
		})
	}
	return e.formatter().Format(c.App.Writer, rows)
}

// summaryOf returns the first sentence of a usage text without the
// leading command word.
func summaryOf(usage string) string {
	first, _, _ := strings.Cut(usage, "\n")
	if _, rest, ok := strings.Cut(first, ": "); ok {
		first = rest
	}
	return first
}
