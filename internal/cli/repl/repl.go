// Package repl provides the interactive TeachWhat shell.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yndnr/teachwhat-go/internal/cli/output"
	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/logic"
	"github.com/yndnr/teachwhat-go/internal/logic/command"
	"github.com/yndnr/teachwhat-go/internal/logic/parser"
	"github.com/yndnr/teachwhat-go/internal/model"
)

// DefaultPrompt is shown before each line.
const DefaultPrompt = "teachwhat> "

// Executor runs one input line. *logic.Manager implements it.
type Executor interface {
	Execute(ctx context.Context, line string) (command.Result, error)
	Model() model.Model
	Words() []string
}

var _ Executor = (*logic.Manager)(nil)

// Option configures a REPL.
type Option func(*REPL)

// WithIO sets the input, result output and error output streams.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(r *REPL) {
		r.input, r.output, r.errOut = in, out, errOut
	}
}

// WithPrompt sets the prompt.
func WithPrompt(prompt string) Option {
	return func(r *REPL) {
		r.prompt = prompt
	}
}

// WithFormatter sets how panels are rendered.
func WithFormatter(f output.Formatter) Option {
	return func(r *REPL) {
		r.formatter = f
	}
}

// WithHistory records every non-empty line in h.
func WithHistory(h *History) Option {
	return func(r *REPL) {
		r.history = h
	}
}

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	exec      Executor
	input     io.Reader
	output    io.Writer
	errOut    io.Writer
	prompt    string
	formatter output.Formatter
	completer *Completer
	history   *History
}

// New creates a REPL running lines through exec.
func New(exec Executor, opts ...Option) *REPL {
	r := &REPL{
		exec:      exec,
		input:     os.Stdin,
		output:    os.Stdout,
		errOut:    os.Stderr,
		prompt:    DefaultPrompt,
		formatter: output.NewFormatter(output.FormatTable, false),
		history:   NewHistory("", 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.completer = NewCompleter(exec.Words())
	return r
}

// History returns the REPL history.
func (r *REPL) History() *History {
	return r.history
}

// Run reads lines until exit, end of input or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go r.read(ctx, lines, readErr)

	for {
		fmt.Fprint(r.output, r.prompt)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.output)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(r.output)
				return <-readErr
			}
			line = strings.TrimSpace(l)
		}

		if line == "" {
			continue
		}
		r.history.Add(line)

		res, err := r.Eval(ctx, line)
		if err != nil {
			r.PrintError(err)
		}
		if res.Exit {
			return nil
		}
	}
}

func (r *REPL) read(ctx context.Context, lines chan<- string, readErr chan<- error) {
	defer close(lines)
	scanner := bufio.NewScanner(r.input)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			readErr <- nil
			return
		}
	}
	readErr <- scanner.Err()
}

// Eval executes one line and renders its result. Errors are returned
// unprinted; a failed save still renders the command's result.
func (r *REPL) Eval(ctx context.Context, line string) (command.Result, error) {
	res, err := r.exec.Execute(ctx, line)
	var saveErr *logic.SaveError
	if err != nil && !errors.As(err, &saveErr) {
		return res, err
	}

	if res.ShowHelp {
		r.printHelp()
	} else if res.Feedback != "" {
		fmt.Fprintln(r.feedbackWriter(), res.Feedback)
	}
	if data := output.PanelData(r.exec.Model(), res.Panel); data != nil {
		if ferr := r.formatter.Format(r.output, data); ferr != nil {
			return res, errors.Join(err, ferr)
		}
	}
	return res, err
}

// PrintError writes err to the error stream, with a hint for a mistyped
// command word. Domain errors are shown without their code.
func (r *REPL) PrintError(err error) {
	msg := err.Error()
	var pe *parser.ParseError
	var de *domain.DomainError
	if !errors.As(err, &pe) && errors.As(err, &de) {
		msg = de.Message
		if de.Details != "" {
			msg += ": " + de.Details
		}
	}
	fmt.Fprintln(r.errOut, msg)

	if pe != nil && pe.Kind == parser.KindUnknownCommand {
		if s := r.completer.Suggest(pe.Field); s != "" {
			fmt.Fprintf(r.errOut, "Did you mean %q?\n", s)
		}
	}
}

// feedbackWriter keeps stdout machine-readable for JSON and YAML output.
func (r *REPL) feedbackWriter() io.Writer {
	if _, ok := r.formatter.(*output.TableFormatter); ok {
		return r.output
	}
	return r.errOut
}

func (r *REPL) printHelp() {
	w := r.feedbackWriter()
	fmt.Fprintln(w, "Commands:")
	for _, word := range r.completer.Complete("") {
		fmt.Fprintln(w)
		fmt.Fprintln(w, command.Usage(word))
	}
}
