// Package command provides the executable commands of TeachWhat.
package command

import (
	"context"

	"github.com/yndnr/teachwhat-go/internal/model"
)

// Clear empties both books.
type Clear struct{}

// Word implements Command.
func (Clear) Word() string { return WordClear }

// Execute implements Command.
func (Clear) Execute(_ context.Context, m model.Model) (Result, error) {
	m.Clear()
	return Result{Feedback: "Teach What! data has been cleared!", Panel: PanelStudents}, nil
}

// Help asks the presentation layer to show usage instructions.
type Help struct{}

// Word implements Command.
func (Help) Word() string { return WordHelp }

// Execute implements Command.
func (Help) Execute(context.Context, model.Model) (Result, error) {
	return Result{Feedback: "Opened help window.", ShowHelp: true}, nil
}

// Exit asks the presentation layer to quit.
type Exit struct{}

// Word implements Command.
func (Exit) Word() string { return WordExit }

// Execute implements Command.
func (Exit) Execute(context.Context, model.Model) (Result, error) {
	return Result{Feedback: "Exiting Teach What! as requested ...", Exit: true}, nil
}
