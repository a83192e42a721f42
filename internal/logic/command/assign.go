// Package command provides the executable commands of TeachWhat.
package command

import (
	"context"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/model"
)

// Assign adds a student to a lesson.
type Assign struct {
	Student domain.Index
	Lesson  domain.Index
}

// Word implements Command.
func (Assign) Word() string { return WordAssign }

// Execute implements Command.
func (c Assign) Execute(_ context.Context, m model.Model) (Result, error) {
	s, err := studentAt(m, c.Student)
	if err != nil {
		return Result{}, err
	}
	l, err := lessonAt(m, c.Lesson)
	if err != nil {
		return Result{}, err
	}
	if err := m.Assign(s.ID, l.ID); err != nil {
		return Result{}, err
	}
	m.Select(model.Selection{Kind: model.SelectLesson, ID: l.ID})
	return Result{
		Feedback: "Assigned " + string(s.Name) + " to " + string(l.Title),
		Panel:    PanelLessonInfo,
	}, nil
}

// Unassign removes a student from a lesson.
type Unassign struct {
	Student domain.Index
	Lesson  domain.Index
}

// Word implements Command.
func (Unassign) Word() string { return WordUnassign }

// Execute implements Command.
func (c Unassign) Execute(_ context.Context, m model.Model) (Result, error) {
	s, err := studentAt(m, c.Student)
	if err != nil {
		return Result{}, err
	}
	l, err := lessonAt(m, c.Lesson)
	if err != nil {
		return Result{}, err
	}
	if err := m.Unassign(s.ID, l.ID); err != nil {
		return Result{}, err
	}
	m.Select(model.Selection{Kind: model.SelectLesson, ID: l.ID})
	return Result{
		Feedback: "Unassigned " + string(s.Name) + " from " + string(l.Title),
		Panel:    PanelLessonInfo,
	}, nil
}
