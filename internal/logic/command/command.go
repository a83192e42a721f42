// Package command provides the executable commands of TeachWhat.
package command

import (
	"context"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/model"
)

// Command is one validated user action.
type Command interface {
	// Word returns the command word that selects this command.
	Word() string
	// Execute applies the command to the model.
	Execute(ctx context.Context, m model.Model) (Result, error)
}

// Panel tells the presentation layer what to show after a command.
type Panel int

const (
	PanelNone Panel = iota
	PanelStudents
	PanelLessons
	PanelStudentInfo
	PanelLessonInfo
)

// String returns the panel name.
func (p Panel) String() string {
	switch p {
	case PanelStudents:
		return "students"
	case PanelLessons:
		return "lessons"
	case PanelStudentInfo:
		return "student-info"
	case PanelLessonInfo:
		return "lesson-info"
	default:
		return "none"
	}
}

// Result is the outcome of a successful command.
type Result struct {
	Feedback string
	ShowHelp bool
	Exit     bool
	Panel    Panel
}

func studentAt(m model.Model, idx domain.Index) (*domain.Student, error) {
	list := m.FilteredStudents()
	i := idx.ZeroBased()
	if i < 0 || i >= len(list) {
		return nil, domain.ErrStudentIndexOutOfRange
	}
	return list[i], nil
}

func lessonAt(m model.Model, idx domain.Index) (*domain.Lesson, error) {
	list := m.FilteredLessons()
	i := idx.ZeroBased()
	if i < 0 || i >= len(list) {
		return nil, domain.ErrLessonIndexOutOfRange
	}
	return list[i], nil
}
