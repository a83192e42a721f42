// Package command provides the executable commands of TeachWhat.
package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/model"
)

// AddLesson adds a new lesson.
type AddLesson struct {
	Title    domain.LessonTitle
	Subject  domain.Subject
	Date     domain.LessonDate
	Duration domain.Duration
}

// Word implements Command.
func (AddLesson) Word() string { return WordAddLesson }

// Execute implements Command.
func (c AddLesson) Execute(_ context.Context, m model.Model) (Result, error) {
	l, err := domain.NewLesson(c.Title, c.Subject, c.Date, c.Duration)
	if err != nil {
		return Result{}, err
	}
	if m.HasLesson(l) {
		return Result{}, domain.ErrDuplicateLesson
	}
	if err := m.AddLesson(l); err != nil {
		return Result{}, err
	}
	return Result{Feedback: "New lesson added: " + describeLesson(l), Panel: PanelLessons}, nil
}

// DeleteLesson deletes the lesson at an index of the displayed list.
type DeleteLesson struct {
	Index domain.Index
}

// Word implements Command.
func (DeleteLesson) Word() string { return WordDeleteLesson }

// Execute implements Command.
func (c DeleteLesson) Execute(_ context.Context, m model.Model) (Result, error) {
	l, err := lessonAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteLesson(l.ID); err != nil {
		return Result{}, err
	}
	return Result{Feedback: "Deleted Lesson: " + describeLesson(l), Panel: PanelLessons}, nil
}

// EditLessonDescriptor holds the lesson fields to change.
type EditLessonDescriptor struct {
	Title    *domain.LessonTitle
	Subject  *domain.Subject
	Date     *domain.LessonDate
	Duration *domain.Duration
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditLessonDescriptor) IsAnyFieldEdited() bool {
	return d.Title != nil || d.Subject != nil || d.Date != nil || d.Duration != nil
}

func (d EditLessonDescriptor) apply(l *domain.Lesson) *domain.Lesson {
	edited := l.Clone()
	if d.Title != nil {
		edited.Title = *d.Title
	}
	if d.Subject != nil {
		edited.Subject = *d.Subject
	}
	if d.Date != nil {
		edited.Date = *d.Date
	}
	if d.Duration != nil {
		edited.Duration = *d.Duration
	}
	return edited
}

// EditLesson edits the lesson at an index of the displayed list.
type EditLesson struct {
	Index  domain.Index
	Fields EditLessonDescriptor
}

// Word implements Command.
func (EditLesson) Word() string { return WordEditLesson }

// Execute implements Command.
func (c EditLesson) Execute(_ context.Context, m model.Model) (Result, error) {
	target, err := lessonAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := c.Fields.apply(target)
	if !target.IsSameLesson(edited) && m.HasLesson(edited) {
		return Result{}, domain.ErrDuplicateLesson
	}
	if err := m.SetLesson(edited); err != nil {
		return Result{}, err
	}
	m.FilterLessons(model.ShowAllLessons)
	return Result{Feedback: "Edited Lesson: " + describeLesson(edited), Panel: PanelLessons}, nil
}

// FindLesson filters the lesson list by title and subject keywords.
type FindLesson struct {
	Keywords []string
}

// Word implements Command.
func (FindLesson) Word() string { return WordFindLesson }

// Execute implements Command.
func (c FindLesson) Execute(_ context.Context, m model.Model) (Result, error) {
	m.FilterLessons(model.LessonContainsKeywords(slices.Clone(c.Keywords)))
	n := len(m.FilteredLessons())
	return Result{Feedback: fmt.Sprintf("%d lessons listed!", n), Panel: PanelLessons}, nil
}

// ListLessons clears the lesson filter.
type ListLessons struct{}

// Word implements Command.
func (ListLessons) Word() string { return WordListLessons }

// Execute implements Command.
func (ListLessons) Execute(_ context.Context, m model.Model) (Result, error) {
	m.FilterLessons(model.ShowAllLessons)
	return Result{Feedback: "Listed all lessons", Panel: PanelLessons}, nil
}

// ViewLessonInfo selects a lesson for the info panel.
type ViewLessonInfo struct {
	Index domain.Index
}

// Word implements Command.
func (ViewLessonInfo) Word() string { return WordViewLessonInfo }

// Execute implements Command.
func (c ViewLessonInfo) Execute(_ context.Context, m model.Model) (Result, error) {
	l, err := lessonAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	m.Select(model.Selection{Kind: model.SelectLesson, ID: l.ID})
	return Result{Feedback: "Viewing lesson: " + string(l.Title), Panel: PanelLessonInfo}, nil
}

func describeLesson(l *domain.Lesson) string {
	return fmt.Sprintf("%s; Subject: %s; Date: %s; Duration: %dh", l.Title, l.Subject, l.Date, l.Duration)
}
