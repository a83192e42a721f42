// Package command provides the executable commands of TeachWhat.
package command

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/model"
)

// AddStudent adds a new student.
type AddStudent struct {
	Name    domain.Name
	Phone   domain.Phone
	Email   domain.Email
	Address domain.Address
	Tags    []domain.Tag
}

// Word implements Command.
func (AddStudent) Word() string { return WordAddStudent }

// Execute implements Command.
func (c AddStudent) Execute(_ context.Context, m model.Model) (Result, error) {
	s, err := domain.NewStudent(c.Name, c.Phone, c.Email, c.Address, c.Tags)
	if err != nil {
		return Result{}, err
	}
	if m.HasStudent(s) {
		return Result{}, domain.ErrDuplicateStudent
	}
	if err := m.AddStudent(s); err != nil {
		return Result{}, err
	}
	return Result{
		Feedback: "New student added: " + describeStudent(s),
		Panel:    PanelStudents,
	}, nil
}

// DeleteStudent deletes the student at an index of the displayed list.
type DeleteStudent struct {
	Index domain.Index
}

// Word implements Command.
func (DeleteStudent) Word() string { return WordDeleteStudent }

// Execute implements Command.
func (c DeleteStudent) Execute(_ context.Context, m model.Model) (Result, error) {
	s, err := studentAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteStudent(s.ID); err != nil {
		return Result{}, err
	}
	return Result{Feedback: "Deleted Student: " + describeStudent(s), Panel: PanelStudents}, nil
}

// EditStudentDescriptor holds the fields to change. Nil fields and an
// unset tag list are left untouched.
type EditStudentDescriptor struct {
	Name    *domain.Name
	Phone   *domain.Phone
	Email   *domain.Email
	Address *domain.Address

	// ReplaceTags replaces the tag set with Tags, which may be empty.
	ReplaceTags bool
	Tags        []domain.Tag
}

// IsAnyFieldEdited reports whether at least one field is set.
func (d EditStudentDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.ReplaceTags
}

func (d EditStudentDescriptor) apply(s *domain.Student) *domain.Student {
	edited := s.Clone()
	if d.Name != nil {
		edited.Name = *d.Name
	}
	if d.Phone != nil {
		edited.Phone = *d.Phone
	}
	if d.Email != nil {
		edited.Email = *d.Email
	}
	if d.Address != nil {
		edited.Address = *d.Address
	}
	if d.ReplaceTags {
		edited.Tags = slices.Clone(d.Tags)
	}
	return edited
}

// EditStudent edits the student at an index of the displayed list.
type EditStudent struct {
	Index  domain.Index
	Fields EditStudentDescriptor
}

// Word implements Command.
func (EditStudent) Word() string { return WordEditStudent }

// Execute implements Command.
func (c EditStudent) Execute(_ context.Context, m model.Model) (Result, error) {
	target, err := studentAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	edited := c.Fields.apply(target)
	if !target.IsSameStudent(edited) && m.HasStudent(edited) {
		return Result{}, domain.ErrDuplicateStudent
	}
	if err := m.SetStudent(edited); err != nil {
		return Result{}, err
	}
	m.FilterStudents(model.ShowAllStudents)
	return Result{Feedback: "Edited Student: " + describeStudent(edited), Panel: PanelStudents}, nil
}

// FindStudent filters the student list by name keywords.
type FindStudent struct {
	Keywords []string
}

// Word implements Command.
func (FindStudent) Word() string { return WordFindStudent }

// Execute implements Command.
func (c FindStudent) Execute(_ context.Context, m model.Model) (Result, error) {
	m.FilterStudents(model.NameContainsKeywords(slices.Clone(c.Keywords)))
	n := len(m.FilteredStudents())
	return Result{Feedback: fmt.Sprintf("%d students listed!", n), Panel: PanelStudents}, nil
}

// ListStudents clears the student filter.
type ListStudents struct{}

// Word implements Command.
func (ListStudents) Word() string { return WordListStudents }

// Execute implements Command.
func (ListStudents) Execute(_ context.Context, m model.Model) (Result, error) {
	m.FilterStudents(model.ShowAllStudents)
	return Result{Feedback: "Listed all students", Panel: PanelStudents}, nil
}

// ViewStudentInfo selects a student for the info panel.
type ViewStudentInfo struct {
	Index domain.Index
}

// Word implements Command.
func (ViewStudentInfo) Word() string { return WordViewStudentInfo }

// Execute implements Command.
func (c ViewStudentInfo) Execute(_ context.Context, m model.Model) (Result, error) {
	s, err := studentAt(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	m.Select(model.Selection{Kind: model.SelectStudent, ID: s.ID})
	return Result{Feedback: "Viewing student: " + string(s.Name), Panel: PanelStudentInfo}, nil
}

func describeStudent(s *domain.Student) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Address: %s", s.Name, s.Phone, s.Email, s.Address)
	if len(s.Tags) > 0 {
		b.WriteString("; Tags: ")
		for _, t := range s.Tags {
			b.WriteString("[" + string(t) + "]")
		}
	}
	return b.String()
}
