// Package output renders TeachWhat results for the terminal.
package output

import (
	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/logic/command"
	"github.com/yndnr/teachwhat-go/internal/model"
)

// StudentRow is one line of the student list.
type StudentRow struct {
	Index   int            `json:"index" yaml:"index" table:"#"`
	ID      string         `json:"id" yaml:"id" table:"id,wide"`
	Name    domain.Name    `json:"name" yaml:"name"`
	Phone   domain.Phone   `json:"phone" yaml:"phone"`
	Email   domain.Email   `json:"email" yaml:"email"`
	Address domain.Address `json:"address" yaml:"address" table:"address,wide"`
	Tags    []domain.Tag   `json:"tags" yaml:"tags"`
	Lessons int            `json:"lessons" yaml:"lessons"`
}

// LessonRow is one line of the lesson list.
type LessonRow struct {
	Index    int                `json:"index" yaml:"index" table:"#"`
	ID       string             `json:"id" yaml:"id" table:"id,wide"`
	Title    domain.LessonTitle `json:"title" yaml:"title"`
	Subject  domain.Subject     `json:"subject" yaml:"subject"`
	Date     domain.LessonDate  `json:"date" yaml:"date"`
	Hours    int                `json:"hours" yaml:"hours"`
	Students int                `json:"students" yaml:"students"`
}

// StudentInfo is the detail panel of one student.
type StudentInfo struct {
	Name    domain.Name    `json:"name" yaml:"name"`
	Phone   domain.Phone   `json:"phone" yaml:"phone"`
	Email   domain.Email   `json:"email" yaml:"email"`
	Address domain.Address `json:"address" yaml:"address"`
	Tags    []domain.Tag   `json:"tags" yaml:"tags"`
	Lessons []string       `json:"lessons" yaml:"lessons"`
}

// LessonInfo is the detail panel of one lesson.
type LessonInfo struct {
	Title    domain.LessonTitle `json:"title" yaml:"title"`
	Subject  domain.Subject     `json:"subject" yaml:"subject"`
	Date     domain.LessonDate  `json:"date" yaml:"date"`
	Hours    int                `json:"hours" yaml:"hours"`
	Students []string           `json:"students" yaml:"students"`
}

// StudentRows numbers students from 1 in list order.
func StudentRows(students []*domain.Student) []StudentRow {
	rows := make([]StudentRow, len(students))
	for i, s := range students {
		rows[i] = StudentRow{
			Index:   i + 1,
			ID:      s.ID,
			Name:    s.Name,
			Phone:   s.Phone,
			Email:   s.Email,
			Address: s.Address,
			Tags:    s.Tags,
			Lessons: len(s.LessonIDs),
		}
	}
	return rows
}

// LessonRows numbers lessons from 1 in list order.
func LessonRows(lessons []*domain.Lesson) []LessonRow {
	rows := make([]LessonRow, len(lessons))
	for i, l := range lessons {
		rows[i] = LessonRow{
			Index:    i + 1,
			ID:       l.ID,
			Title:    l.Title,
			Subject:  l.Subject,
			Date:     l.Date,
			Hours:    int(l.Duration),
			Students: len(l.StudentIDs),
		}
	}
	return rows
}

// NewStudentInfo builds the panel of s, resolving lesson titles in m.
func NewStudentInfo(m model.Model, s *domain.Student) StudentInfo {
	info := StudentInfo{
		Name:    s.Name,
		Phone:   s.Phone,
		Email:   s.Email,
		Address: s.Address,
		Tags:    s.Tags,
		Lessons: []string{},
	}
	for _, id := range s.LessonIDs {
		if l, ok := m.Lesson(id); ok {
			info.Lessons = append(info.Lessons, string(l.Title)+" ("+string(l.Date)+")")
		}
	}
	return info
}

// NewLessonInfo builds the panel of l, resolving student names in m.
func NewLessonInfo(m model.Model, l *domain.Lesson) LessonInfo {
	info := LessonInfo{
		Title:    l.Title,
		Subject:  l.Subject,
		Date:     l.Date,
		Hours:    int(l.Duration),
		Students: []string{},
	}
	for _, id := range l.StudentIDs {
		if s, ok := m.Student(id); ok {
			info.Students = append(info.Students, string(s.Name))
		}
	}
	return info
}

// PanelData returns the view a command asked to show, or nil.
func PanelData(m model.Model, panel command.Panel) any {
	switch panel {
	case command.PanelStudents:
		return StudentRows(m.FilteredStudents())
	case command.PanelLessons:
		return LessonRows(m.FilteredLessons())
	case command.PanelStudentInfo:
		sel := m.Selected()
		if sel.Kind != model.SelectStudent {
			return nil
		}
		if s, ok := m.Student(sel.ID); ok {
			return NewStudentInfo(m, s)
		}
	case command.PanelLessonInfo:
		sel := m.Selected()
		if sel.Kind != model.SelectLesson {
			return nil
		}
		if l, ok := m.Lesson(sel.ID); ok {
			return NewLessonInfo(m, l)
		}
	}
	return nil
}
