// Package domain defines the core domain models for TeachWhat.
package domain

import (
	"slices"
	"strings"
)

// Lesson is a scheduled tutoring session.
type Lesson struct {
	// ID is the stable identifier, format twl-{ulid_lowercase}.
	ID       string      `json:"id"`
	Title    LessonTitle `json:"title"`
	Subject  Subject     `json:"subject"`
	Date     LessonDate  `json:"date"`
	Duration Duration    `json:"duration_hours"`

	// StudentIDs lists the students assigned to this lesson.
	StudentIDs []string `json:"student_ids"`
}

// NewLesson creates a Lesson with a generated ID.
func NewLesson(title LessonTitle, subject Subject, date LessonDate, duration Duration) (*Lesson, error) {
	id, err := generateID(LessonIDPrefix)
	if err != nil {
		return nil, err
	}
	return &Lesson{
		ID:         id,
		Title:      title,
		Subject:    subject,
		Date:       date,
		Duration:   duration,
		StudentIDs: []string{},
	}, nil
}

// IsSameLesson reports whether both lessons share title and date.
func (l *Lesson) IsSameLesson(other *Lesson) bool {
	if other == nil {
		return false
	}
	return l.Title == other.Title && l.Date == other.Date
}

// HasStudent reports whether studentID is assigned to the lesson.
func (l *Lesson) HasStudent(studentID string) bool {
	return slices.Contains(l.StudentIDs, studentID)
}

// Validate re-checks every field. It is used on data read from storage.
func (l *Lesson) Validate() error {
	if !strings.HasPrefix(l.ID, LessonIDPrefix) {
		return ErrDataConversion.WithDetails("lesson id " + l.ID)
	}
	if _, err := NewLessonTitle(string(l.Title)); err != nil {
		return err
	}
	if _, err := NewSubject(string(l.Subject)); err != nil {
		return err
	}
	if _, err := NewLessonDate(string(l.Date)); err != nil {
		return err
	}
	if l.Duration < MinDurationHours || l.Duration > MaxDurationHours {
		return ErrInvalidDuration
	}
	return nil
}

// Clone returns a deep copy of the lesson.
func (l *Lesson) Clone() *Lesson {
	if l == nil {
		return nil
	}
	c := *l
	c.StudentIDs = slices.Clone(l.StudentIDs)
	if c.StudentIDs == nil {
		c.StudentIDs = []string{}
	}
	return &c
}
