// Package model holds the in-memory student and lesson books.
package model

import "github.com/yndnr/teachwhat-go/internal/core/domain"

// StudentPredicate decides whether a student is shown in the filtered list.
type StudentPredicate func(*domain.Student) bool

// LessonPredicate decides whether a lesson is shown in the filtered list.
type LessonPredicate func(*domain.Lesson) bool

// ShowAllStudents matches every student.
func ShowAllStudents(*domain.Student) bool { return true }

// ShowAllLessons matches every lesson.
func ShowAllLessons(*domain.Lesson) bool { return true }

// SelectionKind identifies what the info panel shows.
type SelectionKind int

const (
	SelectNone SelectionKind = iota
	SelectStudent
	SelectLesson
)

// Selection is the entity shown in the info panel.
type Selection struct {
	Kind SelectionKind
	ID   string
}

// Model is the API exposed to commands. Returned entities are copies.
type Model interface {
	HasStudent(s *domain.Student) bool
	AddStudent(s *domain.Student) error
	SetStudent(edited *domain.Student) error
	DeleteStudent(id string) error
	Student(id string) (*domain.Student, bool)
	FilteredStudents() []*domain.Student
	FilterStudents(pred StudentPredicate)

	HasLesson(l *domain.Lesson) bool
	AddLesson(l *domain.Lesson) error
	SetLesson(edited *domain.Lesson) error
	DeleteLesson(id string) error
	Lesson(id string) (*domain.Lesson, bool)
	FilteredLessons() []*domain.Lesson
	FilterLessons(pred LessonPredicate)

	Assign(studentID, lessonID string) error
	Unassign(studentID, lessonID string) error

	Select(sel Selection)
	Selected() Selection

	Clear()
	Snapshot() *domain.Snapshot
	Restore(snap *domain.Snapshot) error
}
