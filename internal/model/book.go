// Package model holds the in-memory student and lesson books.
package model

import (
	"slices"
	"sync"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/pkg/cmap"
)

// Book is the in-memory Model implementation.
type Book struct {
	mu sync.RWMutex

	// Display order of IDs; the cmap indexes hold the entities.
	studentOrder []string
	lessonOrder  []string
	students     *cmap.Map[*domain.Student]
	lessons      *cmap.Map[*domain.Lesson]

	studentFilter StudentPredicate
	lessonFilter  LessonPredicate
	selected      Selection
}

var _ Model = (*Book)(nil)

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{
		students:      cmap.New[*domain.Student](),
		lessons:       cmap.New[*domain.Lesson](),
		studentFilter: ShowAllStudents,
		lessonFilter:  ShowAllLessons,
	}
}

// HasStudent reports whether a student with the same identity exists.
func (b *Book) HasStudent(s *domain.Student) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.findSameStudent(s) != ""
}

func (b *Book) findSameStudent(s *domain.Student) string {
	for _, id := range b.studentOrder {
		if cur, ok := b.students.Get(id); ok && cur.IsSameStudent(s) {
			return id
		}
	}
	return ""
}

// AddStudent appends a student to the book.
func (b *Book) AddStudent(s *domain.Student) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.findSameStudent(s) != "" {
		return domain.ErrDuplicateStudent
	}
	c := s.Clone()
	c.LessonIDs = []string{}
	if !b.students.SetIfAbsent(c.ID, c) {
		return domain.ErrDuplicateStudent.WithDetails("id " + c.ID)
	}
	b.studentOrder = append(b.studentOrder, c.ID)
	return nil
}

// SetStudent replaces the student with the same ID. Assignments are
// owned by the book and are kept as they are.
func (b *Book) SetStudent(edited *domain.Student) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, ok := b.students.Get(edited.ID)
	if !ok {
		return domain.ErrStudentNotFound
	}
	if other := b.findSameStudent(edited); other != "" && other != edited.ID {
		return domain.ErrDuplicateStudent
	}
	c := edited.Clone()
	c.LessonIDs = slices.Clone(cur.LessonIDs)
	b.students.Set(c.ID, c)
	return nil
}

// DeleteStudent removes a student and its assignments.
func (b *Book) DeleteStudent(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.students.Get(id)
	if !ok {
		return domain.ErrStudentNotFound
	}
	for _, lid := range s.LessonIDs {
		if l, ok := b.lessons.Get(lid); ok {
			l.StudentIDs = slices.DeleteFunc(l.StudentIDs, func(x string) bool { return x == id })
		}
	}
	b.students.Delete(id)
	b.studentOrder = slices.DeleteFunc(b.studentOrder, func(x string) bool { return x == id })
	if b.selected.Kind == SelectStudent && b.selected.ID == id {
		b.selected = Selection{}
	}
	return nil
}

// Student returns a copy of the student with the given ID.
func (b *Book) Student(id string) (*domain.Student, bool) {
	s, ok := b.students.Get(id)
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// FilteredStudents returns copies of the students matching the current filter.
func (b *Book) FilteredStudents() []*domain.Student {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*domain.Student, 0, len(b.studentOrder))
	for _, id := range b.studentOrder {
		if s, ok := b.students.Get(id); ok && b.studentFilter(s) {
			out = append(out, s.Clone())
		}
	}
	return out
}

// FilterStudents sets the student filter. A nil predicate shows everyone.
func (b *Book) FilterStudents(pred StudentPredicate) {
	if pred == nil {
		pred = ShowAllStudents
	}
	b.mu.Lock()
	b.studentFilter = pred
	b.mu.Unlock()
}

// HasLesson reports whether a lesson with the same identity exists.
func (b *Book) HasLesson(l *domain.Lesson) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.findSameLesson(l) != ""
}

func (b *Book) findSameLesson(l *domain.Lesson) string {
	for _, id := range b.lessonOrder {
		if cur, ok := b.lessons.Get(id); ok && cur.IsSameLesson(l) {
			return id
		}
	}
	return ""
}

// AddLesson appends a lesson to the book.
func (b *Book) AddLesson(l *domain.Lesson) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.findSameLesson(l) != "" {
		return domain.ErrDuplicateLesson
	}
	c := l.Clone()
	c.StudentIDs = []string{}
	if !b.lessons.SetIfAbsent(c.ID, c) {
		return domain.ErrDuplicateLesson.WithDetails("id " + c.ID)
	}
	b.lessonOrder = append(b.lessonOrder, c.ID)
	return nil
}

// SetLesson replaces the lesson with the same ID, keeping its assignments.
func (b *Book) SetLesson(edited *domain.Lesson) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	cur, ok := b.lessons.Get(edited.ID)
	if !ok {
		return domain.ErrLessonNotFound
	}
	if other := b.findSameLesson(edited); other != "" && other != edited.ID {
		return domain.ErrDuplicateLesson
	}
	c := edited.Clone()
	c.StudentIDs = slices.Clone(cur.StudentIDs)
	b.lessons.Set(c.ID, c)
	return nil
}

// DeleteLesson removes a lesson and its assignments.
func (b *Book) DeleteLesson(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, ok := b.lessons.Get(id)
	if !ok {
		return domain.ErrLessonNotFound
	}
	for _, sid := range l.StudentIDs {
		if s, ok := b.students.Get(sid); ok {
			s.LessonIDs = slices.DeleteFunc(s.LessonIDs, func(x string) bool { return x == id })
		}
	}
	b.lessons.Delete(id)
	b.lessonOrder = slices.DeleteFunc(b.lessonOrder, func(x string) bool { return x == id })
	if b.selected.Kind == SelectLesson && b.selected.ID == id {
		b.selected = Selection{}
	}
	return nil
}

// Lesson returns a copy of the lesson with the given ID.
func (b *Book) Lesson(id string) (*domain.Lesson, bool) {
	l, ok := b.lessons.Get(id)
	if !ok {
		return nil, false
	}
	return l.Clone(), true
}

// FilteredLessons returns copies of the lessons matching the current filter.
func (b *Book) FilteredLessons() []*domain.Lesson {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*domain.Lesson, 0, len(b.lessonOrder))
	for _, id := range b.lessonOrder {
		if l, ok := b.lessons.Get(id); ok && b.lessonFilter(l) {
			out = append(out, l.Clone())
		}
	}
	return out
}

// FilterLessons sets the lesson filter. A nil predicate shows every lesson.
func (b *Book) FilterLessons(pred LessonPredicate) {
	if pred == nil {
		pred = ShowAllLessons
	}
	b.mu.Lock()
	b.lessonFilter = pred
	b.mu.Unlock()
}

// Assign links a student and a lesson on both sides.
func (b *Book) Assign(studentID, lessonID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, l, err := b.pair(studentID, lessonID)
	if err != nil {
		return err
	}
	if s.HasLesson(lessonID) || l.HasStudent(studentID) {
		return domain.ErrAlreadyAssigned
	}
	s.LessonIDs = append(s.LessonIDs, lessonID)
	l.StudentIDs = append(l.StudentIDs, studentID)
	return nil
}

// Unassign removes the link between a student and a lesson.
func (b *Book) Unassign(studentID, lessonID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, l, err := b.pair(studentID, lessonID)
	if err != nil {
		return err
	}
	if !s.HasLesson(lessonID) {
		return domain.ErrNotAssigned
	}
	s.LessonIDs = slices.DeleteFunc(s.LessonIDs, func(x string) bool { return x == lessonID })
	l.StudentIDs = slices.DeleteFunc(l.StudentIDs, func(x string) bool { return x == studentID })
	return nil
}

func (b *Book) pair(studentID, lessonID string) (*domain.Student, *domain.Lesson, error) {
	s, ok := b.students.Get(studentID)
	if !ok {
		return nil, nil, domain.ErrStudentNotFound
	}
	l, ok := b.lessons.Get(lessonID)
	if !ok {
		return nil, nil, domain.ErrLessonNotFound
	}
	return s, l, nil
}

// Select sets the entity shown in the info panel.
func (b *Book) Select(sel Selection) {
	b.mu.Lock()
	b.selected = sel
	b.mu.Unlock()
}

// Selected returns the entity shown in the info panel.
func (b *Book) Selected() Selection {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selected
}

// Clear removes every student and lesson and resets filters.
func (b *Book) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
}

func (b *Book) reset() {
	b.students.Clear()
	b.lessons.Clear()
	b.studentOrder = nil
	b.lessonOrder = nil
	b.studentFilter = ShowAllStudents
	b.lessonFilter = ShowAllLessons
	b.selected = Selection{}
}

// Len returns the number of students and lessons, ignoring filters.
func (b *Book) Len() (students, lessons int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.studentOrder), len(b.lessonOrder)
}

// Snapshot returns a deep copy of both books in display order.
func (b *Book) Snapshot() *domain.Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	snap := &domain.Snapshot{
		Students: make([]*domain.Student, 0, len(b.studentOrder)),
		Lessons:  make([]*domain.Lesson, 0, len(b.lessonOrder)),
	}
	for _, id := range b.studentOrder {
		if s, ok := b.students.Get(id); ok {
			snap.Students = append(snap.Students, s.Clone())
		}
	}
	for _, id := range b.lessonOrder {
		if l, ok := b.lessons.Get(id); ok {
			snap.Lessons = append(snap.Lessons, l.Clone())
		}
	}
	return snap
}

// Restore replaces the book content with snap after validating it.
func (b *Book) Restore(snap *domain.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.reset()
	for _, s := range snap.Students {
		if !b.students.SetIfAbsent(s.ID, s.Clone()) {
			return domain.ErrDataConversion.WithDetails("duplicate student id " + s.ID)
		}
		b.studentOrder = append(b.studentOrder, s.ID)
	}
	for _, l := range snap.Lessons {
		if !b.lessons.SetIfAbsent(l.ID, l.Clone()) {
			return domain.ErrDataConversion.WithDetails("duplicate lesson id " + l.ID)
		}
		b.lessonOrder = append(b.lessonOrder, l.ID)
	}
	return nil
}
