// Package domain defines the core domain models for TeachWhat.
package domain

import (
	"crypto/rand"
	"slices"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Entity ID prefixes.
const (
	StudentIDPrefix = "tws-"
	LessonIDPrefix  = "twl-"
)

// Student is a person taught by the tutor.
type Student struct {
	// ID is the stable identifier, format tws-{ulid_lowercase}.
	ID      string  `json:"id"`
	Name    Name    `json:"name"`
	Phone   Phone   `json:"phone"`
	Email   Email   `json:"email"`
	Address Address `json:"address"`
	Tags    []Tag   `json:"tags"`

	// LessonIDs lists the lessons this student is assigned to.
	LessonIDs []string `json:"lesson_ids"`
}

// NewStudent creates a Student with a generated ID.
func NewStudent(name Name, phone Phone, email Email, address Address, tags []Tag) (*Student, error) {
	id, err := generateID(StudentIDPrefix)
	if err != nil {
		return nil, err
	}
	return &Student{
		ID:        id,
		Name:      name,
		Phone:     phone,
		Email:     email,
		Address:   address,
		Tags:      slices.Clone(tags),
		LessonIDs: []string{},
	}, nil
}

// IsSameStudent reports whether both students have the same name.
// This is weaker than full equality and is used to reject duplicates.
func (s *Student) IsSameStudent(other *Student) bool {
	if other == nil {
		return false
	}
	return s.Name == other.Name
}

// HasLesson reports whether the student is assigned to lessonID.
func (s *Student) HasLesson(lessonID string) bool {
	return slices.Contains(s.LessonIDs, lessonID)
}

// Validate re-checks every field. It is used on data read from storage.
func (s *Student) Validate() error {
	if !strings.HasPrefix(s.ID, StudentIDPrefix) {
		return ErrDataConversion.WithDetails("student id " + s.ID)
	}
	if _, err := NewName(string(s.Name)); err != nil {
		return err
	}
	if _, err := NewPhone(string(s.Phone)); err != nil {
		return err
	}
	if _, err := NewEmail(string(s.Email)); err != nil {
		return err
	}
	if _, err := NewAddress(string(s.Address)); err != nil {
		return err
	}
	for _, tag := range s.Tags {
		if _, err := NewTag(string(tag)); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of the student.
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}
	c := *s
	c.Tags = slices.Clone(s.Tags)
	c.LessonIDs = slices.Clone(s.LessonIDs)
	if c.LessonIDs == nil {
		c.LessonIDs = []string{}
	}
	return &c
}

// generateID generates a prefixed lowercase ULID.
func generateID(prefix string) (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", ErrInternal.WithCause(err)
	}
	return prefix + strings.ToLower(id.String()), nil
}
