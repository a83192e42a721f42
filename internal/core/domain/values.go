// Package domain defines the core domain models for TeachWhat.
package domain

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Value object constraints.
const (
	MinPhoneDigits    = 3
	MaxLessonTitleLen = 100
	MinDurationHours  = 1
	MaxDurationHours  = 12

	// LessonDateLayout is the only accepted date format.
	LessonDateLayout = "2006-01-02"
)

var (
	namePattern  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	phonePattern = regexp.MustCompile(`^\d{3,}$`)
	tagPattern   = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
	emailPattern = regexp.MustCompile(
		`^[A-Za-z0-9](?:[A-Za-z0-9+_.-]*[A-Za-z0-9])?` +
			`@(?:[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?\.)*[A-Za-z0-9][A-Za-z0-9-]*[A-Za-z0-9]$`)
)

// Name is a student's full name.
type Name string

// NewName validates raw and returns it as a Name.
func NewName(raw string) (Name, error) {
	s := strings.TrimSpace(raw)
	if !namePattern.MatchString(s) {
		return "", ErrInvalidName
	}
	return Name(s), nil
}

// Phone is a contact number made of digits only.
type Phone string

// NewPhone validates raw and returns it as a Phone.
func NewPhone(raw string) (Phone, error) {
	s := strings.TrimSpace(raw)
	if !phonePattern.MatchString(s) {
		return "", ErrInvalidPhone
	}
	return Phone(s), nil
}

// Email is a contact email address.
type Email string

// NewEmail validates raw and returns it as an Email.
func NewEmail(raw string) (Email, error) {
	s := strings.TrimSpace(raw)
	if !emailPattern.MatchString(s) {
		return "", ErrInvalidEmail
	}
	return Email(s), nil
}

// Address is a free-form postal address.
type Address string

// NewAddress validates raw and returns it as an Address.
func NewAddress(raw string) (Address, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrInvalidAddress
	}
	return Address(s), nil
}

// Tag is a single alphanumeric label attached to a student.
type Tag string

// NewTag validates raw and returns it as a Tag.
func NewTag(raw string) (Tag, error) {
	s := strings.TrimSpace(raw)
	if !tagPattern.MatchString(s) {
		return "", ErrInvalidTag
	}
	return Tag(s), nil
}

// NewTagSet builds a sorted set of tags. Repeated names collapse into one.
func NewTagSet(raws []string) ([]Tag, error) {
	seen := make(map[Tag]struct{}, len(raws))
	tags := make([]Tag, 0, len(raws))
	for _, raw := range raws {
		tag, err := NewTag(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags, nil
}

// Index is a one-based position in a displayed list.
type Index int

// ParseIndex parses a non-zero unsigned integer. Signs, spaces inside the
// number and values that overflow int are rejected.
func ParseIndex(raw string) (Index, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrInvalidIndex
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidIndex
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, ErrInvalidIndex
	}
	return Index(n), nil
}

// ZeroBased returns the slice offset for the index.
func (i Index) ZeroBased() int {
	return int(i) - 1
}

// LessonTitle is the short description of a lesson.
type LessonTitle string

// NewLessonTitle validates raw and returns it as a LessonTitle.
func NewLessonTitle(raw string) (LessonTitle, error) {
	s := strings.TrimSpace(raw)
	if s == "" || len([]rune(s)) > MaxLessonTitleLen {
		return "", ErrInvalidLessonTitle
	}
	return LessonTitle(s), nil
}

// Subject is the subject taught in a lesson.
type Subject string

// NewSubject validates raw and returns it as a Subject.
func NewSubject(raw string) (Subject, error) {
	s := strings.TrimSpace(raw)
	if !namePattern.MatchString(s) {
		return "", ErrInvalidSubject
	}
	return Subject(s), nil
}

// LessonDate is a calendar date in YYYY-MM-DD form.
type LessonDate string

// NewLessonDate validates raw and returns it as a LessonDate.
func NewLessonDate(raw string) (LessonDate, error) {
	s := strings.TrimSpace(raw)
	if _, err := time.Parse(LessonDateLayout, s); err != nil {
		return "", ErrInvalidLessonDate.WithCause(err)
	}
	return LessonDate(s), nil
}

// LessonDateOf formats t as a LessonDate.
func LessonDateOf(t time.Time) LessonDate {
	return LessonDate(t.Format(LessonDateLayout))
}

// Time returns the date at midnight UTC.
func (d LessonDate) Time() time.Time {
	t, _ := time.Parse(LessonDateLayout, string(d))
	return t
}

// Duration is a lesson length in whole hours.
type Duration int

// NewDuration validates raw and returns it as a Duration.
func NewDuration(raw string) (Duration, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.Atoi(s)
	if err != nil || n < MinDurationHours || n > MaxDurationHours {
		return 0, ErrInvalidDuration
	}
	return Duration(n), nil
}

// Hours returns the duration as a time.Duration.
func (d Duration) Hours() time.Duration {
	return time.Duration(d) * time.Hour
}
