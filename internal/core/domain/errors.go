// Package domain defines the core domain models for TeachWhat.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business domain error with a structured error code.
// Codes follow the format TW-<FAMILY>-<NNNN>.
type DomainError struct {
	Code    string // Error code (e.g., "TW-STU-4001")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Student Errors (STU)
// ============================================================================

var (
	// ErrInvalidName indicates a malformed student name.
	ErrInvalidName = NewDomainError("TW-STU-4001",
		"Names should only contain alphanumeric characters and spaces, and it should not be blank")

	// ErrInvalidPhone indicates a malformed phone number.
	ErrInvalidPhone = NewDomainError("TW-STU-4002",
		"Phone numbers should only contain numbers, and it should be at least 3 digits long")

	// ErrInvalidEmail indicates a malformed email address.
	ErrInvalidEmail = NewDomainError("TW-STU-4003",
		"Emails should be of the format local-part@domain. The local-part may contain alphanumerics "+
			"and the special characters +_.- but may not start or end with them. The domain is made of "+
			"labels separated by periods; each label starts and ends with an alphanumeric character, "+
			"may contain hyphens, and the last label is at least 2 characters long")

	// ErrInvalidAddress indicates a blank address.
	ErrInvalidAddress = NewDomainError("TW-STU-4004",
		"Addresses can take any values, and it should not be blank")

	// ErrInvalidTag indicates a tag name that is not alphanumeric.
	ErrInvalidTag = NewDomainError("TW-STU-4005", "Tags names should be alphanumeric")

	// ErrStudentNotFound indicates the referenced student does not exist.
	ErrStudentNotFound = NewDomainError("TW-STU-4040", "student not found")

	// ErrDuplicateStudent indicates a student with the same name already exists.
	ErrDuplicateStudent = NewDomainError("TW-STU-4090", "This student already exists in the student book")
)

// ============================================================================
// Lesson Errors (LSN)
// ============================================================================

var (
	// ErrInvalidLessonTitle indicates a blank or over-long lesson title.
	ErrInvalidLessonTitle = NewDomainError("TW-LSN-4001",
		"Lesson titles can take any values, should not be blank and should be at most 100 characters")

	// ErrInvalidSubject indicates a malformed subject.
	ErrInvalidSubject = NewDomainError("TW-LSN-4002",
		"Subjects should only contain alphanumeric characters and spaces, and it should not be blank")

	// ErrInvalidLessonDate indicates a date that is not in YYYY-MM-DD form.
	ErrInvalidLessonDate = NewDomainError("TW-LSN-4003",
		"Dates should be valid calendar dates in the format YYYY-MM-DD")

	// ErrInvalidDuration indicates an out-of-range lesson duration.
	ErrInvalidDuration = NewDomainError("TW-LSN-4004",
		"Durations should be a whole number of hours from 1 to 12")

	// ErrLessonNotFound indicates the referenced lesson does not exist.
	ErrLessonNotFound = NewDomainError("TW-LSN-4040", "lesson not found")

	// ErrDuplicateLesson indicates a lesson with the same title and date already exists.
	ErrDuplicateLesson = NewDomainError("TW-LSN-4090", "This lesson already exists in the lesson book")

	// ErrAlreadyAssigned indicates the student already attends the lesson.
	ErrAlreadyAssigned = NewDomainError("TW-LSN-4091", "This student is already assigned to this lesson")

	// ErrNotAssigned indicates the student does not attend the lesson.
	ErrNotAssigned = NewDomainError("TW-LSN-4092", "This student is not assigned to this lesson")
)

// ============================================================================
// Index Errors (IDX)
// ============================================================================

var (
	// ErrInvalidIndex indicates an index that is not a positive integer.
	ErrInvalidIndex = NewDomainError("TW-IDX-4001", "Index is not a non-zero unsigned integer.")

	// ErrStudentIndexOutOfRange indicates an index past the displayed student list.
	ErrStudentIndexOutOfRange = NewDomainError("TW-IDX-4041", "The student index provided is invalid")

	// ErrLessonIndexOutOfRange indicates an index past the displayed lesson list.
	ErrLessonIndexOutOfRange = NewDomainError("TW-IDX-4042", "The lesson index provided is invalid")
)

// ============================================================================
// System Errors (SYS)
// ============================================================================

var (
	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = NewDomainError("TW-SYS-5000", "internal error")

	// ErrStorage indicates the data file could not be read or written.
	ErrStorage = NewDomainError("TW-SYS-5001", "storage error")

	// ErrDataConversion indicates stored data failed validation on load.
	ErrDataConversion = NewDomainError("TW-SYS-5002", "stored data is invalid")
)
