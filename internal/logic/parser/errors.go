// Package parser turns one line of user input into an executable command.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/logic/command"
)

// Kind classifies a parse failure.
type Kind int

const (
	// KindFormat is a line or positional argument with the wrong shape.
	KindFormat Kind = iota + 1
	// KindUnknownCommand is a command word missing from the table.
	KindUnknownCommand
	// KindDuplicatePrefix is a single-valued marker given twice.
	KindDuplicatePrefix
	// KindMissingField is a required marker that is absent.
	KindMissingField
	// KindNotEdited is an edit command without any field to change.
	KindNotEdited
	// KindInvalidValue is a marker value rejected by its value object.
	KindInvalidValue
)

// String returns the kind name used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindUnknownCommand:
		return "unknown_command"
	case KindDuplicatePrefix:
		return "duplicate_prefix"
	case KindMissingField:
		return "missing_field"
	case KindNotEdited:
		return "not_edited"
	case KindInvalidValue:
		return "invalid_value"
	default:
		return "unknown"
	}
}

// Messages shown to the user.
const (
	MsgInvalidFormat   = "Invalid command format!"
	MsgUnknownCommand  = "Unknown command"
	MsgDuplicatePrefix = "Duplicate prefix %s is not allowed"
	MsgMissingFields   = "Missing compulsory field(s): %s"
	MsgNotEdited       = "At least one field to edit must be provided."
)

// ParseError is returned for every rejected line.
type ParseError struct {
	Kind    Kind
	Message string
	// Field names the offending marker or positional argument, if any.
	Field string
	// Usage is the usage text of the command involved, if any.
	Usage string
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return e.Message + "\n" + e.Usage
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is matches another *ParseError by Kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is.
var (
	ErrFormat          = &ParseError{Kind: KindFormat, Message: MsgInvalidFormat}
	ErrUnknownCommand  = &ParseError{Kind: KindUnknownCommand, Message: MsgUnknownCommand}
	ErrDuplicatePrefix = &ParseError{Kind: KindDuplicatePrefix, Message: "Duplicate prefix"}
	ErrMissingField    = &ParseError{Kind: KindMissingField, Message: "Missing compulsory field(s)"}
	ErrNotEdited       = &ParseError{Kind: KindNotEdited, Message: MsgNotEdited}
	ErrInvalidValue    = &ParseError{Kind: KindInvalidValue, Message: "Invalid value"}
)

// KindOf returns the Kind of err, or 0 when err is not a *ParseError.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return 0
}

func newFormatError(word string, cause error) *ParseError {
	return &ParseError{
		Kind:    KindFormat,
		Message: MsgInvalidFormat,
		Usage:   command.Usage(word),
		Cause:   cause,
	}
}

func newDuplicatePrefixError(p Prefix) *ParseError {
	return &ParseError{
		Kind:    KindDuplicatePrefix,
		Message: fmt.Sprintf(MsgDuplicatePrefix, p.Marker()),
		Field:   p.Marker(),
	}
}

func newMissingFieldError(word string, missing []Prefix) *ParseError {
	markers := make([]string, len(missing))
	for i, p := range missing {
		markers[i] = p.Marker()
	}
	return &ParseError{
		Kind:    KindMissingField,
		Message: fmt.Sprintf(MsgMissingFields, strings.Join(markers, " ")),
		Field:   strings.Join(markers, " "),
		Usage:   command.Usage(word),
	}
}

func newNotEditedError(word string) *ParseError {
	return &ParseError{
		Kind:    KindNotEdited,
		Message: MsgNotEdited,
		Usage:   command.Usage(word),
	}
}

// newInvalidValueError keeps the value object's message unchanged.
func newInvalidValueError(p Prefix, err error) *ParseError {
	msg := err.Error()
	var de *domain.DomainError
	if errors.As(err, &de) {
		msg = de.Message
	}
	return &ParseError{
		Kind:    KindInvalidValue,
		Message: msg,
		Field:   p.Marker(),
		Cause:   err,
	}
}
