// Package parser turns one line of user input into an executable command.
package parser

import (
	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/logic/command"
)

// AddLessonParser parses "l/TITLE s/SUBJECT d/DATE h/HOURS".
type AddLessonParser struct{}

// Preamble implements Parser.
func (AddLessonParser) Preamble() PreamblePolicy { return PreambleNone }

// Parse implements Parser.
func (AddLessonParser) Parse(args string) (command.Command, error) {
	const word = command.WordAddLesson

	m, err := Tokenize(args, lessonPrefixes...)
	if err != nil {
		return nil, err
	}
	if err := requirePrefixes(word, m, PrefixTitle, PrefixSubject, PrefixDate, PrefixDuration); err != nil {
		return nil, err
	}
	if err := requireEmptyPreamble(word, m); err != nil {
		return nil, err
	}

	title, err := required(m, PrefixTitle, domain.NewLessonTitle)
	if err != nil {
		return nil, err
	}
	subject, err := required(m, PrefixSubject, domain.NewSubject)
	if err != nil {
		return nil, err
	}
	date, err := required(m, PrefixDate, domain.NewLessonDate)
	if err != nil {
		return nil, err
	}
	hours, err := required(m, PrefixDuration, domain.NewDuration)
	if err != nil {
		return nil, err
	}

	return command.AddLesson{Title: title, Subject: subject, Date: date, Duration: hours}, nil
}

// EditLessonParser parses "INDEX [l/TITLE] [s/SUBJECT] [d/DATE] [h/HOURS]".
type EditLessonParser struct{}

// Preamble implements Parser.
func (EditLessonParser) Preamble() PreamblePolicy { return PreambleIndex }

// Parse implements Parser.
func (EditLessonParser) Parse(args string) (command.Command, error) {
	const word = command.WordEditLesson

	m, err := Tokenize(args, lessonPrefixes...)
	if err != nil {
		return nil, err
	}
	idx, err := indexPreamble(word, m)
	if err != nil {
		return nil, err
	}

	var d command.EditLessonDescriptor
	if d.Title, err = optional(m, PrefixTitle, domain.NewLessonTitle); err != nil {
		return nil, err
	}
	if d.Subject, err = optional(m, PrefixSubject, domain.NewSubject); err != nil {
		return nil, err
	}
	if d.Date, err = optional(m, PrefixDate, domain.NewLessonDate); err != nil {
		return nil, err
	}
	if d.Duration, err = optional(m, PrefixDuration, domain.NewDuration); err != nil {
		return nil, err
	}

	if !d.IsAnyFieldEdited() {
		return nil, newNotEditedError(word)
	}
	return command.EditLesson{Index: idx, Fields: d}, nil
}

// DeleteLessonParser parses "INDEX".
type DeleteLessonParser struct{}

// Preamble implements Parser.
func (DeleteLessonParser) Preamble() PreamblePolicy { return PreambleIndex }

// Parse implements Parser.
func (DeleteLessonParser) Parse(args string) (command.Command, error) {
	idx, err := indexOnly(command.WordDeleteLesson, args)
	if err != nil {
		return nil, err
	}
	return command.DeleteLesson{Index: idx}, nil
}

// ViewLessonInfoParser parses "INDEX".
type ViewLessonInfoParser struct{}

// Preamble implements Parser.
func (ViewLessonInfoParser) Preamble() PreamblePolicy { return PreambleIndex }

// Parse implements Parser.
func (ViewLessonInfoParser) Parse(args string) (command.Command, error) {
	idx, err := indexOnly(command.WordViewLessonInfo, args)
	if err != nil {
		return nil, err
	}
	return command.ViewLessonInfo{Index: idx}, nil
}

// FindLessonParser parses "KEYWORD [MORE_KEYWORDS]...".
type FindLessonParser struct{}

// Preamble implements Parser.
func (FindLessonParser) Preamble() PreamblePolicy { return PreambleKeywords }

// Parse implements Parser.
func (FindLessonParser) Parse(args string) (command.Command, error) {
	kws, err := keywords(command.WordFindLesson, args)
	if err != nil {
		return nil, err
	}
	return command.FindLesson{Keywords: kws}, nil
}
