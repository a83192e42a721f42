// Package parser turns one line of user input into an executable command.
package parser

import (
	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/logic/command"
)

// AssignParser parses "s/STUDENT_INDEX l/LESSON_INDEX".
type AssignParser struct{}

// Preamble implements Parser.
func (AssignParser) Preamble() PreamblePolicy { return PreambleNone }

// Parse implements Parser.
func (AssignParser) Parse(args string) (command.Command, error) {
	s, l, err := parsePair(command.WordAssign, args)
	if err != nil {
		return nil, err
	}
	return command.Assign{Student: s, Lesson: l}, nil
}

// UnassignParser parses "s/STUDENT_INDEX l/LESSON_INDEX".
type UnassignParser struct{}

// Preamble implements Parser.
func (UnassignParser) Preamble() PreamblePolicy { return PreambleNone }

// Parse implements Parser.
func (UnassignParser) Parse(args string) (command.Command, error) {
	s, l, err := parsePair(command.WordUnassign, args)
	if err != nil {
		return nil, err
	}
	return command.Unassign{Student: s, Lesson: l}, nil
}

func parsePair(word, args string) (student, lesson domain.Index, err error) {
	m, err := Tokenize(args, assignPrefixes...)
	if err != nil {
		return 0, 0, err
	}
	if err := requirePrefixes(word, m, PrefixStudentIndex, PrefixLessonIndex); err != nil {
		return 0, 0, err
	}
	if err := requireEmptyPreamble(word, m); err != nil {
		return 0, 0, err
	}
	if student, err = required(m, PrefixStudentIndex, domain.ParseIndex); err != nil {
		return 0, 0, err
	}
	if lesson, err = required(m, PrefixLessonIndex, domain.ParseIndex); err != nil {
		return 0, 0, err
	}
	return student, lesson, nil
}
