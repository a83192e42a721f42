// Package parser turns one line of user input into an executable command.
package parser

import (
	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/logic/command"
)

// AddStudentParser parses "n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...".
type AddStudentParser struct{}

// Preamble implements Parser.
func (AddStudentParser) Preamble() PreamblePolicy { return PreambleNone }

// Parse implements Parser.
func (AddStudentParser) Parse(args string) (command.Command, error) {
	const word = command.WordAddStudent

	m, err := Tokenize(args, studentPrefixes...)
	if err != nil {
		return nil, err
	}
	if err := requirePrefixes(word, m, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, err
	}
	if err := requireEmptyPreamble(word, m); err != nil {
		return nil, err
	}

	name, err := required(m, PrefixName, domain.NewName)
	if err != nil {
		return nil, err
	}
	phone, err := required(m, PrefixPhone, domain.NewPhone)
	if err != nil {
		return nil, err
	}
	email, err := required(m, PrefixEmail, domain.NewEmail)
	if err != nil {
		return nil, err
	}
	address, err := required(m, PrefixAddress, domain.NewAddress)
	if err != nil {
		return nil, err
	}
	tags, err := tagSet(m)
	if err != nil {
		return nil, err
	}

	return command.AddStudent{Name: name, Phone: phone, Email: email, Address: address, Tags: tags}, nil
}

// EditStudentParser parses "INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...".
// A single empty t/ clears the tags.
type EditStudentParser struct{}

// Preamble implements Parser.
func (EditStudentParser) Preamble() PreamblePolicy { return PreambleIndex }

// Parse implements Parser.
func (EditStudentParser) Parse(args string) (command.Command, error) {
	const word = command.WordEditStudent

	m, err := Tokenize(args, studentPrefixes...)
	if err != nil {
		return nil, err
	}
	idx, err := indexPreamble(word, m)
	if err != nil {
		return nil, err
	}

	var d command.EditStudentDescriptor
	if d.Name, err = optional(m, PrefixName, domain.NewName); err != nil {
		return nil, err
	}
	if d.Phone, err = optional(m, PrefixPhone, domain.NewPhone); err != nil {
		return nil, err
	}
	if d.Email, err = optional(m, PrefixEmail, domain.NewEmail); err != nil {
		return nil, err
	}
	if d.Address, err = optional(m, PrefixAddress, domain.NewAddress); err != nil {
		return nil, err
	}
	if m.Has(PrefixTag) {
		d.ReplaceTags = true
		if raws := m.AllValues(PrefixTag); !(len(raws) == 1 && raws[0] == "") {
			if d.Tags, err = tagSet(m); err != nil {
				return nil, err
			}
		}
	}

	if !d.IsAnyFieldEdited() {
		return nil, newNotEditedError(word)
	}
	return command.EditStudent{Index: idx, Fields: d}, nil
}

// DeleteStudentParser parses "INDEX".
type DeleteStudentParser struct{}

// Preamble implements Parser.
func (DeleteStudentParser) Preamble() PreamblePolicy { return PreambleIndex }

// Parse implements Parser.
func (DeleteStudentParser) Parse(args string) (command.Command, error) {
	idx, err := indexOnly(command.WordDeleteStudent, args)
	if err != nil {
		return nil, err
	}
	return command.DeleteStudent{Index: idx}, nil
}

// ViewStudentInfoParser parses "INDEX".
type ViewStudentInfoParser struct{}

// Preamble implements Parser.
func (ViewStudentInfoParser) Preamble() PreamblePolicy { return PreambleIndex }

// Parse implements Parser.
func (ViewStudentInfoParser) Parse(args string) (command.Command, error) {
	idx, err := indexOnly(command.WordViewStudentInfo, args)
	if err != nil {
		return nil, err
	}
	return command.ViewStudentInfo{Index: idx}, nil
}

// FindStudentParser parses "KEYWORD [MORE_KEYWORDS]...".
type FindStudentParser struct{}

// Preamble implements Parser.
func (FindStudentParser) Preamble() PreamblePolicy { return PreambleKeywords }

// Parse implements Parser.
func (FindStudentParser) Parse(args string) (command.Command, error) {
	kws, err := keywords(command.WordFindStudent, args)
	if err != nil {
		return nil, err
	}
	return command.FindStudent{Keywords: kws}, nil
}
