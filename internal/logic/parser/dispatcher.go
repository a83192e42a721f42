// Package parser turns one line of user input into an executable command.
package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/yndnr/teachwhat-go/internal/logic/command"
)

// PreamblePolicy says how a parser treats text before the first marker.
type PreamblePolicy int

const (
	// PreambleNone requires the preamble to be empty.
	PreambleNone PreamblePolicy = iota
	// PreambleIndex reads the preamble as a one-based list index.
	PreambleIndex
	// PreambleKeywords reads the preamble as search keywords.
	PreambleKeywords
	// PreambleIgnored discards the preamble.
	PreambleIgnored
)

// String returns the policy name.
func (p PreamblePolicy) String() string {
	switch p {
	case PreambleNone:
		return "none"
	case PreambleIndex:
		return "index"
	case PreambleKeywords:
		return "keywords"
	case PreambleIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Parser builds one kind of command from the argument tail of a line.
type Parser interface {
	Parse(args string) (command.Command, error)
	// Preamble declares how the parser reads text before the first marker.
	Preamble() PreamblePolicy
}

// ParserFunc adapts a function to a Parser.
type ParserFunc struct {
	Fn     func(args string) (command.Command, error)
	Policy PreamblePolicy
}

// Parse implements Parser.
func (f ParserFunc) Parse(args string) (command.Command, error) { return f.Fn(args) }

// Preamble implements Parser.
func (f ParserFunc) Preamble() PreamblePolicy { return f.Policy }

// Table maps command words to parsers. It is read-only once built.
type Table struct {
	parsers map[string]Parser
	words   []string
}

// NewTable copies entries into a new table.
func NewTable(entries map[string]Parser) *Table {
	t := &Table{parsers: make(map[string]Parser, len(entries))}
	for w, p := range entries {
		t.parsers[w] = p
		t.words = append(t.words, w)
	}
	sort.Strings(t.words)
	return t
}

// Lookup returns the parser registered for word.
func (t *Table) Lookup(word string) (Parser, bool) {
	p, ok := t.parsers[word]
	return p, ok
}

// Words returns the registered command words in sorted order.
func (t *Table) Words() []string {
	out := make([]string, len(t.words))
	copy(out, t.words)
	return out
}

// DefaultTable returns the table of every TeachWhat command.
func DefaultTable() *Table {
	return NewTable(map[string]Parser{
		command.WordAddStudent:      AddStudentParser{},
		command.WordDeleteStudent:   DeleteStudentParser{},
		command.WordEditStudent:     EditStudentParser{},
		command.WordFindStudent:     FindStudentParser{},
		command.WordListStudents:    fixed(command.ListStudents{}),
		command.WordViewStudentInfo: ViewStudentInfoParser{},
		command.WordAddLesson:       AddLessonParser{},
		command.WordDeleteLesson:    DeleteLessonParser{},
		command.WordEditLesson:      EditLessonParser{},
		command.WordFindLesson:      FindLessonParser{},
		command.WordListLessons:     fixed(command.ListLessons{}),
		command.WordViewLessonInfo:  ViewLessonInfoParser{},
		command.WordAssign:          AssignParser{},
		command.WordUnassign:        UnassignParser{},
		command.WordClear:           fixed(command.Clear{}),
		command.WordHelp:            fixed(command.Help{}),
		command.WordExit:            fixed(command.Exit{}),
	})
}

var basicCommandFormat = regexp.MustCompile(`^(?P<commandWord>\S+)(?P<arguments>.*)$`)

// Dispatcher selects the parser for a line by its command word.
type Dispatcher struct {
	table *Table
}

// NewDispatcher returns a dispatcher over table.
func NewDispatcher(table *Table) *Dispatcher {
	return &Dispatcher{table: table}
}

// Table returns the dispatcher's command table.
func (d *Dispatcher) Table() *Table {
	return d.table
}

// Parse turns one input line into a command.
func (d *Dispatcher) Parse(line string) (command.Command, error) {
	word, args, err := SplitCommand(line)
	if err != nil {
		return nil, err
	}
	p, ok := d.table.Lookup(word)
	if !ok {
		return nil, &ParseError{Kind: KindUnknownCommand, Message: MsgUnknownCommand, Field: word}
	}
	return p.Parse(args)
}

// SplitCommand returns the command word and argument tail of line.
func SplitCommand(line string) (word, args string, err error) {
	m := basicCommandFormat.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", "", newFormatError(command.WordHelp, nil)
	}
	return m[1], m[2], nil
}
