// Package parser turns one line of user input into an executable command.
package parser

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/logic/command"
)

func TestDispatcher_AddStudent(t *testing.T) {
	d := NewDispatcher(DefaultTable())

	cmd, err := d.Parse("add-student n/Amy p/12345678 e/amy@example.com a/Blk 1")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := command.AddStudent{Name: "Amy", Phone: "12345678", Email: "amy@example.com", Address: "Blk 1", Tags: []domain.Tag{}}
	got, ok := cmd.(command.AddStudent)
	if !ok {
		t.Fatalf("Parse() = %T, want command.AddStudent", cmd)
	}
	if got.Name != want.Name || got.Phone != want.Phone || got.Email != want.Email ||
		got.Address != want.Address || len(got.Tags) != 0 {
		t.Errorf("Parse() = %+v, want %+v", got, want)
	}
}

func TestDispatcher_AddStudentMissingPhone(t *testing.T) {
	d := NewDispatcher(DefaultTable())

	_, err := d.Parse("add-student n/Amy e/amy@example.com a/Blk 1")
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("error = %v, want ErrMissingField", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatal("error should be *ParseError")
	}
	if pe.Usage != command.Usage(command.WordAddStudent) {
		t.Errorf("Usage = %q, want add-student usage", pe.Usage)
	}
	if pe.Field != "p/" {
		t.Errorf("Field = %q, want %q", pe.Field, "p/")
	}
}

func TestDispatcher_TagSetCollapses(t *testing.T) {
	d := NewDispatcher(DefaultTable())

	cmd, err := d.Parse("add-student n/Amy p/123 e/a@b.co a/x t/b t/a t/b t/a")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	tags := cmd.(command.AddStudent).Tags
	if !slices.Equal(tags, []domain.Tag{"a", "b"}) {
		t.Errorf("Tags = %v, want [a b]", tags)
	}
}

func TestDispatcher_Errors(t *testing.T) {
	d := NewDispatcher(DefaultTable())

	tests := []struct {
		name string
		line string
		want error
	}{
		{"whitespace only", "   ", ErrFormat},
		{"empty", "", ErrFormat},
		{"unknown word", "bogus-command foo", ErrUnknownCommand},
		{"word is case sensitive", "ADD-STUDENT n/Amy", ErrUnknownCommand},
		{"duplicate name", "add-student n/Amy n/Bob p/1 e/a@b.co a/x", ErrDuplicatePrefix},
		{"preamble on add", "add-student junk n/Amy p/123 e/a@b.co a/x", ErrFormat},
		{"bad phone", "add-student n/Amy p/12ab e/a@b.co a/x", ErrInvalidValue},
		{"bad tag", "add-student n/Amy p/123 e/a@b.co a/x t/no spaces", ErrInvalidValue},
		{"delete without index", "delete-student", ErrFormat},
		{"delete zero", "delete-student 0", ErrFormat},
		{"delete negative", "delete-lesson -1", ErrFormat},
		{"view not a number", "view-student-info one", ErrFormat},
		{"edit without fields", "edit-student 1", ErrNotEdited},
		{"edit lesson without fields", "edit-lesson 2", ErrNotEdited},
		{"edit bad index", "edit-student x p/123", ErrFormat},
		{"find without keywords", "find-student   ", ErrFormat},
		{"add lesson missing hours", "add-lesson l/Trial s/Math d/2030-01-01", ErrMissingField},
		{"add lesson bad date", "add-lesson l/Trial s/Math d/01-01-2030 h/2", ErrInvalidValue},
		{"add lesson long", "add-lesson l/Trial s/Math d/2030-01-01 h/13", ErrInvalidValue},
		{"assign missing lesson", "assign s/1", ErrMissingField},
		{"assign bad index", "assign s/1 l/zero", ErrInvalidValue},
		{"unassign preamble", "unassign 3 s/1 l/1", ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := d.Parse(tt.line)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.line, err, tt.want)
			}
			if cmd != nil {
				t.Errorf("Parse(%q) returned a command alongside an error", tt.line)
			}
		})
	}
}

func TestDispatcher_InvalidValueKeepsDomainMessage(t *testing.T) {
	d := NewDispatcher(DefaultTable())

	_, err := d.Parse("add-student n/Amy p/12ab e/a@b.co a/x")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if pe.Message != domain.ErrInvalidPhone.Message {
		t.Errorf("Message = %q, want %q", pe.Message, domain.ErrInvalidPhone.Message)
	}
	if !errors.Is(err, domain.ErrInvalidPhone) {
		t.Error("cause should be domain.ErrInvalidPhone")
	}
}

func TestDispatcher_FormatErrorCarriesUsage(t *testing.T) {
	d := NewDispatcher(DefaultTable())

	_, err := d.Parse("  ")
	if !strings.Contains(err.Error(), command.Usage(command.WordHelp)) {
		t.Errorf("error %q should include help usage", err)
	}

	_, err = d.Parse("delete-student abc")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Field != "INDEX" {
		t.Fatalf("error = %v, want format error on INDEX", err)
	}
	if !errors.Is(err, domain.ErrInvalidIndex) {
		t.Error("cause should be domain.ErrInvalidIndex")
	}
}

func TestDispatcher_EditStudent(t *testing.T) {
	d := NewDispatcher(DefaultTable())

	cmd, err := d.Parse("edit-student 2 p/91234567")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	edit := cmd.(command.EditStudent)
	if edit.Index != 2 {
		t.Errorf("Index = %d, want 2", edit.Index)
	}
	f := edit.Fields
	if f.Phone == nil || *f.Phone != "91234567" {
		t.Errorf("Phone = %v, want 91234567", f.Phone)
	}
	if f.Name != nil || f.Email != nil || f.Address != nil || f.ReplaceTags {
		t.Errorf("only phone should be set, got %+v", f)
	}
}

func TestDispatcher_EditStudentClearTags(t *testing.T) {
	d := NewDispatcher(DefaultTable())

	cmd, err := d.Parse("edit-student 1 t/")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	f := cmd.(command.EditStudent).Fields
	if !f.ReplaceTags || len(f.Tags) != 0 {
		t.Errorf("Fields = %+v, want tag reset", f)
	}
}

func TestDispatcher_OtherCommands(t *testing.T) {
	d := NewDispatcher(DefaultTable())

	tests := []struct {
		line string
		want command.Command
	}{
		{"delete-student 3", command.DeleteStudent{Index: 3}},
		{"view-student-info 1", command.ViewStudentInfo{Index: 1}},
		{"delete-lesson 2", command.DeleteLesson{Index: 2}},
		{"view-lesson-info 4", command.ViewLessonInfo{Index: 4}},
		{"assign s/1 l/2", command.Assign{Student: 1, Lesson: 2}},
		{"unassign l/2 s/1", command.Unassign{Student: 1, Lesson: 2}},
		{"list-students extra words", command.ListStudents{}},
		{"list-lessons", command.ListLessons{}},
		{"clear", command.Clear{}},
		{"help me", command.Help{}},
		{"  exit  ", command.Exit{}},
		{"add-lesson l/Trial lesson s/Physics d/2030-01-15 h/2",
			command.AddLesson{Title: "Trial lesson", Subject: "Physics", Date: "2030-01-15", Duration: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := d.Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDispatcher_Find(t *testing.T) {
	d := NewDispatcher(DefaultTable())

	cmd, err := d.Parse("find-student alice   bob")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if kws := cmd.(command.FindStudent).Keywords; !slices.Equal(kws, []string{"alice", "bob"}) {
		t.Errorf("Keywords = %v", kws)
	}

	cmd, err = d.Parse("find-lesson physics")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if kws := cmd.(command.FindLesson).Keywords; !slices.Equal(kws, []string{"physics"}) {
		t.Errorf("Keywords = %v", kws)
	}
}

func TestDispatcher_EditLesson(t *testing.T) {
	d := NewDispatcher(DefaultTable())

	cmd, err := d.Parse("edit-lesson 1 h/3")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	f := cmd.(command.EditLesson).Fields
	if f.Duration == nil || *f.Duration != 3 || f.Title != nil || f.Subject != nil || f.Date != nil {
		t.Errorf("Fields = %+v, want only duration 3", f)
	}
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	if !slices.Equal(table.Words(), command.Words()) {
		t.Errorf("Words() = %v, want %v", table.Words(), command.Words())
	}

	policies := map[string]PreamblePolicy{
		command.WordAddStudent:     PreambleNone,
		command.WordEditStudent:    PreambleIndex,
		command.WordFindLesson:     PreambleKeywords,
		command.WordListStudents:   PreambleIgnored,
		command.WordAssign:         PreambleNone,
		command.WordDeleteLesson:   PreambleIndex,
		command.WordViewLessonInfo: PreambleIndex,
	}
	for word, want := range policies {
		p, ok := table.Lookup(word)
		if !ok {
			t.Fatalf("Lookup(%q) missing", word)
		}
		if got := p.Preamble(); got != want {
			t.Errorf("%s Preamble() = %v, want %v", word, got, want)
		}
	}
}

func TestDispatcher_CustomTable(t *testing.T) {
	table := NewTable(map[string]Parser{"ping": fixed(command.Help{})})
	d := NewDispatcher(table)

	if _, err := d.Parse("ping"); err != nil {
		t.Errorf("Parse(ping) error = %v", err)
	}
	if _, err := d.Parse("help"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Parse(help) error = %v, want ErrUnknownCommand", err)
	}
}

func TestKindOf(t *testing.T) {
	d := NewDispatcher(DefaultTable())
	_, err := d.Parse("edit-student 1")
	if got := KindOf(err); got != KindNotEdited {
		t.Errorf("KindOf() = %v, want %v", got, KindNotEdited)
	}
	if got := KindOf(errors.New("other")); got != 0 {
		t.Errorf("KindOf(other) = %v, want 0", got)
	}
}

func TestDispatcher_RejectsMultiLineInput(t *testing.T) {
	d := NewDispatcher(DefaultTable())

	_, err := d.Parse("add-student\nn/Amy Bee p/85355255 e/amy@example.com a/123, Jurong West Ave 6")
	if KindOf(err) != KindFormat {
		t.Fatalf("error = %v, want format error", err)
	}
	if !strings.Contains(err.Error(), command.Usage(command.WordHelp)) {
		t.Errorf("error %q should include help usage", err)
	}
}
