package repl

import (
	"reflect"
	"testing"

	"github.com/yndnr/teachwhat-go/internal/logic/command"
)

func TestCompleter_Complete(t *testing.T) {
	c := NewCompleter(command.Words())

	tests := []struct {
		prefix string
		want   []string
	}{
		{"add", []string{"add-lesson", "add-student"}},
		{"list-s", []string{"list-students"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			if got := c.Complete(tt.prefix); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Complete(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
	if n := len(c.Complete("")); n != len(command.Words()) {
		t.Errorf("Complete(\"\") returned %d words", n)
	}
}

func TestCompleter_Suggest(t *testing.T) {
	c := NewCompleter(command.Words())

	tests := []struct {
		word string
		want string
	}{
		{"lst-students", "list-students"},
		{"assgn", "assign"},
		{"view-s", "view-student-info"},
		{"ext", "exit"},
		{"xyz", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := c.Suggest(tt.word); got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestNewCompleter_CopiesWords(t *testing.T) {
	words := []string{"b", "a"}
	c := NewCompleter(words)
	words[0] = "z"
	if got := c.Complete(""); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Complete(\"\") = %v", got)
	}
}
