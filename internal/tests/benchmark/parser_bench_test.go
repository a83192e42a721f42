package benchmark

import (
	"testing"

	"github.com/yndnr/teachwhat-go/internal/logic/parser"
)

var parseLines = map[string]string{
	"add_student": "add-student n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 t/friends t/owesMoney",
	"edit_lesson": "edit-lesson 1 l/Trial lesson s/Biology d/2030-02-01 h/3",
	"find":        "find-student alice bob charlie",
	"assign":      "assign s/1 s/2 s/3 l/2",
	"unknown":     "launch-rocket now",
}

// BenchmarkParse benchmarks parsing of representative input lines.
func BenchmarkParse(b *testing.B) {
	d := parser.NewDispatcher(parser.DefaultTable())

	for name, line := range parseLines {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				d.Parse(line)
			}
		})
	}
}

// BenchmarkSplitCommand benchmarks splitting a line into word and arguments.
func BenchmarkSplitCommand(b *testing.B) {
	line := parseLines["add_student"]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := parser.SplitCommand(line); err != nil {
			b.Fatalf("SplitCommand failed: %v", err)
		}
	}
}
