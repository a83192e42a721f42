// Package command provides the executable commands of TeachWhat.
//
// Each command kind is a small immutable value built by the parser
// package and applied to a model.Model:
//
//   - student.go: add, delete, edit, find, list and view students
//   - lesson.go: the same operations for lessons
//   - assign.go: assign and unassign students to lessons
//   - general.go: clear, help and exit
//
// Command words and usage strings live in usage.go so that the parser
// can quote them in error messages.
package command
