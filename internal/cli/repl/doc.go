// Package repl provides the interactive TeachWhat shell.
//
//   - repl.go: prompt loop, result and error rendering
//   - completer.go: command word completion and "did you mean" hints
//   - history.go: input history persisted between sessions
package repl
