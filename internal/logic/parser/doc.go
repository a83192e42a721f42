// Package parser turns one line of user input into an executable command.
//
// The pipeline is single-pass and synchronous:
//
//	line -> Dispatcher (command word + tail)
//	     -> Tokenize (tail -> ArgMultimap)
//	     -> Parser for the word (validate, build value objects)
//	     -> command.Command
//
// Every failure is returned as a *ParseError describing its Kind, so callers
// can use errors.Is with the sentinel errors declared in errors.go.
//
// Dispatcher, Table and the prefix catalogue are immutable once built and
// are safe for concurrent use.
package parser
