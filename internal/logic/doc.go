// Package logic runs input lines against the book.
//
// A Manager parses each line with the parser dispatcher, executes the
// resulting command on the in-memory book and saves the book when its
// content changed. Every line gets a ULID line ID that tags its log
// records, and its outcome is recorded in the metric registry.
package logic
