// Package domain defines the core domain models for TeachWhat.
//
// It contains the validated value objects built from user input
// (names, phones, lesson dates and so on), the Student and Lesson
// entities, the Snapshot persistence shape and the coded DomainError.
//
// Domain types are pure values without IO dependencies. Every value
// object is built through a constructor that validates the raw string
// and returns a DomainError carrying the constraint message on failure.
package domain
