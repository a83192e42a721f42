// Package main provides the entry point for teachwhat.
//
// teachwhat keeps a private tutor's students and lessons:
//
//   - Students with contact details and tags
//   - Lessons with a subject, date, duration and assigned students
//   - Search, filtering and sorting of both books
//
// Usage:
//
//	teachwhat                          # interactive shell
//	teachwhat exec list-students       # one command, then exit
//	teachwhat -o json exec list-lessons
//	teachwhat backup create book.json
//
// Every change is saved to the data file before the next prompt.
package main
