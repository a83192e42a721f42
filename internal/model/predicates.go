// Package model holds the in-memory student and lesson books.
package model

import (
	"strings"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
)

// NameContainsKeywords matches students whose name contains any keyword
// as a whole word, ignoring case.
func NameContainsKeywords(keywords []string) StudentPredicate {
	return func(s *domain.Student) bool {
		return containsAnyWord(string(s.Name), keywords)
	}
}

// LessonContainsKeywords matches lessons whose title or subject contains
// any keyword as a whole word, ignoring case.
func LessonContainsKeywords(keywords []string) LessonPredicate {
	return func(l *domain.Lesson) bool {
		return containsAnyWord(string(l.Title), keywords) ||
			containsAnyWord(string(l.Subject), keywords)
	}
}

func containsAnyWord(sentence string, keywords []string) bool {
	words := strings.Fields(sentence)
	for _, kw := range keywords {
		for _, w := range words {
			if strings.EqualFold(w, kw) {
				return true
			}
		}
	}
	return false
}
