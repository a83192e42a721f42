// Package repl provides the interactive TeachWhat shell.
package repl

import (
	"slices"
	"strings"

	"github.com/xrash/smetrics"
)

// maxSuggestDistance is the largest edit distance still offered as a hint.
const maxSuggestDistance = 2

// Completer provides command word completion for the REPL.
type Completer struct {
	words []string
}

// NewCompleter creates a Completer over the given command words.
func NewCompleter(words []string) *Completer {
	w := slices.Clone(words)
	slices.Sort(w)
	return &Completer{words: w}
}

// Complete returns the command words starting with prefix.
func (c *Completer) Complete(prefix string) []string {
	var suggestions []string
	for _, w := range c.words {
		if strings.HasPrefix(w, prefix) {
			suggestions = append(suggestions, w)
		}
	}
	return suggestions
}

// Suggest returns the command word the user most likely meant, or "".
// A unique completion wins; otherwise the closest word within
// maxSuggestDistance edits, ties broken alphabetically.
func (c *Completer) Suggest(word string) string {
	if word == "" {
		return ""
	}
	if matches := c.Complete(word); len(matches) == 1 {
		return matches[0]
	}

	best, bestDist := "", maxSuggestDistance+1
	for _, w := range c.words {
		if d := smetrics.WagnerFischer(word, w, 1, 1, 1); d < bestDist {
			best, bestDist = w, d
		}
	}
	return best
}
