// Package parser turns one line of user input into an executable command.
package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// marked is one located marker occurrence.
type marked struct {
	pos    int
	prefix Prefix
}

// Tokenize splits args into a preamble and the values of the given
// prefixes. A marker counts only at the start of args or right after
// whitespace. When several markers match at one position the one listed
// first wins. Values are trimmed; the preamble is always stored, even when
// empty.
func Tokenize(args string, prefixes ...Prefix) (*ArgMultimap, error) {
	found := locate(args, prefixes)

	m := NewArgMultimap()
	end := len(args)
	if len(found) > 0 {
		end = found[0].pos
	}
	if err := m.Put(PrefixPreamble, strings.TrimSpace(args[:end])); err != nil {
		return nil, err
	}

	for i, f := range found {
		start := f.pos + len(f.prefix.marker)
		stop := len(args)
		if i+1 < len(found) {
			stop = found[i+1].pos
		}
		if err := m.Put(f.prefix, strings.TrimSpace(args[start:stop])); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// locate returns marker occurrences ordered by position. Each position is
// claimed by at most one prefix.
func locate(args string, prefixes []Prefix) []marked {
	claimed := make(map[int]bool)
	var found []marked
	for _, p := range prefixes {
		if p.IsPreamble() {
			continue
		}
		from := 0
		for {
			i := strings.Index(args[from:], p.marker)
			if i < 0 {
				break
			}
			pos := from + i
			if atBoundary(args, pos) && !claimed[pos] {
				claimed[pos] = true
				found = append(found, marked{pos: pos, prefix: p})
			}
			from = pos + 1
		}
	}
	sort.Slice(found, func(a, b int) bool { return found[a].pos < found[b].pos })
	return found
}

func atBoundary(s string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:pos])
	return unicode.IsSpace(r)
}
