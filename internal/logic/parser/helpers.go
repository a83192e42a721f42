// Package parser turns one line of user input into an executable command.
package parser

import (
	"strings"

	"github.com/yndnr/teachwhat-go/internal/core/domain"
	"github.com/yndnr/teachwhat-go/internal/logic/command"
)

// requirePrefixes fails with a missing-field error naming every absent prefix.
func requirePrefixes(word string, m *ArgMultimap, prefixes ...Prefix) error {
	var missing []Prefix
	for _, p := range prefixes {
		if !m.Has(p) {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return newMissingFieldError(word, missing)
	}
	return nil
}

func requireEmptyPreamble(word string, m *ArgMultimap) error {
	if m.Preamble() != "" {
		return newFormatError(word, nil)
	}
	return nil
}

// indexPreamble reads the preamble as a one-based index. A bad index is a
// format error with the domain error as cause.
func indexPreamble(word string, m *ArgMultimap) (domain.Index, error) {
	idx, err := domain.ParseIndex(m.Preamble())
	if err != nil {
		pe := newFormatError(word, err)
		pe.Field = "INDEX"
		return 0, pe
	}
	return idx, nil
}

// required builds the value object for a prefix already known to be present.
func required[T any](m *ArgMultimap, p Prefix, build func(string) (T, error)) (T, error) {
	raw, _ := m.Value(p)
	v, err := build(raw)
	if err != nil {
		var zero T
		return zero, newInvalidValueError(p, err)
	}
	return v, nil
}

// optional builds the value object for p when present; nil otherwise.
func optional[T any](m *ArgMultimap, p Prefix, build func(string) (T, error)) (*T, error) {
	if !m.Has(p) {
		return nil, nil
	}
	v, err := required(m, p, build)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func tagSet(m *ArgMultimap) ([]domain.Tag, error) {
	tags, err := domain.NewTagSet(m.AllValues(PrefixTag))
	if err != nil {
		return nil, newInvalidValueError(PrefixTag, err)
	}
	return tags, nil
}

// indexOnly parses commands whose only argument is a list index.
func indexOnly(word, args string) (domain.Index, error) {
	m, err := Tokenize(args)
	if err != nil {
		return 0, err
	}
	return indexPreamble(word, m)
}

// keywords splits the tail into search keywords; at least one is required.
func keywords(word, args string) ([]string, error) {
	m, err := Tokenize(args)
	if err != nil {
		return nil, err
	}
	kws := strings.Fields(m.Preamble())
	if len(kws) == 0 {
		return nil, newFormatError(word, nil)
	}
	return kws, nil
}

// fixed returns a parser that ignores its arguments.
func fixed(c command.Command) Parser {
	return ParserFunc{
		Fn:     func(string) (command.Command, error) { return c, nil },
		Policy: PreambleIgnored,
	}
}
