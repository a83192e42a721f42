// Package parser turns one line of user input into an executable command.
package parser

import "slices"

// ArgMultimap maps prefixes to the raw values given for them, in input
// order. Only multi-valued prefixes may hold more than one value.
//
// An ArgMultimap lives for one parse call and is not safe for concurrent use.
type ArgMultimap struct {
	values map[string][]string
}

// NewArgMultimap returns an empty multimap.
func NewArgMultimap() *ArgMultimap {
	return &ArgMultimap{values: make(map[string][]string)}
}

// Put appends value under p. A second value for a single-valued prefix is
// rejected and leaves the map unchanged.
func (m *ArgMultimap) Put(p Prefix, value string) error {
	existing, seen := m.values[p.marker]
	if seen && !IsMultiValued(p) {
		return newDuplicatePrefixError(p)
	}
	m.values[p.marker] = append(existing, value)
	return nil
}

// Value returns the last value stored under p.
func (m *ArgMultimap) Value(p Prefix) (string, bool) {
	vals := m.values[p.marker]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// AllValues returns a copy of every value stored under p. The result is
// empty, never nil, for an unseen prefix.
func (m *ArgMultimap) AllValues(p Prefix) []string {
	vals := m.values[p.marker]
	if len(vals) == 0 {
		return []string{}
	}
	return slices.Clone(vals)
}

// Has reports whether at least one value is stored under p.
func (m *ArgMultimap) Has(p Prefix) bool {
	return len(m.values[p.marker]) > 0
}

// Preamble returns the text before the first marker, or "".
func (m *ArgMultimap) Preamble() string {
	v, _ := m.Value(PrefixPreamble)
	return v
}
