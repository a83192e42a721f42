// Package parser turns one line of user input into an executable command.
package parser

// Prefix is an argument marker such as "n/". Two prefixes are equal when
// their markers are equal; the label is only used in messages.
type Prefix struct {
	marker string
	label  string
}

// NewPrefix returns a prefix with the given marker and label.
func NewPrefix(marker, label string) Prefix {
	return Prefix{marker: marker, label: label}
}

// Marker returns the literal marker text.
func (p Prefix) Marker() string { return p.marker }

// Label returns the human readable field name.
func (p Prefix) Label() string { return p.label }

// Equal reports whether p and o share the same marker.
func (p Prefix) Equal(o Prefix) bool { return p.marker == o.marker }

// IsPreamble reports whether p is the empty preamble prefix.
func (p Prefix) IsPreamble() bool { return p.marker == "" }

// String implements fmt.Stringer.
func (p Prefix) String() string { return p.marker }

// Known prefixes.
var (
	PrefixPreamble = NewPrefix("", "PREAMBLE")

	PrefixName    = NewPrefix("n/", "NAME")
	PrefixPhone   = NewPrefix("p/", "PHONE")
	PrefixEmail   = NewPrefix("e/", "EMAIL")
	PrefixAddress = NewPrefix("a/", "ADDRESS")
	PrefixTag     = NewPrefix("t/", "TAG")

	PrefixTitle    = NewPrefix("l/", "TITLE")
	PrefixSubject  = NewPrefix("s/", "SUBJECT")
	PrefixDate     = NewPrefix("d/", "DATE")
	PrefixDuration = NewPrefix("h/", "DURATION")

	// Assign and unassign reuse s/ and l/ for list indexes.
	PrefixStudentIndex = NewPrefix("s/", "STUDENT_INDEX")
	PrefixLessonIndex  = NewPrefix("l/", "LESSON_INDEX")
)

// Prefix lists per command family. Order decides ties in Tokenize.
var (
	studentPrefixes = []Prefix{PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag}
	lessonPrefixes  = []Prefix{PrefixTitle, PrefixSubject, PrefixDate, PrefixDuration}
	assignPrefixes  = []Prefix{PrefixStudentIndex, PrefixLessonIndex}
)

// multiValued holds the markers that may appear more than once in a line.
var multiValued = map[string]bool{
	PrefixTag.marker: true,
}

// IsMultiValued reports whether p accepts several values in one line.
func IsMultiValued(p Prefix) bool {
	return multiValued[p.marker]
}
