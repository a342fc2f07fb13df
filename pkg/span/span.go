// Package span provides the byte-range primitive that every AST node is
// built on. A Span pairs a half-open [Start, Stop) range with the exact
// substring of the source it denotes.
package span

import "fmt"

// Span is a half-open byte range [Start, Stop) into a source string,
// together with the literal substring it covers.
// Invariant: Stop-Start == len(Text).
type Span struct {
	Start int
	Stop  int
	Text  string
}

// New slices source at [start, stop) and returns the resulting Span.
// Offsets outside the source are clamped.
func New(source string, start, stop int) Span {
	if start < 0 {
		start = 0
	}
	if stop > len(source) {
		stop = len(source)
	}
	if stop < start {
		stop = start
	}
	return Span{Start: start, Stop: stop, Text: source[start:stop]}
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.Stop - s.Start
}

// IsEmpty returns true for a zero-length span.
func (s Span) IsEmpty() bool {
	return s.Stop <= s.Start
}

// Contains reports whether the byte offset falls within [Start, Stop).
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.Stop
}

// String formats the span for debug output.
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d) %q", s.Start, s.Stop, s.Text)
}
