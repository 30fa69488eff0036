package source

import "fmt"

// Span represents a contiguous, half-open range of bytes within a source
// file: [Start, End). Every HIR, MIR, and LIR node carries a Span back to
// the syntax it was lowered from, purely for diagnostics.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// Empty reports whether the span has zero length.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Len returns the length of the span in bytes.
func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span that contains both s and other. Spans from
// different files cannot be covered; s is returned unchanged in that case.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// IsLeftThan reports whether this span starts before another span in the
// same file.
func (s Span) IsLeftThan(other Span) bool {
	return s.File == other.File && s.Start < other.Start
}
