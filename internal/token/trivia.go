package token

import "github.com/verislang/veris/internal/source"

// TriviaKind classifies types of non-code elements.
type TriviaKind uint8

const (
	// TriviaSpace represents horizontal whitespace.
	TriviaSpace TriviaKind = iota
	// TriviaNewline represents a newline character.
	TriviaNewline
	// TriviaComment represents a '#' line comment.
	TriviaComment
)

// Trivia represents a non-code source element like comments or whitespace.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
