package token_test

import (
	"testing"

	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/token"
)

func TestCommentTriviaShape(t *testing.T) {
	tv := token.Trivia{
		Kind: token.TriviaComment,
		Span: source.Span{Start: 0, End: 10},
		Text: "# a note",
	}
	tk := token.Token{
		Kind:    token.KwDef,
		Span:    source.Span{Start: 11, End: 14},
		Text:    "def",
		Leading: []token.Trivia{tv},
	}
	if len(tk.Leading) != 1 || tk.Leading[0].Kind != token.TriviaComment {
		t.Fatalf("comment trivia must be present and structured")
	}
}
