package token

import (
	"github.com/verislang/veris/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, StarStar, Slash, SlashSlash, Percent, Shl, Shr, Amp, Pipe, Caret, Tilde,
		Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign, AmpAssign,
		PipeAssign, CaretAssign, ShlAssign, ShrAssign,
		EqEq, BangEq, Lt, LtEq, Gt, GtEq,
		Colon, Semicolon, Comma, Dot, Arrow, LParen, RParen, LBrace, RBrace, At:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwDef, KwReturn, KwIf, KwElif, KwElse, KwWhile, KwPass, KwAssert,
		KwAnd, KwOr, KwNot, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsAssignOp reports whether the token is a plain or augmented assignment.
func (t Token) IsAssignOp() bool {
	switch t.Kind {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign,
		AmpAssign, PipeAssign, CaretAssign, ShlAssign, ShrAssign:
		return true
	default:
		return false
	}
}
