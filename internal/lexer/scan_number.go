package lexer

import (
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/token"
)

// scanNumber scans decimal integer and float literals: [0-9]+, [0-9]+.[0-9]*,
// and an optional [eE][+-]?[0-9]+ exponent on either form, plus the
// leading-dot form ".[0-9]+". No base prefixes or numeric suffixes — this
// subset has no need for them.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		kind = token.FloatLit
	} else {
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if lx.cursor.Peek() == '.' {
			lx.cursor.Bump() // '.'; a trailing dot with no digits is still a float, e.g. "1."
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			kind = token.FloatLit
		}
	}

	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
