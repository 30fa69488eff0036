package lexer

import (
	"reflect"
	"testing"

	"github.com/verislang/veris/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	file := createFile(src)
	lx := New(file, Options{})
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func assertKinds(t *testing.T, src string, want ...token.Kind) {
	t.Helper()
	got := kinds(lexAll(t, src))
	if len(got) != len(want) {
		t.Fatalf("lexAll(%q) produced %d tokens, want %d: %v", src, len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("lexAll(%q)[%d] = %v, want %v", src, i, got[i], want[i])
		}
	}
}

func TestLexer_Keywords(t *testing.T) {
	assertKinds(t, "def if elif else while pass assert and or not True False",
		token.KwDef, token.KwIf, token.KwElif, token.KwElse, token.KwWhile, token.KwPass,
		token.KwAssert, token.KwAnd, token.KwOr, token.KwNot, token.KwTrue, token.KwFalse,
		token.EOF)
}

func TestLexer_IdentVsKeywordCaseSensitivity(t *testing.T) {
	assertKinds(t, "true false x", token.Ident, token.Ident, token.Ident, token.EOF)
}

func TestLexer_AnnotationNamesAreIdentifiers(t *testing.T) {
	assertKinds(t, "assumes ensures loop_invariant param __return__",
		token.Ident, token.Ident, token.Ident, token.Ident, token.Ident, token.EOF)
}

func TestLexer_Numbers(t *testing.T) {
	toks := lexAll(t, "42 3.14 1. .5 1e10 1e-3")
	want := []token.Kind{
		token.IntLit, token.FloatLit, token.FloatLit, token.FloatLit,
		token.FloatLit, token.FloatLit, token.EOF,
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLexer_Operators(t *testing.T) {
	assertKinds(t, "+ - * ** / // % << >> | ^ & ~",
		token.Plus, token.Minus, token.Star, token.StarStar, token.Slash, token.SlashSlash,
		token.Percent, token.Shl, token.Shr, token.Pipe, token.Caret, token.Amp, token.Tilde, token.EOF)
}

func TestLexer_Comparisons(t *testing.T) {
	assertKinds(t, "== != < <= > >=",
		token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq, token.EOF)
}

func TestLexer_AugmentedAssign(t *testing.T) {
	assertKinds(t, "+= -= *= /= %= &= |= ^= <<= >>=",
		token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign,
		token.PercentAssign, token.AmpAssign, token.PipeAssign, token.CaretAssign,
		token.ShlAssign, token.ShrAssign, token.EOF)
}

func TestLexer_Punctuation(t *testing.T) {
	assertKinds(t, "( ) { } : ; , . -> @",
		token.LParen, token.RParen, token.LBrace, token.RBrace, token.Colon,
		token.Semicolon, token.Comma, token.Dot, token.Arrow, token.At, token.EOF)
}

func TestLexer_DecoratorCall(t *testing.T) {
	assertKinds(t, "@assumes(x > 0)",
		token.At, token.Ident, token.LParen, token.Ident, token.Gt, token.IntLit, token.RParen, token.EOF)
}

func TestLexer_CommentIsTrivia(t *testing.T) {
	toks := lexAll(t, "x # a note\ny")
	if len(toks) != 3 { // Ident, Ident, EOF
		t.Fatalf("got %d tokens, want 3: %v", len(toks), kinds(toks))
	}
	if len(toks[1].Leading) == 0 {
		t.Fatal("expected the comment to be attached as leading trivia on 'y'")
	}
}

func TestLexer_Peek(t *testing.T) {
	file := createFile("def x")
	lx := New(file, Options{})
	p1 := lx.Peek()
	p2 := lx.Peek()
	if !reflect.DeepEqual(p1, p2) {
		t.Fatalf("Peek() not idempotent: %+v != %+v", p1, p2)
	}
	n := lx.Next()
	if n.Kind != token.KwDef {
		t.Fatalf("Next() after Peek() = %v, want KwDef", n.Kind)
	}
}

func TestLexer_UnknownChar(t *testing.T) {
	toks := lexAll(t, "$")
	if toks[0].Kind != token.Invalid {
		t.Fatalf("expected Invalid for unknown char, got %v", toks[0].Kind)
	}
}
