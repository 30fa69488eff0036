package token

var keywords = map[string]Kind{
	"def":    KwDef,
	"return": KwReturn,
	"if":     KwIf,
	"elif":   KwElif,
	"else":   KwElse,
	"while":  KwWhile,
	"pass":   KwPass,
	"assert": KwAssert,
	"and":    KwAnd,
	"or":     KwOr,
	"not":    KwNot,
	"True":   KwTrue,
	"False":  KwFalse,
}

// LookupKeyword returns the token kind for ident, and whether ident is a
// keyword. Keywords are case-sensitive; assumes, ensures, loop_invariant,
// param, and __return__ are deliberately NOT keywords here — they are plain
// identifiers, recognized by the HIR lowerer's decorator/annotation handling.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
