package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenTooLong             Code = 1005

	// Syntax
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnclosedParen     Code = 2002
	SynUnclosedBrace     Code = 2003
	SynExpectSemicolon   Code = 2004
	SynExpectIdentifier  Code = 2005
	SynExpectExpression  Code = 2006
	SynExpectColon       Code = 2007
	SynExpectArrow       Code = 2008
	SynDecoratorPosition Code = 2009

	// Lowering errors — the verifier's own error taxonomy.
	// UnsupportedConstruct: a syntactically valid construct outside this
	// subset's semantics (no arrays, strings, user types, ...).
	LowerUnsupportedConstruct Code = 3001
	// IllegalOperation: an operation ill-typed under the closed {Bool,Int,Real}
	// lattice (e.g. Bool used where Int arithmetic is required, and vice versa
	// outside the defined promotions).
	LowerIllegalOperation Code = 3002
	// MissingInvariant: a while-loop body whose first statement is not a
	// loop_invariant(...) call.
	LowerMissingInvariant Code = 3003
	// VerificationFailed: a validity scope's negated obligation was sat; the
	// diagnostic carries one Note per counterexample frame.
	LowerVerificationFailed Code = 3004

	// I/O
	IOLoadFileError Code = 4001

	// Solver driver
	SolverInfo            Code = 5000
	SolverUnavailable      Code = 5001
	SolverUnexpectedOutput Code = 5002
	SolverTimeout          Code = 5003

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number",
	LexTokenTooLong:             "Token too long",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBrace:            "Unclosed brace",
	SynExpectSemicolon:          "Expected ';'",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectExpression:         "Expected expression",
	SynExpectColon:              "Expected ':'",
	SynExpectArrow:              "Expected '->'",
	SynDecoratorPosition:        "Decorator must immediately precede a function definition",
	LowerUnsupportedConstruct:   "Unsupported construct",
	LowerIllegalOperation:       "Illegal operation",
	LowerMissingInvariant:       "Missing loop invariant",
	LowerVerificationFailed:     "Verification failed",
	IOLoadFileError:             "I/O load file error",
	SolverInfo:                  "Solver information",
	SolverUnavailable:           "SMT solver unavailable",
	SolverUnexpectedOutput:      "Unexpected solver output",
	SolverTimeout:               "Solver timed out",
	ObsInfo:                     "Observability information",
	ObsTimings:                  "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("VER%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("SLV%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
