// Package lir lowers MIR into a flat, emission-ready model: every Var gets
// a single flattened symbol name, scoped by a prefix stack and a
// per-call-site counter so two calls to the same function never collide;
// every MIR statement becomes either a standing Assume or a ValidityScope
// the SMT emitter renders as a push/assert-negation/check-sat/pop block.
package lir

import (
	"github.com/verislang/veris/internal/mir"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/types"
)

// Sort is the SMT-LIB sort a Decl is declared with.
type Sort uint8

const (
	SortInt Sort = iota
	SortBool
	SortReal
)

func sortOf(k types.Kind) Sort {
	switch k {
	case types.Bool:
		return SortBool
	case types.Real:
		return SortReal
	default:
		return SortInt
	}
}

// Decl is one top-level `(declare-fun name () Sort)`. SourceName is the
// original identifier text before flattening, carried through so a
// counterexample frame can be reported against the name the source used
// instead of the internal `ident$scope$version` symbol.
type Decl struct {
	Name       string
	SourceName string
	Sort       Sort
}

// ExprKind identifies the shape of a LIR expression.
type ExprKind uint8

const (
	ExprSymbol ExprKind = iota
	ExprConstant
	ExprCall
)

// Expr is a LIR expression: a MIR expression with every Var reference
// resolved to its final flattened symbol name.
type Expr struct {
	Kind ExprKind
	Type types.Kind
	Span source.Span
	Data ExprData
}

type ExprData interface{ exprData() }

// SymbolData references a declared name (a flattened Var, or — never
// produced by this package, reserved for a future constant-folding pass —
// any other declared identifier).
type SymbolData struct{ Name string }

func (SymbolData) exprData() {}

// ConstantData mirrors mir.ConstantData.
type ConstantData struct {
	Int  int64
	Real float64
	Bool bool
}

func (ConstantData) exprData() {}

// CallData mirrors mir.CallData; Func is carried through unchanged since
// the SMT emitter owns FuncID.Symbol().
type CallData struct {
	Func mir.FuncID
	Args []Expr
}

func (CallData) exprData() {}

func newSymbol(span source.Span, kind types.Kind, name string) Expr {
	return Expr{Kind: ExprSymbol, Type: kind, Span: span, Data: SymbolData{Name: name}}
}

func newConstant(span source.Span, kind types.Kind, data ConstantData) Expr {
	return Expr{Kind: ExprConstant, Type: kind, Span: span, Data: data}
}

func newCall(span source.Span, kind types.Kind, fn mir.FuncID, args []Expr) Expr {
	return Expr{Kind: ExprCall, Type: kind, Span: span, Data: CallData{Func: fn, Args: args}}
}
