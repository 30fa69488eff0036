package hir

import (
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/types"
)

// Param is a function parameter, already resolved to a lattice type.
type Param struct {
	Name source.StringID
	Type types.Kind
	Span source.Span
}

// FuncDef is an HIR function: preconditions are assumed at the top,
// postconditions asserted at the tail (by the MIR lowerer), and the body is
// verified modularly — it is never inlined at call sites.
type FuncDef struct {
	Name      source.StringID
	Params    []Param
	RetType   types.Kind // types.Invalid for a function with no return annotation
	Preconds  []*Expr    // @assumes(...) arguments, Bool-typed
	Postconds []*Expr    // @ensures(...) arguments, Bool-typed
	Body      []Stmt
	Span      source.Span
}
