package ast

import "github.com/verislang/veris/internal/source"

// Param is a single function parameter: a name and its declared type
// annotation. The annotation is kept as an identifier text, resolved against
// the closed type lattice during HIR lowering.
type Param struct {
	Name     source.StringID
	TypeName source.StringID
	Span     source.Span
}

// Decorator is a single @name(args...) annotation attached to a function,
// e.g. @assumes(param.x > 0) or @ensures(__return__ >= 0).
type Decorator struct {
	Name source.StringID
	Args []ExprID
	Span source.Span
}

// FuncDef is a top-level function declaration together with its contract
// decorators.
type FuncDef struct {
	Name       source.StringID
	Params     []Param
	ReturnType source.StringID // empty StringID if the function has no declared return type
	Decorators []Decorator
	Body       StmtID // always a StmtBlock
	Span       source.Span
}

// Funcs holds the function declaration arena.
type Funcs struct {
	Arena *Arena[FuncDef]
}

// NewFuncs creates a Funcs with the function arena preallocated using
// capHint as the initial capacity. If capHint is 0, a default capacity is used.
func NewFuncs(capHint uint) *Funcs {
	if capHint == 0 {
		capHint = 1 << 4
	}
	return &Funcs{Arena: NewArena[FuncDef](capHint)}
}

// New allocates a FuncDef and returns its ID.
func (f *Funcs) New(def FuncDef) FuncID {
	return FuncID(f.Arena.Allocate(def))
}

// Get returns the function declaration for id, or nil for NoFuncID.
func (f *Funcs) Get(id FuncID) *FuncDef {
	return f.Arena.Get(uint32(id))
}

// Module is the root of the AST for a single source file: an ordered list of
// top-level function declarations plus any top-level statements, which are
// verified as an implicit entry scope.
type Module struct {
	Funcs []FuncID
	Stmts []StmtID
	Span  source.Span
}
