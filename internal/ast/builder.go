package ast

import "github.com/verislang/veris/internal/source"

// Hints provides capacity hints for the builder's arenas.
type Hints struct{ Funcs, Stmts, Exprs uint }

// Builder constructs an AST for a single source file, aggregating the
// per-node-kind arenas behind one shared string interner.
type Builder struct {
	Funcs           *Funcs
	Stmts           *Stmts
	Exprs           *Exprs
	StringsInterner *source.Interner
}

// NewBuilder creates a Builder configured with capacity hints and a shared
// string interner. If any hint field is zero, a default capacity is applied
// (Funcs=16, Stmts=64, Exprs=64). If stringsInterner is nil, a new interner
// is created.
func NewBuilder(hints Hints, stringsInterner *source.Interner) *Builder {
	if hints.Funcs == 0 {
		hints.Funcs = 1 << 4
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 6
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 6
	}
	if stringsInterner == nil {
		stringsInterner = source.NewInterner()
	}
	return &Builder{
		Funcs:           NewFuncs(hints.Funcs),
		Stmts:           NewStmts(hints.Stmts),
		Exprs:           NewExprs(hints.Exprs),
		StringsInterner: stringsInterner,
	}
}

// Intern interns s through the builder's shared string interner.
func (b *Builder) Intern(s string) source.StringID {
	return b.StringsInterner.Intern(s)
}

// NewModule assembles a Module from the given top-level functions and
// statements, in source order.
func (b *Builder) NewModule(span source.Span, funcs []FuncID, stmts []StmtID) *Module {
	return &Module{Funcs: funcs, Stmts: stmts, Span: span}
}
