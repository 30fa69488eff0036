package ast

import "github.com/verislang/veris/internal/source"

// Typed arena indices. The zero value of every ID type denotes "absent" and
// is never a valid allocation result, since Arena.Allocate returns 1-based
// indices.

// ExprID references an expression in the Module's expression arena.
type ExprID uint32

// NoExprID is the sentinel value for "no expression", e.g. a bare return.
const NoExprID ExprID = 0

// IsValid reports whether id refers to an allocated expression.
func (id ExprID) IsValid() bool { return id != NoExprID }

// StmtID references a statement in the Module's statement arena.
type StmtID uint32

// NoStmtID is the sentinel value for "no statement", e.g. a missing else clause.
const NoStmtID StmtID = 0

// IsValid reports whether id refers to an allocated statement.
func (id StmtID) IsValid() bool { return id != NoStmtID }

// FuncID references a function declaration in the Module's function arena.
type FuncID uint32

// NoFuncID is the sentinel value for "no function".
const NoFuncID FuncID = 0

// IsValid reports whether id refers to an allocated function.
func (id FuncID) IsValid() bool { return id != NoFuncID }

// StringID is an interned string reference, shared with the rest of the
// compiler through a source.Interner.
type StringID = source.StringID

// PayloadID indexes a per-kind payload arena. A PayloadID is only meaningful
// together with the ExprKind/StmtKind of the node that carries it.
type PayloadID uint32

// NoPayloadID is the sentinel for "no payload".
const NoPayloadID PayloadID = 0

// IsValid reports whether id refers to an allocated payload.
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
