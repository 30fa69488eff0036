// Package hir provides the typed, normalized intermediate representation
// produced by lowering a parsed AST. Every expression carries its resolved
// type from the closed {Bool, Int, Real} lattice; the operators that only
// exist as source-level sugar (!=, unary +) are gone by the time a tree
// reaches this package, and every Bool-required position already holds a
// Bool-typed expression.
package hir

import (
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/types"
)

// BinOp enumerates HIR binary operators. There is no NotEq: `!=` is
// desugared into `not (lhs == rhs)` during lowering.
type BinOp uint8

const (
	BinAdd BinOp = iota
	BinSub
	BinMul
	BinDiv
	BinFloorDiv
	BinMod
	BinPow
	BinLShift
	BinRShift
	BinBitOr
	BinBitXor
	BinBitAnd
	BinAnd
	BinOr
	BinEq
	BinLt
	BinLte
	BinGt
	BinGte
)

// UnaryOp enumerates HIR unary operators. There is no Pos: unary `+x`
// desugars to `x` during lowering.
type UnaryOp uint8

const (
	UnaryNot UnaryOp = iota
	UnarySub
	UnaryInvert
)

// NameCtx distinguishes a name load from a name store.
type NameCtx uint8

const (
	NameLoad NameCtx = iota
	NameStore
)

// ExprKind identifies the shape of an HIR expression.
type ExprKind uint8

const (
	ExprConstant ExprKind = iota
	ExprName
	ExprBinary
	ExprUnary
	ExprCall
)

// Expr is an HIR expression: every node carries its resolved type and an
// optional back-reference to the source span it was lowered from.
type Expr struct {
	Kind ExprKind
	Type types.Kind
	Span source.Span
	Data ExprData
}

// ExprData is the kind-specific payload of an Expr.
type ExprData interface {
	exprData()
}

// ConstantData holds a literal value. Exactly one of Int/Real/Bool is
// meaningful, selected by the owning Expr's Type.
type ConstantData struct {
	Int  int64
	Real float64
	Bool bool
}

func (ConstantData) exprData() {}

// NameData holds a variable reference.
type NameData struct {
	Ident source.StringID
	Ctx   NameCtx
}

func (NameData) exprData() {}

// BinaryData holds a binary operator application.
type BinaryData struct {
	Op    BinOp
	Left  *Expr
	Right *Expr
}

func (BinaryData) exprData() {}

// UnaryData holds a unary operator application.
type UnaryData struct {
	Op      UnaryOp
	Operand *Expr
}

func (UnaryData) exprData() {}

// CallData holds a call to a previously-collected function. Func names the
// callee by its interned identifier; resolution against the signature table
// happened during lowering, so Type is already the callee's return type.
type CallData struct {
	Func source.StringID
	Args []*Expr
}

func (CallData) exprData() {}

// NewConstant builds a typed Bool/Int/Real literal expression.
func NewConstant(span source.Span, kind types.Kind, data ConstantData) *Expr {
	return &Expr{Kind: ExprConstant, Type: kind, Span: span, Data: data}
}

// NewName builds a name reference expression.
func NewName(span source.Span, kind types.Kind, ident source.StringID, ctx NameCtx) *Expr {
	return &Expr{Kind: ExprName, Type: kind, Span: span, Data: NameData{Ident: ident, Ctx: ctx}}
}

// NewBinary builds a binary operator expression.
func NewBinary(span source.Span, kind types.Kind, op BinOp, left, right *Expr) *Expr {
	return &Expr{Kind: ExprBinary, Type: kind, Span: span, Data: BinaryData{Op: op, Left: left, Right: right}}
}

// NewUnary builds a unary operator expression.
func NewUnary(span source.Span, kind types.Kind, op UnaryOp, operand *Expr) *Expr {
	return &Expr{Kind: ExprUnary, Type: kind, Span: span, Data: UnaryData{Op: op, Operand: operand}}
}

// NewCall builds a function call expression.
func NewCall(span source.Span, kind types.Kind, fn source.StringID, args []*Expr) *Expr {
	return &Expr{Kind: ExprCall, Type: kind, Span: span, Data: CallData{Func: fn, Args: args}}
}
