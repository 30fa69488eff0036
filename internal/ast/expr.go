package ast

import "github.com/verislang/veris/internal/source"

// ExprKind identifies the shape of an expression node.
type ExprKind uint8

const (
	ExprName ExprKind = iota
	ExprConst
	ExprBinary
	ExprUnary
	ExprCall
	ExprMember
	ExprGroup
)

// Expr is a tagged-union expression node: Kind selects which per-kind arena
// Payload indexes into.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// BinaryOp enumerates the binary operators of the expression language.
type BinaryOp uint8

const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryFloorDiv
	BinaryMod
	BinaryPow
	BinaryShl
	BinaryShr
	BinaryBitAnd
	BinaryBitOr
	BinaryBitXor
	BinaryEq
	BinaryNotEq
	BinaryLess
	BinaryLessEq
	BinaryGreater
	BinaryGreaterEq
	BinaryAnd
	BinaryOr
)

// UnaryOp enumerates the unary operators of the expression language.
type UnaryOp uint8

const (
	UnaryNeg UnaryOp = iota
	UnaryPos
	UnaryNot
	UnaryInvert
)

// ConstKind identifies the literal kind of a constant expression.
type ConstKind uint8

const (
	ConstInt ConstKind = iota
	ConstFloat
	ConstBool
)

// ExprNameData is the payload of an ExprName node: a bare identifier reference.
type ExprNameData struct {
	Name source.StringID
}

// ExprConstData is the payload of an ExprConst node. Exactly one of the
// fields is meaningful, selected by Kind: Text holds the literal spelling for
// Int/Float (parsed later, during HIR lowering), Bool holds the boolean value.
type ExprConstData struct {
	Kind ConstKind
	Text source.StringID
	Bool bool
}

// ExprBinaryData is the payload of an ExprBinary node.
type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

// ExprUnaryData is the payload of an ExprUnary node.
type ExprUnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

// ExprCallData is the payload of an ExprCall node: a call to a plain name,
// e.g. a user function call or an annotation call like loop_invariant(...).
type ExprCallData struct {
	Callee source.StringID
	Span   source.Span
	Args   []ExprID
}

// ExprMemberData is the payload of an ExprMember node: dotted attribute
// access, used exclusively for the param.<name> annotation namespace.
type ExprMemberData struct {
	Target ExprID
	Field  source.StringID
}

// ExprGroupData is the payload of an ExprGroup node: a parenthesized
// sub-expression, kept to preserve source spans for diagnostics.
type ExprGroupData struct {
	Inner ExprID
}

// Exprs holds the expression arena and its per-kind payload arenas.
type Exprs struct {
	Arena   *Arena[Expr]
	Names   *Arena[ExprNameData]
	Consts  *Arena[ExprConstData]
	Binarys *Arena[ExprBinaryData]
	Unarys  *Arena[ExprUnaryData]
	Calls   *Arena[ExprCallData]
	Members *Arena[ExprMemberData]
	Groups  *Arena[ExprGroupData]
}

// NewExprs creates an Exprs with per-kind arenas preallocated using capHint
// as the initial capacity. If capHint is 0, a default capacity is used.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Exprs{
		Arena:   NewArena[Expr](capHint),
		Names:   NewArena[ExprNameData](capHint),
		Consts:  NewArena[ExprConstData](capHint),
		Binarys: NewArena[ExprBinaryData](capHint),
		Unarys:  NewArena[ExprUnaryData](capHint),
		Calls:   NewArena[ExprCallData](capHint),
		Members: NewArena[ExprMemberData](capHint),
		Groups:  NewArena[ExprGroupData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the expression node for id, or nil for NoExprID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) NewName(span source.Span, name source.StringID) ExprID {
	payload := e.Names.Allocate(ExprNameData{Name: name})
	return e.new(ExprName, span, PayloadID(payload))
}

func (e *Exprs) Name(id ExprID) (*ExprNameData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprName {
		return nil, false
	}
	return e.Names.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewConst(span source.Span, data ExprConstData) ExprID {
	payload := e.Consts.Allocate(data)
	return e.new(ExprConst, span, PayloadID(payload))
}

func (e *Exprs) Const(id ExprID) (*ExprConstData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprConst {
		return nil, false
	}
	return e.Consts.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binarys.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binarys.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	payload := e.Unarys.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unarys.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewCall(span source.Span, callee source.StringID, calleeSpan source.Span, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Span: calleeSpan, Args: args})
	return e.new(ExprCall, span, PayloadID(payload))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewMember(span source.Span, target ExprID, field source.StringID) ExprID {
	payload := e.Members.Allocate(ExprMemberData{Target: target, Field: field})
	return e.new(ExprMember, span, PayloadID(payload))
}

func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMember {
		return nil, false
	}
	return e.Members.Get(uint32(expr.Payload)), true
}

func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprGroup, span, PayloadID(payload))
}

func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprGroup {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}
