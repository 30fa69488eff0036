package mir

import (
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/types"
)

// Var is one SSA binding: an identifier, the version number assigned to it
// within Scope (strictly increasing per (Ident, Scope) pair, starting at 0),
// and the path of branch indices from the root Branch to the one that
// created it. A Var is never mutated after creation — "assigning" to the
// same source name produces a new Var with the next version.
type Var struct {
	Ident   source.StringID
	Version int
	Scope   []int
	Type    types.Kind
}

// ExprKind identifies the shape of a MIR expression.
type ExprKind uint8

const (
	ExprVar ExprKind = iota
	ExprConstant
	ExprCall
)

// Expr is a MIR expression. Every binary/unary HIR operator is rewritten
// into ExprCall against a predefined FuncID; there is no separate node kind
// per operator the way HIR has one.
type Expr struct {
	Kind ExprKind
	Type types.Kind
	Span source.Span
	Data ExprData
}

type ExprData interface{ exprData() }

// VarData references a previously resolved or just-created Var.
type VarData struct {
	Var Var
}

func (VarData) exprData() {}

// ConstantData holds a literal value, mirroring hir.ConstantData.
type ConstantData struct {
	Int  int64
	Real float64
	Bool bool
}

func (ConstantData) exprData() {}

// CallData holds a rewritten operator application against a predefined
// SMT function id.
type CallData struct {
	Func FuncID
	Args []Expr
}

func (CallData) exprData() {}

func NewVarExpr(span source.Span, v Var) Expr {
	return Expr{Kind: ExprVar, Type: v.Type, Span: span, Data: VarData{Var: v}}
}

func NewConstantExpr(span source.Span, kind types.Kind, data ConstantData) Expr {
	return Expr{Kind: ExprConstant, Type: kind, Span: span, Data: data}
}

func NewCallExpr(span source.Span, kind types.Kind, fn FuncID, args []Expr) Expr {
	return Expr{Kind: ExprCall, Type: kind, Span: span, Data: CallData{Func: fn, Args: args}}
}

// StmtKind identifies the shape of a MIR statement.
type StmtKind uint8

const (
	StmtAssign StmtKind = iota
	StmtAssert
	StmtAssumption
	StmtFuncCall
)

// Stmt is a MIR statement. Every Stmt carries the path condition of the
// Branch it was emitted from, so LIR can guard Asserts and Assumptions
// with it (an Assign's defining equality is emitted unguarded).
type Stmt struct {
	Kind StmtKind
	Span source.Span
	Data StmtData
}

type StmtData interface{ stmtData() }

// AssignData holds `lhs := rhs` under PathCondition. Lhs is always a
// freshly created Var (an ExprVar referencing it); spec's type-soundness
// law requires Lhs.Type == Rhs.Type.
type AssignData struct {
	PathCondition []Expr
	Lhs           Var
	Rhs           Expr
}

func (AssignData) stmtData() {}

// AssertData holds a verification obligation: the solver must find Test
// unsatisfiable-when-negated along PathCondition for the obligation to hold.
type AssertData struct {
	PathCondition []Expr
	Test          Expr
}

func (AssertData) stmtData() {}

// AssumptionData holds a fact taken as given along PathCondition (a
// precondition, a havoc'd loop invariant, a callee postcondition, ...).
type AssumptionData struct {
	PathCondition []Expr
	Test          Expr
}

func (AssumptionData) stmtData() {}

// FuncCallData is a modular call-site encoding: assert the callee's
// preconditions hold, havoc a fresh return Var, then assume the callee's
// postconditions hold against it. The callee's body is never re-explored.
type FuncCallData struct {
	PathCondition  []Expr
	FuncName       source.StringID
	Preconditions  []Expr
	Postconditions []Expr
	ReturnValue    Var
}

func (FuncCallData) stmtData() {}

func newAssign(span source.Span, pc []Expr, lhs Var, rhs Expr) Stmt {
	return Stmt{Kind: StmtAssign, Span: span, Data: AssignData{PathCondition: pc, Lhs: lhs, Rhs: rhs}}
}

func newAssert(span source.Span, pc []Expr, test Expr) Stmt {
	return Stmt{Kind: StmtAssert, Span: span, Data: AssertData{PathCondition: pc, Test: test}}
}

func newAssumption(span source.Span, pc []Expr, test Expr) Stmt {
	return Stmt{Kind: StmtAssumption, Span: span, Data: AssumptionData{PathCondition: pc, Test: test}}
}

func newFuncCall(span source.Span, pc []Expr, name source.StringID, pre, post []Expr, ret Var) Stmt {
	return Stmt{Kind: StmtFuncCall, Span: span, Data: FuncCallData{
		PathCondition: pc, FuncName: name, Preconditions: pre, Postconditions: post, ReturnValue: ret,
	}}
}
