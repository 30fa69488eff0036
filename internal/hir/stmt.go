package hir

import "github.com/verislang/veris/internal/source"

// StmtKind identifies the shape of an HIR statement.
type StmtKind uint8

const (
	StmtAssign StmtKind = iota
	StmtAssert
	StmtIf
	StmtLoop
	StmtPass
)

// Stmt is an HIR statement.
type Stmt struct {
	Kind StmtKind
	Span source.Span
	Data StmtData
}

// StmtData is the kind-specific payload of a Stmt.
type StmtData interface {
	stmtData()
}

// AssignData holds an assignment. Lhs is always a NameStore expression;
// `return expr` desugars to an assignment to the reserved `__return__` name,
// so there is no separate HIR return node.
type AssignData struct {
	Lhs *Expr
	Rhs *Expr
}

func (AssignData) stmtData() {}

// AssertData holds an assertion. Test is always Bool-typed.
type AssertData struct {
	Test *Expr
}

func (AssertData) stmtData() {}

// IfData holds a conditional. Test is always Bool-typed. Orelse is nil when
// the source had no else/elif clause.
type IfData struct {
	Test   *Expr
	Body   []Stmt
	Orelse []Stmt
}

func (IfData) stmtData() {}

// LoopData holds a while loop together with its collected invariants and
// touched-variable set, as required by the loop_invariant(...) convention.
type LoopData struct {
	Test        *Expr
	Invariants  []*Expr
	Body        []Stmt
	TouchedVars []source.StringID
}

func (LoopData) stmtData() {}

// PassData holds a no-op statement.
type PassData struct{}

func (PassData) stmtData() {}

func newAssign(span source.Span, lhs, rhs *Expr) Stmt {
	return Stmt{Kind: StmtAssign, Span: span, Data: AssignData{Lhs: lhs, Rhs: rhs}}
}

func newAssert(span source.Span, test *Expr) Stmt {
	return Stmt{Kind: StmtAssert, Span: span, Data: AssertData{Test: test}}
}

func newIf(span source.Span, test *Expr, body, orelse []Stmt) Stmt {
	return Stmt{Kind: StmtIf, Span: span, Data: IfData{Test: test, Body: body, Orelse: orelse}}
}

func newLoop(span source.Span, test *Expr, invariants []*Expr, body []Stmt, touched []source.StringID) Stmt {
	return Stmt{Kind: StmtLoop, Span: span, Data: LoopData{Test: test, Invariants: invariants, Body: body, TouchedVars: touched}}
}

func newPass(span source.Span) Stmt {
	return Stmt{Kind: StmtPass, Span: span, Data: PassData{}}
}
