package lir

import "github.com/verislang/veris/internal/source"

// ItemKind identifies the shape of a Model Item.
type ItemKind uint8

const (
	ItemAssume ItemKind = iota
	ItemValidityScope
)

// Item is one entry in a Model's ordered item list.
type Item struct {
	Kind ItemKind
	Span source.Span
	Data ItemData
}

type ItemData interface{ itemData() }

// AssumeData is a standing fact: rendered as a top-level `(assert Test)`,
// in effect for every later Item. Built from a MIR Assign (the Test is the
// defining equality — unconditional, since an SSA symbol's equation holds
// regardless of whether its branch is the one actually taken) or a MIR
// Assumption (a precondition, a havoc'd loop invariant, a callee
// postcondition — these ARE conditioned on PathCondition, folded into Test
// as `(or (not (and pc_1 ... pc_n)) Test)` when PathCondition is
// non-empty).
type AssumeData struct {
	Test Expr
}

func (AssumeData) itemData() {}

// ValidityScopeData is a verification obligation: the emitter renders
// `(push 1) (assert pc_1) ... (assert pc_n) (assert (not Test)) (check-sat)
// (pop 1)` — a `sat` result is a counterexample reaching this node.
type ValidityScopeData struct {
	PathCondition []Expr
	Test          Expr
}

func (ValidityScopeData) itemData() {}

func newAssume(span source.Span, test Expr) Item {
	return Item{Kind: ItemAssume, Span: span, Data: AssumeData{Test: test}}
}

func newValidityScope(span source.Span, pc []Expr, test Expr) Item {
	return Item{Kind: ItemValidityScope, Span: span, Data: ValidityScopeData{PathCondition: pc, Test: test}}
}

// Model is the complete emission-ready program: every declared symbol,
// and the ordered sequence of standing facts and verification obligations
// produced by lowering the module's top-level statements followed by every
// function body, in that order.
type Model struct {
	Decls []Decl
	Items []Item
}
