package ast

import "github.com/verislang/veris/internal/source"

// StmtKind enumerates the different kinds of statements.
type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtAssign
	StmtAssert
	StmtExpr
	StmtReturn
	StmtIf
	StmtWhile
	StmtPass
)

// Stmt is a tagged-union statement node: Kind selects which per-kind arena
// Payload indexes into.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// AssignOp distinguishes a plain assignment from an augmented one. HIR
// lowering desugars an augmented assignment x += e into x = x + e; the AST
// keeps the original operator so diagnostics can quote the source form.
type AssignOp uint8

const (
	AssignPlain AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignFloorDiv
	AssignMod
	AssignBitAnd
	AssignBitOr
	AssignBitXor
	AssignShl
	AssignShr
)

// BlockStmtData is the payload of a StmtBlock node: an ordered list of
// statements forming a lexical scope.
type BlockStmtData struct {
	Stmts []StmtID
}

// AssignStmtData is the payload of a StmtAssign node. Targets holds every
// name on the left of a chained assignment (a = b = expr); len(Targets) == 1
// for the common case. Op is AssignPlain unless this was an augmented
// assignment, in which case exactly one target is present.
type AssignStmtData struct {
	Targets []source.StringID
	Op      AssignOp
	Value   ExprID
}

// AssertStmtData is the payload of a StmtAssert node.
type AssertStmtData struct {
	Cond ExprID
}

// ExprStmtData is the payload of a StmtExpr node: an expression evaluated
// for effect, notably a loop_invariant(...) call appearing as a statement.
type ExprStmtData struct {
	Value ExprID
}

// ReturnStmtData is the payload of a StmtReturn node. Value is NoExprID for
// a bare return.
type ReturnStmtData struct {
	Value ExprID
}

// IfStmtData is the payload of a StmtIf node. Else is NoStmtID when absent;
// an elif chain is represented as a nested StmtIf in Else.
type IfStmtData struct {
	Cond ExprID
	Then StmtID
	Else StmtID
}

// WhileStmtData is the payload of a StmtWhile node. Body is a StmtBlock
// whose first statement is required (by HIR lowering) to be a
// loop_invariant(...) call.
type WhileStmtData struct {
	Cond ExprID
	Body StmtID
}

// Stmts holds the statement arena and its per-kind payload arenas.
type Stmts struct {
	Arena   *Arena[Stmt]
	Blocks  *Arena[BlockStmtData]
	Assigns *Arena[AssignStmtData]
	Asserts *Arena[AssertStmtData]
	Exprs   *Arena[ExprStmtData]
	Returns *Arena[ReturnStmtData]
	Ifs     *Arena[IfStmtData]
	Whiles  *Arena[WhileStmtData]
}

// NewStmts creates a Stmts with per-kind arenas preallocated using capHint
// as the initial capacity. If capHint is 0, a default capacity is used.
func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Blocks:  NewArena[BlockStmtData](capHint),
		Assigns: NewArena[AssignStmtData](capHint),
		Asserts: NewArena[AssertStmtData](capHint),
		Exprs:   NewArena[ExprStmtData](capHint),
		Returns: NewArena[ReturnStmtData](capHint),
		Ifs:     NewArena[IfStmtData](capHint),
		Whiles:  NewArena[WhileStmtData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the statement node for id, or nil for NoStmtID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewPass allocates a bare StmtPass node; pass carries no payload.
func (s *Stmts) NewPass(span source.Span) StmtID {
	return s.new(StmtPass, span, NoPayloadID)
}

func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(BlockStmtData{Stmts: stmts})
	return s.new(StmtBlock, span, PayloadID(payload))
}

func (s *Stmts) Block(id StmtID) (*BlockStmtData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewAssign(span source.Span, data AssignStmtData) StmtID {
	payload := s.Assigns.Allocate(data)
	return s.new(StmtAssign, span, PayloadID(payload))
}

func (s *Stmts) Assign(id StmtID) (*AssignStmtData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAssign {
		return nil, false
	}
	return s.Assigns.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewAssert(span source.Span, cond ExprID) StmtID {
	payload := s.Asserts.Allocate(AssertStmtData{Cond: cond})
	return s.new(StmtAssert, span, PayloadID(payload))
}

func (s *Stmts) Assert(id StmtID) (*AssertStmtData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAssert {
		return nil, false
	}
	return s.Asserts.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewExprStmt(span source.Span, value ExprID) StmtID {
	payload := s.Exprs.Allocate(ExprStmtData{Value: value})
	return s.new(StmtExpr, span, PayloadID(payload))
}

func (s *Stmts) ExprStmt(id StmtID) (*ExprStmtData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(ReturnStmtData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

func (s *Stmts) Return(id StmtID) (*ReturnStmtData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els StmtID) StmtID {
	payload := s.Ifs.Allocate(IfStmtData{Cond: cond, Then: then, Else: els})
	return s.new(StmtIf, span, PayloadID(payload))
}

func (s *Stmts) If(id StmtID) (*IfStmtData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

func (s *Stmts) NewWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(WhileStmtData{Cond: cond, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

func (s *Stmts) While(id StmtID) (*WhileStmtData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}
