package hir_test

import (
	"testing"

	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/hir"
	"github.com/verislang/veris/internal/lexer"
	"github.com/verislang/veris/internal/parser"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/symbols"
	"github.com/verislang/veris/internal/types"
)

func lowerSrc(t *testing.T, src string) (*hir.Module, *ast.Builder, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.veri", []byte(src))
	file := fs.Get(id)
	lx := lexer.New(file, lexer.Options{})
	b := ast.NewBuilder(ast.Hints{}, nil)
	bag := diag.NewBag(64)
	res := parser.ParseFile(lx, b, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", res.Bag.Items())
	}
	table := symbols.Build(b.Funcs, res.Module.Funcs, b.StringsInterner, bag)
	if bag.HasErrors() {
		t.Fatalf("unexpected symbol errors: %v", bag.Items())
	}
	mod, ok := hir.Lower(b, res.Module, table, bag)
	if !ok {
		t.Fatalf("unexpected lowering errors: %v", bag.Items())
	}
	return mod, b, bag
}

func lowerSrcExpectError(t *testing.T, src string) *diag.Bag {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.veri", []byte(src))
	file := fs.Get(id)
	lx := lexer.New(file, lexer.Options{})
	b := ast.NewBuilder(ast.Hints{}, nil)
	bag := diag.NewBag(64)
	res := parser.ParseFile(lx, b, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", res.Bag.Items())
	}
	table := symbols.Build(b.Funcs, res.Module.Funcs, b.StringsInterner, bag)
	if _, ok := hir.Lower(b, res.Module, table, bag); ok {
		t.Fatal("expected lowering to fail")
	}
	if !bag.HasErrors() {
		t.Fatal("expected at least one diagnostic")
	}
	return bag
}

func TestLower_SimpleFunction(t *testing.T) {
	mod, b, _ := lowerSrc(t, `
def add(x: Int, y: Int) -> Int {
	return x + y;
}
`)
	if len(mod.Funcs) != 1 {
		t.Fatalf("Funcs = %d, want 1", len(mod.Funcs))
	}
	fn := mod.Funcs[0]
	if b.StringsInterner.MustLookup(fn.Name) != "add" {
		t.Errorf("Name = %q, want add", b.StringsInterner.MustLookup(fn.Name))
	}
	if fn.RetType != types.Int {
		t.Errorf("RetType = %v, want Int", fn.RetType)
	}
	if len(fn.Body) != 1 {
		t.Fatalf("Body = %d stmts, want 1", len(fn.Body))
	}
	ret := fn.Body[0]
	if ret.Kind != hir.StmtAssign {
		t.Fatalf("return desugared to Kind %v, want StmtAssign", ret.Kind)
	}
	assign := ret.Data.(hir.AssignData)
	lhs := assign.Lhs.Data.(hir.NameData)
	if b.StringsInterner.MustLookup(lhs.Ident) != "__return__" {
		t.Errorf("return target = %q, want __return__", b.StringsInterner.MustLookup(lhs.Ident))
	}
	if assign.Rhs.Type != types.Int {
		t.Errorf("rhs type = %v, want Int", assign.Rhs.Type)
	}
}

func TestLower_NotEqDesugarsToNotEq(t *testing.T) {
	mod, _, _ := lowerSrc(t, `
def f(x: Int) -> Bool {
	return x != 0;
}
`)
	ret := mod.Funcs[0].Body[0].Data.(hir.AssignData)
	if ret.Rhs.Kind != hir.ExprUnary {
		t.Fatalf("Kind = %v, want ExprUnary (not)", ret.Rhs.Kind)
	}
	unary := ret.Rhs.Data.(hir.UnaryData)
	if unary.Op != hir.UnaryNot {
		t.Fatalf("Op = %v, want UnaryNot", unary.Op)
	}
	if unary.Operand.Kind != hir.ExprBinary || unary.Operand.Data.(hir.BinaryData).Op != hir.BinEq {
		t.Error("!= must desugar to not (lhs == rhs)")
	}
}

func TestLower_IntBooleanizedInAssert(t *testing.T) {
	mod, _, _ := lowerSrc(t, `
def f(x: Int) {
	assert x;
}
`)
	st := mod.Funcs[0].Body[0]
	if st.Kind != hir.StmtAssert {
		t.Fatalf("Kind = %v, want StmtAssert", st.Kind)
	}
	test := st.Data.(hir.AssertData).Test
	if test.Type != types.Bool || test.Kind != hir.ExprUnary {
		t.Fatal("assert x must booleanize x to not (x == 0)")
	}
}

func TestLower_AugmentedAssignUsesPreUpdateValue(t *testing.T) {
	mod, _, _ := lowerSrc(t, `
def f(x: Int) -> Int {
	x += 1;
	return x;
}
`)
	st := mod.Funcs[0].Body[0]
	assign := st.Data.(hir.AssignData)
	bin := assign.Rhs.Data.(hir.BinaryData)
	if bin.Op != hir.BinAdd {
		t.Fatalf("Op = %v, want BinAdd", bin.Op)
	}
	if bin.Left.Data.(hir.NameData).Ctx != hir.NameLoad {
		t.Error("left operand of the desugared += must be a Load of the pre-update value")
	}
}

func TestLower_ChainedAssignmentSharesRhs(t *testing.T) {
	mod, b, _ := lowerSrc(t, `
def f() {
	a = b = 1;
}
`)
	body := mod.Funcs[0].Body
	if len(body) != 2 {
		t.Fatalf("a = b = 1 must desugar into 2 assigns, got %d", len(body))
	}
	first := body[0].Data.(hir.AssignData)
	second := body[1].Data.(hir.AssignData)
	if first.Rhs != second.Rhs {
		t.Error("both desugared assigns must share the same evaluated rhs value")
	}
	if b.StringsInterner.MustLookup(first.Lhs.Data.(hir.NameData).Ident) != "a" {
		t.Error("first target must be a")
	}
	if b.StringsInterner.MustLookup(second.Lhs.Data.(hir.NameData).Ident) != "b" {
		t.Error("second target must be b")
	}
}

func TestLower_LoopCollectsInvariantsAndTouchedVars(t *testing.T) {
	mod, b, _ := lowerSrc(t, `
def count(n: Int) -> Int {
	i = 0;
	while i < n {
		loop_invariant(i <= n);
		i = i + 1;
	}
	return i;
}
`)
	loopStmt := mod.Funcs[0].Body[1]
	if loopStmt.Kind != hir.StmtLoop {
		t.Fatalf("Kind = %v, want StmtLoop", loopStmt.Kind)
	}
	loop := loopStmt.Data.(hir.LoopData)
	if len(loop.Invariants) != 1 {
		t.Fatalf("Invariants = %d, want 1", len(loop.Invariants))
	}
	if len(loop.Body) != 1 {
		t.Fatalf("Body = %d, want 1 (the invariant call is not a body statement)", len(loop.Body))
	}
	found := false
	for _, v := range loop.TouchedVars {
		if b.StringsInterner.MustLookup(v) == "i" {
			found = true
		}
	}
	if !found {
		t.Error("TouchedVars must include i")
	}
}

func TestLower_ReturnDesugarsSoIfBranchesReconcile(t *testing.T) {
	mod, _, _ := lowerSrc(t, `
def abs(x: Int) -> Int {
	if x < 0 {
		return 0 - x;
	} else {
		return x;
	}
}
`)
	fn := mod.Funcs[0]
	if len(fn.Body) != 1 || fn.Body[0].Kind != hir.StmtIf {
		t.Fatal("body must be a single If statement")
	}
	ifData := fn.Body[0].Data.(hir.IfData)
	if len(ifData.Body) != 1 || ifData.Body[0].Kind != hir.StmtAssign {
		t.Error("then-branch return must desugar to an Assign to __return__")
	}
	if len(ifData.Orelse) != 1 || ifData.Orelse[0].Kind != hir.StmtAssign {
		t.Error("else-branch return must desugar to an Assign to __return__")
	}
}

func TestLower_ContractsBooleanizedAndReturnVisible(t *testing.T) {
	mod, _, _ := lowerSrc(t, `
@assumes(x > 0)
@ensures(__return__ >= 0)
def abs(x: Int) -> Int {
	if x < 0 {
		return 0 - x;
	}
	return x;
}
`)
	fn := mod.Funcs[0]
	if len(fn.Preconds) != 1 || fn.Preconds[0].Type != types.Bool {
		t.Fatal("precondition must be Bool-typed")
	}
	if len(fn.Postconds) != 1 || fn.Postconds[0].Type != types.Bool {
		t.Fatal("postcondition must be Bool-typed")
	}
}

func TestLower_CallResolvesAgainstEarlierSignatureTable(t *testing.T) {
	mod, _, _ := lowerSrc(t, `
def square(x: Int) -> Int {
	return mul(x, x);
}
def mul(a: Int, b: Int) -> Int {
	return a * b;
}
`)
	call := mod.Funcs[0].Body[0].Data.(hir.AssignData).Rhs
	if call.Kind != hir.ExprCall {
		t.Fatalf("Kind = %v, want ExprCall", call.Kind)
	}
	if call.Type != types.Int {
		t.Errorf("call result type = %v, want Int", call.Type)
	}
}

func TestLower_BitwiseOpRejectedOnReal(t *testing.T) {
	lowerSrcExpectError(t, `
def f(x: Real) -> Int {
	return x & 1;
}
`)
}

func TestLower_UndeclaredNameIsIllegalOperation(t *testing.T) {
	bag := lowerSrcExpectError(t, `
def f() -> Int {
	return y;
}
`)
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.LowerIllegalOperation {
			found = true
		}
	}
	if !found {
		t.Error("expected a LowerIllegalOperation diagnostic")
	}
}

func TestLower_WhileWithoutInvariantIsRejected(t *testing.T) {
	bag := lowerSrcExpectError(t, `
def f(n: Int) {
	i = 0;
	while i < n {
		i = i + 1;
	}
}
`)
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.LowerMissingInvariant {
			found = true
		}
	}
	if !found {
		t.Error("expected a LowerMissingInvariant diagnostic")
	}
}

func TestLower_VoidReturnWithValueIsIllegalOperation(t *testing.T) {
	lowerSrcExpectError(t, `
def f() {
	return 1;
}
`)
}
