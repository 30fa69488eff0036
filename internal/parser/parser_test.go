package parser

import (
	"testing"

	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/lexer"
	"github.com/verislang/veris/internal/source"
)

func parseSrc(t *testing.T, src string) (Result, *ast.Builder) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.veri", []byte(src))
	file := fs.Get(id)
	lx := lexer.New(file, lexer.Options{})
	b := ast.NewBuilder(ast.Hints{}, nil)
	bag := diag.NewBag(64)
	res := ParseFile(lx, b, Options{Reporter: &diag.BagReporter{Bag: bag}})
	return res, b
}

func TestParseFile_SimpleFunction(t *testing.T) {
	res, b := parseSrc(t, `
def add(x: Int, y: Int) -> Int {
	return x + y;
}
`)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	if len(res.Module.Funcs) != 1 {
		t.Fatalf("Funcs = %d, want 1", len(res.Module.Funcs))
	}
	def := b.Funcs.Get(res.Module.Funcs[0])
	if def == nil {
		t.Fatal("function not allocated")
	}
	if got := b.StringsInterner.MustLookup(def.Name); got != "add" {
		t.Errorf("Name = %q, want add", got)
	}
	if len(def.Params) != 2 {
		t.Fatalf("Params = %d, want 2", len(def.Params))
	}
}

func TestParseFile_Decorators(t *testing.T) {
	res, b := parseSrc(t, `
@assumes(x > 0)
@ensures(__return__ >= 0)
def abs(x: Int) -> Int {
	if x < 0 {
		return 0 - x;
	}
	return x;
}
`)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	def := b.Funcs.Get(res.Module.Funcs[0])
	if len(def.Decorators) != 2 {
		t.Fatalf("Decorators = %d, want 2", len(def.Decorators))
	}
	if got := b.StringsInterner.MustLookup(def.Decorators[0].Name); got != "assumes" {
		t.Errorf("Decorators[0].Name = %q, want assumes", got)
	}
}

func TestParseFile_WhileWithLoopInvariant(t *testing.T) {
	res, b := parseSrc(t, `
def count(n: Int) -> Int {
	i = 0;
	while i < n {
		loop_invariant(i <= n);
		i = i + 1;
	}
	return i;
}
`)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	def := b.Funcs.Get(res.Module.Funcs[0])
	block, ok := b.Stmts.Block(def.Body)
	if !ok {
		t.Fatal("function body is not a block")
	}
	whileStmt, ok := b.Stmts.While(block.Stmts[1])
	if !ok {
		t.Fatal("second statement is not a while loop")
	}
	whileBody, ok := b.Stmts.Block(whileStmt.Body)
	if !ok {
		t.Fatal("while body is not a block")
	}
	first, ok := b.Stmts.ExprStmt(whileBody.Stmts[0])
	if !ok {
		t.Fatal("first statement in while body is not an expression statement")
	}
	call, ok := b.Exprs.Call(first.Value)
	if !ok {
		t.Fatal("first statement is not a call")
	}
	if got := b.StringsInterner.MustLookup(call.Callee); got != "loop_invariant" {
		t.Errorf("Callee = %q, want loop_invariant", got)
	}
}

func TestParseFile_ElifChain(t *testing.T) {
	res, b := parseSrc(t, `
def sign(x: Int) -> Int {
	if x > 0 {
		return 1;
	} elif x < 0 {
		return 0 - 1;
	} else {
		return 0;
	}
}
`)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	def := b.Funcs.Get(res.Module.Funcs[0])
	block, _ := b.Stmts.Block(def.Body)
	outer, ok := b.Stmts.If(block.Stmts[0])
	if !ok {
		t.Fatal("first statement is not an if")
	}
	elif, ok := b.Stmts.If(outer.Else)
	if !ok {
		t.Fatal("else branch is not the elif chain")
	}
	if !elif.Else.IsValid() {
		t.Error("expected a final else branch on the elif chain")
	}
}

func TestParseFile_ChainedAssignment(t *testing.T) {
	res, b := parseSrc(t, `
def f() {
	a = b = 1;
}
`)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	def := b.Funcs.Get(res.Module.Funcs[0])
	block, _ := b.Stmts.Block(def.Body)
	assign, ok := b.Stmts.Assign(block.Stmts[0])
	if !ok {
		t.Fatal("statement is not an assignment")
	}
	if len(assign.Targets) != 2 {
		t.Fatalf("Targets = %d, want 2", len(assign.Targets))
	}
}

func TestParseFile_BitwiseInvert(t *testing.T) {
	res, b := parseSrc(t, `
def f(x: Int) -> Int {
	return ~x;
}
`)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", res.Bag.Items())
	}
	def := b.Funcs.Get(res.Module.Funcs[0])
	block, _ := b.Stmts.Block(def.Body)
	ret, ok := b.Stmts.Return(block.Stmts[0])
	if !ok {
		t.Fatal("statement is not a return")
	}
	unary, ok := b.Exprs.Unary(ret.Value)
	if !ok {
		t.Fatal("return value is not a unary expression")
	}
	if unary.Op != ast.UnaryInvert {
		t.Errorf("Op = %v, want UnaryInvert", unary.Op)
	}
}

func TestParseFile_ComparisonChainIsRejected(t *testing.T) {
	res, _ := parseSrc(t, `
def f() {
	assert 1 < 2 < 3;
}
`)
	if !res.Bag.HasErrors() {
		t.Fatal("expected an error for a chained comparison")
	}
}

func TestParseFile_MissingSemicolonIsReported(t *testing.T) {
	res, _ := parseSrc(t, `
def f() {
	pass
}
`)
	if !res.Bag.HasErrors() {
		t.Fatal("expected an error for the missing ';'")
	}
}
