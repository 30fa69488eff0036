package lir_test

import (
	"strings"
	"testing"

	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/hir"
	"github.com/verislang/veris/internal/lexer"
	"github.com/verislang/veris/internal/lir"
	"github.com/verislang/veris/internal/mir"
	"github.com/verislang/veris/internal/parser"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/symbols"
)

func lowerToLIR(t *testing.T, src string) (*lir.Model, *source.Interner) {
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
	hmod, ok := hir.Lower(b, res.Module, table, bag)
	if !ok {
		t.Fatalf("unexpected HIR lowering errors: %v", bag.Items())
	}
	returnIdent := b.StringsInterner.Intern(symbols.ReservedReturn)
	mmod, ok := mir.Lower(hmod, returnIdent, bag)
	if !ok {
		t.Fatalf("unexpected MIR lowering errors: %v", bag.Items())
	}
	model := lir.Lower(mmod, b.StringsInterner)
	return model, b.StringsInterner
}

func TestLower_DeclarationNamesAreUniquePerFunction(t *testing.T) {
	model, _ := lowerToLIR(t, `
def f(x: Int) -> Int {
	y = x + 1;
	return y;
}
def g(x: Int) -> Int {
	y = x + 2;
	return y;
}
`)
	seen := make(map[string]bool)
	for _, d := range model.Decls {
		if seen[d.Name] {
			t.Errorf("duplicate declaration name %q", d.Name)
		}
		seen[d.Name] = true
	}
	if len(model.Decls) == 0 {
		t.Fatal("expected at least one declaration")
	}
}

func TestLower_AssignItemsAreUnconditionalAssumes(t *testing.T) {
	model, _ := lowerToLIR(t, `
def abs(x: Int) -> Int {
	if x < 0 {
		y = 0 - x;
	} else {
		y = x;
	}
	assert y >= 0;
	return y;
}
`)
	var assumeCount, scopeCount int
	for _, it := range model.Items {
		switch it.Kind {
		case lir.ItemAssume:
			assumeCount++
		case lir.ItemValidityScope:
			scopeCount++
		}
	}
	if assumeCount == 0 {
		t.Error("expected at least one Assume item (the y-assigns)")
	}
	if scopeCount == 0 {
		t.Error("expected at least one ValidityScope item (the assert)")
	}
}

func TestLower_ValidityScopeCarriesPathConditionAsList(t *testing.T) {
	model, _ := lowerToLIR(t, `
def f(x: Int) -> Int {
	if x > 0 {
		assert x >= 1;
	}
	return x;
}
`)
	var found bool
	for _, it := range model.Items {
		if it.Kind != lir.ItemValidityScope {
			continue
		}
		data := it.Data.(lir.ValidityScopeData)
		if len(data.PathCondition) > 0 {
			found = true
		}
	}
	if !found {
		t.Error("expected at least one ValidityScope with a non-empty PathCondition list")
	}
}

func TestLower_CallReturnVarNameMatchesBetweenDeclAndUse(t *testing.T) {
	model, _ := lowerToLIR(t, `
@assumes(param.a >= 0)
@ensures(__return__ >= param.a)
def inc(a: Int) -> Int {
	return a + 1;
}
def caller(x: Int) -> Int {
	r = inc(x);
	return r;
}
`)
	declared := make(map[string]bool)
	for _, d := range model.Decls {
		declared[d.Name] = true
	}
	var sawCallPrefixedUse bool
	var walk func(e lir.Expr)
	walk = func(e lir.Expr) {
		switch e.Kind {
		case lir.ExprSymbol:
			data := e.Data.(lir.SymbolData)
			if !declared[data.Name] {
				t.Errorf("referenced symbol %q has no matching declaration", data.Name)
			}
			if strings.Contains(data.Name, "!call_") {
				sawCallPrefixedUse = true
			}
		case lir.ExprCall:
			data := e.Data.(lir.CallData)
			for _, a := range data.Args {
				walk(a)
			}
		}
	}
	for _, it := range model.Items {
		switch it.Kind {
		case lir.ItemAssume:
			walk(it.Data.(lir.AssumeData).Test)
		case lir.ItemValidityScope:
			data := it.Data.(lir.ValidityScopeData)
			walk(data.Test)
			for _, p := range data.PathCondition {
				walk(p)
			}
		}
	}
	if !sawCallPrefixedUse {
		t.Error("expected some symbol reference carrying a !call_<n>! fragment")
	}
}
