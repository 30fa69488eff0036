package testkit_test

import (
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
	"github.com/verislang/veris/internal/testkit"
)

func lower(t *testing.T, src string) (*mir.Module, *lir.Model) {
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
		t.Fatalf("unexpected HIR errors: %v", bag.Items())
	}
	returnIdent := b.StringsInterner.Intern(symbols.ReservedReturn)
	mmod, ok := mir.Lower(hmod, returnIdent, bag)
	if !ok {
		t.Fatalf("unexpected MIR errors: %v", bag.Items())
	}
	model := lir.Lower(mmod, b.StringsInterner)
	return mmod, model
}

const src = `
def abs(x: Int) -> Int {
	if x < 0 {
		y = 0 - x;
	} else {
		y = x;
	}
	assert y >= 0;
	return y;
}
`

func TestCheckTypeSoundness_PassesOnWellTypedModule(t *testing.T) {
	mmod, _ := lower(t, src)
	if err := testkit.CheckTypeSoundness(mmod); err != nil {
		t.Errorf("CheckTypeSoundness: %v", err)
	}
}

func TestCheckSSAUniqueness_PassesAfterReconciliation(t *testing.T) {
	mmod, _ := lower(t, src)
	if err := testkit.CheckSSAUniqueness(mmod); err != nil {
		t.Errorf("CheckSSAUniqueness: %v", err)
	}
}

func TestCheckSymbolsAreDeclared_PassesOnLoweredModel(t *testing.T) {
	_, model := lower(t, src)
	if err := testkit.CheckSymbolsAreDeclared(model); err != nil {
		t.Errorf("CheckSymbolsAreDeclared: %v", err)
	}
}

func TestCheckValidityScopesAreWellNested_PassesOnLoweredModel(t *testing.T) {
	_, model := lower(t, src)
	if err := testkit.CheckValidityScopesAreWellNested(model); err != nil {
		t.Errorf("CheckValidityScopesAreWellNested: %v", err)
	}
}
