package symbols

import (
	"testing"

	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/types"
)

func TestBuild_ResolvesParamsAndReturnType(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{}, nil)
	body := b.Stmts.NewBlock(source.Span{}, nil)
	def := b.Funcs.New(ast.FuncDef{
		Name: b.Intern("double"),
		Params: []ast.Param{
			{Name: b.Intern("x"), TypeName: b.Intern("Int")},
		},
		ReturnType: b.Intern("Int"),
		Body:       body,
	})

	bag := diag.NewBag(16)
	table := Build(b.Funcs, []ast.FuncID{def}, b.StringsInterner, bag)

	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	sig, ok := table.Lookup(b.Intern("double"))
	if !ok {
		t.Fatal("expected \"double\" to be resolved")
	}
	if sig.ReturnType != types.Int {
		t.Errorf("ReturnType = %v, want Int", sig.ReturnType)
	}
	if len(sig.Params) != 1 || sig.Params[0].Type != types.Int {
		t.Errorf("Params = %+v, want one Int param", sig.Params)
	}
}

func TestBuild_RejectsUnsupportedType(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{}, nil)
	body := b.Stmts.NewBlock(source.Span{}, nil)
	def := b.Funcs.New(ast.FuncDef{
		Name: b.Intern("f"),
		Params: []ast.Param{
			{Name: b.Intern("s"), TypeName: b.Intern("String")},
		},
		Body: body,
	})

	bag := diag.NewBag(16)
	Build(b.Funcs, []ast.FuncID{def}, b.StringsInterner, bag)

	if !bag.HasErrors() {
		t.Fatal("expected an UnsupportedConstruct diagnostic for type String")
	}
}

func TestBuild_DecoratorFlags(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{}, nil)
	body := b.Stmts.NewBlock(source.Span{}, nil)
	cond := b.Exprs.NewName(source.Span{}, b.Intern("x"))
	def := b.Funcs.New(ast.FuncDef{
		Name: b.Intern("f"),
		Decorators: []ast.Decorator{
			{Name: b.Intern(AnnotationAssumes), Args: []ast.ExprID{cond}},
			{Name: b.Intern(AnnotationEnsures), Args: []ast.ExprID{cond}},
		},
		Body: body,
	})

	bag := diag.NewBag(16)
	table := Build(b.Funcs, []ast.FuncID{def}, b.StringsInterner, bag)

	sig, ok := table.Lookup(b.Intern("f"))
	if !ok {
		t.Fatal("expected \"f\" to be resolved")
	}
	if !sig.HasAssumes || !sig.HasEnsures {
		t.Errorf("HasAssumes=%v HasEnsures=%v, want true, true", sig.HasAssumes, sig.HasEnsures)
	}
}
