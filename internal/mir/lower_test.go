package mir_test

import (
	"fmt"
	"testing"

	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/hir"
	"github.com/verislang/veris/internal/lexer"
	"github.com/verislang/veris/internal/mir"
	"github.com/verislang/veris/internal/parser"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/symbols"
	"github.com/verislang/veris/internal/types"
)

func astBuilder(t *testing.T) *ast.Builder {
	t.Helper()
	return ast.NewBuilder(ast.Hints{}, nil)
}

func lowerToMIR(t *testing.T, src string) (*mir.Module, *source.Interner) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.veri", []byte(src))
	file := fs.Get(id)
	lx := lexer.New(file, lexer.Options{})
	b := astBuilder(t)
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
	return mmod, b.StringsInterner
}

func lowerToMIRExpectError(t *testing.T, src string) *diag.Bag {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.veri", []byte(src))
	file := fs.Get(id)
	lx := lexer.New(file, lexer.Options{})
	b := astBuilder(t)
	bag := diag.NewBag(64)
	res := parser.ParseFile(lx, b, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", res.Bag.Items())
	}
	table := symbols.Build(b.Funcs, res.Module.Funcs, b.StringsInterner, bag)
	hmod, ok := hir.Lower(b, res.Module, table, bag)
	if !ok {
		t.Fatalf("unexpected HIR lowering errors: %v", bag.Items())
	}
	returnIdent := b.StringsInterner.Intern(symbols.ReservedReturn)
	if _, ok := mir.Lower(hmod, returnIdent, bag); ok {
		t.Fatal("expected MIR lowering to fail")
	}
	if !bag.HasErrors() {
		t.Fatal("expected at least one diagnostic")
	}
	return bag
}

func sameVar(a, b mir.Var) bool {
	if a.Ident != b.Ident || a.Version != b.Version || len(a.Scope) != len(b.Scope) {
		return false
	}
	for i := range a.Scope {
		if a.Scope[i] != b.Scope[i] {
			return false
		}
	}
	return true
}

func TestLower_IfReconciliationProducesOneMergedVarAndTwoConditionalAssigns(t *testing.T) {
	mmod, interner := lowerToMIR(t, `
def abs(x: Int) -> Int {
	if x < 0 {
		y = 0 - x;
	} else {
		y = x;
	}
	assert y >= 0;
}
`)
	var assigns []mir.AssignData
	for _, st := range mmod.Funcs[0].Body {
		if st.Kind == mir.StmtAssign {
			a := st.Data.(mir.AssignData)
			if interner.MustLookup(a.Lhs.Ident) == "y" {
				assigns = append(assigns, a)
			}
		}
	}
	// 2 branch-local assigns (then, else) + 2 reconciliation assigns (one
	// per mutually exclusive arm, both targeting the same merged Var).
	if len(assigns) != 4 {
		t.Fatalf("got %d assigns to y, want 4", len(assigns))
	}
	// The merged Var lives in the function's root branch (path [0]); the
	// branch-local Vars live in the arms (paths [0 1] and [0 2]).
	var reconciled []mir.AssignData
	for _, a := range assigns {
		if len(a.Lhs.Scope) == 1 {
			reconciled = append(reconciled, a)
		}
	}
	if len(reconciled) != 2 {
		t.Fatalf("got %d reconciliation assigns to a root-branch Var, want 2", len(reconciled))
	}
	if !sameVar(reconciled[0].Lhs, reconciled[1].Lhs) {
		t.Error("both reconciliation assigns must target the same merged Var")
	}
	for _, a := range reconciled {
		if len(a.PathCondition) == 0 {
			t.Error("each reconciliation assign must carry its arm's path condition")
		}
	}
	for _, a := range assigns {
		if sameVar(a.Lhs, reconciled[0].Lhs) && len(a.Lhs.Scope) != 1 {
			t.Error("the merged Var's version must not collide with either branch-local assign")
		}
	}
}

func TestLower_EverySSAVarVersionIsUnique(t *testing.T) {
	mmod, _ := lowerToMIR(t, `
def f(x: Int) -> Int {
	y = x;
	if x < 0 {
		y = 0 - x;
	} else {
		y = x + 1;
	}
	return y;
}
`)
	// Reconciliation assigns the merged Var once per arm, so uniqueness is
	// checked over the declared Vars rather than over Assign targets.
	seen := make(map[string]bool)
	for _, v := range mmod.Funcs[0].Vars {
		key := varKey(v)
		if seen[key] {
			t.Errorf("duplicate Var %s in the function's declaration list", key)
		}
		seen[key] = true
	}
}

func varKey(v mir.Var) string {
	return fmt.Sprintf("%v/%d#%d", v.Scope, v.Ident, v.Version)
}

func TestLower_CallEncodesPreAndPostconditionsAgainstFreshReturnVar(t *testing.T) {
	mmod, _ := lowerToMIR(t, `
@assumes(param.a >= 0)
@ensures(__return__ >= param.a)
def inc(a: Int) -> Int {
	return a + 1;
}
def caller(x: Int) -> Int {
	return inc(x);
}
`)
	caller := mmod.Funcs[1]
	var call mir.FuncCallData
	found := false
	for _, st := range caller.Body {
		if st.Kind == mir.StmtFuncCall {
			call = st.Data.(mir.FuncCallData)
			found = true
		}
	}
	if !found {
		t.Fatal("expected a StmtFuncCall in caller's body")
	}
	if len(call.Preconditions) != 1 {
		t.Fatalf("Preconditions = %d, want 1", len(call.Preconditions))
	}
	if len(call.Postconditions) != 1 {
		t.Fatalf("Postconditions = %d, want 1", len(call.Postconditions))
	}
	if call.ReturnValue.Type != types.Int {
		t.Errorf("call's havoc'd return Var type = %v, want Int", call.ReturnValue.Type)
	}
}

func TestLower_LoopHavocsTouchedVarsAndAssertsInvariantTwice(t *testing.T) {
	mmod, _ := lowerToMIR(t, `
def count(n: Int) -> Int {
	i = 0;
	while i < n {
		loop_invariant(i <= n);
		i = i + 1;
	}
	return i;
}
`)
	var asserts, assumptions int
	for _, st := range mmod.Funcs[0].Body {
		switch st.Kind {
		case mir.StmtAssert:
			asserts++
		case mir.StmtAssumption:
			assumptions++
		}
	}
	if asserts < 2 {
		t.Errorf("asserts = %d, want >= 2 (entry check + preservation check)", asserts)
	}
	if assumptions < 1 {
		t.Errorf("assumptions = %d, want >= 1 (invariant assumed after havoc)", assumptions)
	}
}

func TestLower_BitwiseOperatorRejectedAtMIR(t *testing.T) {
	lowerToMIRExpectError(t, `
def f(x: Int) -> Int {
	return x & 1;
}
`)
}
