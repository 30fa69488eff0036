package types

import "testing"

func TestLookup(t *testing.T) {
	cases := map[string]Kind{"Bool": Bool, "Int": Int, "Real": Real}
	for name, want := range cases {
		got, ok := Lookup(name)
		if !ok || got != want {
			t.Errorf("Lookup(%q) = %v, %v; want %v, true", name, got, ok, want)
		}
	}
	if _, ok := Lookup("String"); ok {
		t.Error("Lookup(\"String\") should fail: not in the closed lattice")
	}
}

func TestPromotesTo(t *testing.T) {
	if !PromotesTo(Bool, Int) {
		t.Error("Bool should promote to Int")
	}
	if !PromotesTo(Int, Real) {
		t.Error("Int should promote to Real")
	}
	if !PromotesTo(Bool, Real) {
		t.Error("Bool should promote to Real transitively")
	}
	if PromotesTo(Real, Int) {
		t.Error("Real should not demote to Int")
	}
	if PromotesTo(Int, Bool) {
		t.Error("Int should not demote to Bool")
	}
}

func TestUnify(t *testing.T) {
	got, ok := Unify(Bool, Int)
	if !ok || got != Int {
		t.Errorf("Unify(Bool, Int) = %v, %v; want Int, true", got, ok)
	}
	got, ok = Unify(Int, Real)
	if !ok || got != Real {
		t.Errorf("Unify(Int, Real) = %v, %v; want Real, true", got, ok)
	}
	if _, ok := Unify(Invalid, Int); ok {
		t.Error("Unify with Invalid should fail")
	}
}

func TestKindString(t *testing.T) {
	if Bool.String() != "Bool" || Int.String() != "Int" || Real.String() != "Real" {
		t.Errorf("unexpected Kind.String() output: %s %s %s", Bool, Int, Real)
	}
}
