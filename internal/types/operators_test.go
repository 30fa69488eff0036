package types

import (
	"testing"

	"github.com/verislang/veris/internal/ast"
)

func TestCheckBinary_Arithmetic(t *testing.T) {
	got, ok := CheckBinary(ast.BinaryAdd, Int, Int)
	if !ok || got != Int {
		t.Errorf("Int + Int = %v, %v; want Int, true", got, ok)
	}
	got, ok = CheckBinary(ast.BinaryAdd, Int, Real)
	if !ok || got != Real {
		t.Errorf("Int + Real = %v, %v; want Real, true", got, ok)
	}
}

func TestCheckBinary_BoolPromotesInArithmetic(t *testing.T) {
	got, ok := CheckBinary(ast.BinaryAdd, Bool, Int)
	if !ok || got != Int {
		t.Errorf("Bool + Int = %v, %v; want Int, true", got, ok)
	}
}

func TestCheckBinary_Comparison(t *testing.T) {
	got, ok := CheckBinary(ast.BinaryLess, Int, Real)
	if !ok || got != Bool {
		t.Errorf("Int < Real = %v, %v; want Bool, true", got, ok)
	}
}

func TestCheckBinary_LogicalRejectsNonBool(t *testing.T) {
	if _, ok := CheckBinary(ast.BinaryAnd, Int, Bool); ok {
		t.Error("Int and Bool should be rejected")
	}
	got, ok := CheckBinary(ast.BinaryAnd, Bool, Bool)
	if !ok || got != Bool {
		t.Errorf("Bool and Bool = %v, %v; want Bool, true", got, ok)
	}
}

func TestCheckBinary_ShiftRejectsReal(t *testing.T) {
	if _, ok := CheckBinary(ast.BinaryShl, Real, Int); ok {
		t.Error("Real << Int should be rejected: shifts are Int-only")
	}
	got, ok := CheckBinary(ast.BinaryShl, Int, Int)
	if !ok || got != Int {
		t.Errorf("Int << Int = %v, %v; want Int, true", got, ok)
	}
}

func TestCheckUnary_Not(t *testing.T) {
	got, ok := CheckUnary(ast.UnaryNot, Bool)
	if !ok || got != Bool {
		t.Errorf("not Bool = %v, %v; want Bool, true", got, ok)
	}
	if _, ok := CheckUnary(ast.UnaryNot, Int); ok {
		t.Error("not Int should be rejected")
	}
}

func TestCheckUnary_Invert(t *testing.T) {
	got, ok := CheckUnary(ast.UnaryInvert, Int)
	if !ok || got != Int {
		t.Errorf("~Int = %v, %v; want Int, true", got, ok)
	}
	if _, ok := CheckUnary(ast.UnaryInvert, Real); ok {
		t.Error("~Real should be rejected: bitwise invert has no Real counterpart")
	}
}

func TestCheckUnary_Neg(t *testing.T) {
	got, ok := CheckUnary(ast.UnaryNeg, Real)
	if !ok || got != Real {
		t.Errorf("-Real = %v, %v; want Real, true", got, ok)
	}
	if _, ok := CheckUnary(ast.UnaryNeg, Bool); ok {
		t.Error("-Bool should be rejected")
	}
}
