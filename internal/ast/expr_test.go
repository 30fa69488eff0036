package ast

import (
	"testing"

	"github.com/verislang/veris/internal/source"
)

func TestExprs_NameRoundTrip(t *testing.T) {
	exprs := NewExprs(0)
	name := source.StringID(7)
	id := exprs.NewName(source.Span{}, name)

	data, ok := exprs.Name(id)
	if !ok {
		t.Fatal("Name() returned ok=false")
	}
	if data.Name != name {
		t.Errorf("Name = %v, want %v", data.Name, name)
	}
}

func TestExprs_WrongKindAccessorFails(t *testing.T) {
	exprs := NewExprs(0)
	id := exprs.NewName(source.Span{}, 1)

	if _, ok := exprs.Binary(id); ok {
		t.Fatal("Binary() on a name expr should return ok=false")
	}
}

func TestExprs_BinaryRoundTrip(t *testing.T) {
	exprs := NewExprs(0)
	left := exprs.NewName(source.Span{}, 1)
	right := exprs.NewConst(source.Span{}, ExprConstData{Kind: ConstInt, Text: 2})
	id := exprs.NewBinary(source.Span{}, BinaryAdd, left, right)

	data, ok := exprs.Binary(id)
	if !ok {
		t.Fatal("Binary() returned ok=false")
	}
	if data.Op != BinaryAdd || data.Left != left || data.Right != right {
		t.Errorf("Binary data = %+v, want Op=Add Left=%v Right=%v", data, left, right)
	}
}

func TestExprs_CallRoundTrip(t *testing.T) {
	exprs := NewExprs(0)
	arg := exprs.NewConst(source.Span{}, ExprConstData{Kind: ConstBool, Bool: true})
	id := exprs.NewCall(source.Span{}, 5, source.Span{}, []ExprID{arg})

	data, ok := exprs.Call(id)
	if !ok {
		t.Fatal("Call() returned ok=false")
	}
	if data.Callee != 5 || len(data.Args) != 1 || data.Args[0] != arg {
		t.Errorf("Call data = %+v", data)
	}
}

func TestExprs_MemberRoundTrip(t *testing.T) {
	exprs := NewExprs(0)
	target := exprs.NewName(source.Span{}, 1)
	id := exprs.NewMember(source.Span{}, target, 9)

	data, ok := exprs.Member(id)
	if !ok {
		t.Fatal("Member() returned ok=false")
	}
	if data.Target != target || data.Field != 9 {
		t.Errorf("Member data = %+v", data)
	}
}

func TestExprID_IsValid(t *testing.T) {
	if NoExprID.IsValid() {
		t.Error("NoExprID.IsValid() = true, want false")
	}
	if !ExprID(1).IsValid() {
		t.Error("ExprID(1).IsValid() = false, want true")
	}
}
