package ast

import (
	"testing"

	"github.com/verislang/veris/internal/source"
)

func TestStmts_AssignRoundTrip(t *testing.T) {
	stmts := NewStmts(0)
	exprs := NewExprs(0)
	value := exprs.NewConst(source.Span{}, ExprConstData{Kind: ConstInt, Text: 1})

	id := stmts.NewAssign(source.Span{}, AssignStmtData{
		Targets: []source.StringID{3},
		Op:      AssignPlain,
		Value:   value,
	})

	data, ok := stmts.Assign(id)
	if !ok {
		t.Fatal("Assign() returned ok=false")
	}
	if len(data.Targets) != 1 || data.Targets[0] != 3 || data.Value != value {
		t.Errorf("Assign data = %+v", data)
	}
}

func TestStmts_BlockRoundTrip(t *testing.T) {
	stmts := NewStmts(0)
	pass := stmts.NewPass(source.Span{})
	block := stmts.NewBlock(source.Span{}, []StmtID{pass})

	data, ok := stmts.Block(block)
	if !ok {
		t.Fatal("Block() returned ok=false")
	}
	if len(data.Stmts) != 1 || data.Stmts[0] != pass {
		t.Errorf("Block data = %+v", data)
	}
}

func TestStmts_IfWithElifChain(t *testing.T) {
	stmts := NewStmts(0)
	exprs := NewExprs(0)
	cond1 := exprs.NewName(source.Span{}, 1)
	cond2 := exprs.NewName(source.Span{}, 2)
	thenBlock := stmts.NewBlock(source.Span{}, nil)
	elifBlock := stmts.NewBlock(source.Span{}, nil)

	elif := stmts.NewIf(source.Span{}, cond2, elifBlock, NoStmtID)
	outer := stmts.NewIf(source.Span{}, cond1, thenBlock, elif)

	data, ok := stmts.If(outer)
	if !ok {
		t.Fatal("If() returned ok=false")
	}
	if data.Else != elif {
		t.Fatalf("outer.Else = %v, want elif chain %v", data.Else, elif)
	}
	inner, ok := stmts.If(data.Else)
	if !ok {
		t.Fatal("chained elif is not a StmtIf")
	}
	if inner.Else != NoStmtID {
		t.Errorf("inner.Else = %v, want NoStmtID", inner.Else)
	}
}

func TestStmts_WhileRoundTrip(t *testing.T) {
	stmts := NewStmts(0)
	exprs := NewExprs(0)
	cond := exprs.NewName(source.Span{}, 1)
	body := stmts.NewBlock(source.Span{}, nil)

	id := stmts.NewWhile(source.Span{}, cond, body)
	data, ok := stmts.While(id)
	if !ok {
		t.Fatal("While() returned ok=false")
	}
	if data.Cond != cond || data.Body != body {
		t.Errorf("While data = %+v", data)
	}
}

func TestStmtID_IsValid(t *testing.T) {
	if NoStmtID.IsValid() {
		t.Error("NoStmtID.IsValid() = true, want false")
	}
	if !StmtID(1).IsValid() {
		t.Error("StmtID(1).IsValid() = false, want true")
	}
}
