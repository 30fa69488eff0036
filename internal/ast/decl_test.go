package ast

import (
	"testing"

	"github.com/verislang/veris/internal/source"
)

func TestFuncs_NewAndGet(t *testing.T) {
	funcs := NewFuncs(0)
	id := funcs.New(FuncDef{
		Name:   1,
		Params: []Param{{Name: 2, TypeName: 3}},
	})

	got := funcs.Get(id)
	if got == nil {
		t.Fatal("Get() returned nil")
	}
	if got.Name != 1 || len(got.Params) != 1 || got.Params[0].Name != 2 {
		t.Errorf("FuncDef = %+v", got)
	}
}

func TestFuncID_IsValid(t *testing.T) {
	if NoFuncID.IsValid() {
		t.Error("NoFuncID.IsValid() = true, want false")
	}
	if !FuncID(1).IsValid() {
		t.Error("FuncID(1).IsValid() = false, want true")
	}
}

func TestBuilder_NewModule(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	fn := b.Funcs.New(FuncDef{Name: b.Intern("main")})
	mod := b.NewModule(source.Span{}, []FuncID{fn}, nil)

	if len(mod.Funcs) != 1 || mod.Funcs[0] != fn {
		t.Errorf("Module.Funcs = %v", mod.Funcs)
	}
}
