package symbols

import (
	"testing"

	"github.com/verislang/veris/internal/types"
)

func TestTable_DeclareAndLookup(t *testing.T) {
	table := NewTable()
	sig := FuncSig{Name: 1, ReturnType: types.Int}

	if !table.Declare(sig) {
		t.Fatal("Declare() should succeed for a fresh name")
	}
	got, ok := table.Lookup(1)
	if !ok {
		t.Fatal("Lookup() should find the declared signature")
	}
	if got.ReturnType != types.Int {
		t.Errorf("ReturnType = %v, want Int", got.ReturnType)
	}
}

func TestTable_DeclareDuplicateFails(t *testing.T) {
	table := NewTable()
	table.Declare(FuncSig{Name: 1})
	if table.Declare(FuncSig{Name: 1}) {
		t.Fatal("Declare() should fail for a name already registered")
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestTable_LookupMissing(t *testing.T) {
	table := NewTable()
	if _, ok := table.Lookup(99); ok {
		t.Fatal("Lookup() should fail for an undeclared name")
	}
}
