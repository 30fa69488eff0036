package mir

import (
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/types"
)

// FuncDef is one function's independent verification unit: its own Branch
// tree, seeded by binding each parameter to a fresh Var. The callee's body
// is lowered and kept here for whatever diagnostic value it has, but a call
// site never inlines it — see FuncCallData.
type FuncDef struct {
	Name    source.StringID
	Params  []Var
	RetType types.Kind
	Body    []Stmt
	Span    source.Span

	// Vars is every Var created anywhere in this function's Branch tree,
	// read off its root the same way Module.Vars is — LIR's declare-fun
	// output needs the full per-function declaration list.
	Vars []Var
}
