// Package symbols builds the function-signature table HIR lowering uses to
// resolve calls: every top-level function's parameter and return types, and
// whether it carries assumes/ensures contracts.
package symbols

import (
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/types"
)

// ParamSig is one resolved function parameter.
type ParamSig struct {
	Name source.StringID
	Type types.Kind
}

// FuncSig is a resolved function signature, independent of the function's
// body — built once per module before HIR lowers any function, so a call to
// a function defined later in the file still resolves.
type FuncSig struct {
	Name       source.StringID
	Params     []ParamSig
	ReturnType types.Kind // types.Invalid if the function declares no return type
	HasAssumes bool
	HasEnsures bool
	Span       source.Span
}

// Table maps an interned function name to its resolved signature.
type Table struct {
	byName map[source.StringID]*FuncSig
}

// NewTable creates an empty signature table.
func NewTable() *Table {
	return &Table{byName: make(map[source.StringID]*FuncSig)}
}

// Declare registers sig under its name. It reports false if a function with
// the same name was already declared (this language has no overloading).
func (t *Table) Declare(sig FuncSig) bool {
	if _, exists := t.byName[sig.Name]; exists {
		return false
	}
	cp := sig
	t.byName[sig.Name] = &cp
	return true
}

// Lookup returns the signature registered for name, if any.
func (t *Table) Lookup(name source.StringID) (*FuncSig, bool) {
	sig, ok := t.byName[name]
	return sig, ok
}

// Len returns the number of declared signatures.
func (t *Table) Len() int { return len(t.byName) }
