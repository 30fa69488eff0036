package symbols

import (
	"fmt"

	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/types"
)

// Names are the well-known annotation names used in decorator position.
// They are ordinary identifiers lexically (internal/token never reserves
// them); symbols and hir recognize them structurally instead.
const (
	AnnotationAssumes       = "assumes"
	AnnotationEnsures       = "ensures"
	AnnotationLoopInvariant = "loop_invariant"
	ReservedReturn          = "__return__"
	ReservedParamPrefix     = "param"
)

// Build resolves every top-level function in funcs into a Table. A function
// whose declared parameter or return type annotation falls outside the
// closed type lattice is reported via bag and excluded from the table, so
// later lowering stages never see an unresolved type.
func Build(funcs *ast.Funcs, ids []ast.FuncID, interner *source.Interner, bag *diag.Bag) *Table {
	table := NewTable()
	assumesID := interner.Intern(AnnotationAssumes)
	ensuresID := interner.Intern(AnnotationEnsures)

	for _, id := range ids {
		def := funcs.Get(id)
		if def == nil {
			continue
		}

		sig := FuncSig{Name: def.Name, Span: def.Span}

		ok := true
		for _, p := range def.Params {
			typeName := interner.MustLookup(p.TypeName)
			kind, found := types.Lookup(typeName)
			if !found {
				d := diag.NewError(diag.LowerUnsupportedConstruct, p.Span,
					fmt.Sprintf("parameter %q has unsupported type %q", interner.MustLookup(p.Name), typeName))
				bag.Add(&d)
				ok = false
				continue
			}
			sig.Params = append(sig.Params, ParamSig{Name: p.Name, Type: kind})
		}

		if def.ReturnType != source.NoStringID {
			typeName := interner.MustLookup(def.ReturnType)
			kind, found := types.Lookup(typeName)
			if !found {
				d := diag.NewError(diag.LowerUnsupportedConstruct, def.Span,
					fmt.Sprintf("function %q declares unsupported return type %q", interner.MustLookup(def.Name), typeName))
				bag.Add(&d)
				ok = false
			} else {
				sig.ReturnType = kind
			}
		} else {
			sig.ReturnType = types.Invalid
		}

		for _, dec := range def.Decorators {
			switch dec.Name {
			case assumesID:
				sig.HasAssumes = true
			case ensuresID:
				sig.HasEnsures = true
			}
		}

		if !ok {
			continue
		}
		if !table.Declare(sig) {
			d := diag.NewError(diag.LowerIllegalOperation, def.Span,
				fmt.Sprintf("function %q is declared more than once", interner.MustLookup(def.Name)))
			bag.Add(&d)
		}
	}

	return table
}
