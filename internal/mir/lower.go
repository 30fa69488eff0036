package mir

import (
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/hir"
	"github.com/verislang/veris/internal/source"
)

// Lower rewrites a lowered HIR module into MIR: every function gets its own
// Branch tree seeded by its parameters, then the module's top-level
// statements are lowered against a fresh root. returnIdent is the interned
// "__return__" identifier hir.Lower used, reused here so a call site's
// havoc'd return Var and a callee's own internal return Var share one
// identity (LIR's call-counter prefix keeps them textually distinct).
func Lower(mod *hir.Module, returnIdent source.StringID, bag *diag.Bag) (*Module, bool) {
	l := &lowerer{bag: bag, returnIdent: returnIdent, funcsByName: make(map[source.StringID]*hir.FuncDef, len(mod.Funcs))}
	for _, fn := range mod.Funcs {
		l.funcsByName[fn.Name] = fn
	}

	funcs := make([]*FuncDef, 0, len(mod.Funcs))
	for _, fn := range mod.Funcs {
		mfn, ok := l.lowerFunc(fn)
		if !ok {
			return nil, false
		}
		funcs = append(funcs, mfn)
	}

	root := newRoot()
	body, ok := l.lowerBlock(mod.Body, root)
	if !ok {
		return nil, false
	}

	return &Module{Vars: root.AllVars(), Body: body, Funcs: funcs}, true
}

// lowerer holds the state threaded through one module's MIR lowering pass.
type lowerer struct {
	bag         *diag.Bag
	returnIdent source.StringID
	funcsByName map[source.StringID]*hir.FuncDef
}

func (l *lowerer) errorf(code diag.Code, span source.Span, msg string) {
	d := diag.NewError(code, span, msg)
	l.bag.Add(&d)
}
