package hir

import (
	"fmt"

	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/symbols"
	"github.com/verislang/veris/internal/types"
)

// lowerFunc lowers one top-level function, including its @assumes/@ensures
// contracts. __return__ is bound into the function's own scope only — it
// never leaks into the module's top-level scope or into a sibling function.
func (l *lowerer) lowerFunc(id ast.FuncID) (*FuncDef, bool) {
	def := l.b.Funcs.Get(id)
	if def == nil {
		l.errorf(diag.LowerUnsupportedConstruct, source.Span{}, "missing function")
		return nil, false
	}

	sig, ok := l.table.Lookup(def.Name)
	if !ok {
		// symbols.Build already reported why this function has no signature.
		return nil, false
	}

	sc := newScope()
	params := make([]Param, 0, len(def.Params))
	for i, p := range def.Params {
		sc.bind(p.Name, sig.Params[i].Type)
		params = append(params, Param{Name: p.Name, Type: sig.Params[i].Type, Span: p.Span})
	}
	if sig.ReturnType != types.Invalid {
		sc.bind(l.returnIdent, sig.ReturnType)
	}

	prevInFunc, prevRet := l.inFunc, l.retType
	l.inFunc, l.retType = true, sig.ReturnType
	defer func() { l.inFunc, l.retType = prevInFunc, prevRet }()

	preconds, postconds, ok := l.lowerContracts(def.Decorators, sc)
	if !ok {
		return nil, false
	}

	bodyBlock, isBlock := l.b.Stmts.Block(def.Body)
	if !isBlock {
		l.errorf(diag.LowerUnsupportedConstruct, def.Span, "function body must be a block")
		return nil, false
	}
	body, ok := l.lowerBlock(bodyBlock.Stmts, sc)
	if !ok {
		return nil, false
	}

	return &FuncDef{
		Name:      def.Name,
		Params:    params,
		RetType:   sig.ReturnType,
		Preconds:  preconds,
		Postconds: postconds,
		Body:      body,
		Span:      def.Span,
	}, true
}

// lowerContracts lowers every @assumes/@ensures argument against sc, which
// already carries the function's parameters (and __return__, for a
// non-void function) — arguments may reference a parameter either by bare
// name or via the param.<name> member form. Any other decorator is
// rejected: this language has no other annotation surface.
func (l *lowerer) lowerContracts(decorators []ast.Decorator, sc scope) (preconds, postconds []*Expr, ok bool) {
	assumesID := l.interner.Intern(symbols.AnnotationAssumes)
	ensuresID := l.interner.Intern(symbols.AnnotationEnsures)

	for _, dec := range decorators {
		var bucket *[]*Expr
		switch dec.Name {
		case assumesID:
			bucket = &preconds
		case ensuresID:
			bucket = &postconds
		default:
			l.errorf(diag.LowerUnsupportedConstruct, dec.Span,
				fmt.Sprintf("unsupported decorator %q", l.interner.MustLookup(dec.Name)))
			return nil, nil, false
		}
		for _, argID := range dec.Args {
			e, ok2 := l.lowerExpr(argID, sc, true)
			if !ok2 {
				return nil, nil, false
			}
			*bucket = append(*bucket, l.booleanize(e))
		}
	}
	return preconds, postconds, true
}
