package mir

import (
	"github.com/verislang/veris/internal/hir"
)

// lowerFunc gives fn its own independent Branch tree, seeded by binding
// each parameter to a fresh Var. Preconditions become Assumptions at the
// top of the body; postconditions are combined with `and` into a single
// tail Assert. The tree's root has an empty path condition, so these hold
// unconditionally — exactly the contract a call site relies on without
// ever re-exploring fn's body.
func (l *lowerer) lowerFunc(fn *hir.FuncDef) (*FuncDef, bool) {
	root := newRoot()

	params := make([]Var, 0, len(fn.Params))
	for _, p := range fn.Params {
		params = append(params, root.storeVar(p.Name, p.Type))
	}

	var body []Stmt
	for _, pre := range fn.Preconds {
		test, ok := l.lowerExpr(pre, root, nil, &body)
		if !ok {
			return nil, false
		}
		body = append(body, newAssumption(pre.Span, root.PathCondition(), test))
	}

	bodyStmts, ok := l.lowerBlock(fn.Body, root)
	if !ok {
		return nil, false
	}
	body = append(body, bodyStmts...)

	if len(fn.Postconds) > 0 {
		var conj Expr
		for i, post := range fn.Postconds {
			lowered, ok := l.lowerExpr(post, root, nil, &body)
			if !ok {
				return nil, false
			}
			if i == 0 {
				conj = lowered
				continue
			}
			conj = NewCallExpr(post.Span, post.Type, FuncAnd, []Expr{conj, lowered})
		}
		body = append(body, newAssert(fn.Span, root.PathCondition(), conj))
	}

	return &FuncDef{
		Name:    fn.Name,
		Params:  params,
		RetType: fn.RetType,
		Body:    body,
		Span:    fn.Span,
		Vars:    root.AllVars(),
	}, true
}
