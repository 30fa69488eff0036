package mir

import "github.com/verislang/veris/internal/hir"

// lowerLoop abstracts a while loop by its invariants rather than unrolling
// it: assert the invariants hold on entry, havoc every touched variable to
// a fresh unconstrained version, assume the invariants hold against those
// havoc'd versions, then lower the body once in its own child branch and
// re-assert the invariants there as a preservation check. The body branch
// is never reconciled back into the parent — loop abstraction deliberately
// discards its concrete per-iteration effects; only the havoc'd versions
// remain resolvable after the loop.
func (l *lowerer) lowerLoop(s *hir.Stmt, b *Branch) ([]Stmt, bool) {
	data := s.Data.(hir.LoopData)
	var stmts []Stmt

	for _, inv := range data.Invariants {
		test, ok := l.lowerExpr(inv, b, nil, &stmts)
		if !ok {
			return nil, false
		}
		stmts = append(stmts, newAssert(inv.Span, b.PathCondition(), test))
	}

	for _, ident := range data.TouchedVars {
		if v, ok := b.resolveVar(ident); ok {
			b.storeVar(ident, v.Type)
		}
	}

	for _, inv := range data.Invariants {
		test, ok := l.lowerExpr(inv, b, nil, &stmts)
		if !ok {
			return nil, false
		}
		stmts = append(stmts, newAssumption(inv.Span, b.PathCondition(), test))
	}

	test, ok := l.lowerExpr(data.Test, b, nil, &stmts)
	if !ok {
		return nil, false
	}

	body := b.subscope(&test)
	bodyStmts, ok := l.lowerBlock(data.Body, body)
	if !ok {
		return nil, false
	}
	stmts = append(stmts, bodyStmts...)
	// The body branch is intentionally never reconciled back into b (its
	// concrete per-iteration effects are discarded by design), but it must
	// still be marked consumed so a later if/else opened directly in b
	// doesn't try to fold it in when it next calls reconcile().
	b.reconciledUpTo = len(b.children)

	for _, inv := range data.Invariants {
		preserved, ok := l.lowerExpr(inv, body, nil, &stmts)
		if !ok {
			return nil, false
		}
		stmts = append(stmts, newAssert(inv.Span, body.PathCondition(), preserved))
	}

	negated := NewCallExpr(data.Test.Span, data.Test.Type, FuncNot, []Expr{test})
	stmts = append(stmts, newAssumption(s.Span, b.PathCondition(), negated))

	return stmts, true
}
