package lir

import (
	"fmt"

	"github.com/verislang/veris/internal/mir"
	"github.com/verislang/veris/internal/types"
)

func (l *lowerer) lowerStmts(stmts []mir.Stmt) []Item {
	var items []Item
	for _, st := range stmts {
		items = append(items, l.lowerStmt(st)...)
	}
	return items
}

func (l *lowerer) lowerStmt(st mir.Stmt) []Item {
	switch st.Kind {
	case mir.StmtAssign:
		data := st.Data.(mir.AssignData)
		lhs := newSymbol(st.Span, data.Lhs.Type, l.name(data.Lhs))
		rhs := l.lowerExpr(data.Rhs)
		eq := newCall(st.Span, types.Bool, mir.FuncEq, []Expr{lhs, rhs})
		return []Item{newAssume(st.Span, eq)}

	case mir.StmtAssert:
		data := st.Data.(mir.AssertData)
		return []Item{newValidityScope(st.Span, l.lowerExprs(data.PathCondition), l.lowerExpr(data.Test))}

	case mir.StmtAssumption:
		data := st.Data.(mir.AssumptionData)
		test := l.guard(l.lowerExprs(data.PathCondition), l.lowerExpr(data.Test))
		return []Item{newAssume(st.Span, test)}

	case mir.StmtFuncCall:
		return l.lowerFuncCall(st)

	default:
		panic(fmt.Sprintf("lir: unhandled mir.StmtKind %v", st.Kind))
	}
}

// lowerFuncCall assigns this call its "!call_<n>!" fragment, then expands
// its preconditions into ValidityScopes (the caller must prove them) and
// its postconditions into standing Assumes (ambient from here on) — both
// guarded by the call's own path condition.
func (l *lowerer) lowerFuncCall(st mir.Stmt) []Item {
	data := st.Data.(mir.FuncCallData)

	idx := l.callCounter
	l.callCounter++
	l.callReturnPrefix[varKey(data.ReturnValue)] = fmt.Sprintf("!call_%d!", idx)

	pc := l.lowerExprs(data.PathCondition)

	var items []Item
	for _, pre := range data.Preconditions {
		items = append(items, newValidityScope(st.Span, pc, l.lowerExpr(pre)))
	}
	for _, post := range data.Postconditions {
		guarded := l.guard(pc, l.lowerExpr(post))
		items = append(items, newAssume(st.Span, guarded))
	}
	return items
}
