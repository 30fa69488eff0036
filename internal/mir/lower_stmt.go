package mir

import (
	"fmt"

	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/hir"
)

// lowerBlock lowers a sequence of HIR statements in order against b,
// concatenating whatever each one expands to (a call's FuncCall encoding,
// an if's reconciliation assigns, ...).
func (l *lowerer) lowerBlock(stmts []hir.Stmt, b *Branch) ([]Stmt, bool) {
	var out []Stmt
	for i := range stmts {
		lowered, ok := l.lowerStmt(&stmts[i], b)
		if !ok {
			return nil, false
		}
		out = append(out, lowered...)
	}
	return out, true
}

func (l *lowerer) lowerStmt(s *hir.Stmt, b *Branch) ([]Stmt, bool) {
	switch s.Kind {
	case hir.StmtPass:
		return nil, true

	case hir.StmtAssign:
		data := s.Data.(hir.AssignData)
		var stmts []Stmt
		rhs, ok := l.lowerExpr(data.Rhs, b, nil, &stmts)
		if !ok {
			return nil, false
		}
		lhs := data.Lhs.Data.(hir.NameData)
		v := b.storeVar(lhs.Ident, data.Rhs.Type)
		stmts = append(stmts, newAssign(s.Span, b.PathCondition(), v, rhs))
		return stmts, true

	case hir.StmtAssert:
		data := s.Data.(hir.AssertData)
		var stmts []Stmt
		test, ok := l.lowerExpr(data.Test, b, nil, &stmts)
		if !ok {
			return nil, false
		}
		stmts = append(stmts, newAssert(s.Span, b.PathCondition(), test))
		return stmts, true

	case hir.StmtIf:
		return l.lowerIf(s, b)

	case hir.StmtLoop:
		return l.lowerLoop(s, b)

	default:
		l.errorf(diag.LowerUnsupportedConstruct, s.Span, fmt.Sprintf("unsupported statement kind %v", s.Kind))
		return nil, false
	}
}

// lowerIf opens one child branch per arm — always both, even when the
// source had no else, so reconcile's per-child resolveVar(x) walk finds the
// pre-if value on the untaken arm via the parent-chain fallback — lowers
// each arm independently, then reconciles them back into b.
func (l *lowerer) lowerIf(s *hir.Stmt, b *Branch) ([]Stmt, bool) {
	data := s.Data.(hir.IfData)

	var stmts []Stmt
	test, ok := l.lowerExpr(data.Test, b, nil, &stmts)
	if !ok {
		return nil, false
	}

	thenBranch := b.subscope(&test)
	thenStmts, ok := l.lowerBlock(data.Body, thenBranch)
	if !ok {
		return nil, false
	}

	negated := NewCallExpr(data.Test.Span, data.Test.Type, FuncNot, []Expr{test})
	elseBranch := b.subscope(&negated)
	elseStmts, ok := l.lowerBlock(data.Orelse, elseBranch)
	if !ok {
		return nil, false
	}

	stmts = append(stmts, thenStmts...)
	stmts = append(stmts, elseStmts...)
	stmts = append(stmts, b.reconcile()...)
	return stmts, true
}
