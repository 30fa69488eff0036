package hir

import (
	"fmt"
	"sort"

	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/symbols"
	"github.com/verislang/veris/internal/types"
)

func (l *lowerer) lowerBlock(ids []ast.StmtID, sc scope) ([]Stmt, bool) {
	out := make([]Stmt, 0, len(ids))
	for _, id := range ids {
		stmts, ok := l.lowerStmt(id, sc)
		if !ok {
			return nil, false
		}
		out = append(out, stmts...)
	}
	return out, true
}

// lowerStmt returns a slice because one source statement, a chained
// assignment a = b = e, desugars into multiple independent HIR Assigns.
func (l *lowerer) lowerStmt(id ast.StmtID, sc scope) ([]Stmt, bool) {
	node := l.b.Stmts.Get(id)
	if node == nil {
		l.errorf(diag.LowerUnsupportedConstruct, source.Span{}, "missing statement")
		return nil, false
	}

	switch node.Kind {
	case ast.StmtPass:
		return []Stmt{newPass(node.Span)}, true
	case ast.StmtAssign:
		return l.lowerAssign(id, node.Span, sc)
	case ast.StmtAssert:
		st, ok := l.lowerAssert(id, node.Span, sc)
		return []Stmt{st}, ok
	case ast.StmtExpr:
		l.errorf(diag.LowerUnsupportedConstruct, node.Span,
			"expression statements are only valid as the loop_invariant(...) call opening a while body")
		return nil, false
	case ast.StmtReturn:
		st, ok := l.lowerReturn(id, node.Span, sc)
		return []Stmt{st}, ok
	case ast.StmtIf:
		st, ok := l.lowerIf(id, node.Span, sc)
		return []Stmt{st}, ok
	case ast.StmtWhile:
		st, ok := l.lowerWhile(id, node.Span, sc)
		return []Stmt{st}, ok
	case ast.StmtBlock:
		l.errorf(diag.LowerUnsupportedConstruct, node.Span, "a bare block is not a valid statement here")
		return nil, false
	default:
		l.errorf(diag.LowerUnsupportedConstruct, node.Span, "unsupported statement")
		return nil, false
	}
}

func (l *lowerer) touch(name source.StringID) {
	if l.touchSet != nil {
		(*l.touchSet)[name] = struct{}{}
	}
}

func (l *lowerer) lowerAssign(id ast.StmtID, span source.Span, sc scope) ([]Stmt, bool) {
	a, _ := l.b.Stmts.Assign(id)
	if a.Op != ast.AssignPlain {
		st, ok := l.lowerAugmentedAssign(a, span, sc)
		return []Stmt{st}, ok
	}

	rhs, ok := l.lowerExpr(a.Value, sc, false)
	if !ok {
		return nil, false
	}

	out := make([]Stmt, 0, len(a.Targets))
	for _, target := range a.Targets {
		l.touch(target)
		sc.bind(target, rhs.Type)
		lhs := NewName(span, rhs.Type, target, NameStore)
		out = append(out, newAssign(span, lhs, rhs))
	}
	return out, true
}

// lowerAugmentedAssign desugars `x op= y` into `x = x op y`: the rhs Name
// load of x is built against the pre-update scope, before x's binding is
// touched, so it naturally evaluates to the pre-update value.
func (l *lowerer) lowerAugmentedAssign(a *ast.AssignStmtData, span source.Span, sc scope) (Stmt, bool) {
	target := a.Targets[0]
	l.touch(target)

	oldKind, ok := sc.lookup(target)
	if !ok {
		l.errorf(diag.LowerIllegalOperation, span,
			fmt.Sprintf("%q is read before it is ever assigned", l.interner.MustLookup(target)))
		return Stmt{}, false
	}
	old := NewName(span, oldKind, target, NameLoad)

	rhsValue, ok := l.lowerExpr(a.Value, sc, false)
	if !ok {
		return Stmt{}, false
	}

	astOp, ok := assignBinOp[a.Op]
	if !ok {
		l.errorf(diag.LowerUnsupportedConstruct, span, "unsupported augmented assignment")
		return Stmt{}, false
	}
	combined, ok := l.applyBinary(span, astOp, old, rhsValue)
	if !ok {
		return Stmt{}, false
	}

	sc.bind(target, combined.Type)
	lhs := NewName(span, combined.Type, target, NameStore)
	return newAssign(span, lhs, combined), true
}

func (l *lowerer) lowerAssert(id ast.StmtID, span source.Span, sc scope) (Stmt, bool) {
	a, _ := l.b.Stmts.Assert(id)
	test, ok := l.lowerExpr(a.Cond, sc, false)
	if !ok {
		return Stmt{}, false
	}
	return newAssert(span, l.booleanize(test)), true
}

func (l *lowerer) lowerReturn(id ast.StmtID, span source.Span, sc scope) (Stmt, bool) {
	if !l.inFunc {
		l.errorf(diag.LowerUnsupportedConstruct, span, "return outside of a function")
		return Stmt{}, false
	}
	r, _ := l.b.Stmts.Return(id)

	if !r.Value.IsValid() {
		if l.retType != types.Invalid {
			l.errorf(diag.LowerIllegalOperation, span, "function declares a return type but this return has no value")
			return Stmt{}, false
		}
		return newPass(span), true
	}
	if l.retType == types.Invalid {
		l.errorf(diag.LowerIllegalOperation, span, "a function with no declared return type cannot return a value")
		return Stmt{}, false
	}

	value, ok := l.lowerExpr(r.Value, sc, false)
	if !ok {
		return Stmt{}, false
	}
	if !types.PromotesTo(value.Type, l.retType) {
		l.errorf(diag.LowerIllegalOperation, span,
			fmt.Sprintf("return value has type %s, want %s", value.Type, l.retType))
		return Stmt{}, false
	}

	l.touch(l.returnIdent)
	sc.bind(l.returnIdent, l.retType)
	lhs := NewName(span, l.retType, l.returnIdent, NameStore)
	return newAssign(span, lhs, value), true
}

func (l *lowerer) lowerIf(id ast.StmtID, span source.Span, sc scope) (Stmt, bool) {
	i, _ := l.b.Stmts.If(id)
	test, ok := l.lowerExpr(i.Cond, sc, false)
	if !ok {
		return Stmt{}, false
	}
	test = l.booleanize(test)

	thenBlock, isBlock := l.b.Stmts.Block(i.Then)
	if !isBlock {
		l.errorf(diag.LowerUnsupportedConstruct, span, "if body must be a block")
		return Stmt{}, false
	}
	thenScope := sc.clone()
	thenBody, ok := l.lowerBlock(thenBlock.Stmts, thenScope)
	if !ok {
		return Stmt{}, false
	}

	var elseBody []Stmt
	elseScope := sc.clone()
	if i.Else.IsValid() {
		elseNode := l.b.Stmts.Get(i.Else)
		if elseNode == nil {
			l.errorf(diag.LowerUnsupportedConstruct, span, "missing else clause")
			return Stmt{}, false
		}
		if elseNode.Kind == ast.StmtBlock {
			elseBlock, _ := l.b.Stmts.Block(i.Else)
			elseBody, ok = l.lowerBlock(elseBlock.Stmts, elseScope)
		} else {
			// An elif chain is a nested StmtIf sitting directly in Else.
			elseBody, ok = l.lowerStmt(i.Else, elseScope)
		}
		if !ok {
			return Stmt{}, false
		}
	}

	sc.mergeBranch(thenScope)
	sc.mergeBranch(elseScope)
	return newIf(span, test, thenBody, elseBody), true
}

func (l *lowerer) lowerWhile(id ast.StmtID, span source.Span, sc scope) (Stmt, bool) {
	w, _ := l.b.Stmts.While(id)
	test, ok := l.lowerExpr(w.Cond, sc, false)
	if !ok {
		return Stmt{}, false
	}
	test = l.booleanize(test)

	bodyBlock, isBlock := l.b.Stmts.Block(w.Body)
	if !isBlock || len(bodyBlock.Stmts) == 0 {
		l.errorf(diag.LowerMissingInvariant, span,
			fmt.Sprintf("while body must begin with %s(...)", symbols.AnnotationLoopInvariant))
		return Stmt{}, false
	}

	first := l.b.Stmts.Get(bodyBlock.Stmts[0])
	var call *ast.ExprCallData
	if first != nil && first.Kind == ast.StmtExpr {
		exprStmt, _ := l.b.Stmts.ExprStmt(bodyBlock.Stmts[0])
		if c, isCall := l.b.Exprs.Call(exprStmt.Value); isCall && l.interner.MustLookup(c.Callee) == symbols.AnnotationLoopInvariant {
			call = c
		}
	}
	if call == nil {
		l.errorf(diag.LowerMissingInvariant, span,
			fmt.Sprintf("while body must begin with %s(...)", symbols.AnnotationLoopInvariant))
		return Stmt{}, false
	}

	loopScope := sc.clone()
	invariants := make([]*Expr, 0, len(call.Args))
	for _, argID := range call.Args {
		inv, ok := l.lowerExpr(argID, loopScope, false)
		if !ok {
			return Stmt{}, false
		}
		invariants = append(invariants, l.booleanize(inv))
	}

	touched := make(map[source.StringID]struct{})
	prevTouch := l.touchSet
	l.touchSet = &touched
	body, ok := l.lowerBlock(bodyBlock.Stmts[1:], loopScope)
	l.touchSet = prevTouch
	if prevTouch != nil {
		for name := range touched {
			(*prevTouch)[name] = struct{}{}
		}
	}
	if !ok {
		return Stmt{}, false
	}

	sc.mergeBranch(loopScope)

	touchedVars := make([]source.StringID, 0, len(touched))
	for name := range touched {
		touchedVars = append(touchedVars, name)
	}
	sort.Slice(touchedVars, func(a, b int) bool { return touchedVars[a] < touchedVars[b] })

	return newLoop(span, test, invariants, body, touchedVars), true
}
