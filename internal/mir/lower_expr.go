package mir

import (
	"fmt"

	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/hir"
	"github.com/verislang/veris/internal/source"
)

var binFuncOf = map[hir.BinOp]FuncID{
	hir.BinAdd: FuncAdd,
	hir.BinSub: FuncSub,
	hir.BinMul: FuncMul,
	hir.BinDiv: FuncDiv,
	hir.BinMod: FuncMod,
	hir.BinAnd: FuncAnd,
	hir.BinOr:  FuncOr,
	hir.BinEq:  FuncEq,
	hir.BinLt:  FuncLt,
	hir.BinLte: FuncLte,
	hir.BinGt:  FuncGt,
	hir.BinGte: FuncGte,
}

var unaryFuncOf = map[hir.UnaryOp]FuncID{
	hir.UnaryNot: FuncNot,
	hir.UnarySub: FuncNeg,
}

// lowerExpr rewrites one HIR expression into MIR, threading three things
// through: b, the branch a bare Name load resolves against; bindings, a
// call-site substitution (nil outside a modular call's precondition/
// postcondition evaluation) that overrides scope resolution for parameter
// and __return__ names; and out, the statement sink a nested function call
// appends its FuncCall encoding to before its havoc'd return value can be
// used here.
func (l *lowerer) lowerExpr(e *hir.Expr, b *Branch, bindings map[source.StringID]Expr, out *[]Stmt) (Expr, bool) {
	switch e.Kind {
	case hir.ExprConstant:
		data := e.Data.(hir.ConstantData)
		return NewConstantExpr(e.Span, e.Type, ConstantData{Int: data.Int, Real: data.Real, Bool: data.Bool}), true

	case hir.ExprName:
		data := e.Data.(hir.NameData)
		if bindings != nil {
			if v, ok := bindings[data.Ident]; ok {
				return v, true
			}
		}
		v, ok := b.resolveVar(data.Ident)
		if !ok {
			l.errorf(diag.LowerIllegalOperation, e.Span, "reference to a variable with no recorded MIR binding")
			return Expr{}, false
		}
		return NewVarExpr(e.Span, v), true

	case hir.ExprBinary:
		data := e.Data.(hir.BinaryData)
		left, ok := l.lowerExpr(data.Left, b, bindings, out)
		if !ok {
			return Expr{}, false
		}
		right, ok := l.lowerExpr(data.Right, b, bindings, out)
		if !ok {
			return Expr{}, false
		}
		fn, ok := binFuncOf[data.Op]
		if !ok {
			l.errorf(diag.LowerUnsupportedConstruct, e.Span,
				"operator has no predefined SMT function id under the current target")
			return Expr{}, false
		}
		return NewCallExpr(e.Span, e.Type, fn, []Expr{left, right}), true

	case hir.ExprUnary:
		data := e.Data.(hir.UnaryData)
		operand, ok := l.lowerExpr(data.Operand, b, bindings, out)
		if !ok {
			return Expr{}, false
		}
		fn, ok := unaryFuncOf[data.Op]
		if !ok {
			l.errorf(diag.LowerUnsupportedConstruct, e.Span,
				"operator has no predefined SMT function id under the current target")
			return Expr{}, false
		}
		return NewCallExpr(e.Span, e.Type, fn, []Expr{operand}), true

	case hir.ExprCall:
		return l.lowerCall(e, b, out)

	default:
		l.errorf(diag.LowerUnsupportedConstruct, e.Span, fmt.Sprintf("unsupported expression kind %v", e.Kind))
		return Expr{}, false
	}
}

// lowerCall encodes a function call modularly, per the callee's contract
// rather than its body: bind each declared parameter to the lowered actual
// argument, assert the preconditions (deferred to an LIR ValidityScope by
// carrying them on the FuncCall statement), havoc a fresh return Var, then
// assume the postconditions against it. The call's value is that Var.
func (l *lowerer) lowerCall(e *hir.Expr, b *Branch, out *[]Stmt) (Expr, bool) {
	data := e.Data.(hir.CallData)
	callee, ok := l.funcsByName[data.Func]
	if !ok {
		l.errorf(diag.LowerUnsupportedConstruct, e.Span, "call to a function with no recorded contract")
		return Expr{}, false
	}

	args := make([]Expr, len(data.Args))
	for i, a := range data.Args {
		arg, ok := l.lowerExpr(a, b, nil, out)
		if !ok {
			return Expr{}, false
		}
		args[i] = arg
	}

	bindings := make(map[source.StringID]Expr, len(callee.Params)+1)
	for i, p := range callee.Params {
		bindings[p.Name] = args[i]
	}

	pre := make([]Expr, 0, len(callee.Preconds))
	for _, p := range callee.Preconds {
		lowered, ok := l.lowerExpr(p, b, bindings, out)
		if !ok {
			return Expr{}, false
		}
		pre = append(pre, lowered)
	}

	retVar := b.storeVar(l.returnIdent, e.Type)
	bindings[l.returnIdent] = NewVarExpr(e.Span, retVar)

	post := make([]Expr, 0, len(callee.Postconds))
	for _, p := range callee.Postconds {
		lowered, ok := l.lowerExpr(p, b, bindings, out)
		if !ok {
			return Expr{}, false
		}
		post = append(post, lowered)
	}

	*out = append(*out, newFuncCall(e.Span, b.PathCondition(), data.Func, pre, post, retVar))
	return NewVarExpr(e.Span, retVar), true
}
