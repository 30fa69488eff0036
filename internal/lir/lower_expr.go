package lir

import "github.com/verislang/veris/internal/mir"

func (l *lowerer) lowerExpr(e mir.Expr) Expr {
	switch e.Kind {
	case mir.ExprVar:
		data := e.Data.(mir.VarData)
		return newSymbol(e.Span, e.Type, l.name(data.Var))
	case mir.ExprConstant:
		data := e.Data.(mir.ConstantData)
		return newConstant(e.Span, e.Type, ConstantData{Int: data.Int, Real: data.Real, Bool: data.Bool})
	case mir.ExprCall:
		data := e.Data.(mir.CallData)
		args := make([]Expr, len(data.Args))
		for i, a := range data.Args {
			args[i] = l.lowerExpr(a)
		}
		return newCall(e.Span, e.Type, data.Func, args)
	default:
		return Expr{}
	}
}

func (l *lowerer) lowerExprs(exprs []mir.Expr) []Expr {
	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		out[i] = l.lowerExpr(e)
	}
	return out
}

// guard folds a path condition into a single standing fact as a material
// implication: `pc1 and pc2 and ... => test`, built from `and`/`or`/`not`
// since the predefined SMT function registry has no implication id of its
// own. An empty path condition returns test unchanged.
func (l *lowerer) guard(pc []Expr, test Expr) Expr {
	if len(pc) == 0 {
		return test
	}
	conj := pc[0]
	for _, p := range pc[1:] {
		conj = newCall(conj.Span, test.Type, mir.FuncAnd, []Expr{conj, p})
	}
	notConj := newCall(conj.Span, test.Type, mir.FuncNot, []Expr{conj})
	return newCall(test.Span, test.Type, mir.FuncOr, []Expr{notConj, test})
}
