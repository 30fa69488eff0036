// Package smt renders a lir.Model as SMT-LIB text: quantifier-free linear
// arithmetic over Int and Bool, a `declare-fun` per declared symbol, and one
// push/assert-negation/check-sat/pop block per validity scope.
package smt

import (
	"fmt"
	"strings"

	"github.com/verislang/veris/internal/lir"
	"github.com/verislang/veris/internal/types"
)

// Emit renders model as a complete SMT-LIB script.
func Emit(model *lir.Model) string {
	var b strings.Builder
	b.WriteString("(set-logic QF_LIA)\n")
	for _, d := range model.Decls {
		fmt.Fprintf(&b, "(declare-fun %s () %s)\n", d.Name, sortName(d.Sort))
	}
	for _, item := range model.Items {
		emitItem(&b, item)
	}
	return b.String()
}

func sortName(s lir.Sort) string {
	switch s {
	case lir.SortBool:
		return "Bool"
	case lir.SortReal:
		return "Real"
	default:
		return "Int"
	}
}

func emitItem(b *strings.Builder, item lir.Item) {
	switch item.Kind {
	case lir.ItemAssume:
		data := item.Data.(lir.AssumeData)
		fmt.Fprintf(b, "(assert %s)\n", exprText(data.Test))

	case lir.ItemValidityScope:
		data := item.Data.(lir.ValidityScopeData)
		b.WriteString("(push 1)\n")
		for _, pc := range data.PathCondition {
			fmt.Fprintf(b, "(assert %s)\n", exprText(pc))
		}
		fmt.Fprintf(b, "(assert (not %s))\n", exprText(data.Test))
		b.WriteString("(check-sat)\n")
		b.WriteString("(pop 1)\n")
	}
}

func exprText(e lir.Expr) string {
	switch e.Kind {
	case lir.ExprSymbol:
		return e.Data.(lir.SymbolData).Name

	case lir.ExprConstant:
		data := e.Data.(lir.ConstantData)
		switch e.Type {
		case types.Bool:
			if data.Bool {
				return "true"
			}
			return "false"
		case types.Real:
			return formatReal(data.Real)
		default:
			return formatInt(data.Int)
		}

	case lir.ExprCall:
		data := e.Data.(lir.CallData)
		args := make([]string, len(data.Args))
		for i, a := range data.Args {
			args[i] = exprText(a)
		}
		if len(args) == 1 {
			return fmt.Sprintf("(%s %s)", data.Func.Symbol(), args[0])
		}
		return fmt.Sprintf("(%s %s)", data.Func.Symbol(), strings.Join(args, " "))

	default:
		return "false"
	}
}

// formatInt renders a possibly-negative integer the way SMT-LIB requires:
// a negative literal is `(- n)`, never a bare `-n` token.
func formatInt(v int64) string {
	if v < 0 {
		return fmt.Sprintf("(- %d)", -v)
	}
	return fmt.Sprintf("%d", v)
}

func formatReal(v float64) string {
	if v < 0 {
		return fmt.Sprintf("(- %s)", formatRealLiteral(-v))
	}
	return formatRealLiteral(v)
}

// formatRealLiteral always includes a decimal point, since SMT-LIB Real
// literals without one (e.g. "2") are parsed as Int by some solvers.
func formatRealLiteral(v float64) string {
	s := fmt.Sprintf("%g", v)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
