package solver

import (
	"fmt"
	"strings"

	"github.com/verislang/veris/internal/lir"
	"github.com/verislang/veris/internal/types"
)

// exprText renders a lir.Expr the same way internal/smt does — duplicated
// rather than imported, since the two packages render for different
// consumers (a file written for --output-smt vs. commands streamed one at
// a time to a live solver process) and must be free to diverge (e.g. this
// renderer never needs the set-logic preamble or declare-fun section smt
// owns).
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
			s := fmt.Sprintf("%g", data.Real)
			if !strings.Contains(s, ".") {
				s += ".0"
			}
			return formatSigned(s)
		default:
			return formatSigned(fmt.Sprintf("%d", data.Int))
		}

	case lir.ExprCall:
		data := e.Data.(lir.CallData)
		args := make([]string, len(data.Args))
		for i, a := range data.Args {
			args[i] = exprText(a)
		}
		return fmt.Sprintf("(%s %s)", data.Func.Symbol(), strings.Join(args, " "))

	default:
		return "false"
	}
}

func formatSigned(s string) string {
	if strings.HasPrefix(s, "-") {
		return fmt.Sprintf("(- %s)", strings.TrimPrefix(s, "-"))
	}
	return s
}
