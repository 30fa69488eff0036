package hir

import (
	"strconv"

	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/symbols"
	"github.com/verislang/veris/internal/types"
)

// Lower transforms a parsed module into HIR, given the function signature
// table symbols.Build already resolved. It fails fast: the first
// unsupported construct or type error reports a diagnostic to bag and
// Lower returns (nil, false) — there is no partial HIR.
func Lower(b *ast.Builder, mod *ast.Module, table *symbols.Table, bag *diag.Bag) (*Module, bool) {
	l := &lowerer{
		b:           b,
		interner:    b.StringsInterner,
		table:       table,
		bag:         bag,
		retType:     types.Invalid,
		returnIdent: b.StringsInterner.Intern(symbols.ReservedReturn),
	}

	out := &Module{}
	for _, fid := range mod.Funcs {
		fn, ok := l.lowerFunc(fid)
		if !ok {
			return nil, false
		}
		out.Funcs = append(out.Funcs, fn)
	}

	body, ok := l.lowerBlock(mod.Stmts, newScope())
	if !ok {
		return nil, false
	}
	out.Body = body
	return out, true
}

// lowerer holds the state threaded through one module's lowering pass.
type lowerer struct {
	b        *ast.Builder
	interner *source.Interner
	table    *symbols.Table
	bag      *diag.Bag

	inFunc      bool
	retType     types.Kind
	returnIdent source.StringID

	// touchSet collects every identifier read or assigned while lowering a
	// while loop's body; nil outside a loop body, restored around nested loops.
	touchSet *map[source.StringID]struct{}
}

func (l *lowerer) errorf(code diag.Code, span source.Span, msg string) {
	d := diag.NewError(code, span, msg)
	l.bag.Add(&d)
}

var assignBinOp = map[ast.AssignOp]ast.BinaryOp{
	ast.AssignAdd:      ast.BinaryAdd,
	ast.AssignSub:      ast.BinarySub,
	ast.AssignMul:      ast.BinaryMul,
	ast.AssignDiv:      ast.BinaryDiv,
	ast.AssignFloorDiv: ast.BinaryFloorDiv,
	ast.AssignMod:      ast.BinaryMod,
	ast.AssignBitAnd:   ast.BinaryBitAnd,
	ast.AssignBitOr:    ast.BinaryBitOr,
	ast.AssignBitXor:   ast.BinaryBitXor,
	ast.AssignShl:      ast.BinaryShl,
	ast.AssignShr:      ast.BinaryShr,
}

func parseInt(text string) (int64, error) {
	return strconv.ParseInt(text, 10, 64)
}

func parseFloat(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}
