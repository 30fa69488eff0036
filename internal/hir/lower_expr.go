package hir

import (
	"fmt"

	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/symbols"
	"github.com/verislang/veris/internal/types"
)

var binOpOf = map[ast.BinaryOp]BinOp{
	ast.BinaryAdd:       BinAdd,
	ast.BinarySub:       BinSub,
	ast.BinaryMul:       BinMul,
	ast.BinaryDiv:       BinDiv,
	ast.BinaryFloorDiv:  BinFloorDiv,
	ast.BinaryMod:       BinMod,
	ast.BinaryPow:       BinPow,
	ast.BinaryShl:       BinLShift,
	ast.BinaryShr:       BinRShift,
	ast.BinaryBitAnd:    BinBitAnd,
	ast.BinaryBitOr:     BinBitOr,
	ast.BinaryBitXor:    BinBitXor,
	ast.BinaryEq:        BinEq,
	ast.BinaryLess:      BinLt,
	ast.BinaryLessEq:    BinLte,
	ast.BinaryGreater:   BinGt,
	ast.BinaryGreaterEq: BinGte,
	ast.BinaryAnd:       BinAnd,
	ast.BinaryOr:        BinOr,
}

// lowerExpr lowers an AST expression against sc. inContract allows the
// param.<name> member form, legal only inside @assumes/@ensures arguments.
func (l *lowerer) lowerExpr(id ast.ExprID, sc scope, inContract bool) (*Expr, bool) {
	if !id.IsValid() {
		l.errorf(diag.LowerUnsupportedConstruct, source.Span{}, "missing expression")
		return nil, false
	}
	node := l.b.Exprs.Get(id)
	if node == nil {
		l.errorf(diag.LowerUnsupportedConstruct, source.Span{}, "missing expression")
		return nil, false
	}

	switch node.Kind {
	case ast.ExprConst:
		return l.lowerConst(id, node.Span)
	case ast.ExprName:
		return l.lowerName(id, node.Span, sc)
	case ast.ExprGroup:
		g, _ := l.b.Exprs.Group(id)
		return l.lowerExpr(g.Inner, sc, inContract)
	case ast.ExprUnary:
		return l.lowerUnary(id, node.Span, sc, inContract)
	case ast.ExprBinary:
		return l.lowerBinary(id, node.Span, sc, inContract)
	case ast.ExprCall:
		return l.lowerCall(id, node.Span, sc, inContract)
	case ast.ExprMember:
		return l.lowerMember(id, node.Span, sc, inContract)
	default:
		l.errorf(diag.LowerUnsupportedConstruct, node.Span, "unsupported expression")
		return nil, false
	}
}

func (l *lowerer) lowerConst(id ast.ExprID, span source.Span) (*Expr, bool) {
	c, _ := l.b.Exprs.Const(id)
	switch c.Kind {
	case ast.ConstBool:
		return NewConstant(span, types.Bool, ConstantData{Bool: c.Bool}), true
	case ast.ConstInt:
		text := l.interner.MustLookup(c.Text)
		v, err := parseInt(text)
		if err != nil {
			l.errorf(diag.LowerUnsupportedConstruct, span, fmt.Sprintf("invalid integer literal %q", text))
			return nil, false
		}
		return NewConstant(span, types.Int, ConstantData{Int: v}), true
	case ast.ConstFloat:
		text := l.interner.MustLookup(c.Text)
		v, err := parseFloat(text)
		if err != nil {
			l.errorf(diag.LowerUnsupportedConstruct, span, fmt.Sprintf("invalid real literal %q", text))
			return nil, false
		}
		return NewConstant(span, types.Real, ConstantData{Real: v}), true
	default:
		l.errorf(diag.LowerUnsupportedConstruct, span, "unsupported literal")
		return nil, false
	}
}

func (l *lowerer) lowerName(id ast.ExprID, span source.Span, sc scope) (*Expr, bool) {
	n, _ := l.b.Exprs.Name(id)
	kind, ok := sc.lookup(n.Name)
	if !ok {
		l.errorf(diag.LowerIllegalOperation, span,
			fmt.Sprintf("%q is read before it is ever assigned", l.interner.MustLookup(n.Name)))
		return nil, false
	}
	l.touch(n.Name)
	return NewName(span, kind, n.Name, NameLoad), true
}

func (l *lowerer) lowerMember(id ast.ExprID, span source.Span, sc scope, inContract bool) (*Expr, bool) {
	m, _ := l.b.Exprs.Member(id)
	if !inContract {
		l.errorf(diag.LowerUnsupportedConstruct, span, "member access is not supported outside assumes/ensures")
		return nil, false
	}
	target := l.b.Exprs.Get(m.Target)
	targetName, isName := l.b.Exprs.Name(m.Target)
	if target == nil || target.Kind != ast.ExprName || !isName || l.interner.MustLookup(targetName.Name) != symbols.ReservedParamPrefix {
		l.errorf(diag.LowerUnsupportedConstruct, span, "only param.<name> member access is supported")
		return nil, false
	}
	kind, ok := sc.lookup(m.Field)
	if !ok {
		l.errorf(diag.LowerIllegalOperation, span,
			fmt.Sprintf("%q is not a parameter of this function", l.interner.MustLookup(m.Field)))
		return nil, false
	}
	l.touch(m.Field)
	return NewName(span, kind, m.Field, NameLoad), true
}

func (l *lowerer) lowerUnary(id ast.ExprID, span source.Span, sc scope, inContract bool) (*Expr, bool) {
	u, _ := l.b.Exprs.Unary(id)
	operand, ok := l.lowerExpr(u.Operand, sc, inContract)
	if !ok {
		return nil, false
	}
	switch u.Op {
	case ast.UnaryPos:
		// Unary + is pure sugar: it desugars away entirely.
		return operand, true
	case ast.UnaryNot:
		operand = l.booleanize(operand)
		return NewUnary(span, types.Bool, UnaryNot, operand), true
	case ast.UnaryNeg:
		kind, ok := types.CheckUnary(ast.UnaryNeg, operand.Type)
		if !ok {
			l.errorf(diag.LowerIllegalOperation, span, fmt.Sprintf("cannot negate %s", operand.Type))
			return nil, false
		}
		return NewUnary(span, kind, UnarySub, operand), true
	case ast.UnaryInvert:
		kind, ok := types.CheckUnary(ast.UnaryInvert, operand.Type)
		if !ok {
			l.errorf(diag.LowerIllegalOperation, span, fmt.Sprintf("cannot bitwise-invert %s", operand.Type))
			return nil, false
		}
		return NewUnary(span, kind, UnaryInvert, operand), true
	default:
		l.errorf(diag.LowerUnsupportedConstruct, span, "unsupported unary operator")
		return nil, false
	}
}

func (l *lowerer) lowerBinary(id ast.ExprID, span source.Span, sc scope, inContract bool) (*Expr, bool) {
	b, _ := l.b.Exprs.Binary(id)
	left, ok := l.lowerExpr(b.Left, sc, inContract)
	if !ok {
		return nil, false
	}
	right, ok := l.lowerExpr(b.Right, sc, inContract)
	if !ok {
		return nil, false
	}
	return l.applyBinary(span, b.Op, left, right)
}

// applyBinary type-checks op against left/right and builds the resulting
// HIR node. `!=` desugars to `not (lhs == rhs)` here: there is no BinOp for
// it, but types.CheckBinary already knows BinaryNotEq's operand rules, so
// the type check is shared with every other comparison.
func (l *lowerer) applyBinary(span source.Span, op ast.BinaryOp, left, right *Expr) (*Expr, bool) {
	kind, ok := types.CheckBinary(op, left.Type, right.Type)
	if !ok {
		l.errorf(diag.LowerIllegalOperation, span,
			fmt.Sprintf("operator has no valid overload for %s and %s", left.Type, right.Type))
		return nil, false
	}
	if op == ast.BinaryNotEq {
		eq := NewBinary(span, types.Bool, BinEq, left, right)
		return NewUnary(span, types.Bool, UnaryNot, eq), true
	}
	hop, ok := binOpOf[op]
	if !ok {
		l.errorf(diag.LowerUnsupportedConstruct, span, "unsupported binary operator")
		return nil, false
	}
	return NewBinary(span, kind, hop, left, right), true
}

func (l *lowerer) lowerCall(id ast.ExprID, span source.Span, sc scope, inContract bool) (*Expr, bool) {
	c, _ := l.b.Exprs.Call(id)
	sig, ok := l.table.Lookup(c.Callee)
	if !ok {
		l.errorf(diag.LowerUnsupportedConstruct, c.Span,
			fmt.Sprintf("call to undeclared function %q", l.interner.MustLookup(c.Callee)))
		return nil, false
	}
	if len(c.Args) != len(sig.Params) {
		l.errorf(diag.LowerIllegalOperation, span,
			fmt.Sprintf("%q takes %d argument(s), got %d", l.interner.MustLookup(c.Callee), len(sig.Params), len(c.Args)))
		return nil, false
	}
	args := make([]*Expr, 0, len(c.Args))
	for i, argID := range c.Args {
		arg, ok := l.lowerExpr(argID, sc, inContract)
		if !ok {
			return nil, false
		}
		if !types.PromotesTo(arg.Type, sig.Params[i].Type) {
			l.errorf(diag.LowerIllegalOperation, arg.Span,
				fmt.Sprintf("argument %d to %q has type %s, want %s", i+1, l.interner.MustLookup(c.Callee), arg.Type, sig.Params[i].Type))
			return nil, false
		}
		args = append(args, arg)
	}
	if sig.ReturnType == types.Invalid {
		l.errorf(diag.LowerIllegalOperation, span,
			fmt.Sprintf("%q has no return value and cannot be used in an expression", l.interner.MustLookup(c.Callee)))
		return nil, false
	}
	return NewCall(span, sig.ReturnType, c.Callee, args), true
}

// booleanize wraps a non-Bool expression the way a condition position
// requires one: `not (x == 0)`. Already-Bool expressions pass through.
func (l *lowerer) booleanize(e *Expr) *Expr {
	if e.Type == types.Bool {
		return e
	}
	zero := NewConstant(e.Span, e.Type, zeroOf(e.Type))
	eq := NewBinary(e.Span, types.Bool, BinEq, e, zero)
	return NewUnary(e.Span, types.Bool, UnaryNot, eq)
}

func zeroOf(k types.Kind) ConstantData {
	if k == types.Real {
		return ConstantData{Real: 0}
	}
	return ConstantData{Int: 0}
}
