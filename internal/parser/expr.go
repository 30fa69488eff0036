package parser

import (
	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/token"
)

// Precedence levels, lowest to highest. Comparison operators are
// non-associative: chaining them (a < b < c) is a syntax error rather than
// parsing as (a < b) < c, since that reading is rarely what anyone means
// and this language has no use for bool-as-operand chaining.
const (
	precOr = iota + 1
	precAnd
	precNot
	precComparison
	precAdditive
	precMultiplicative
)

func binaryPrec(k token.Kind) (int, ast.BinaryOp, bool) {
	switch k {
	case token.KwOr:
		return precOr, ast.BinaryOr, true
	case token.KwAnd:
		return precAnd, ast.BinaryAnd, true
	case token.EqEq:
		return precComparison, ast.BinaryEq, true
	case token.BangEq:
		return precComparison, ast.BinaryNotEq, true
	case token.Lt:
		return precComparison, ast.BinaryLess, true
	case token.LtEq:
		return precComparison, ast.BinaryLessEq, true
	case token.Gt:
		return precComparison, ast.BinaryGreater, true
	case token.GtEq:
		return precComparison, ast.BinaryGreaterEq, true
	case token.Plus:
		return precAdditive, ast.BinaryAdd, true
	case token.Minus:
		return precAdditive, ast.BinarySub, true
	case token.Pipe:
		return precAdditive, ast.BinaryBitOr, true
	case token.Caret:
		return precAdditive, ast.BinaryBitXor, true
	case token.Star:
		return precMultiplicative, ast.BinaryMul, true
	case token.Slash:
		return precMultiplicative, ast.BinaryDiv, true
	case token.SlashSlash:
		return precMultiplicative, ast.BinaryFloorDiv, true
	case token.Percent:
		return precMultiplicative, ast.BinaryMod, true
	case token.StarStar:
		return precMultiplicative, ast.BinaryPow, true
	case token.Shl:
		return precMultiplicative, ast.BinaryShl, true
	case token.Shr:
		return precMultiplicative, ast.BinaryShr, true
	case token.Amp:
		return precMultiplicative, ast.BinaryBitAnd, true
	default:
		return 0, 0, false
	}
}

// parseExpr parses a full expression.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinary(precOr)
}

func isComparisonOp(op ast.BinaryOp) bool {
	switch op {
	case ast.BinaryEq, ast.BinaryNotEq, ast.BinaryLess, ast.BinaryLessEq, ast.BinaryGreater, ast.BinaryGreaterEq:
		return true
	default:
		return false
	}
}

func (p *Parser) parseBinary(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return ast.NoExprID, false
	}

	chainedComparison := false
	for {
		prec, op, isBin := binaryPrec(p.lx.Peek().Kind)
		if !isBin || prec < minPrec {
			return left, true
		}
		if isComparisonOp(op) && chainedComparison {
			p.err(diag.SynUnexpectedToken, "comparison operators do not chain; parenthesize to combine them")
			return left, false
		}

		p.advance()
		right, ok := p.parseBinary(prec + 1)
		if !ok {
			return ast.NoExprID, false
		}

		leftExpr := p.b.Exprs.Get(left)
		rightExpr := p.b.Exprs.Get(right)
		span := leftExpr.Span.Cover(rightExpr.Span)
		left = p.b.Exprs.NewBinary(span, op, left, right)
		if isComparisonOp(op) {
			chainedComparison = true
		}
	}
}

func (p *Parser) parseUnary() (ast.ExprID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwNot:
		tok := p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return ast.NoExprID, false
		}
		span := tok.Span.Cover(p.b.Exprs.Get(operand).Span)
		return p.b.Exprs.NewUnary(span, ast.UnaryNot, operand), true
	case token.Minus:
		tok := p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return ast.NoExprID, false
		}
		span := tok.Span.Cover(p.b.Exprs.Get(operand).Span)
		return p.b.Exprs.NewUnary(span, ast.UnaryNeg, operand), true
	case token.Plus:
		tok := p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return ast.NoExprID, false
		}
		span := tok.Span.Cover(p.b.Exprs.Get(operand).Span)
		return p.b.Exprs.NewUnary(span, ast.UnaryPos, operand), true
	case token.Tilde:
		tok := p.advance()
		operand, ok := p.parseUnary()
		if !ok {
			return ast.NoExprID, false
		}
		span := tok.Span.Cover(p.b.Exprs.Get(operand).Span)
		return p.b.Exprs.NewUnary(span, ast.UnaryInvert, operand), true
	default:
		return p.parsePostfix()
	}
}

func (p *Parser) parsePostfix() (ast.ExprID, bool) {
	expr, ok := p.parseAtom()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.Dot:
			p.advance()
			field, fieldSpan, ok := p.parseIdent()
			if !ok {
				return ast.NoExprID, false
			}
			span := p.b.Exprs.Get(expr).Span.Cover(fieldSpan)
			expr = p.b.Exprs.NewMember(span, expr, field)
		case token.LParen:
			callee, isName := p.b.Exprs.Name(expr)
			if !isName {
				p.err(diag.SynUnexpectedToken, "only a plain name may be called")
				return ast.NoExprID, false
			}
			nameSpan := p.b.Exprs.Get(expr).Span
			args, closeSpan, ok := p.parseArgList()
			if !ok {
				return ast.NoExprID, false
			}
			span := nameSpan.Cover(closeSpan)
			expr = p.b.Exprs.NewCall(span, callee.Name, nameSpan, args)
		default:
			return expr, true
		}
	}
}

func (p *Parser) parseArgList() ([]ast.ExprID, source.Span, bool) {
	p.advance() // '('
	var args []ast.ExprID
	if p.at(token.RParen) {
		tok := p.advance()
		return args, tok.Span, true
	}
	for {
		arg, ok := p.parseExpr()
		if !ok {
			return nil, source.Span{}, false
		}
		args = append(args, arg)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close the argument list")
	if !ok {
		return nil, source.Span{}, false
	}
	return args, closeTok.Span, true
}

func (p *Parser) parseAtom() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return p.b.Exprs.NewName(tok.Span, p.b.Intern(tok.Text)), true
	case token.IntLit:
		p.advance()
		return p.b.Exprs.NewConst(tok.Span, ast.ExprConstData{Kind: ast.ConstInt, Text: p.b.Intern(tok.Text)}), true
	case token.FloatLit:
		p.advance()
		return p.b.Exprs.NewConst(tok.Span, ast.ExprConstData{Kind: ast.ConstFloat, Text: p.b.Intern(tok.Text)}), true
	case token.KwTrue:
		p.advance()
		return p.b.Exprs.NewConst(tok.Span, ast.ExprConstData{Kind: ast.ConstBool, Bool: true}), true
	case token.KwFalse:
		p.advance()
		return p.b.Exprs.NewConst(tok.Span, ast.ExprConstData{Kind: ast.ConstBool, Bool: false}), true
	case token.LParen:
		p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close the parenthesized expression")
		if !ok {
			return ast.NoExprID, false
		}
		span := tok.Span.Cover(closeTok.Span)
		return p.b.Exprs.NewGroup(span, inner), true
	default:
		p.err(diag.SynExpectExpression, "expected an expression")
		return ast.NoExprID, false
	}
}
