package parser

import (
	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/token"
)

// parseStmt parses a single statement. Conditions for if/while are not
// parenthesized: `if cond { ... }`, `while cond { ... }`.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.KwPass:
		tok := p.advance()
		_, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after 'pass'")
		if !ok {
			return ast.NoStmtID, false
		}
		return p.b.Stmts.NewPass(tok.Span), true
	case token.KwAssert:
		return p.parseAssert()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	default:
		return p.parseAssignOrExprStmt()
	}
}

func (p *Parser) parseBlock() (ast.StmtID, bool) {
	open := p.advance() // '{'
	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			p.resyncUntil(token.Semicolon, token.RBrace, token.EOF)
			if p.at(token.Semicolon) {
				p.advance()
			}
			continue
		}
		stmts = append(stmts, stmt)
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close the block")
	if !ok {
		return ast.NoStmtID, false
	}
	span := open.Span.Cover(closeTok.Span)
	return p.b.Stmts.NewBlock(span, stmts), true
}

func (p *Parser) parseAssert() (ast.StmtID, bool) {
	tok := p.advance() // 'assert'
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	closeTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after assert condition")
	if !ok {
		return ast.NoStmtID, false
	}
	span := tok.Span.Cover(closeTok.Span)
	return p.b.Stmts.NewAssert(span, cond), true
}

func (p *Parser) parseReturn() (ast.StmtID, bool) {
	tok := p.advance() // 'return'
	if p.at(token.Semicolon) {
		closeTok := p.advance()
		return p.b.Stmts.NewReturn(tok.Span.Cover(closeTok.Span), ast.NoExprID), true
	}
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	closeTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return value")
	if !ok {
		return ast.NoStmtID, false
	}
	span := tok.Span.Cover(closeTok.Span)
	return p.b.Stmts.NewReturn(span, value), true
}

func (p *Parser) parseIf() (ast.StmtID, bool) {
	tok := p.advance() // 'if'
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	var elseBranch ast.StmtID = ast.NoStmtID
	switch p.lx.Peek().Kind {
	case token.KwElif:
		elifTok := p.lx.Peek()
		p.advanceElifAsIf()
		elifCond, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		elifThen, ok := p.parseBlock()
		if !ok {
			return ast.NoStmtID, false
		}
		nested, ok := p.parseElifTail()
		if !ok {
			return ast.NoStmtID, false
		}
		span := elifTok.Span.Cover(p.b.Stmts.Get(elifThen).Span)
		elseBranch = p.b.Stmts.NewIf(span, elifCond, elifThen, nested)
	case token.KwElse:
		p.advance()
		block, ok := p.parseBlock()
		if !ok {
			return ast.NoStmtID, false
		}
		elseBranch = block
	}

	span := tok.Span.Cover(p.b.Stmts.Get(then).Span)
	if elseBranch.IsValid() {
		span = span.Cover(p.b.Stmts.Get(elseBranch).Span)
	}
	return p.b.Stmts.NewIf(span, cond, then, elseBranch), true
}

// parseElifTail parses the chain following an elif's block: another elif,
// a final else, or nothing.
func (p *Parser) parseElifTail() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwElif:
		elifTok := p.lx.Peek()
		p.advanceElifAsIf()
		cond, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		then, ok := p.parseBlock()
		if !ok {
			return ast.NoStmtID, false
		}
		nested, ok := p.parseElifTail()
		if !ok {
			return ast.NoStmtID, false
		}
		span := elifTok.Span.Cover(p.b.Stmts.Get(then).Span)
		return p.b.Stmts.NewIf(span, cond, then, nested), true
	case token.KwElse:
		p.advance()
		return p.parseBlock()
	default:
		return ast.NoStmtID, true
	}
}

// advanceElifAsIf consumes the 'elif' token; elif is otherwise parsed
// identically to if, just without allocating a distinct AST kind for it —
// the chain is represented as nested StmtIf nodes in the Else slot.
func (p *Parser) advanceElifAsIf() {
	p.advance()
}

func (p *Parser) parseWhile() (ast.StmtID, bool) {
	tok := p.advance() // 'while'
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	span := tok.Span.Cover(p.b.Stmts.Get(body).Span)
	return p.b.Stmts.NewWhile(span, cond, body), true
}

func assignOpFor(k token.Kind) (ast.AssignOp, bool) {
	switch k {
	case token.Assign:
		return ast.AssignPlain, true
	case token.PlusAssign:
		return ast.AssignAdd, true
	case token.MinusAssign:
		return ast.AssignSub, true
	case token.StarAssign:
		return ast.AssignMul, true
	case token.SlashAssign:
		return ast.AssignDiv, true
	case token.PercentAssign:
		return ast.AssignMod, true
	case token.AmpAssign:
		return ast.AssignBitAnd, true
	case token.PipeAssign:
		return ast.AssignBitOr, true
	case token.CaretAssign:
		return ast.AssignBitXor, true
	case token.ShlAssign:
		return ast.AssignShl, true
	case token.ShrAssign:
		return ast.AssignShr, true
	default:
		return 0, false
	}
}

// parseAssignOrExprStmt disambiguates `name = expr;`/`name += expr;` from a
// bare expression statement (a loop_invariant(...) or other call used for
// effect), and from a chained assignment `a = b = expr;`.
func (p *Parser) parseAssignOrExprStmt() (ast.StmtID, bool) {
	start := p.lx.Peek()
	expr, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	op, isAssign := assignOpFor(p.lx.Peek().Kind)
	if !isAssign {
		closeTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after expression statement")
		if !ok {
			return ast.NoStmtID, false
		}
		span := start.Span.Cover(closeTok.Span)
		return p.b.Stmts.NewExprStmt(span, expr), true
	}

	name, isName := p.b.Exprs.Name(expr)
	if !isName {
		p.err(diag.SynUnexpectedToken, "the left side of an assignment must be a plain name")
		return ast.NoStmtID, false
	}
	p.advance() // the assignment operator

	targets, value, ok := p.parseAssignRHS(op)
	if !ok {
		return ast.NoStmtID, false
	}
	targets = append([]source.StringID{name.Name}, targets...)

	closeTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after assignment")
	if !ok {
		return ast.NoStmtID, false
	}
	span := start.Span.Cover(closeTok.Span)
	return p.b.Stmts.NewAssign(span, ast.AssignStmtData{Targets: targets, Op: op, Value: value}), true
}

// parseAssignRHS parses the right-hand side of an assignment whose operator
// was already consumed. For a plain `=` it recurses to support chaining
// (a = b = expr), collecting every further `name =` target before the final
// value expression; an augmented assignment never chains.
func (p *Parser) parseAssignRHS(op ast.AssignOp) (targets []source.StringID, value ast.ExprID, ok bool) {
	expr, ok := p.parseExpr()
	if !ok {
		return nil, ast.NoExprID, false
	}

	if op == ast.AssignPlain {
		if name, isName := p.b.Exprs.Name(expr); isName {
			if nextOp, isAssign := assignOpFor(p.lx.Peek().Kind); isAssign && nextOp == ast.AssignPlain {
				p.advance()
				moreTargets, value, ok := p.parseAssignRHS(ast.AssignPlain)
				if !ok {
					return nil, ast.NoExprID, false
				}
				return append([]source.StringID{name.Name}, moreTargets...), value, true
			}
		}
	}

	return nil, expr, true
}
