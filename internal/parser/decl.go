package parser

import (
	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/token"
)

// parseFuncDef parses an optional run of @decorator(...) annotations
// followed by a `def name(params) -> RetType { body }` declaration.
func (p *Parser) parseFuncDef() (ast.FuncID, bool) {
	var decorators []ast.Decorator
	start := p.lx.Peek().Span

	for p.at(token.At) {
		dec, ok := p.parseDecorator()
		if !ok {
			return ast.NoFuncID, false
		}
		decorators = append(decorators, dec)
	}

	defTok, ok := p.expect(token.KwDef, diag.SynUnexpectedToken, "expected 'def'")
	if !ok {
		return ast.NoFuncID, false
	}

	name, _, ok := p.parseIdent()
	if !ok {
		return ast.NoFuncID, false
	}

	params, ok := p.parseParamList()
	if !ok {
		return ast.NoFuncID, false
	}

	var returnType source.StringID
	if p.at(token.Arrow) {
		p.advance()
		returnType, _, ok = p.parseIdent()
		if !ok {
			return ast.NoFuncID, false
		}
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoFuncID, false
	}

	span := start.Cover(defTok.Span).Cover(p.b.Stmts.Get(body).Span)
	id := p.b.Funcs.New(ast.FuncDef{
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		Decorators: decorators,
		Body:       body,
		Span:       span,
	})
	return id, true
}

// parseDecorator parses one `@name(args...)` annotation.
func (p *Parser) parseDecorator() (ast.Decorator, bool) {
	at := p.advance() // '@'
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.Decorator{}, false
	}

	span := at.Span.Cover(nameSpan)
	var args []ast.ExprID
	if p.at(token.LParen) {
		parsedArgs, closeSpan, ok := p.parseArgList()
		if !ok {
			return ast.Decorator{}, false
		}
		args = parsedArgs
		span = span.Cover(closeSpan)
	}
	return ast.Decorator{Name: name, Args: args, Span: span}, true
}

// parseParamList parses `(name: Type, name: Type, ...)`.
func (p *Parser) parseParamList() ([]ast.Param, bool) {
	_, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' to start the parameter list")
	if !ok {
		return nil, false
	}

	var params []ast.Param
	if p.at(token.RParen) {
		p.advance()
		return params, true
	}

	for {
		name, nameSpan, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		_, ok = p.expect(token.Colon, diag.SynExpectColon, "expected ':' before the parameter's type")
		if !ok {
			return nil, false
		}
		typeName, typeSpan, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		params = append(params, ast.Param{Name: name, TypeName: typeName, Span: nameSpan.Cover(typeSpan)})

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	_, ok = p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close the parameter list")
	if !ok {
		return nil, false
	}
	return params, true
}
