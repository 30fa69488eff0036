// Package parser implements a recursive-descent parser over internal/lexer's
// token stream, producing an internal/ast.Module.
package parser

import (
	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/lexer"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/token"
)

// Options configures a parse run.
type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the parser has already hit its error budget.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result is the outcome of parsing one file.
type Result struct {
	Module *ast.Module
	Bag    *diag.Bag
}

// Parser holds the state needed to parse a single file.
type Parser struct {
	lx       *lexer.Lexer
	b        *ast.Builder
	opts     Options
	lastSpan source.Span
}

// ParseFile parses the token stream from lx into a Module, using b to
// allocate AST nodes.
func ParseFile(lx *lexer.Lexer, b *ast.Builder, opts Options) Result {
	p := &Parser{lx: lx, b: b, opts: opts, lastSpan: lx.EmptySpan()}

	var funcs []ast.FuncID
	var stmts []ast.StmtID
	start := p.lx.Peek().Span

	for !p.at(token.EOF) {
		if p.at(token.At) || p.at(token.KwDef) {
			fn, ok := p.parseFuncDef()
			if !ok {
				p.resyncUntil(token.KwDef, token.At, token.EOF)
				continue
			}
			funcs = append(funcs, fn)
			continue
		}
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

	span := start.Cover(p.lastSpan)
	module := p.b.NewModule(span, funcs, stmts)

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{Module: module, Bag: bag}
}
