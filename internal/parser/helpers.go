package parser

import (
	"slices"

	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/token"
)

// at reports whether the next token has kind k, without consuming it.
func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// advance consumes and returns the next token, tracking its span for
// end-of-input diagnostics.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// currentErrorSpan returns the best span to attach to a diagnostic about the
// next token: the token's own span, or the position right after the last
// consumed token if the stream has already hit EOF.
func (p *Parser) currentErrorSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect consumes the next token if it has kind k; otherwise it reports code
// at the current error span and returns ok=false without consuming anything.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.err(code, msg)
	return token.Token{Kind: token.Invalid, Span: p.currentErrorSpan()}, false
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, p.currentErrorSpan(), msg)
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	p.opts.CurrentErrors++
	if p.opts.Enough() {
		return
	}
	p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
}

// resyncUntil consumes tokens until Peek() matches one of stop or EOF. The
// stop token itself is left unconsumed.
func (p *Parser) resyncUntil(stop ...token.Kind) {
	for !p.at(token.EOF) {
		if slices.Contains(stop, p.lx.Peek().Kind) {
			return
		}
		p.advance()
	}
}

// parseIdent consumes an identifier and interns its text.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an identifier")
	if !ok {
		return source.NoStringID, tok.Span, false
	}
	return p.b.Intern(tok.Text), tok.Span, true
}
