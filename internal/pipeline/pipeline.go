// Package pipeline coordinates bag collection per file and transports
// diagnostic data to the CLI: it drives one source file through every
// lowering stage, submits the resulting model to the solver (or reuses a
// cached verdict), and folds any counterexample back into the diagnostic
// bag against the source name and span it came from.
package pipeline

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/verislang/veris/internal/ast"
	"github.com/verislang/veris/internal/cache"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/hir"
	"github.com/verislang/veris/internal/lexer"
	"github.com/verislang/veris/internal/lir"
	"github.com/verislang/veris/internal/mir"
	"github.com/verislang/veris/internal/observ"
	"github.com/verislang/veris/internal/parser"
	"github.com/verislang/veris/internal/smt"
	"github.com/verislang/veris/internal/solver"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/symbols"
)

// Options configures one Verify call. A zero Options runs with no cache, no
// timeout, and the default diagnostic capacity.
type Options struct {
	SolverPath     string
	SolverArgs     []string
	Timeout        time.Duration
	PerScope       bool
	NoCache        bool
	Cache          *cache.Disk
	EnableTimings  bool
	MaxDiagnostics int

	// Events, if non-nil, receives progress notifications as the file
	// moves through Verify — internal/ui's progress model is the reader.
	// The channel is never closed by this package; its owner (typically
	// cmd/verify, after VerifyFiles returns) closes it.
	Events chan<- Event
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics > 0 {
		return o.MaxDiagnostics
	}
	return 256
}

func (o Options) solverPath() string {
	if o.SolverPath != "" {
		return o.SolverPath
	}
	return "z3"
}

// Counterexample is one (source name, value) pair read off a sat validity
// scope's model, resolved from the solver's raw Frame through the LIR
// declaration list back to the identifier the source used.
type Counterexample struct {
	Name   string // source identifier, e.g. "x"
	Symbol string // flattened SMT symbol, e.g. "x$0$1"
	Value  string
}

// ScopeOutcome is one validity scope's verdict, in emission order.
type ScopeOutcome struct {
	Index           int
	Span            source.Span
	Verdict         solver.Verdict
	Counterexamples []Counterexample
}

// Compiled holds every intermediate stage's output for one file, kept
// around so a debug subcommand can dump any single stage without re-running
// the ones before it.
type Compiled struct {
	Builder  *ast.Builder
	Module   *ast.Module
	Table    *symbols.Table
	HIR      *hir.Module
	MIR      *mir.Module
	LIR      *lir.Model
	Interner *source.Interner
}

// Result is one file's complete verification outcome.
type Result struct {
	Path      string
	Bag       *diag.Bag
	Compiled  *Compiled
	SMT       string
	Scopes    []ScopeOutcome
	CacheHit  bool
	Timing    observ.Report
}

// Passed reports whether the file verified: false whenever the bag holds an
// error (a lowering failure included), otherwise true only if every validity
// scope came back unsat.
func (r *Result) Passed() bool {
	if r.Bag.HasErrors() {
		return false
	}
	for _, s := range r.Scopes {
		if s.Verdict != solver.Unsat {
			return false
		}
	}
	return true
}

// Compile runs every lowering stage up through LIR against file, stopping
// early (with ok=false) the first stage that reports a bag error — mirrors
// the short-circuiting a human reading lex/parse/sema/lower errors in
// sequence would expect: a parse error makes symbol resolution meaningless.
func Compile(file *source.File, bag *diag.Bag) (*Compiled, bool) {
	lx := lexer.New(file, lexer.Options{})
	b := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(lx, b, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if res.Bag.HasErrors() {
		return &Compiled{Builder: b, Module: res.Module, Interner: b.StringsInterner}, false
	}

	table := symbols.Build(b.Funcs, res.Module.Funcs, b.StringsInterner, bag)
	if bag.HasErrors() {
		return &Compiled{Builder: b, Module: res.Module, Table: table, Interner: b.StringsInterner}, false
	}

	hmod, ok := hir.Lower(b, res.Module, table, bag)
	if !ok {
		return &Compiled{Builder: b, Module: res.Module, Table: table, Interner: b.StringsInterner}, false
	}

	returnIdent := b.StringsInterner.Intern(symbols.ReservedReturn)
	mmod, ok := mir.Lower(hmod, returnIdent, bag)
	if !ok {
		return &Compiled{Builder: b, Module: res.Module, Table: table, HIR: hmod, Interner: b.StringsInterner}, false
	}

	model := lir.Lower(mmod, b.StringsInterner)
	return &Compiled{
		Builder: b, Module: res.Module, Table: table,
		HIR: hmod, MIR: mmod, LIR: model, Interner: b.StringsInterner,
	}, true
}

// Verify drives file through every stage and, if lowering succeeds, submits
// the model to the solver — consulting and populating opts.Cache first
// unless opts.NoCache is set.
func Verify(ctx context.Context, file *source.File, opts Options) (*Result, error) {
	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}
	begin := func(name string) int {
		if timer == nil {
			return -1
		}
		return timer.Begin(name)
	}
	end := func(idx int, note string) {
		if timer == nil || idx < 0 {
			return
		}
		timer.End(idx, note)
	}

	bag := diag.NewBag(opts.maxDiagnostics())

	emit(opts.Events, file.Path, StageCompile, StatusWorking)
	compileIdx := begin("compile")
	compiled, ok := Compile(file, bag)
	end(compileIdx, fmt.Sprintf("diags=%d", bag.Len()))

	result := &Result{Path: file.Path, Bag: bag, Compiled: compiled}
	if !ok {
		emit(opts.Events, file.Path, StageDone, StatusFailed)
		if timer != nil {
			result.Timing = timer.Report()
		}
		return result, nil
	}

	smtIdx := begin("smt")
	result.SMT = smt.Emit(compiled.LIR)
	end(smtIdx, "")

	solverArgs := opts.SolverArgs
	if len(solverArgs) == 0 && opts.solverPath() == "z3" {
		solverArgs = []string{"-in"}
	}
	driver := solver.New(opts.solverPath(), solverArgs, opts.Timeout)

	scopeSpans := spansByScope(compiled.LIR)
	sourceNames := sourceNamesByScope(compiled.LIR)

	var scopeResults []solver.ScopeResult
	var diskCache *cache.Disk
	var key cache.Key
	haveKey := false

	if !opts.NoCache && opts.Cache != nil {
		diskCache = opts.Cache
		banner, err := driver.Banner(ctx)
		if err == nil {
			solverDigest := sha256.Sum256([]byte(opts.solverPath() + " " + banner))
			key = cache.NewKey(file.Hash, solverDigest)
			haveKey = true
			if payload, hit, gerr := diskCache.Get(key); gerr == nil && hit && payload.Path == file.Path {
				scopeResults = fromPayload(payload)
				result.CacheHit = true
			}
		}
	}

	if !result.CacheHit {
		emit(opts.Events, file.Path, StageSolve, StatusWorking)
		solveIdx := begin("solve")
		var err error
		if opts.PerScope {
			scopeResults, err = driver.VerifyPerScope(ctx, compiled.LIR)
		} else {
			scopeResults, err = driver.Verify(ctx, compiled.LIR)
		}
		end(solveIdx, fmt.Sprintf("scopes=%d", len(scopeResults)))
		if err != nil {
			reportSolverError(bag, err)
			emit(opts.Events, file.Path, StageDone, StatusFailed)
			if timer != nil {
				result.Timing = timer.Report()
			}
			return result, nil
		}
		if haveKey && diskCache != nil {
			_ = diskCache.Put(key, toPayload(file.Path, scopeResults))
		}
	}

	for _, sr := range scopeResults {
		outcome := ScopeOutcome{Index: sr.Index, Verdict: sr.Verdict, Span: scopeSpans[sr.Index]}
		names := sourceNames[sr.Index]
		for _, f := range sr.Frames {
			outcome.Counterexamples = append(outcome.Counterexamples, Counterexample{
				Name:   names[f.Symbol],
				Symbol: f.Symbol,
				Value:  f.Value,
			})
		}
		result.Scopes = append(result.Scopes, outcome)
		if sr.Verdict == solver.Sat {
			d := diag.NewError(diag.LowerVerificationFailed, outcome.Span, "obligation does not hold for every reachable value")
			for _, ce := range outcome.Counterexamples {
				d = d.WithNote(outcome.Span, fmt.Sprintf("%s = %s", ce.Name, ce.Value))
			}
			bag.Add(&d)
		}
	}

	if timer != nil {
		result.Timing = timer.Report()
	}
	if result.Passed() {
		emit(opts.Events, file.Path, StageDone, StatusPassed)
	} else {
		emit(opts.Events, file.Path, StageDone, StatusFailed)
	}
	return result, nil
}

func reportSolverError(bag *diag.Bag, err error) {
	code := diag.SolverUnexpectedOutput
	if serr, ok := err.(*solver.Error); ok {
		code = serr.Code
	}
	d := diag.NewError(code, source.Span{}, err.Error())
	bag.Add(&d)
}

// spansByScope returns the originating source span for each ValidityScope
// item, indexed the same way solver.ScopeResult.Index is: by emission order
// among ValidityScope items only.
func spansByScope(model *lir.Model) map[int]source.Span {
	out := make(map[int]source.Span)
	idx := 0
	for _, item := range model.Items {
		if item.Kind != lir.ItemValidityScope {
			continue
		}
		out[idx] = item.Span
		idx++
	}
	return out
}

// sourceNamesByScope returns, per validity scope, a map from a declared
// symbol's flattened name to its original source identifier — built once
// from the model's declaration list rather than per scope, since every
// scope shares the same declaration list.
func sourceNamesByScope(model *lir.Model) map[int]map[string]string {
	names := make(map[string]string, len(model.Decls))
	for _, d := range model.Decls {
		names[d.Name] = d.SourceName
	}
	out := make(map[int]map[string]string)
	idx := 0
	for _, item := range model.Items {
		if item.Kind != lir.ItemValidityScope {
			continue
		}
		out[idx] = names
		idx++
	}
	return out
}

func toPayload(path string, results []solver.ScopeResult) *cache.Payload {
	p := &cache.Payload{Path: path}
	for _, r := range results {
		sv := cache.ScopeVerdict{Index: r.Index, Verdict: r.Verdict.String()}
		for _, f := range r.Frames {
			sv.Counterexamples = append(sv.Counterexamples, cache.Counterexample{Symbol: f.Symbol, Value: f.Value})
		}
		p.Scopes = append(p.Scopes, sv)
	}
	return p
}

func fromPayload(p *cache.Payload) []solver.ScopeResult {
	out := make([]solver.ScopeResult, 0, len(p.Scopes))
	for _, sv := range p.Scopes {
		var verdict solver.Verdict
		switch sv.Verdict {
		case "sat":
			verdict = solver.Sat
		case "unsat":
			verdict = solver.Unsat
		default:
			verdict = solver.Unknown
		}
		r := solver.ScopeResult{Index: sv.Index, Verdict: verdict}
		for _, ce := range sv.Counterexamples {
			r.Frames = append(r.Frames, solver.Frame{Symbol: ce.Symbol, Value: ce.Value})
		}
		out = append(out, r)
	}
	return out
}
