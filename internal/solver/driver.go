// Package solver drives an external SMT-LIB solver process (default `z3
// -in`) over its stdin/stdout, submitting a lir.Model's declarations and
// items incrementally and parsing each validity scope's check-sat verdict
// — and, on sat, its model — back into Go values.
package solver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/lir"
)

// Verdict is a validity scope's check-sat result.
type Verdict uint8

const (
	Unknown Verdict = iota
	Sat
	Unsat
)

func (v Verdict) String() string {
	switch v {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// Frame is one (symbol, value) pair read out of a `sat` validity scope's
// model — the raw solver-level interpretation, before the pipeline resolves
// the symbol back through the LIR naming scheme to its originating source
// declaration.
type Frame struct {
	Symbol string
	Value  string
}

// ScopeResult is one validity scope's outcome: its index in emission order,
// the verdict, and — only when Verdict is Sat — the counterexample frames.
type ScopeResult struct {
	Index   int
	Verdict Verdict
	Frames  []Frame
}

// Error wraps a solver-driver failure with the diagnostic code the pipeline
// should report it under — there is no source.Span to attach, since these
// are process-level failures (the binary is missing, the process timed
// out, its output didn't parse), not lowering errors against a source node.
type Error struct {
	Code diag.Code
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// Driver configures how an external solver process is spawned.
type Driver struct {
	Path    string
	Args    []string
	Timeout time.Duration
}

// New returns a Driver invoking path with args. A zero Timeout means no
// deadline beyond ctx's own.
func New(path string, args []string, timeout time.Duration) *Driver {
	return &Driver{Path: path, Args: args, Timeout: timeout}
}

// Banner runs the solver with --version and returns its raw output, used
// as part of the verification cache key so a solver upgrade invalidates
// stale cached verdicts.
func (d *Driver) Banner(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, d.Path, "--version")
	out, err := cmd.Output()
	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return "", &Error{Code: diag.SolverUnavailable, Err: fmt.Errorf("solver %q not available: %w", d.Path, err)}
		}
	}
	return strings.TrimSpace(string(out)), nil
}

// Verify submits model to one solver process and returns one ScopeResult
// per ValidityScope item, in emission order.
func (d *Driver) Verify(ctx context.Context, model *lir.Model) ([]ScopeResult, error) {
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	sess, err := d.start(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.close()

	for _, decl := range model.Decls {
		if err := sess.send(fmt.Sprintf("(declare-fun %s () %s)", decl.Name, sortName(decl.Sort))); err != nil {
			return nil, err
		}
	}

	var results []ScopeResult
	idx := 0
	for _, item := range model.Items {
		switch item.Kind {
		case lir.ItemAssume:
			data := item.Data.(lir.AssumeData)
			if err := sess.send(fmt.Sprintf("(assert %s)", exprText(data.Test))); err != nil {
				return nil, err
			}

		case lir.ItemValidityScope:
			res, err := sess.runScope(idx, item.Data.(lir.ValidityScopeData))
			if err != nil {
				return nil, err
			}
			results = append(results, res)
			idx++
		}
	}
	return results, nil
}

// VerifyPerScope spawns one fresh solver process per validity scope,
// replaying every prior Assume into each new process before that scope's
// own push/check-sat/pop — the --per-scope mode, which must agree with
// Verify's single-process verdict for every scope.
func (d *Driver) VerifyPerScope(ctx context.Context, model *lir.Model) ([]ScopeResult, error) {
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	var standing []string
	var results []ScopeResult
	idx := 0
	for _, item := range model.Items {
		switch item.Kind {
		case lir.ItemAssume:
			data := item.Data.(lir.AssumeData)
			standing = append(standing, fmt.Sprintf("(assert %s)", exprText(data.Test)))

		case lir.ItemValidityScope:
			sess, err := d.start(ctx)
			if err != nil {
				return nil, err
			}
			for _, decl := range model.Decls {
				if err := sess.send(fmt.Sprintf("(declare-fun %s () %s)", decl.Name, sortName(decl.Sort))); err != nil {
					sess.close()
					return nil, err
				}
			}
			for _, a := range standing {
				if err := sess.send(a); err != nil {
					sess.close()
					return nil, err
				}
			}
			res, err := sess.runScope(idx, item.Data.(lir.ValidityScopeData))
			sess.close()
			if err != nil {
				return nil, err
			}
			results = append(results, res)
			idx++
		}
	}
	return results, nil
}

func (d *Driver) start(ctx context.Context) (*session, error) {
	cmd := exec.CommandContext(ctx, d.Path, d.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &Error{Code: diag.SolverUnavailable, Err: err}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &Error{Code: diag.SolverUnavailable, Err: err}
	}
	if err := cmd.Start(); err != nil {
		return nil, &Error{Code: diag.SolverUnavailable, Err: fmt.Errorf("starting solver %q: %w", d.Path, err)}
	}
	return &session{cmd: cmd, stdin: stdin, reader: bufio.NewReader(stdout)}, nil
}

type session struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	reader *bufio.Reader
}

func (s *session) send(line string) error {
	if _, err := io.WriteString(s.stdin, line+"\n"); err != nil {
		return &Error{Code: diag.SolverUnavailable, Err: fmt.Errorf("writing to solver: %w", err)}
	}
	return nil
}

// readAtom reads one whitespace-delimited token — the response to
// check-sat (`sat`, `unsat`, or `unknown`).
func (s *session) readAtom() (string, error) {
	for {
		line, err := s.reader.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			return trimmed, nil
		}
		if err != nil {
			return "", &Error{Code: diag.SolverUnexpectedOutput, Err: fmt.Errorf("reading solver response: %w", err)}
		}
	}
}

// readSExpr reads one balanced-parenthesis response — the answer to
// get-model.
func (s *session) readSExpr() (string, error) {
	var b strings.Builder
	depth := 0
	started := false
	for {
		r, _, err := s.reader.ReadRune()
		if err != nil {
			return "", &Error{Code: diag.SolverUnexpectedOutput, Err: fmt.Errorf("reading solver model: %w", err)}
		}
		switch r {
		case '(':
			depth++
			started = true
			b.WriteRune(r)
		case ')':
			depth--
			b.WriteRune(r)
		default:
			if started {
				b.WriteRune(r)
			}
		}
		if started && depth == 0 {
			return b.String(), nil
		}
	}
}

func (s *session) runScope(idx int, data lir.ValidityScopeData) (ScopeResult, error) {
	if err := s.send("(push 1)"); err != nil {
		return ScopeResult{}, err
	}
	for _, pc := range data.PathCondition {
		if err := s.send(fmt.Sprintf("(assert %s)", exprText(pc))); err != nil {
			return ScopeResult{}, err
		}
	}
	if err := s.send(fmt.Sprintf("(assert (not %s))", exprText(data.Test))); err != nil {
		return ScopeResult{}, err
	}
	if err := s.send("(check-sat)"); err != nil {
		return ScopeResult{}, err
	}
	atom, err := s.readAtom()
	if err != nil {
		return ScopeResult{}, err
	}

	res := ScopeResult{Index: idx}
	switch atom {
	case "sat":
		res.Verdict = Sat
		if err := s.send("(get-model)"); err != nil {
			return ScopeResult{}, err
		}
		modelText, err := s.readSExpr()
		if err != nil {
			return ScopeResult{}, err
		}
		res.Frames = parseModel(modelText)
	case "unsat":
		res.Verdict = Unsat
	default:
		res.Verdict = Unknown
	}

	if err := s.send("(pop 1)"); err != nil {
		return ScopeResult{}, err
	}
	return res, nil
}

func (s *session) close() {
	_ = s.stdin.Close()
	_ = s.cmd.Wait()
}

func sortName(sort lir.Sort) string {
	switch sort {
	case lir.SortBool:
		return "Bool"
	case lir.SortReal:
		return "Real"
	default:
		return "Int"
	}
}
