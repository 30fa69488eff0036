package main

import (
	"testing"

	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/pipeline"
	"github.com/verislang/veris/internal/solver"
	"github.com/verislang/veris/internal/source"
)

func newBag(codes ...diag.Code) *diag.Bag {
	bag := diag.NewBag(64)
	for _, c := range codes {
		d := diag.New(diag.SevError, c, source.Span{}, "test")
		bag.Add(&d)
	}
	return bag
}

func TestOutcomeExitCode(t *testing.T) {
	cases := []struct {
		name string
		res  *pipeline.Result
		want int
	}{
		{
			name: "clean pass",
			res:  &pipeline.Result{Bag: newBag()},
			want: exitOK,
		},
		{
			name: "syntax error",
			res:  &pipeline.Result{Bag: newBag(diag.SynUnexpectedToken)},
			want: exitCompileError,
		},
		{
			name: "single counterexample",
			res: &pipeline.Result{
				Bag: newBag(diag.LowerVerificationFailed),
				Scopes: []pipeline.ScopeOutcome{
					{Verdict: solver.Sat},
				},
			},
			want: exitCounterexample,
		},
		{
			name: "unsupported construct beats a counterexample look-alike",
			res:  &pipeline.Result{Bag: newBag(diag.LowerUnsupportedConstruct)},
			want: exitCompileError,
		},
		{
			name: "mixed compile and verification diagnostics still reports compile error",
			res:  &pipeline.Result{Bag: newBag(diag.LowerIllegalOperation, diag.LowerVerificationFailed)},
			want: exitCompileError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := outcomeExitCode(tc.res); got != tc.want {
				t.Fatalf("outcomeExitCode(%s) = %d, want %d", tc.name, got, tc.want)
			}
		})
	}
}

func TestHasVerificationFailure(t *testing.T) {
	cases := []struct {
		name string
		bag  *diag.Bag
		want bool
	}{
		{"empty bag", newBag(), false},
		{"all verification failures", newBag(diag.LowerVerificationFailed, diag.LowerVerificationFailed), true},
		{"one compile error", newBag(diag.LowerUnsupportedConstruct), false},
		{"mixed", newBag(diag.LowerVerificationFailed, diag.LowerUnsupportedConstruct), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := &pipeline.Result{Bag: tc.bag}
			if got := hasVerificationFailure(res); got != tc.want {
				t.Fatalf("hasVerificationFailure(%s) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}
