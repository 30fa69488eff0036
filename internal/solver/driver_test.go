package solver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/verislang/veris/internal/lir"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/types"
)

// fakeSolver writes a tiny shell script that answers every `check-sat`
// with the given verdicts in order (one per call) and, on `sat`, a
// canned model — standing in for a real SMT-LIB solver so Driver's
// stdin/stdout protocol can be exercised without one installed.
func fakeSolver(t *testing.T, verdicts ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "fake-solver.sh")
	script := "#!/bin/sh\nn=0\nverdicts=\"" + joinSpace(verdicts) + "\"\n" +
		"while read -r line; do\n" +
		"  case \"$line\" in\n" +
		"    *check-sat*)\n" +
		"      n=$((n + 1))\n" +
		"      v=$(echo \"$verdicts\" | cut -d' ' -f\"$n\")\n" +
		"      echo \"$v\"\n" +
		"      ;;\n" +
		// single-quoted: $ is literal here, no shell expansion to guard against.
		"    *get-model*)\n" +
		"      echo '(model (define-fun x$0$0 () Int 5))'\n" +
		"      ;;\n" +
		"  esac\n" +
		"done\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing fake solver: %v", err)
	}
	return path
}

func joinSpace(xs []string) string {
	out := ""
	for i, x := range xs {
		if i > 0 {
			out += " "
		}
		out += x
	}
	return out
}

func oneScopeModel() *lir.Model {
	x := lir.Expr{Kind: lir.ExprSymbol, Type: types.Int, Data: lir.SymbolData{Name: "x$0$0"}}
	return &lir.Model{
		Decls: []lir.Decl{{Name: "x$0$0", Sort: lir.SortInt}},
		Items: []lir.Item{
			{Kind: lir.ItemValidityScope, Span: source.Span{}, Data: lir.ValidityScopeData{
				PathCondition: nil,
				Test:          x,
			}},
		},
	}
}

func TestDriver_Verify_ParsesSatVerdictAndModel(t *testing.T) {
	path := fakeSolver(t, "sat")
	d := New("/bin/sh", []string{path}, 0)
	results, err := d.Verify(context.Background(), oneScopeModel())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Verdict != Sat {
		t.Errorf("Verdict = %v, want Sat", results[0].Verdict)
	}
	if len(results[0].Frames) != 1 || results[0].Frames[0].Value != "5" {
		t.Errorf("Frames = %+v, want one frame with value 5", results[0].Frames)
	}
}

func TestDriver_Verify_ParsesUnsatVerdictWithNoModel(t *testing.T) {
	path := fakeSolver(t, "unsat")
	d := New("/bin/sh", []string{path}, 0)
	results, err := d.Verify(context.Background(), oneScopeModel())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if results[0].Verdict != Unsat {
		t.Errorf("Verdict = %v, want Unsat", results[0].Verdict)
	}
	if len(results[0].Frames) != 0 {
		t.Errorf("expected no frames on unsat, got %+v", results[0].Frames)
	}
}
