package solver

import "testing"

func TestParseModel_ExtractsScalarDefineFuns(t *testing.T) {
	text := `(model
  (define-fun x$0$0 () Int
    5)
  (define-fun ok$0$0 () Bool
    false)
)`
	frames := parseModel(text)
	want := map[string]string{"x$0$0": "5", "ok$0$0": "false"}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d", len(frames), len(want))
	}
	for _, f := range frames {
		if want[f.Symbol] != f.Value {
			t.Errorf("frame %s = %q, want %q", f.Symbol, f.Value, want[f.Symbol])
		}
	}
}

func TestParseModel_HandlesNegativeIntValue(t *testing.T) {
	text := `(model (define-fun n$0$0 () Int (- 3)))`
	frames := parseModel(text)
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	if frames[0].Value != "(- 3)" {
		t.Errorf("Value = %q, want %q", frames[0].Value, "(- 3)")
	}
}

func TestParseModel_EmptyModelYieldsNoFrames(t *testing.T) {
	frames := parseModel("(model)")
	if len(frames) != 0 {
		t.Errorf("got %d frames, want 0", len(frames))
	}
}
