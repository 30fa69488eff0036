package source

import "testing"

func TestSpan_Empty(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want bool
	}{
		{"zero length", Span{File: 1, Start: 10, End: 10}, true},
		{"non-zero length", Span{File: 1, Start: 10, End: 11}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpan_Len(t *testing.T) {
	s := Span{File: 1, Start: 10, End: 25}
	if got := s.Len(); got != 15 {
		t.Errorf("Len() = %d, want 15", got)
	}
}

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Span
		want  Span
	}{
		{
			name: "b extends right",
			a:    Span{File: 1, Start: 10, End: 20},
			b:    Span{File: 1, Start: 15, End: 30},
			want: Span{File: 1, Start: 10, End: 30},
		},
		{
			name: "b extends left",
			a:    Span{File: 1, Start: 10, End: 20},
			b:    Span{File: 1, Start: 0, End: 15},
			want: Span{File: 1, Start: 0, End: 20},
		},
		{
			name: "b contained within a",
			a:    Span{File: 1, Start: 0, End: 100},
			b:    Span{File: 1, Start: 10, End: 20},
			want: Span{File: 1, Start: 0, End: 100},
		},
		{
			name: "different files returns a unchanged",
			a:    Span{File: 1, Start: 0, End: 10},
			b:    Span{File: 2, Start: 0, End: 100},
			want: Span{File: 1, Start: 0, End: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpan_IsLeftThan(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 8, End: 20}
	if !a.IsLeftThan(b) {
		t.Error("expected a to be left of b")
	}
	if a.IsLeftThan(Span{File: 2, Start: 0, End: 1}) {
		t.Error("spans in different files should never compare as left-of")
	}
}

func TestSpan_String(t *testing.T) {
	s := Span{File: 3, Start: 1, End: 4}
	if got, want := s.String(), "3:1-4"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
