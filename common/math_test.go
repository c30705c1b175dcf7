package common

import "testing"

func TestInverseLerp(t *testing.T) {
	cases := []struct {
		name    string
		a, b, v float64
		want    float64
	}{
		{"start", 10, 0, 10, 0},
		{"end", 10, 0, 0, 1},
		{"middle", 10, 0, 2.5, 0.75},
		{"clamp_above", 10, 0, 20, 0},
		{"clamp_below", 10, 0, -5, 1},
		{"degenerate", 3, 3, 3, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := InverseLerp(c.a, c.b, c.v); got != c.want {
				t.Fatalf("InverseLerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.v, got, c.want)
			}
		})
	}
}

func TestLerpClamped(t *testing.T) {
	if got := LerpClamped(2, 4, 3); got != 4 {
		t.Fatalf("expected clamp to 4, got %v", got)
	}
	if got := LerpClamped(2, 4, -1); got != 2 {
		t.Fatalf("expected clamp to 2, got %v", got)
	}
	if got := LerpClamped(2, 4, 0.5); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}
