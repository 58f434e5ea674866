package potential

import (
	"errors"
	"math"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(2.5, 500, 3000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(g.Radii) != 3000 {
		t.Fatalf("expected 3000 points, got %d", len(g.Radii))
	}
	if g.Radii[0] != 2.5 {
		t.Errorf("expected first radius 2.5, got %f", g.Radii[0])
	}
	if g.Radii[len(g.Radii)-1] != 500 {
		t.Errorf("expected last radius 500, got %f", g.Radii[len(g.Radii)-1])
	}

	for i := 1; i < len(g.Radii); i++ {
		if g.Radii[i] <= g.Radii[i-1] {
			t.Fatalf("radii not strictly increasing at %d: %v <= %v", i, g.Radii[i], g.Radii[i-1])
		}
	}
}

func TestNewGrid_Spacing(t *testing.T) {
	g, err := NewGrid(1.0, 2.0, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []float64{1.0, 1.25, 1.5, 1.75, 2.0}
	for i, r := range g.Radii {
		if math.Abs(r-expected[i]) > 1e-12 {
			t.Errorf("point %d: expected %f, got %f", i, expected[i], r)
		}
	}
}

func TestNewGrid_Validation(t *testing.T) {
	tests := []struct {
		name       string
		rMin, rMax float64
		n          int
		want       error
	}{
		{"zero rmin", 0, 10, 100, ErrNonPositiveRadius},
		{"negative rmin", -1, 10, 100, ErrNonPositiveRadius},
		{"inverted window", 10, 2, 100, ErrWindowInverted},
		{"degenerate window", 5, 5, 100, ErrWindowInverted},
		{"one point", 1, 10, 1, ErrTooFewPoints},
		{"zero points", 1, 10, 0, ErrTooFewPoints},
	}

	for _, tt := range tests {
		_, err := NewGrid(tt.rMin, tt.rMax, tt.n)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}
