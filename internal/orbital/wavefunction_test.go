package orbital

import (
	"math"
	"testing"
)

// Evaluation points are chosen where the closed forms collapse to exact
// values: radial nodes, angular nodes, and r=0.
func TestDensityValues(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		r, theta float64
		want     float64
		tol      float64
	}{
		{"1s origin peak", State{1, 0, 0}, 0, math.Pi / 2, 1 / math.Pi, 1e-12},
		{"1s one radius out", State{1, 0, 0}, 1, 0, math.Exp(-2) / math.Pi, 1e-12},
		{"2s origin", State{2, 0, 0}, 0, 0, 0.994718394, 1e-6},
		{"2s radial node", State{2, 0, 0}, 2, 0, 0, 1e-12},
		{"2pz equatorial node", State{2, 1, 0}, 2, math.Pi / 2, 0, 1e-9},
		{"2px polar node", State{2, 1, 1}, 2, 0, 0, 1e-12},
		{"3s origin", State{3, 0, 0}, 0, 0, 116.64, 1e-6},
		{"3pz radial node", State{3, 1, 0}, 6, 0, 0, 1e-12},
		{"3px radial node", State{3, 1, 1}, 6, math.Pi / 2, 0, 1e-12},
		{"3dz2 origin", State{3, 2, 0}, 0, 0, 0, 1e-12},
		{"3dxz equatorial node", State{3, 2, 1}, 3, math.Pi / 2, 0, 1e-9},
		{"3dxy polar node", State{3, 2, 2}, 3, 0, 0, 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Lookup(tt.state)
			if err != nil {
				t.Fatal(err)
			}
			got := e.Density(tt.r, tt.theta, 0)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("density(%v, %v, 0) = %v, want %v", tt.r, tt.theta, got, tt.want)
			}
		})
	}
}

func TestDensityNonNegative(t *testing.T) {
	for _, s := range SupportedStates() {
		e, err := Lookup(s)
		if err != nil {
			t.Fatal(err)
		}
		for r := 0.0; r <= 10; r += 0.5 {
			for theta := 0.0; theta <= math.Pi; theta += math.Pi / 8 {
				if d := e.Density(r, theta, 0); d < 0 {
					t.Fatalf("state %v: density(%v, %v, 0) = %v, want >= 0", s, r, theta, d)
				}
			}
		}
	}
}

// The densities are phi-independent: the complex phase cancels when the
// wavefunction is squared.
func TestDensityIgnoresPhi(t *testing.T) {
	for _, s := range SupportedStates() {
		e, err := Lookup(s)
		if err != nil {
			t.Fatal(err)
		}
		a := e.Density(1.7, 0.9, 0)
		b := e.Density(1.7, 0.9, 2.3)
		if a != b {
			t.Errorf("state %v: density differs across phi: %v vs %v", s, a, b)
		}
	}
}

// Opposite signs of ml share a density function.
func TestDensitySymmetricInM(t *testing.T) {
	pos, err := Lookup(State{3, 2, 2})
	if err != nil {
		t.Fatal(err)
	}
	neg, err := Lookup(State{3, 2, -2})
	if err != nil {
		t.Fatal(err)
	}
	if a, b := pos.Density(2.1, 1.2, 0), neg.Density(2.1, 1.2, 0); a != b {
		t.Errorf("densities for ml=+-2 differ: %v vs %v", a, b)
	}
}
