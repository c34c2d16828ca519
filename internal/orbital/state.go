// Package orbital computes hydrogen-atom electron probability densities for
// a fixed set of quantum states and samples them on a 3D grid.
package orbital

import (
	"errors"
	"fmt"
)

// Validation failure kinds. Both are terminal: no geometry is generated for
// a state that fails either check.
var (
	// ErrInvalidState means the triple violates l >= 0, l+1 <= n or |ml| <= l.
	ErrInvalidState = errors.New("quantum numbers are not allowed")

	// ErrUnsupportedState means the triple is physically valid but has no
	// entry in the density table.
	ErrUnsupportedState = errors.New("quantum numbers are not yet supported")
)

// State holds the quantum numbers selecting a stationary electron state.
// Immutable once read from input.
type State struct {
	N int // principal
	L int // angular momentum
	M int // magnetic (ml)
}

// Validate checks the physical constraints on the quantum numbers.
func (s State) Validate() error {
	if s.L < 0 || s.L+1 > s.N || abs(s.M) > s.L {
		return fmt.Errorf("%w: %v", ErrInvalidState, s)
	}
	return nil
}

func (s State) String() string {
	return fmt.Sprintf("(n=%d, l=%d, ml=%d)", s.N, s.L, s.M)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
