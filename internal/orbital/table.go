package orbital

import "fmt"

// Entry describes everything the pipeline needs for one supported state:
// how to shrink grid lengths into the density's dimensionless radial
// argument, how to flatten the raw density into roughly [0,1], and the
// axis-scale annotation shown to the user.
type Entry struct {
	State State

	// RadialScale converts grid length units into the density's
	// dimensionless r: the evaluator receives r/RadialScale. Calibrated per
	// state so the interesting radial structure lands inside the fixed cube.
	RadialScale float64

	// NormConst is the empirical amplitude rescale baked into Density.
	// Recorded here so tests can pin the literal value.
	NormConst float64

	// PeakDensity divides the raw density before it is mapped to radius and
	// color. 1 for every state except the ground state, whose raw densities
	// exceed 1.
	PeakDensity float64

	// Label is the human-readable axis-scale annotation.
	Label string

	Density DensityFunc
}

// stateKey indexes the table by (n, l, |ml|); +-ml pairs share a density.
type stateKey struct {
	n, l, m int
}

var table = map[stateKey]Entry{
	{1, 0, 0}: {RadialScale: 5.0, NormConst: norm100, PeakDensity: 0.31, Label: "axes extend to 1 Bohr (0.5 A)", Density: density100},
	{2, 0, 0}: {RadialScale: 2.5, NormConst: norm200, PeakDensity: 1, Label: "axes extend to 2 Bohr (1.0 A)", Density: density200},
	{2, 1, 0}: {RadialScale: 1.0, NormConst: norm210, PeakDensity: 1, Label: "axes extend to 1 Bohr (0.5 A)", Density: density210},
	{2, 1, 1}: {RadialScale: 1.0, NormConst: norm211, PeakDensity: 1, Label: "axes extend to 5 Bohr (2.5 A)", Density: density211},
	{3, 0, 0}: {RadialScale: 0.5, NormConst: norm300, PeakDensity: 1, Label: "axes extend to 10 Bohr (5.0 A)", Density: density300},
	{3, 1, 0}: {RadialScale: 0.666666666, NormConst: norm310, PeakDensity: 1, Label: "axes extend to 7.5 Bohr (3.75 A)", Density: density310},
	{3, 1, 1}: {RadialScale: 0.666666666666, NormConst: norm311, PeakDensity: 1, Label: "axes extend to 6.7 Bohr (3.3 A)", Density: density311},
	{3, 2, 0}: {RadialScale: 0.4, NormConst: norm320, PeakDensity: 1, Label: "axes extend to 10 Bohr (5 A)", Density: density320},
	{3, 2, 1}: {RadialScale: 0.5, NormConst: norm321, PeakDensity: 1, Label: "axes extend to 10 Bohr (5 A)", Density: density321},
	{3, 2, 2}: {RadialScale: 0.5, NormConst: norm322, PeakDensity: 1, Label: "axes extend to 10 Bohr (5 A)", Density: density322},
}

// Lookup validates the state and returns its table entry. Physical validity
// is checked before table membership, so a triple like (2,1,2) reports
// ErrInvalidState, never ErrUnsupportedState.
func Lookup(s State) (Entry, error) {
	if err := s.Validate(); err != nil {
		return Entry{}, err
	}
	e, ok := table[stateKey{s.N, s.L, abs(s.M)}]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %v", ErrUnsupportedState, s)
	}
	e.State = s
	return e, nil
}

// SupportedStates lists every state the table accepts, in (n, l, ml) order
// with both signs of ml where applicable.
func SupportedStates() []State {
	var states []State
	for n := 1; n <= 3; n++ {
		for l := 0; l < n; l++ {
			for m := -l; m <= l; m++ {
				s := State{n, l, m}
				if _, ok := table[stateKey{n, l, abs(m)}]; ok {
					states = append(states, s)
				}
			}
		}
	}
	return states
}
