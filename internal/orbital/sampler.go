package orbital

import "math"

// Grid describes the fixed sampling cube: Resolution^3 centers spanning
// [-HalfExtent, HalfExtent] on every axis, both boundary faces included.
type Grid struct {
	HalfExtent float64
	Resolution int
}

// DefaultGrid matches the original calibration: an 11x11x11 cube of
// half-extent 5 grid length units.
func DefaultGrid() Grid {
	return Grid{HalfExtent: 5.0, Resolution: 11}
}

// Step returns the distance between adjacent grid centers.
func (g Grid) Step() float64 {
	return 2 * g.HalfExtent / float64(g.Resolution-1)
}

// Count returns the total number of grid samples.
func (g Grid) Count() int {
	return g.Resolution * g.Resolution * g.Resolution
}

// Sample is one evaluated grid cell. Transient: it exists only long enough
// to produce a sphere instance.
type Sample struct {
	I, J, K int
	X, Y, Z float64

	R, Theta, Phi float64

	// AtOrigin marks the cell whose center is exactly the nucleus, where
	// theta is taken as 0 by convention (acos(z/r) is undefined at r=0).
	AtOrigin bool

	Density float64
}

// Spherical converts a Cartesian grid center to spherical coordinates.
// At the origin r is 0 and theta/phi fall back to 0 rather than NaN; the
// caller can detect the case through r == 0.
func Spherical(x, y, z float64) (r, theta, phi float64) {
	r = math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return 0, 0, 0
	}
	return r, math.Acos(z / r), math.Atan2(y, x)
}

// Each walks the grid in traversal order (outer i, middle j, inner k),
// evaluates the entry's density at every center and hands each sample to
// visit. The radial coordinate is divided by the entry's scale before
// evaluation.
func (g Grid) Each(e Entry, visit func(Sample)) {
	step := g.Step()
	for i := 0; i < g.Resolution; i++ {
		for j := 0; j < g.Resolution; j++ {
			for k := 0; k < g.Resolution; k++ {
				x := -g.HalfExtent + float64(i)*step
				y := -g.HalfExtent + float64(j)*step
				z := -g.HalfExtent + float64(k)*step

				r, theta, phi := Spherical(x, y, z)
				visit(Sample{
					I: i, J: j, K: k,
					X: x, Y: y, Z: z,
					R: r, Theta: theta, Phi: phi,
					AtOrigin: r == 0,
					Density:  e.Density(r/e.RadialScale, theta, phi),
				})
			}
		}
	}
}
