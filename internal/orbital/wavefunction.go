package orbital

import "math"

// DensityFunc evaluates a probability density (wavefunction squared) at a
// point given in spherical coordinates. r is dimensionless (already divided
// by the state's radial scale). phi is accepted for uniformity; none of the
// supported densities depend on it (all are m=0 or real |m|=1 combinations).
type DensityFunc func(r, theta, phi float64) float64

// Per-state amplitude rescale constants. These are empirical, chosen to pull
// the peak amplitude toward order 1 for visual contrast; they are NOT the
// quantum-mechanical normalization. Changing one changes the rendered image.
const (
	norm100 = 1.0
	norm200 = 0.1
	norm210 = 0.87
	norm211 = 0.75
	norm300 = 2.5
	norm310 = 4.0
	norm311 = 4.5
	norm320 = 9.2
	norm321 = 2.5
	norm322 = 4.8
)

func density100(r, theta, phi float64) float64 {
	psi := 1 / norm100 * math.Exp(-r) / math.Sqrt(math.Pi)
	return psi * psi
}

func density200(r, theta, phi float64) float64 {
	psi := 1 / norm200 * (1.0 / 8.0) / math.Sqrt(2*math.Pi) * (2 - r) * math.Exp(-r/2)
	return psi * psi
}

func density210(r, theta, phi float64) float64 {
	psi := 1 / norm210 * r * math.Exp(-r/2) * math.Cos(theta)
	return psi * psi
}

// The e^(+-i*phi) factor cancels against its conjugate in the density, so
// the real radial/polar part is all that survives.
func density211(r, theta, phi float64) float64 {
	psi := 1 / norm211 * r * math.Exp(-r/2) * math.Sin(theta)
	return psi * psi
}

func density300(r, theta, phi float64) float64 {
	psi := 1 / norm300 * (27 - 18*r + 2*r*r) * math.Exp(-r/2)
	return psi * psi
}

func density310(r, theta, phi float64) float64 {
	psi := 1 / norm310 * (6 - r) * r * math.Exp(-r/3) * math.Cos(theta)
	return psi * psi
}

func density311(r, theta, phi float64) float64 {
	psi := 1 / norm311 * (6 - r) * r * math.Exp(-r/3) * math.Sin(theta)
	return psi * psi
}

func density320(r, theta, phi float64) float64 {
	cos := math.Cos(theta)
	psi := 1 / norm320 * r * r * math.Exp(-r/3) * (3*cos*cos - 1)
	return psi * psi
}

func density321(r, theta, phi float64) float64 {
	psi := 1 / norm321 * r * r * math.Exp(-r/3) * math.Sin(theta) * math.Cos(theta)
	return psi * psi
}

func density322(r, theta, phi float64) float64 {
	sin := math.Sin(theta)
	psi := 1 / norm322 * r * r * math.Exp(-r/3) * sin * sin
	return psi * psi
}
