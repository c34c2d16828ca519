package orbital

// SphereInstance is the visual encoding of one grid sample: a small sphere
// at the sample's center whose radius and color carry the local density.
type SphereInstance struct {
	Center [3]float32
	Radius float32
	Color  [3]float32
}

// MapSample turns a sample's density into a sphere radius and RGB color.
// The density is first divided by the entry's peak (a no-op for every state
// but the ground state) and is deliberately not clamped: out-of-range
// densities pass through as out-of-range radius and color, matching the
// original behavior.
func MapSample(e Entry, step float64, s Sample) SphereInstance {
	d := s.Density / e.PeakDensity
	return SphereInstance{
		Center: [3]float32{float32(s.X), float32(s.Y), float32(s.Z)},
		Radius: float32(step / 1.5 * d),
		Color:  [3]float32{float32(1 - d), float32(d), 0.2},
	}
}

// Instances runs the sampler over the grid and maps every sample, returning
// the sphere instances in grid traversal order.
func Instances(e Entry, g Grid) []SphereInstance {
	step := g.Step()
	out := make([]SphereInstance, 0, g.Count())
	g.Each(e, func(s Sample) {
		out = append(out, MapSample(e, step, s))
	})
	return out
}
