package mesh

import (
	"math"

	"github.com/Faultbox/orbitalsim/internal/orbital"
)

// SphereTemplate tessellates a UV sphere once and stamps it out per
// instance. The local index list is identical for every instance; only the
// vertex offset changes.
type SphereTemplate struct {
	StackCount  int
	SectorCount int

	indices []uint32
}

// NewSphereTemplate builds the shared local index list for a sphere with the
// given stack and sector counts. The first and last stacks collapse to the
// poles, so their second triangle is skipped.
func NewSphereTemplate(stackCount, sectorCount int) *SphereTemplate {
	t := &SphereTemplate{StackCount: stackCount, SectorCount: sectorCount}

	for i := 0; i < stackCount; i++ {
		k1 := uint32(i * (sectorCount + 1))
		k2 := k1 + uint32(sectorCount) + 1

		for j := 0; j < sectorCount; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				t.indices = append(t.indices, k1, k2, k1+1)
			}
			if i != stackCount-1 {
				t.indices = append(t.indices, k1+1, k2, k2+1)
			}
		}
	}
	return t
}

// VertexCount returns the number of vertices one instance produces. Each
// stack ring repeats its first vertex so the texture seam can close.
func (t *SphereTemplate) VertexCount() int {
	return (t.StackCount + 1) * (t.SectorCount + 1)
}

// IndexCount returns the number of indices one instance produces.
func (t *SphereTemplate) IndexCount() int {
	return len(t.indices)
}

// AppendVertices appends one instance's interleaved vertices to dst and
// returns the extended slice. Every vertex carries the instance's color;
// texcoords stay zero because the spheres are untextured. A zero-radius
// instance degenerates to its center point with non-finite normals, which
// never reach the screen since the triangles have zero area.
func (t *SphereTemplate) AppendVertices(dst []float32, inst orbital.SphereInstance) []float32 {
	radius := float64(inst.Radius)
	lengthInv := 1 / radius

	stackStep := math.Pi / float64(t.StackCount)
	sectorStep := 2 * math.Pi / float64(t.SectorCount)

	for i := 0; i <= t.StackCount; i++ {
		stackAngle := math.Pi/2 - float64(i)*stackStep
		ring := radius * math.Cos(stackAngle)
		zLocal := radius * math.Sin(stackAngle)

		for j := 0; j <= t.SectorCount; j++ {
			sectorAngle := float64(j) * sectorStep
			xLocal := ring * math.Cos(sectorAngle)
			yLocal := ring * math.Sin(sectorAngle)

			dst = append(dst,
				float32(xLocal)+inst.Center[0],
				float32(yLocal)+inst.Center[1],
				float32(zLocal)+inst.Center[2],
				inst.Color[0], inst.Color[1], inst.Color[2],
				0, 0,
				float32(xLocal*lengthInv),
				float32(yLocal*lengthInv),
				float32(zLocal*lengthInv),
			)
		}
	}
	return dst
}

// AppendIndices appends one instance's indices to dst, offset so they
// address the instance's own vertices within the merged buffer.
func (t *SphereTemplate) AppendIndices(dst []uint32, instanceIndex int) []uint32 {
	offset := uint32(instanceIndex * t.VertexCount())
	for _, idx := range t.indices {
		dst = append(dst, idx+offset)
	}
	return dst
}
