package mesh

import "github.com/Faultbox/orbitalsim/internal/orbital"

// BuildField merges every sphere instance into one batch, in instance order.
// Every index in the result is below len(instances) * template vertex count,
// so the whole field draws as a single indexed call.
func BuildField(t *SphereTemplate, instances []orbital.SphereInstance) Batch {
	b := Batch{
		Vertices: make([]float32, 0, len(instances)*t.VertexCount()*VertexStride),
		Indices:  make([]uint32, 0, len(instances)*t.IndexCount()),
	}
	for n, inst := range instances {
		b.Vertices = t.AppendVertices(b.Vertices, inst)
		b.Indices = t.AppendIndices(b.Indices, n)
	}
	return b
}
