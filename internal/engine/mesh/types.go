// Package mesh turns sphere instances and scene fixtures into interleaved
// vertex/index buffers ready for upload.
package mesh

// VertexStride is the number of floats per vertex in every batch:
// position (3), color (3), texcoord (2), normal (3).
const VertexStride = 11

// Batch is a flat interleaved vertex buffer plus its index buffer. Indices
// address vertices, not floats.
type Batch struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices in the batch.
func (b Batch) VertexCount() int {
	return len(b.Vertices) / VertexStride
}
