package mesh

// Axis selects one of the three coordinate-axis slabs drawn through the
// origin.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// The slabs reach the cube boundary and are thin enough to read as lines.
const (
	axisHalfLength    = 5.0
	axisHalfThickness = 0.01
)

var (
	axisDark  = [3]float32{0.83, 0.70, 0.44}
	axisLight = [3]float32{0.92, 0.86, 0.76}
)

// AxisBatch builds the thin box for one axis: 24 vertices, 36 indices. One
// pair of side faces is tinted lighter so the slab stays visible from every
// angle; for the x and y slabs that is the z-facing pair, for the z slab the
// y-facing pair.
func AxisBatch(a Axis) Batch {
	half := [3]float32{axisHalfThickness, axisHalfThickness, axisHalfThickness}
	half[int(a)] = axisHalfLength

	lightAxis := 2
	if a == AxisZ {
		lightAxis = 1
	}

	var b Batch
	for axis := 0; axis < 3; axis++ {
		for _, sign := range []float32{-1, 1} {
			color := axisDark
			if axis == lightAxis {
				color = axisLight
			}
			appendBoxFace(&b, half, axis, sign, color)
		}
	}
	return b
}

// appendBoxFace adds one quad of a box: four vertices sharing a color and an
// axis-aligned normal, and the two triangles covering them.
func appendBoxFace(b *Batch, half [3]float32, axis int, sign float32, color [3]float32) {
	u := (axis + 1) % 3
	v := (axis + 2) % 3

	base := uint32(b.VertexCount())
	for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		var pos, normal [3]float32
		pos[axis] = sign * half[axis]
		pos[u] = c[0] * half[u]
		pos[v] = c[1] * half[v]
		normal[axis] = sign

		b.Vertices = append(b.Vertices,
			pos[0], pos[1], pos[2],
			color[0], color[1], color[2],
			0, 0,
			normal[0], normal[1], normal[2],
		)
	}
	b.Indices = append(b.Indices, base, base+1, base+2, base, base+2, base+3)
}

// LampCube returns the small position-only cube marking the key light. It is
// drawn with its own flat shader, so the vertices carry no attributes beyond
// position.
func LampCube() ([]float32, []uint32) {
	vertices := []float32{
		5.95, 5.95, 6.05,
		5.95, 5.95, 5.95,
		6.05, 5.95, 5.95,
		6.05, 5.95, 6.05,
		5.95, 6.05, 6.05,
		5.95, 6.05, 5.95,
		6.05, 6.05, 5.95,
		6.05, 6.05, 6.05,
	}
	indices := []uint32{
		0, 1, 2,
		0, 2, 3,
		0, 4, 7,
		0, 7, 3,
		3, 7, 6,
		3, 6, 2,
		2, 6, 5,
		2, 5, 1,
		1, 5, 4,
		1, 4, 0,
		4, 5, 6,
		4, 6, 7,
	}
	return vertices, indices
}
