package mesh

import "testing"

func TestAxisBatch(t *testing.T) {
	for _, a := range []Axis{AxisX, AxisY, AxisZ} {
		b := AxisBatch(a)

		if got := b.VertexCount(); got != 24 {
			t.Fatalf("axis %d: VertexCount() = %d, want 24", a, got)
		}
		if got := len(b.Indices); got != 36 {
			t.Fatalf("axis %d: len(Indices) = %d, want 36", a, got)
		}
		for _, idx := range b.Indices {
			if idx >= 24 {
				t.Fatalf("axis %d: index %d out of range", a, idx)
			}
		}

		// The slab spans the full cube along its own axis and stays thin on
		// the other two.
		var maxAbs [3]float32
		for v := 0; v < b.VertexCount(); v++ {
			rec := b.Vertices[v*VertexStride:]
			for c := 0; c < 3; c++ {
				abs := rec[c]
				if abs < 0 {
					abs = -abs
				}
				if abs > maxAbs[c] {
					maxAbs[c] = abs
				}
			}
		}
		for c := 0; c < 3; c++ {
			want := float32(axisHalfThickness)
			if c == int(a) {
				want = axisHalfLength
			}
			if maxAbs[c] != want {
				t.Errorf("axis %d: extent on component %d = %v, want %v", a, c, maxAbs[c], want)
			}
		}
	}
}

func TestAxisBatchColors(t *testing.T) {
	b := AxisBatch(AxisX)

	light, dark := 0, 0
	for v := 0; v < b.VertexCount(); v++ {
		color := [3]float32{
			b.Vertices[v*VertexStride+3],
			b.Vertices[v*VertexStride+4],
			b.Vertices[v*VertexStride+5],
		}
		switch color {
		case axisLight:
			light++
		case axisDark:
			dark++
		default:
			t.Fatalf("vertex %d carries unexpected color %v", v, color)
		}
	}
	// Two of the six faces are tinted light.
	if light != 8 || dark != 16 {
		t.Errorf("light/dark vertex counts = %d/%d, want 8/16", light, dark)
	}
}

func TestLampCube(t *testing.T) {
	vertices, indices := LampCube()

	if len(vertices) != 8*3 {
		t.Fatalf("len(vertices) = %d, want 24", len(vertices))
	}
	if len(indices) != 36 {
		t.Fatalf("len(indices) = %d, want 36", len(indices))
	}
	for _, idx := range indices {
		if idx >= 8 {
			t.Fatalf("index %d out of range", idx)
		}
	}
	for n, v := range vertices {
		if v < 5.95 || v > 6.05 {
			t.Errorf("coordinate %d = %v, outside the lamp cube", n, v)
		}
	}
}
