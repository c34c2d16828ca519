package mesh

import (
	"math"
	"testing"

	"github.com/Faultbox/orbitalsim/internal/orbital"
)

func TestBuildField(t *testing.T) {
	tmpl := NewSphereTemplate(9, 9)
	instances := []orbital.SphereInstance{
		{Center: [3]float32{-2, 0, 0}, Radius: 0.25, Color: [3]float32{1, 0, 0.2}},
		{Center: [3]float32{0, 0, 0}, Radius: 0.5, Color: [3]float32{0.5, 0.5, 0.2}},
		{Center: [3]float32{2, 0, 0}, Radius: 0, Color: [3]float32{0, 1, 0.2}},
	}

	b := BuildField(tmpl, instances)

	if want := len(instances) * 100 * VertexStride; len(b.Vertices) != want {
		t.Errorf("len(Vertices) = %d, want %d", len(b.Vertices), want)
	}
	if want := len(instances) * 432; len(b.Indices) != want {
		t.Errorf("len(Indices) = %d, want %d", len(b.Indices), want)
	}

	limit := uint32(len(instances) * 100)
	for n, idx := range b.Indices {
		if idx >= limit {
			t.Fatalf("index %d = %d, beyond %d vertices", n, idx, limit)
		}
	}

	// Instance order: each instance's first vertex is its north pole.
	for n, inst := range instances {
		rec := b.Vertices[n*100*VertexStride:]
		wantZ := inst.Center[2] + inst.Radius
		if math.Abs(float64(rec[0]-inst.Center[0])) > 1e-5 ||
			math.Abs(float64(rec[1]-inst.Center[1])) > 1e-5 ||
			math.Abs(float64(rec[2]-wantZ)) > 1e-5 {
			t.Errorf("instance %d first vertex = %v, want north pole of %v", n, rec[:3], inst.Center)
		}
	}
}

func TestBuildFieldEmpty(t *testing.T) {
	b := BuildField(NewSphereTemplate(9, 9), nil)
	if len(b.Vertices) != 0 || len(b.Indices) != 0 {
		t.Errorf("empty field produced %d vertices, %d indices", b.VertexCount(), len(b.Indices))
	}
}

// Full pipeline: ground state over the default grid yields one sphere per
// grid cell, merged into a single batch.
func TestBuildFieldGroundState(t *testing.T) {
	entry, err := orbital.Lookup(orbital.State{N: 1, L: 0, M: 0})
	if err != nil {
		t.Fatal(err)
	}
	grid := orbital.DefaultGrid()
	instances := orbital.Instances(entry, grid)
	tmpl := NewSphereTemplate(9, 9)

	b := BuildField(tmpl, instances)

	if want := 1331 * 100; b.VertexCount() != want {
		t.Errorf("VertexCount() = %d, want %d", b.VertexCount(), want)
	}
	if want := 1331 * 432; len(b.Indices) != want {
		t.Errorf("len(Indices) = %d, want %d", len(b.Indices), want)
	}
}
