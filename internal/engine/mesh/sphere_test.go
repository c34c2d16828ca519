package mesh

import (
	"math"
	"testing"

	"github.com/Faultbox/orbitalsim/internal/orbital"
)

func TestNewSphereTemplateCounts(t *testing.T) {
	tests := []struct {
		stacks, sectors int
		wantVertices    int
		wantIndices     int
	}{
		{9, 9, 100, 432},
		{4, 4, 25, 72},
		{2, 3, 12, 18},
	}

	for _, tt := range tests {
		tmpl := NewSphereTemplate(tt.stacks, tt.sectors)
		if got := tmpl.VertexCount(); got != tt.wantVertices {
			t.Errorf("VertexCount() for %dx%d = %d, want %d", tt.stacks, tt.sectors, got, tt.wantVertices)
		}
		if got := tmpl.IndexCount(); got != tt.wantIndices {
			t.Errorf("IndexCount() for %dx%d = %d, want %d", tt.stacks, tt.sectors, got, tt.wantIndices)
		}
		// 3 indices per triangle; the pole stacks contribute one triangle
		// per sector instead of two.
		triangles := (tt.stacks*tt.sectors*2 - 2*tt.sectors)
		if tt.wantIndices != triangles*3 {
			t.Fatalf("test case %dx%d is inconsistent", tt.stacks, tt.sectors)
		}
	}
}

func TestAppendVerticesUnitSphere(t *testing.T) {
	tmpl := NewSphereTemplate(9, 9)
	inst := orbital.SphereInstance{
		Center: [3]float32{1, 2, 3},
		Radius: 1,
		Color:  [3]float32{0.5, 0.5, 0.2},
	}

	verts := tmpl.AppendVertices(nil, inst)
	if len(verts) != tmpl.VertexCount()*VertexStride {
		t.Fatalf("len(verts) = %d, want %d", len(verts), tmpl.VertexCount()*VertexStride)
	}

	const tol = 1e-5
	for v := 0; v < tmpl.VertexCount(); v++ {
		rec := verts[v*VertexStride : (v+1)*VertexStride]

		dx := float64(rec[0] - inst.Center[0])
		dy := float64(rec[1] - inst.Center[1])
		dz := float64(rec[2] - inst.Center[2])
		if dist := math.Sqrt(dx*dx + dy*dy + dz*dz); math.Abs(dist-1) > tol {
			t.Fatalf("vertex %d at distance %v from center, want 1", v, dist)
		}

		if rec[3] != 0.5 || rec[4] != 0.5 || rec[5] != 0.2 {
			t.Fatalf("vertex %d color = %v, want instance color", v, rec[3:6])
		}
		if rec[6] != 0 || rec[7] != 0 {
			t.Fatalf("vertex %d texcoord = %v, want (0, 0)", v, rec[6:8])
		}

		nx, ny, nz := float64(rec[8]), float64(rec[9]), float64(rec[10])
		if l := math.Sqrt(nx*nx + ny*ny + nz*nz); math.Abs(l-1) > tol {
			t.Fatalf("vertex %d normal length = %v, want 1", v, l)
		}
		// Unit sphere: the normal is the position relative to the center.
		if math.Abs(nx-dx) > tol || math.Abs(ny-dy) > tol || math.Abs(nz-dz) > tol {
			t.Fatalf("vertex %d normal %v disagrees with position offset (%v, %v, %v)", v, rec[8:11], dx, dy, dz)
		}
	}

	// First vertex is the north pole, last the south pole.
	if z := verts[2]; math.Abs(float64(z)-4) > tol {
		t.Errorf("north pole z = %v, want 4", z)
	}
	if z := verts[len(verts)-VertexStride+2]; math.Abs(float64(z)-2) > tol {
		t.Errorf("south pole z = %v, want 2", z)
	}
}

func TestAppendIndices(t *testing.T) {
	tmpl := NewSphereTemplate(9, 9)

	local := tmpl.AppendIndices(nil, 0)
	if len(local) != 432 {
		t.Fatalf("len(indices) = %d, want 432", len(local))
	}
	for _, idx := range local {
		if idx >= 100 {
			t.Fatalf("local index %d out of range", idx)
		}
	}

	shifted := tmpl.AppendIndices(nil, 3)
	for n := range shifted {
		if shifted[n] != local[n]+300 {
			t.Fatalf("index %d = %d, want %d", n, shifted[n], local[n]+300)
		}
	}
}
