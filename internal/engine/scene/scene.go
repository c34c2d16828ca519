// Package scene uploads the orbital geometry to the GPU and draws it.
package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitalsim/internal/engine/mesh"
	"github.com/Faultbox/orbitalsim/internal/engine/shader"
	"github.com/Faultbox/orbitalsim/internal/logger"
	"github.com/Faultbox/orbitalsim/pkg/math"
)

// Key light placement and color. The lamp cube fixture sits next to the
// light as a visual marker.
var (
	lightPos   = math.Vec3{X: 5, Y: 5, Z: 5}
	lightColor = [4]float32{1, 1, 1, 1}
)

// group is one uploaded index-buffer draw: an axis slab, the sphere field
// or the lamp.
type group struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Scene owns the GPU resources for the axes, the aggregated sphere field
// and the lamp cube. The field batch is taken by value at construction and
// never touched again.
type Scene struct {
	program      uint32
	locCamMatrix int32
	locLightCol  int32
	locLightPos  int32
	locCamPos    int32

	lampProgram  uint32
	lampCamLoc   int32
	lampColorLoc int32

	axes  [3]group
	field group
	lamp  group
}

// New compiles the scene shaders and uploads the axis fixtures, the sphere
// field batch and the lamp cube. Must be called after the OpenGL context
// exists.
func New(field mesh.Batch) (*Scene, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 0)

	s := &Scene{}

	program, err := shader.CompileProgram(fieldVertexShader, fieldFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("field shader: %w", err)
	}
	s.program = program
	s.locCamMatrix = shader.GetUniform(program, "uCamMatrix")
	s.locLightCol = shader.GetUniform(program, "uLightColor")
	s.locLightPos = shader.GetUniform(program, "uLightPos")
	s.locCamPos = shader.GetUniform(program, "uCamPos")

	lampProgram, err := shader.CompileProgram(lampVertexShader, lampFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("lamp shader: %w", err)
	}
	s.lampProgram = lampProgram
	s.lampCamLoc = shader.GetUniform(lampProgram, "uCamMatrix")
	s.lampColorLoc = shader.GetUniform(lampProgram, "uLightColor")

	for i, a := range []mesh.Axis{mesh.AxisX, mesh.AxisY, mesh.AxisZ} {
		s.axes[i] = uploadBatch(mesh.AxisBatch(a))
	}
	s.field = uploadBatch(field)

	lampVerts, lampIndices := mesh.LampCube()
	s.lamp = uploadLamp(lampVerts, lampIndices)

	logger.Info("scene uploaded",
		zap.Int("field_vertices", field.VertexCount()),
		zap.Int("field_indices", len(field.Indices)),
	)

	return s, nil
}

// Close releases all GPU resources.
func (s *Scene) Close() {
	logger.Info("closing scene")
	for _, g := range append(s.axes[:], s.field, s.lamp) {
		if g.vao != 0 {
			gl.DeleteVertexArrays(1, &g.vao)
		}
		if g.vbo != 0 {
			gl.DeleteBuffers(1, &g.vbo)
		}
		if g.ebo != 0 {
			gl.DeleteBuffers(1, &g.ebo)
		}
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
	}
	if s.lampProgram != 0 {
		gl.DeleteProgram(s.lampProgram)
	}
}

// Resize updates the viewport.
func (s *Scene) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Render draws one frame: axes, sphere field, lamp.
func (s *Scene) Render(camMatrix math.Mat4, camPos math.Vec3) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.locCamMatrix, 1, false, camMatrix.Ptr())
	gl.Uniform4f(s.locLightCol, lightColor[0], lightColor[1], lightColor[2], lightColor[3])
	gl.Uniform3f(s.locLightPos, lightPos.X, lightPos.Y, lightPos.Z)
	gl.Uniform3f(s.locCamPos, camPos.X, camPos.Y, camPos.Z)

	for _, g := range s.axes {
		drawGroup(g)
	}
	drawGroup(s.field)

	gl.UseProgram(s.lampProgram)
	gl.UniformMatrix4fv(s.lampCamLoc, 1, false, camMatrix.Ptr())
	gl.Uniform4f(s.lampColorLoc, lightColor[0], lightColor[1], lightColor[2], lightColor[3])
	drawGroup(s.lamp)

	gl.BindVertexArray(0)
}

func drawGroup(g group) {
	if g.indexCount == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, nil)
}

// uploadBatch uploads a stride-11 batch with the attribute layout
// {position:3, color:3, texcoord:2, normal:3}.
func uploadBatch(b mesh.Batch) group {
	var g group
	g.indexCount = int32(len(b.Indices))
	if g.indexCount == 0 {
		return g
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	stride := int32(mesh.VertexStride * 4)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.Vertices)*4, unsafe.Pointer(&b.Vertices[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Color (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	// Normal (location 3)
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, stride, 8*4)
	gl.EnableVertexAttribArray(3)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices)*4, unsafe.Pointer(&b.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return g
}

// uploadLamp uploads the bare-position lamp cube.
func uploadLamp(vertices []float32, indices []uint32) group {
	var g group
	g.indexCount = int32(len(indices))

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return g
}
