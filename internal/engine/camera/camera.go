// Package camera provides the free-fly camera used to inspect the orbital.
package camera

import (
	gomath "math"

	"github.com/Faultbox/orbitalsim/pkg/math"
)

// FlyCamera moves freely through the scene: W/S along the view direction,
// A/D strafing, and vertical movement independent of pitch.
type FlyCamera struct {
	Position math.Vec3

	// Orientation
	Yaw   float32 // Horizontal angle (radians), 0 looks down -Z
	Pitch float32 // Vertical angle (radians)

	// Constraints
	MinPitch float32
	MaxPitch float32

	// Sensitivity
	MoveSpeed       float32 // Units per second
	LookSensitivity float32
}

// NewFlyCamera creates a fly camera at the default viewpoint, just outside
// the sampling cube looking at the nucleus.
func NewFlyCamera() *FlyCamera {
	return &FlyCamera{
		Position:        math.Vec3{X: 0, Y: 0, Z: 6},
		Yaw:             0,
		Pitch:           0,
		MinPitch:        -1.55,
		MaxPitch:        1.55,
		MoveSpeed:       4.0,
		LookSensitivity: 0.0025,
	}
}

// Forward returns the camera's view direction.
func (c *FlyCamera) Forward() math.Vec3 {
	cosPitch := float32(gomath.Cos(float64(c.Pitch)))
	return math.Vec3{
		X: float32(gomath.Sin(float64(c.Yaw))) * -cosPitch,
		Y: float32(gomath.Sin(float64(c.Pitch))),
		Z: float32(gomath.Cos(float64(c.Yaw))) * -cosPitch,
	}
}

// Right returns the camera's right direction on the horizontal plane.
func (c *FlyCamera) Right() math.Vec3 {
	return math.Vec3{
		X: float32(gomath.Cos(float64(c.Yaw))),
		Y: 0,
		Z: float32(-gomath.Sin(float64(c.Yaw))),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	target := c.Position.Add(c.Forward())
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position, target, up)
}

// HandleLook updates orientation from relative mouse motion.
func (c *FlyCamera) HandleLook(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.LookSensitivity
	c.Pitch -= deltaY * c.LookSensitivity

	// Clamp pitch short of the poles
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// HandleMovement moves the camera. forward/right are -1..1 axis inputs, up
// is vertical movement independent of where the camera looks; dt is the
// frame time in seconds.
func (c *FlyCamera) HandleMovement(forward, right, up, dt float32) {
	step := c.MoveSpeed * dt

	c.Position = c.Position.
		Add(c.Forward().Scale(forward * step)).
		Add(c.Right().Scale(right * step)).
		Add(math.Vec3{Y: up * step})
}
