package main

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/orbitalsim/internal/config"
	"github.com/Faultbox/orbitalsim/internal/engine/camera"
	"github.com/Faultbox/orbitalsim/internal/engine/input"
	"github.com/Faultbox/orbitalsim/internal/engine/mesh"
	"github.com/Faultbox/orbitalsim/internal/engine/scene"
	"github.com/Faultbox/orbitalsim/internal/engine/window"
	"github.com/Faultbox/orbitalsim/internal/logger"
	"github.com/Faultbox/orbitalsim/pkg/math"
)

// app owns the window, scene and camera for the display loop. The geometry
// is computed before the app exists; the loop only redraws it.
type app struct {
	cfg     *config.Config
	running bool

	window *window.Window
	scene  *scene.Scene
	input  *input.Input
	camera *camera.FlyCamera

	width  int
	height int
}

// newApp creates the window (and with it the OpenGL context) and hands the
// finished field batch to the scene.
func newApp(cfg *config.Config, field mesh.Batch) (*app, error) {
	a := &app{
		cfg:    cfg,
		width:  cfg.Graphics.Width,
		height: cfg.Graphics.Height,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      "Hydrogen Atom Orbital Simulation",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Scene needs the GL context the window just created.
	a.scene, err = scene.New(field)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	a.scene.Resize(a.width, a.height)

	a.input = input.New()
	a.camera = camera.NewFlyCamera()

	// Mouse look
	sdl.SetRelativeMouseMode(true)

	return a, nil
}

// Run starts the display loop.
func (a *app) Run() error {
	a.running = true
	lastTime := time.Now()

	logger.Info("starting display loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.width, a.height = event.Width, event.Height
				a.scene.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				if event.Key == sdl.SCANCODE_ESCAPE {
					a.running = false
				}
			case input.EventMouseMove:
				a.camera.HandleLook(float32(event.DeltaX), float32(event.DeltaY))
			}
		}

		a.camera.HandleMovement(a.moveAxes(dt))

		camMatrix := a.projection().Mul(a.camera.ViewMatrix())
		a.scene.Render(camMatrix, a.camera.Position)

		a.window.SwapBuffers()
	}

	return nil
}

// Close cleans up app resources.
func (a *app) Close() {
	logger.Info("closing app")

	if a.scene != nil {
		a.scene.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// moveAxes reads the held movement keys: W/S forward, A/D strafe, SPACE up,
// CTRL down.
func (a *app) moveAxes(dt float32) (forward, right, up, _ float32) {
	if a.input.IsHeld(sdl.SCANCODE_W) {
		forward++
	}
	if a.input.IsHeld(sdl.SCANCODE_S) {
		forward--
	}
	if a.input.IsHeld(sdl.SCANCODE_D) {
		right++
	}
	if a.input.IsHeld(sdl.SCANCODE_A) {
		right--
	}
	if a.input.IsHeld(sdl.SCANCODE_SPACE) {
		up++
	}
	if a.input.IsHeld(sdl.SCANCODE_LCTRL) {
		up--
	}
	return forward, right, up, dt
}

func (a *app) projection() math.Mat4 {
	aspect := float32(a.width) / float32(a.height)
	return math.Perspective(45.0*gomath.Pi/180.0, aspect, 0.1, 100.0)
}
