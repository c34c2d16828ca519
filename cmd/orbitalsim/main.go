// Package main is the entry point for the hydrogen orbital simulator.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/orbitalsim/internal/config"
	"github.com/Faultbox/orbitalsim/internal/engine/mesh"
	"github.com/Faultbox/orbitalsim/internal/logger"
	"github.com/Faultbox/orbitalsim/internal/orbital"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Hydrogen Atom Orbital Simulator ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Read the quantum numbers before any window exists.
	state, err := promptState(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Input error: %v\n", err)
		os.Exit(1)
	}

	entry, err := orbital.Lookup(state)
	switch {
	case errors.Is(err, orbital.ErrInvalidState):
		fmt.Println("This combination of quantum numbers is not allowed.")
		os.Exit(1)
	case errors.Is(err, orbital.ErrUnsupportedState):
		fmt.Println("The quantum numbers entered are not yet supported.")
		os.Exit(1)
	case err != nil:
		logger.Error("state lookup failed", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("Scale factor: %s.\n", entry.Label)
	logger.Info("state accepted",
		zap.Stringer("state", state),
		zap.String("scale", entry.Label),
	)

	// Run the whole density-to-geometry pipeline up front; the render loop
	// only redraws the finished buffers.
	grid := orbital.Grid{
		HalfExtent: cfg.Grid.HalfExtent,
		Resolution: cfg.Grid.Resolution,
	}
	instances := orbital.Instances(entry, grid)
	template := mesh.NewSphereTemplate(cfg.Grid.StackCount, cfg.Grid.SectorCount)
	field := mesh.BuildField(template, instances)

	logger.Info("geometry built",
		zap.Int("instances", len(instances)),
		zap.Int("vertices", field.VertexCount()),
		zap.Int("indices", len(field.Indices)),
	)

	// Hand the buffers to the renderer and run the display loop.
	app, err := newApp(cfg, field)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		logger.Error("app error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
