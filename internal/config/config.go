// Package config handles simulator configuration loading and management.
package config

// Config holds all simulator settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Grid     GridConfig     `yaml:"grid"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// GridConfig holds the sampling grid and sphere tessellation settings.
// HalfExtent and Resolution define the cube of density samples; StackCount
// and SectorCount control how finely each probability sphere is tessellated.
type GridConfig struct {
	HalfExtent  float64 `yaml:"half_extent"`
	Resolution  int     `yaml:"resolution"`
	StackCount  int     `yaml:"stack_count"`
	SectorCount int     `yaml:"sector_count"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the original calibration: a 1700x1000
// window and an 11^3 grid of 9x9 spheres over the [-5,5]^3 cube.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1700,
			Height:     1000,
			Fullscreen: false,
			VSync:      true,
		},
		Grid: GridConfig{
			HalfExtent:  5.0,
			Resolution:  11,
			StackCount:  9,
			SectorCount: 9,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
