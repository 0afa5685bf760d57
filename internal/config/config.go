package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"runtime"

	"kaboom-renderer/internal/output"
	"kaboom-renderer/internal/sdf"
)

// Config holds all configurable render settings.
type Config struct {
	// Image
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	FOVDegrees float64 `json:"fov_degrees"`

	// Surface
	Field sdf.Field `json:"field"`

	// Output
	Output string `json:"output"`
	Format string `json:"format"`
	Scale  int    `json:"scale"`

	// Scheduling
	Workers int `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width   int
	Height  int
	FOV     float64 // degrees
	Output  string
	Format  string
	Scale   int
	Workers int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.FOV > 0 {
		c.FOVDegrees = flags.FOV
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.FOVDegrees <= 0 {
		c.FOVDegrees = 60
	}
	if c.Field.Radius <= 0 {
		c.Field = sdf.DefaultField()
	}
	if c.Output == "" {
		c.Output = "kaboom.webp"
	}
	if c.Format == "" {
		c.Format = output.FromPath(c.Output)
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// FOV returns the field of view in radians.
func (c Config) FOV() float64 {
	return c.FOVDegrees * math.Pi / 180
}
