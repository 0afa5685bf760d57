package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("default dimensions: got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FOVDegrees != 60 {
		t.Errorf("default fov: got %v", cfg.FOVDegrees)
	}
	if cfg.Field.Radius != 1.5 || cfg.Field.Amplitude != 1.0 || cfg.Field.Frequency != 3.4 {
		t.Errorf("default field: got %+v", cfg.Field)
	}
	if cfg.Output != "kaboom.webp" || cfg.Format != "webp" {
		t.Errorf("default output: got %q %q", cfg.Output, cfg.Format)
	}
	if cfg.Scale != 1 {
		t.Errorf("default scale: got %d", cfg.Scale)
	}
	if cfg.Workers < 1 {
		t.Errorf("default workers: got %d", cfg.Workers)
	}
}

func TestResolveFlagPrecedence(t *testing.T) {
	cfg := Config{Width: 320, Height: 200, Output: "a.png"}
	cfg.Resolve(Flags{Width: 800, Output: "b.tga"})

	if cfg.Width != 800 {
		t.Errorf("flag must override config: got %d", cfg.Width)
	}
	if cfg.Height != 200 {
		t.Errorf("config value must survive zero flag: got %d", cfg.Height)
	}
	if cfg.Output != "b.tga" || cfg.Format != "tga" {
		t.Errorf("output resolution: got %q %q", cfg.Output, cfg.Format)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 128, "fov_degrees": 45, "field": {"radius": 2, "amplitude": 0.5, "frequency": 1.7}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 128 || cfg.FOVDegrees != 45 {
		t.Errorf("loaded image settings: got %+v", cfg)
	}
	if cfg.Field.Radius != 2 || cfg.Field.Frequency != 1.7 {
		t.Errorf("loaded field: got %+v", cfg.Field)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFOVRadians(t *testing.T) {
	cfg := Config{FOVDegrees: 60}
	if got := cfg.FOV(); math.Abs(got-math.Pi/3) > 1e-12 {
		t.Errorf("FOV: got %v, want π/3", got)
	}
}
