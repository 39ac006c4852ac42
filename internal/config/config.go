// Package config holds meshdump settings: defaults, overridden by a YAML
// file, overridden by command-line flags.
package config

import (
	"fmt"
	"runtime"

	"blockmesh/internal/meshing"

	"go.uber.org/multierr"
)

// Config holds all tool settings.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Meshing  MeshingConfig  `yaml:"meshing"`
	Registry RegistryConfig `yaml:"registry"`
	Scene    SceneConfig    `yaml:"scene"`
	Output   OutputConfig   `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// MeshingConfig sizes the emit worker pool.
type MeshingConfig struct {
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`
}

// RegistryConfig locates the block file. An empty BlocksFile means the
// built-in blocks only.
type RegistryConfig struct {
	BlocksFile   string `yaml:"blocks_file"`
	AssetsPath   string `yaml:"assets_path"`
	KeepBuiltins bool   `yaml:"keep_builtins"`
}

// OutputConfig says where meshdump writes its results. Empty paths skip
// that output. An empty FontFile bakes the built-in Go font.
type OutputConfig struct {
	OBJPath       string `yaml:"obj_path"`
	UVPath        string `yaml:"uv_path"`
	UVSize        int    `yaml:"uv_size"`
	FontAtlasPath string `yaml:"font_atlas_path"`
	FontFile      string `yaml:"font_file"`
	FontCell      int    `yaml:"font_cell"`
}

// SceneConfig lists the primitives meshdump emits.
type SceneConfig struct {
	Cubes   []CubeSpec   `yaml:"cubes"`
	Plants  []PlantSpec  `yaml:"plants"`
	Spheres []SphereSpec `yaml:"spheres"`
	Text    []TextSpec   `yaml:"text"`
}

// CubeSpec is one cube. Faces empty means all six; Rotation is yaw, pitch,
// roll in degrees.
type CubeSpec struct {
	Block    string     `yaml:"block"`
	Position [3]float32 `yaml:"position"`
	Size     float32    `yaml:"size"`
	Faces    []string   `yaml:"faces,omitempty"`
	Rotation [3]float32 `yaml:"rotation,omitempty"`
	AO       float32    `yaml:"ao"`
	Light    float32    `yaml:"light"`
}

// PlantSpec is one plant cross; Yaw is in degrees.
type PlantSpec struct {
	Block    string     `yaml:"block"`
	Position [3]float32 `yaml:"position"`
	Size     float32    `yaml:"size"`
	Yaw      float32    `yaml:"yaw"`
	AO       float32    `yaml:"ao"`
	Light    float32    `yaml:"light"`
}

// SphereSpec is one subdivided sphere.
type SphereSpec struct {
	Radius float32 `yaml:"radius"`
	Detail int     `yaml:"detail"`
}

// TextSpec is one line of glyphs. Align is left, center or right.
type TextSpec struct {
	Text     string     `yaml:"text"`
	Position [3]float32 `yaml:"position"`
	Size     float32    `yaml:"size"`
	Align    string     `yaml:"align"`
}

// Default returns a Config with sensible default values and a small demo
// scene.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Meshing: MeshingConfig{
			Workers:   runtime.NumCPU(),
			QueueSize: 64,
		},
		Registry: RegistryConfig{
			KeepBuiltins: true,
		},
		Scene: SceneConfig{
			Cubes: []CubeSpec{
				{Block: "grass", Size: 0.5, Light: 1},
				{Block: "wood", Position: [3]float32{2, 0, 0}, Size: 0.5, Rotation: [3]float32{45, 0, 0}, Light: 1},
			},
			Plants: []PlantSpec{
				{Block: "yellow_flower", Position: [3]float32{-2, 0, 0}, Size: 0.5, Yaw: 45, Light: 1},
			},
			Spheres: []SphereSpec{
				{Radius: 1, Detail: 2},
			},
			Text: []TextSpec{
				{Text: "blockmesh", Position: [3]float32{0, 2, 0}, Size: 0.25, Align: "center"},
			},
		},
		Output: OutputConfig{
			OBJPath:  "scene.obj",
			UVSize:   1024,
			FontCell: 32,
		},
	}
}

// Validate reports every setting that cannot be used.
func (c *Config) Validate() error {
	var err error
	if c.Meshing.Workers < 1 {
		err = multierr.Append(err, fmt.Errorf("meshing.workers must be positive, got %d", c.Meshing.Workers))
	}
	if c.Meshing.QueueSize < 0 {
		err = multierr.Append(err, fmt.Errorf("meshing.queue_size must not be negative, got %d", c.Meshing.QueueSize))
	}
	if c.Output.UVPath != "" && c.Output.UVSize < 1 {
		err = multierr.Append(err, fmt.Errorf("output.uv_size must be positive, got %d", c.Output.UVSize))
	}
	if c.Output.FontAtlasPath != "" && c.Output.FontCell < 2 {
		err = multierr.Append(err, fmt.Errorf("output.font_cell must be at least 2, got %d", c.Output.FontCell))
	}
	for i, s := range c.Scene.Spheres {
		if s.Detail < 0 || s.Detail > meshing.MaxSphereDetail {
			err = multierr.Append(err, fmt.Errorf("scene.spheres[%d].detail must be in [0, %d], got %d", i, meshing.MaxSphereDetail, s.Detail))
		}
	}
	for i, t := range c.Scene.Text {
		switch t.Align {
		case "", "left", "center", "right":
		default:
			err = multierr.Append(err, fmt.Errorf("scene.text[%d].align %q is not left, center or right", i, t.Align))
		}
	}
	return err
}
