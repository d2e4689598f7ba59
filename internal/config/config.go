// Package config handles roadgen configuration loading and management.
package config

// Smoothing policy names accepted in mesh.smooth_policy.
const (
	PolicyAlways        = "always"
	PolicyFrameMismatch = "frame_mismatch"
)

// Export format names accepted in export.format.
const (
	FormatOBJ = "obj"
	FormatSTL = "stl"
)

// Config holds all roadgen settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Editor  EditorConfig  `yaml:"editor"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshConfig holds tessellation and smoothing settings.
type MeshConfig struct {
	Subdivision  int     `yaml:"subdivision"`   // Slices per curved segment, at least 2
	Smooth       float32 `yaml:"smooth"`        // Fraction given up to each transition, [0, 0.5]
	SmoothPolicy string  `yaml:"smooth_policy"` // "always" or "frame_mismatch"
	Raw          bool    `yaml:"raw"`           // Skip the smoothing pass
}

// EditorConfig holds the limits applied to new segments.
type EditorConfig struct {
	MinWidth   float32 `yaml:"min_width"`
	MinLength  float32 `yaml:"min_length"`
	DefaultMiu float32 `yaml:"default_miu"`
}

// ExportConfig holds mesh output settings.
type ExportConfig struct {
	Path   string `yaml:"path"`
	Format string  `yaml:"format"` // "obj" or "stl"; empty picks by extension
	Scale  float32 `yaml:"scale"`  // Output units per road unit
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			Subdivision:  10,
			Smooth:       0.3,
			SmoothPolicy: PolicyAlways,
		},
		Editor: EditorConfig{
			MinWidth:   1,
			MinLength:  1,
			DefaultMiu: 0.1,
		},
		Export: ExportConfig{
			Path:   "road.obj",
			Format: FormatOBJ,
			Scale:  1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// normalize clamps numeric settings into their valid ranges.
func (c *Config) normalize() {
	if c.Mesh.Subdivision < 2 {
		c.Mesh.Subdivision = 2
	}
	if c.Mesh.Smooth < 0 {
		c.Mesh.Smooth = 0
	}
	if c.Mesh.Smooth > 0.5 {
		c.Mesh.Smooth = 0.5
	}
	if c.Editor.MinWidth <= 0 {
		c.Editor.MinWidth = 1
	}
	if c.Editor.MinLength <= 0 {
		c.Editor.MinLength = 1
	}
	if c.Export.Scale <= 0 {
		c.Export.Scale = 1
	}
}
