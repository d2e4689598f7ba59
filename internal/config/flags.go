package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagSubdivision = flag.Int("subdivision", 0, "Slices per curved segment")
	flagSmooth      = flag.Float64("smooth", -1, "Fraction of each segment given up to transitions (0-0.5)")
	flagOut         = flag.String("out", "", "Output mesh path")
	flagFormat      = flag.String("format", "", "Output format: obj or stl")
	flagRaw         = flag.Bool("raw", false, "Export the unsmoothed mesh")
	flagScale       = flag.Float64("scale", 0, "Output units per road unit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSubdivision > 0 {
		cfg.Mesh.Subdivision = *flagSubdivision
	}
	if *flagSmooth >= 0 {
		cfg.Mesh.Smooth = float32(*flagSmooth)
	}
	if *flagOut != "" {
		cfg.Export.Path = *flagOut
		// An explicit output path picks its format unless --format says otherwise.
		cfg.Export.Format = ""
	}
	if *flagFormat != "" {
		cfg.Export.Format = *flagFormat
	}
	if *flagRaw {
		cfg.Mesh.Raw = true
	}
	if *flagScale > 0 {
		cfg.Export.Scale = float32(*flagScale)
	}
}
