package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagOut     = flag.String("out", "", "Write the scene as Wavefront OBJ to this path")
	flagUV      = flag.String("uv", "", "Write a PNG of the scene's atlas UV layout to this path")
	flagDetail  = flag.Int("detail", -1, "Override the subdivision detail of every sphere")
	flagWorkers = flag.Int("workers", 0, "Number of emit workers")
	flagBlocks  = flag.String("blocks", "", "Block definition YAML file")
	flagFont    = flag.String("font-atlas", "", "Bake the glyph atlas used by text quads to this PNG path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Output.OBJPath = *flagOut
	}
	if *flagUV != "" {
		cfg.Output.UVPath = *flagUV
	}
	if *flagDetail >= 0 {
		for i := range cfg.Scene.Spheres {
			cfg.Scene.Spheres[i].Detail = *flagDetail
		}
	}
	if *flagWorkers > 0 {
		cfg.Meshing.Workers = *flagWorkers
	}
	if *flagFont != "" {
		cfg.Output.FontAtlasPath = *flagFont
	}
	if *flagBlocks != "" {
		cfg.Registry.BlocksFile = *flagBlocks
	}
}
