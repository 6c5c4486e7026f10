package config

import "flag"

// Flags are the command-line overrides. Zero values leave the config alone.
type Flags struct {
	ConfigPath string
	Seed       int64
	Renderer   string
	Level      int
	Debug      bool
	Language   string
	Out        string
	WriteTo    string
}

// RegisterFlags defines the command-line flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.Int64Var(&f.Seed, "seed", 0, "Seed of the first level (0 picks one from the clock)")
	fs.StringVar(&f.Renderer, "renderer", "", "Frontend: tui, ebiten or dump")
	fs.IntVar(&f.Level, "level", 0, "Starting level (for developer testing)")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Language, "lang", "", "Language of the locales catalogue, e.g. en_GB")
	fs.StringVar(&f.Out, "out", "", "Output file for the dump renderer (default stdout)")
	fs.StringVar(&f.WriteTo, "write-config", "", "Write the effective config to this path and exit")
	return f
}

// Apply applies CLI flag overrides to the config.
func (f *Flags) Apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Seed != 0 {
		cfg.Game.Seed = f.Seed
	}
	if f.Renderer != "" {
		cfg.Game.Renderer = f.Renderer
	}
	if f.Level > 0 {
		cfg.Game.StartLevel = f.Level
	}
	if f.Language != "" {
		cfg.Game.Language = f.Language
	}
}
