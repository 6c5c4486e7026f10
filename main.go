package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"haex/pkg/engine/logger"
	"haex/pkg/game/config"
	"haex/pkg/game/devtools"
	"haex/pkg/game/renderer"
	"haex/pkg/game/renderer/ebiten"
	"haex/pkg/game/renderer/tui"
	"haex/pkg/game/state"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "haex: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(flags *config.Flags) error {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	flags.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if flags.WriteTo != "" {
		if err := cfg.SaveTo(flags.WriteTo); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Printf("Wrote config to %s\n", flags.WriteTo)
		return nil
	}

	// The TUI owns the terminal, so its logs go to a file unless one is set
	logFile := cfg.Logging.LogFile
	if logFile == "" && cfg.Game.Renderer == config.RendererTUI {
		logFile = filepath.Join(config.ConfigDir(), "haex.log")
	}
	if err := logger.Init(cfg.Logging.Level, logFile); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	renderer.InitLocale("locales", cfg.Game.Language)

	first, err := cfg.Progression()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	g := state.NewGame(first, opts)

	logger.Info("starting",
		zap.String("renderer", cfg.Game.Renderer),
		zap.String("generator", opts.Generator.Name()),
		zap.Int64("seed", cfg.Game.Seed),
		zap.Int("startLevel", cfg.Game.StartLevel),
	)

	if cfg.Game.Renderer == config.RendererDump {
		return dump(g, cfg.Game.Seed, flags.Out)
	}

	var r renderer.Renderer
	switch cfg.Game.Renderer {
	case config.RendererEbiten:
		r = ebiten.New(flags.Debug)
	default:
		r = tui.New()
	}
	if err := r.Init(); err != nil {
		return fmt.Errorf("init %s renderer: %w", cfg.Game.Renderer, err)
	}
	return r.Run(renderer.NewSession(g, cfg.Game.Seed))
}

// dump generates the first level and writes its map to out, or stdout
func dump(g *state.Game, seed int64, out string) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := g.Start(seed); err != nil {
		return err
	}
	opts, _ := devtools.GameDumpOptions(g)
	m := g.Level().Map

	if out != "" {
		path, err := devtools.DumpMapToFile(out, m, opts)
		if err != nil {
			return err
		}
		logger.Info("map dumped", zap.String("path", path))
		return nil
	}
	return devtools.DumpMap(os.Stdout, m, opts)
}
