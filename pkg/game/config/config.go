// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"

	"haex/pkg/engine/world"
	"haex/pkg/game/entities"
	"haex/pkg/game/generator"
	"haex/pkg/game/programs"
	"haex/pkg/game/state"
	gameworld "haex/pkg/game/world"
)

// Renderer names
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
	RendererDump   = "dump"
)

// Endings
const (
	EndingBad  = "bad"
	EndingLoop = "loop"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds all game settings.
type Config struct {
	Logging  LoggingConfig         `yaml:"logging"`
	Game     GameConfig            `yaml:"game"`
	Maze     MazeConfig            `yaml:"maze"`
	Programs programs.Tuning       `yaml:"programs"`
	Levels   []state.LevelSettings `yaml:"levels"`
	Ending   string                `yaml:"ending"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	Language string `yaml:"language"`
	Renderer string `yaml:"renderer"`
	// Seed of the first level; zero picks one from the clock
	Seed         int64         `yaml:"seed"`
	StartLevel   int           `yaml:"start_level"`
	RevealRadius int           `yaml:"reveal_radius"`
	MoveTime     time.Duration `yaml:"move_time"`
}

// MazeConfig holds maze generation and tile settings.
type MazeConfig struct {
	Generator  string  `yaml:"generator"`
	TileWidth  float64 `yaml:"tile_width"`
	TileHeight float64 `yaml:"tile_height"`
	// Weights replace the named generator with a custom growing tree when set
	Weights *generator.Weights `yaml:"weights,omitempty"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Game: GameConfig{
			Language:     "en_GB",
			Renderer:     RendererTUI,
			StartLevel:   1,
			RevealRadius: world.RevealRadius,
			MoveTime:     entities.DefaultMoveTime,
		},
		Maze: MazeConfig{
			Generator:  generator.DefaultGenerator.Name(),
			TileWidth:  gameworld.DefaultTileWidth,
			TileHeight: gameworld.DefaultTileHeight,
		},
		Programs: programs.DefaultTuning(),
		Levels:   state.DefaultLevels(),
		Ending:   EndingBad,
	}
}

// Validate checks every setting, reporting the first problem found.
func (c *Config) Validate() error {
	switch c.Game.Renderer {
	case RendererTUI, RendererEbiten, RendererDump:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalid, c.Game.Renderer)
	}
	switch c.Ending {
	case EndingBad, EndingLoop:
	default:
		return fmt.Errorf("%w: unknown ending %q", ErrInvalid, c.Ending)
	}
	if c.Game.RevealRadius < 0 {
		return fmt.Errorf("%w: negative reveal radius %d", ErrInvalid, c.Game.RevealRadius)
	}
	if c.Game.MoveTime <= 0 {
		return fmt.Errorf("%w: move time %v must be positive", ErrInvalid, c.Game.MoveTime)
	}
	if !(c.Maze.TileWidth > 0) || !(c.Maze.TileHeight > 0) {
		return fmt.Errorf("%w: tile size %vx%v", ErrInvalid, c.Maze.TileWidth, c.Maze.TileHeight)
	}
	if c.Programs.NopSlideInterval <= 0 {
		return fmt.Errorf("%w: nop slide interval %v must be positive", ErrInvalid, c.Programs.NopSlideInterval)
	}
	if _, err := c.Generator(); err != nil {
		return err
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, state.ErrNoLevels)
	}
	for i, lvl := range c.Levels {
		if err := lvl.Validate(); err != nil {
			return fmt.Errorf("%w: level %d: %w", ErrInvalid, i+1, err)
		}
	}
	if c.Game.StartLevel < 1 || c.Game.StartLevel > len(c.Levels) {
		return fmt.Errorf("%w: start level %d outside 1..%d", ErrInvalid, c.Game.StartLevel, len(c.Levels))
	}
	return nil
}

// Generator returns the maze generator the config selects
func (c *Config) Generator() (generator.GridGenerator, error) {
	if c.Maze.Weights != nil {
		if err := c.Maze.Weights.Validate(); err != nil {
			return nil, fmt.Errorf("%w: maze weights: %w", ErrInvalid, err)
		}
		return generator.NewGrowingTree("custom", *c.Maze.Weights), nil
	}
	gen, ok := generator.Lookup(c.Maze.Generator)
	if !ok {
		return nil, fmt.Errorf("%w: unknown generator %q (have %v)", ErrInvalid, c.Maze.Generator, generator.Names())
	}
	return gen, nil
}

// Progression builds the level chain, starting at Game.StartLevel
func (c *Config) Progression() (*state.Progression, error) {
	p, err := state.NewProgression(c.Levels, c.Ending == EndingLoop)
	if err != nil {
		return nil, err
	}
	for i := 1; i < c.Game.StartLevel && p.Exit != nil; i++ {
		p = p.Exit
	}
	return p, nil
}

// Options returns the session settings for state.NewGame
func (c *Config) Options() (state.Options, error) {
	gen, err := c.Generator()
	if err != nil {
		return state.Options{}, err
	}
	return state.Options{
		Generator:    gen,
		TileWidth:    c.Maze.TileWidth,
		TileHeight:   c.Maze.TileHeight,
		RevealRadius: c.Game.RevealRadius,
		MoveTime:     c.Game.MoveTime,
		Programs:     c.Programs,
	}, nil
}
