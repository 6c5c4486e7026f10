package state

import (
	"errors"
	"fmt"

	"haex/pkg/game/programs"
)

// ErrNoLevels is returned when a progression is built from an empty level list
var ErrNoLevels = errors.New("no levels configured")

// EnemySettings sets how many of each enemy kind a level spawns
type EnemySettings struct {
	BasicCount int `yaml:"basic_count"`
}

// LevelSettings describes one level
type LevelSettings struct {
	Width    int               `yaml:"width"`
	Height   int               `yaml:"height"`
	Enemies  EnemySettings     `yaml:"enemies"`
	Programs programs.Settings `yaml:"programs"`
}

// Validate checks the level can be generated
func (s LevelSettings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("level size %dx%d must be positive", s.Width, s.Height)
	}
	if s.Width*s.Height < 2 {
		return fmt.Errorf("level size %dx%d needs at least two cells", s.Width, s.Height)
	}
	if s.Enemies.BasicCount < 0 {
		return fmt.Errorf("negative enemy count %d", s.Enemies.BasicCount)
	}
	if s.Programs.NopSlideCount < 0 || s.Programs.NoClipCount < 0 {
		return fmt.Errorf("negative program count")
	}
	return nil
}

// ProgressionType says what a progression step is
type ProgressionType int

const (
	// ProgressionStandard is a playable level
	ProgressionStandard ProgressionType = iota
	// ProgressionBadEnding ends the run
	ProgressionBadEnding
)

// Progression is one step in the chain of levels. Exit leads to the step
// loaded when the player reaches the end of this one.
type Progression struct {
	Type  ProgressionType
	Level LevelSettings
	Exit  *Progression
}

// BadEnding returns a terminal progression step
func BadEnding() *Progression {
	return &Progression{Type: ProgressionBadEnding}
}

// NewProgression chains levels in order. The last level exits to the bad
// ending, or back to the first level when loop is set.
func NewProgression(levels []LevelSettings, loop bool) (*Progression, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}

	steps := make([]*Progression, len(levels))
	for i, lvl := range levels {
		if err := lvl.Validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
		steps[i] = &Progression{Type: ProgressionStandard, Level: lvl}
	}
	for i := 0; i < len(steps)-1; i++ {
		steps[i].Exit = steps[i+1]
	}
	if loop {
		steps[len(steps)-1].Exit = steps[0]
	} else {
		steps[len(steps)-1].Exit = BadEnding()
	}
	return steps[0], nil
}

// DefaultLevels returns the stock run: 5x5, 7x7 and 10x10
func DefaultLevels() []LevelSettings {
	return []LevelSettings{
		{
			Width: 5, Height: 5,
			Enemies:  EnemySettings{BasicCount: 1},
			Programs: programs.Settings{NopSlideCount: 1},
		},
		{
			Width: 7, Height: 7,
			Enemies:  EnemySettings{BasicCount: 3},
			Programs: programs.Settings{NopSlideCount: 1, NoClipCount: 1},
		},
		{
			Width: 10, Height: 10,
			Enemies:  EnemySettings{BasicCount: 6},
			Programs: programs.Settings{NopSlideCount: 2, NoClipCount: 2},
		},
	}
}

// DefaultProgression returns the stock run ending in the bad ending
func DefaultProgression() *Progression {
	p, err := NewProgression(DefaultLevels(), false)
	if err != nil {
		panic(err)
	}
	return p
}
