// Package programs implements the cheats a player can run from the program menu.
//
// NopSlide tunnels corridors outward from where it was started, one ring per
// tick, in all four cardinal directions. NoClip grants a charge that lets the
// next blocked move pass through a wall. Both only touch the maze through
// NavigableMap.MakeOpen and the player's inventory; neither recomputes the
// spawn-to-exit path.
package programs

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"haex/pkg/engine/cron"
	"haex/pkg/engine/logger"
	"haex/pkg/engine/world"
	gameworld "haex/pkg/game/world"
)

// ErrNoCharges is returned when a program is run with none left
var ErrNoCharges = errors.New("no charges left")

const (
	DefaultNopSlideInterval  = 100 * time.Millisecond
	DefaultNopSlideMaxRadius = 32
)

// Kind identifies a program
type Kind int

const (
	KindNopSlide Kind = iota
	KindNoClip
)

// Kinds lists the programs in menu order
func Kinds() []Kind {
	return []Kind{KindNopSlide, KindNoClip}
}

// String returns the translation key of the program name
func (k Kind) String() string {
	switch k {
	case KindNopSlide:
		return "PROGRAM_NOP_SLIDE"
	case KindNoClip:
		return "PROGRAM_NO_CLIP"
	default:
		return "PROGRAM_UNKNOWN"
	}
}

// Settings are the charges granted at the start of a level
type Settings struct {
	NopSlideCount int `yaml:"nop_slide_count"`
	NoClipCount   int `yaml:"no_clip_count"`
}

// Tuning controls how programs behave once running
type Tuning struct {
	NopSlideInterval  time.Duration `yaml:"nop_slide_interval"`
	NopSlideMaxRadius int           `yaml:"nop_slide_max_radius"`
}

// DefaultTuning returns the stock program tuning
func DefaultTuning() Tuning {
	return Tuning{
		NopSlideInterval:  DefaultNopSlideInterval,
		NopSlideMaxRadius: DefaultNopSlideMaxRadius,
	}
}

// Inventory holds the player's program charges
type Inventory struct {
	NopSlides int
	NoClips   int
	// Clips is the number of armed NoClip charges waiting for a blocked move
	Clips int
}

// NewInventory fills an inventory from level settings
func NewInventory(s Settings) Inventory {
	return Inventory{NopSlides: s.NopSlideCount, NoClips: s.NoClipCount}
}

// Count returns how many charges of a program are left
func (inv *Inventory) Count(k Kind) int {
	switch k {
	case KindNopSlide:
		return inv.NopSlides
	case KindNoClip:
		return inv.NoClips
	default:
		return 0
	}
}

// ConsumeClip uses one armed clip charge, reporting whether one was available
func (inv *Inventory) ConsumeClip() bool {
	if inv.Clips <= 0 {
		return false
	}
	inv.Clips--
	return true
}

// Context is what running programs are given on every tick
type Context interface {
	NavMap() *gameworld.NavigableMap
	PlayerCoord() world.Coord
	Inventory() *Inventory
}

// Scheduler is the cron programs are registered with
type Scheduler = cron.Cron[Context]

// Run spends one charge of program k and starts it. NopSlide returns the ID of
// its cron task; NoClip takes effect immediately and returns ok false.
func Run(k Kind, sched *Scheduler, ctx Context, tuning Tuning) (id cron.ID, ok bool, err error) {
	inv := ctx.Inventory()
	switch k {
	case KindNopSlide:
		if inv.NopSlides <= 0 {
			return 0, false, fmt.Errorf("%s: %w", k, ErrNoCharges)
		}
		inv.NopSlides--
		slide := NewNopSlide(ctx.PlayerCoord(), tuning.NopSlideMaxRadius)
		id = sched.Every(tuning.NopSlideInterval, slide)
		logger.Info("program started", zap.Stringer("program", k), zap.Stringer("origin", slide.Origin()))
		return id, true, nil
	case KindNoClip:
		if inv.NoClips <= 0 {
			return 0, false, fmt.Errorf("%s: %w", k, ErrNoCharges)
		}
		inv.NoClips--
		inv.Clips++
		logger.Info("program started", zap.Stringer("program", k), zap.Int("clips", inv.Clips))
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("unknown program %d", int(k))
	}
}

// NopSlide opens one ring of corridors per tick around a fixed origin
type NopSlide struct {
	origin    world.Coord
	ring      int
	maxRadius int
}

// NewNopSlide creates a slide centred on origin. A maxRadius of zero or less
// lets it run until the map edge.
func NewNopSlide(origin world.Coord, maxRadius int) *NopSlide {
	return &NopSlide{origin: origin, maxRadius: maxRadius}
}

// Origin returns the cell the slide spreads from
func (n *NopSlide) Origin() world.Coord {
	return n.origin
}

// Ring returns the index of the next ring to open
func (n *NopSlide) Ring() int {
	return n.ring
}

// Run opens ring n in every cardinal direction: the cell n steps from the
// origin gets a passage one step further out. It stops once a ring opens
// nothing or the maximum radius is reached.
func (n *NopSlide) Run(ctx Context) cron.ControlFlow {
	m := ctx.NavMap()
	if m == nil {
		return cron.Stop
	}

	opened := false
	for _, d := range world.Cardinals() {
		if err := m.MakeOpen(n.origin.StepN(d, n.ring), d); err == nil {
			opened = true
		}
	}
	n.ring++

	if !opened || (n.maxRadius > 0 && n.ring >= n.maxRadius) {
		logger.Debug("nop slide finished", zap.Stringer("origin", n.origin), zap.Int("rings", n.Ring()))
		return cron.Stop
	}
	return cron.Continue
}
