// Package state runs a play session: the current level, its entities, the
// program scheduler and the phase machine between menu, play and endings.
//
// The Game is pumped with frame deltas by a frontend and never reads a clock.
package state

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"haex/pkg/engine/cron"
	"haex/pkg/engine/logger"
	"haex/pkg/engine/world"
	"haex/pkg/game/entities"
	"haex/pkg/game/generator"
	"haex/pkg/game/programs"
	gameworld "haex/pkg/game/world"
)

// ErrNotPlaying is returned for actions that need the main phase
var ErrNotPlaying = errors.New("not in play")

// ErrNoPath is returned when a generated level has no spawn-to-exit path
var ErrNoPath = errors.New("level has no path")

// Phase is where the session is in the menu, play and ending cycle
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseMain
	PhaseMainToMain
	PhaseMainToBlack
	PhaseBlack
	PhaseMainToBadEnd
	PhaseBadEnd
)

// Phase timings
const (
	MainToMainDuration   = 3 * time.Second
	MainToBlackDuration  = 1500 * time.Millisecond
	BlackMinimumDuration = time.Second
	MainToBadEndDuration = 3 * time.Second
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseMain:
		return "main"
	case PhaseMainToMain:
		return "main-to-main"
	case PhaseMainToBlack:
		return "main-to-black"
	case PhaseBlack:
		return "black"
	case PhaseMainToBadEnd:
		return "main-to-bad-end"
	case PhaseBadEnd:
		return "bad-end"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Options are the session-wide settings that do not change between levels
type Options struct {
	Generator    generator.GridGenerator
	TileWidth    float64
	TileHeight   float64
	RevealRadius int
	MoveTime     time.Duration
	Programs     programs.Tuning
}

// DefaultOptions returns the stock session settings
func DefaultOptions() Options {
	return Options{
		Generator:    generator.DefaultGenerator,
		TileWidth:    gameworld.DefaultTileWidth,
		TileHeight:   gameworld.DefaultTileHeight,
		RevealRadius: world.RevealRadius,
		MoveTime:     entities.DefaultMoveTime,
		Programs:     programs.DefaultTuning(),
	}
}

// Level is a loaded progression step
type Level struct {
	Number    int
	Seed      int64
	Settings  LevelSettings
	Map       *gameworld.NavigableMap
	Player    *entities.Player
	Enemies   []*entities.Enemy
	Inventory programs.Inventory
	Start     world.Coord
	Exit      world.Coord
}

// Game represents one play session
type Game struct {
	opts Options

	first   *Progression
	current *Progression
	level   *Level

	phase     Phase
	phaseTime time.Duration
	elapsed   time.Duration
	seed      int64

	cron *programs.Scheduler
	rng  *rand.Rand

	Messages []string
}

// NewGame creates a session sitting at the menu
func NewGame(first *Progression, opts Options) *Game {
	if first == nil {
		first = DefaultProgression()
	}
	if opts.Generator == nil {
		opts.Generator = generator.DefaultGenerator
	}
	return &Game{
		opts:     opts,
		first:    first,
		cron:     cron.New[programs.Context](),
		Messages: make([]string, 0),
	}
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// PhaseTime returns how long the current phase has lasted
func (g *Game) PhaseTime() time.Duration {
	return g.phaseTime
}

// Elapsed returns the total time pumped through Update
func (g *Game) Elapsed() time.Duration {
	return g.elapsed
}

// Level returns the loaded level, or nil at the menu
func (g *Game) Level() *Level {
	return g.level
}

// Options returns the session settings
func (g *Game) Options() Options {
	return g.opts
}

// Scheduler returns the cron running programs for the current level
func (g *Game) Scheduler() *programs.Scheduler {
	return g.cron
}

// NavMap returns the current level's map
func (g *Game) NavMap() *gameworld.NavigableMap {
	if g.level == nil {
		return nil
	}
	return g.level.Map
}

// PlayerCoord returns the cell under the player
func (g *Game) PlayerCoord() world.Coord {
	if g.level == nil {
		return world.Coord{}
	}
	c, _ := g.level.Player.Coord(g.level.Map)
	return c
}

// Inventory returns the player's program charges
func (g *Game) Inventory() *programs.Inventory {
	if g.level == nil {
		return &programs.Inventory{}
	}
	return &g.level.Inventory
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

func (g *Game) setPhase(p Phase) {
	logger.Info("phase changed", zap.Stringer("from", g.phase), zap.Stringer("to", p))
	g.phase = p
	g.phaseTime = 0
}

// Start leaves the menu and loads the first level from seed
func (g *Game) Start(seed int64) error {
	g.seed = seed
	g.elapsed = 0
	g.ClearMessages()
	if err := g.load(g.first, 1, seed); err != nil {
		return err
	}
	g.setPhase(PhaseMain)
	return nil
}

func (g *Game) load(p *Progression, number int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	settings := gameworld.MapSettings{
		Width:      p.Level.Width,
		Height:     p.Level.Height,
		TileWidth:  g.opts.TileWidth,
		TileHeight: g.opts.TileHeight,
		Generator:  g.opts.Generator,
	}
	m, err := gameworld.New(settings, rng)
	if err != nil {
		return fmt.Errorf("level %d: %w", number, err)
	}
	start, ok := m.Start()
	if !ok {
		return fmt.Errorf("level %d: %w", number, ErrNoPath)
	}
	exit, _ := m.Exit()

	x, y := m.CoordToMidPixel(start)
	lvl := &Level{
		Number:    number,
		Seed:      seed,
		Settings:  p.Level,
		Map:       m,
		Player:    entities.NewPlayer(x, y),
		Inventory: programs.NewInventory(p.Level.Programs),
		Start:     start,
		Exit:      exit,
	}
	for _, c := range m.EnemySpawns(p.Level.Enemies.BasicCount, start, rng) {
		ex, ey := m.CoordToMidPixel(c)
		lvl.Enemies = append(lvl.Enemies, entities.NewEnemy(ex, ey))
	}
	m.Reveal(start, g.opts.RevealRadius)

	g.cron.Clear()
	g.current = p
	g.level = lvl
	g.rng = rng

	logger.Info("level loaded",
		zap.Int("level", number),
		zap.Int64("seed", seed),
		zap.Int("width", m.Width()),
		zap.Int("height", m.Height()),
		zap.Int("enemies", len(lvl.Enemies)),
		zap.Int("pathLength", len(m.LongestPath())),
	)
	g.AddMessage("MESSAGE_LEVEL_START")
	return nil
}

// Update advances the session by dt
func (g *Game) Update(dt time.Duration) error {
	g.elapsed += dt
	g.phaseTime += dt

	switch g.phase {
	case PhaseMain:
		g.updateMain(dt)
	case PhaseMainToMain:
		if g.phaseTime >= MainToMainDuration {
			return g.advance()
		}
	case PhaseMainToBlack:
		if g.phaseTime >= MainToBlackDuration {
			g.setPhase(PhaseBlack)
		}
	case PhaseMainToBadEnd:
		if g.phaseTime >= MainToBadEndDuration {
			g.setPhase(PhaseBadEnd)
		}
	}
	return nil
}

func (g *Game) updateMain(dt time.Duration) {
	lvl := g.level
	g.cron.Update(dt, g)

	for _, e := range lvl.Enemies {
		e.Update(dt, lvl.Map, g.rng)
	}
	lvl.Player.Update(dt)

	tw, th := lvl.Map.TileSize()
	pos := lvl.Player.Position()
	for _, e := range lvl.Enemies {
		if e.CollidesWith(pos, tw, th) {
			logger.Info("player caught", zap.Int("level", lvl.Number))
			g.AddMessage("MESSAGE_CAUGHT")
			g.setPhase(PhaseMainToBlack)
			return
		}
	}

	c, ok := lvl.Player.Coord(lvl.Map)
	if !ok {
		return
	}
	lvl.Map.Reveal(c, g.opts.RevealRadius)

	if !lvl.Player.IsMoving() && c == lvl.Exit {
		g.cron.Clear()
		g.AddMessage("MESSAGE_EXIT_REACHED")
		if next := g.current.Exit; next == nil || next.Type == ProgressionBadEnding {
			g.setPhase(PhaseMainToBadEnd)
		} else {
			g.setPhase(PhaseMainToMain)
		}
	}
}

// advance loads the next progression step with a seed derived from the time
// spent in the session so far
func (g *Game) advance() error {
	next := g.current.Exit
	seed := g.seed ^ int64(g.elapsed)
	if err := g.load(next, g.level.Number+1, seed); err != nil {
		return err
	}
	g.setPhase(PhaseMain)
	return nil
}

// Move starts a one-cell move in direction d. Blocked moves spend an armed
// NoClip charge when one is available.
func (g *Game) Move(d world.Direction) bool {
	if g.phase != PhaseMain {
		return false
	}
	lvl := g.level
	clips := lvl.Inventory.Clips
	next, ok := lvl.Player.TryGridMove(d, lvl.Map, &lvl.Inventory, g.opts.MoveTime)
	if !ok {
		return false
	}
	if lvl.Inventory.Clips < clips {
		logger.Debug("clipped through wall", zap.Stringer("to", next))
		g.AddMessage("MESSAGE_CLIPPED")
	}
	return true
}

// ActivateProgram spends a charge of program k
func (g *Game) ActivateProgram(k programs.Kind) error {
	if g.phase != PhaseMain {
		return ErrNotPlaying
	}
	if _, _, err := programs.Run(k, g.cron, g, g.opts.Programs); err != nil {
		if errors.Is(err, programs.ErrNoCharges) {
			g.AddMessage("MESSAGE_NO_CHARGES")
		}
		return err
	}
	g.AddMessage(k.String())
	return nil
}

// Key handles an "any key" press outside of play. It returns true when the
// press changed the phase.
func (g *Game) Key() bool {
	switch g.phase {
	case PhaseBlack:
		if g.phaseTime < BlackMinimumDuration {
			return false
		}
	case PhaseBadEnd:
	default:
		return false
	}
	g.cron.Clear()
	g.level = nil
	g.current = nil
	g.setPhase(PhaseMenu)
	return true
}
