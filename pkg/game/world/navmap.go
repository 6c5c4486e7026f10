// Package world ties a carved maze to everything the game asks of it: pixel
// conversion, move validity, fog of war, spawn sampling and the fixed
// spawn-to-exit path.
package world

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"haex/pkg/engine/logger"
	"haex/pkg/engine/world"
	"haex/pkg/game/generator"
	"haex/pkg/game/graph"
	"haex/pkg/game/spawn"
)

const (
	DefaultTileWidth  = 32
	DefaultTileHeight = 32
)

var (
	// ErrInvalidTileSize is returned for non-positive tile dimensions
	ErrInvalidTileSize = errors.New("invalid tile size")

	// ErrNotCardinal is returned when a passage is requested along a diagonal
	ErrNotCardinal = errors.New("direction is not cardinal")
)

// MapSettings describes the map to generate
type MapSettings struct {
	Width      int
	Height     int
	TileWidth  float64
	TileHeight float64
	Generator  generator.GridGenerator
}

// DefaultMapSettings returns settings for a width x height map with 32px tiles
func DefaultMapSettings(width, height int) MapSettings {
	return MapSettings{
		Width:      width,
		Height:     height,
		TileWidth:  DefaultTileWidth,
		TileHeight: DefaultTileHeight,
		Generator:  generator.DefaultGenerator,
	}
}

// NavigableMap owns a maze grid, its seen mask and the connectivity graph
// computed when the map was built. The graph and longest path are not updated
// by MakeOpen; only move queries see new passages.
type NavigableMap struct {
	grid    *world.Grid[world.DirectionBits]
	seen    *world.Grid[bool]
	graph   *graph.Graph
	longest []world.Coord

	tileWidth  float64
	tileHeight float64
}

// New generates a maze and builds its navigation data
func New(settings MapSettings, rng world.Rand) (*NavigableMap, error) {
	gen := settings.Generator
	if gen == nil {
		gen = generator.DefaultGenerator
	}
	grid, err := gen.Generate(settings.Width, settings.Height, rng)
	if err != nil {
		return nil, fmt.Errorf("generate %dx%d map: %w", settings.Width, settings.Height, err)
	}
	return FromGrid(grid, settings.TileWidth, settings.TileHeight)
}

// FromGrid wraps an existing maze grid. The grid is owned by the map afterwards.
func FromGrid(grid *world.Grid[world.DirectionBits], tileWidth, tileHeight float64) (*NavigableMap, error) {
	if !(tileWidth > 0) || !(tileHeight > 0) {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidTileSize, tileWidth, tileHeight)
	}
	seen, err := world.NewGrid[bool](grid.Width(), grid.Height())
	if err != nil {
		return nil, err
	}

	g := graph.Build(grid)
	m := &NavigableMap{
		grid:       grid,
		seen:       seen,
		graph:      g,
		longest:    g.LongestPath(),
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
	}

	logger.Debug("map built",
		zap.Int("width", grid.Width()),
		zap.Int("height", grid.Height()),
		zap.Int("nodes", g.Len()),
		zap.Int("deadEnds", len(g.DeadEnds())),
		zap.Int("pathLength", len(m.longest)),
	)
	return m, nil
}

// Width returns the map width in cells
func (m *NavigableMap) Width() int {
	return m.grid.Width()
}

// Height returns the map height in cells
func (m *NavigableMap) Height() int {
	return m.grid.Height()
}

// Grid returns the maze grid. Callers must not modify it directly; use MakeOpen.
func (m *NavigableMap) Grid() *world.Grid[world.DirectionBits] {
	return m.grid
}

// Bits returns the passages of c, or an empty set outside the map
func (m *NavigableMap) Bits(c world.Coord) world.DirectionBits {
	return m.grid.At(c)
}

// Graph returns the connectivity graph computed at construction
func (m *NavigableMap) Graph() *graph.Graph {
	return m.graph
}

// LongestPath returns a copy of the spawn-to-exit path. It may be empty.
func (m *NavigableMap) LongestPath() []world.Coord {
	return slices.Clone(m.longest)
}

// Start returns the first cell of the longest path
func (m *NavigableMap) Start() (world.Coord, bool) {
	if len(m.longest) == 0 {
		return world.Coord{}, false
	}
	return m.longest[0], true
}

// Exit returns the last cell of the longest path
func (m *NavigableMap) Exit() (world.Coord, bool) {
	if len(m.longest) == 0 {
		return world.Coord{}, false
	}
	return m.longest[len(m.longest)-1], true
}

// TileSize returns the tile width and height in pixels
func (m *NavigableMap) TileSize() (width, height float64) {
	return m.tileWidth, m.tileHeight
}

// PixelDimensions returns the map size in pixels
func (m *NavigableMap) PixelDimensions() (width, height float64) {
	return m.tileWidth * float64(m.grid.Width()), m.tileHeight * float64(m.grid.Height())
}

// PixelToCoord returns the cell containing the pixel position.
// Negative positions and positions past the map edge report false.
func (m *NavigableMap) PixelToCoord(x, y float64) (world.Coord, bool) {
	if x < 0 || y < 0 || math.IsNaN(x) || math.IsNaN(y) {
		return world.Coord{}, false
	}
	c := world.C(int(math.Floor(x/m.tileWidth)), int(math.Floor(y/m.tileHeight)))
	if !m.grid.InBounds(c) {
		return world.Coord{}, false
	}
	return c, true
}

// CoordToMidPixel returns the pixel position of the centre of c
func (m *NavigableMap) CoordToMidPixel(c world.Coord) (x, y float64) {
	return (float64(c.X) + 0.5) * m.tileWidth, (float64(c.Y) + 0.5) * m.tileHeight
}

// ValidMove returns the destination of moving from c towards d when the
// passage is open and the destination lies on the map
func (m *NavigableMap) ValidMove(c world.Coord, d world.Direction) (world.Coord, bool) {
	if !d.IsCardinal() {
		return world.Coord{}, false
	}
	bits, ok := m.grid.Get(c)
	if !ok || !bits.Has(d) {
		return world.Coord{}, false
	}
	next, err := m.grid.Neighbor(c, d)
	if err != nil {
		return world.Coord{}, false
	}
	return next, true
}

// MakeOpen carves a passage from c towards d, setting the bit on both sides.
// It is idempotent. Corner bits around both cells are recomputed; the graph
// and longest path are left untouched.
func (m *NavigableMap) MakeOpen(c world.Coord, d world.Direction) error {
	if !d.IsCardinal() {
		return fmt.Errorf("%w: %s", ErrNotCardinal, d)
	}
	if !m.grid.InBounds(c) {
		return fmt.Errorf("open %s from %s: %w", d, c, world.ErrOutOfRange)
	}
	next, err := m.grid.Neighbor(c, d)
	if err != nil {
		return fmt.Errorf("open %s from %s: %w", d, c, err)
	}

	_ = m.grid.Set(c, m.grid.At(c).With(d))
	_ = m.grid.Set(next, m.grid.At(next).With(d.Opposite()))
	generator.ResolveCornersAround(m.grid, c)
	generator.ResolveCornersAround(m.grid, next)
	return nil
}

// EnemySpawns samples up to limit distinct cells, none within
// spawn.PlayerExclusion of the player on either axis
func (m *NavigableMap) EnemySpawns(limit int, player world.Coord, rng world.Rand) []world.Coord {
	exclude := spawn.Around(m.grid, player, spawn.PlayerExclusion)
	return spawn.NewSpawner(m.grid, limit, exclude, rng).Collect()
}

// Reveal marks cells within Manhattan radius of center as seen and returns
// how many were newly revealed
func (m *NavigableMap) Reveal(center world.Coord, radius int) int {
	return world.Reveal(m.seen, center, radius)
}

// Seen reports whether c has been revealed
func (m *NavigableMap) Seen(c world.Coord) bool {
	return m.seen.At(c)
}

// SeenGrid returns the fog of war mask
func (m *NavigableMap) SeenGrid() *world.Grid[bool] {
	return m.seen
}

// RevealAll marks every cell as seen
func (m *NavigableMap) RevealAll() {
	m.seen.Fill(true)
}
