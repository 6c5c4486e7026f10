package spawn

import (
	"github.com/zyedidia/generic/mapset"

	"haex/pkg/engine/world"
)

// PlayerExclusion is the Chebyshev radius around the player where nothing spawns
const PlayerExclusion = 2

// Spawner filters a Bag of grid indices down to at most max coordinates
type Spawner struct {
	bag     *Bag
	coordOf func(int) (world.Coord, bool)
	exclude func(world.Coord) bool
	max     int
	emitted int
}

// NewSpawner samples up to limit coordinates of g, skipping any for which exclude returns true.
// A nil exclude accepts every cell.
func NewSpawner[T any](g *world.Grid[T], limit int, exclude func(world.Coord) bool, rng world.Rand) *Spawner {
	if exclude == nil {
		exclude = func(world.Coord) bool { return false }
	}
	return &Spawner{
		bag:     NewBag(g.Len(), rng),
		coordOf: g.CoordOf,
		exclude: exclude,
		max:     limit,
	}
}

// Next returns the next accepted coordinate. It returns false once max
// coordinates were produced or the bag ran dry.
func (s *Spawner) Next() (world.Coord, bool) {
	if s.emitted >= s.max {
		return world.Coord{}, false
	}
	for {
		i, ok := s.bag.Next()
		if !ok {
			return world.Coord{}, false
		}
		c, ok := s.coordOf(i)
		if !ok || s.exclude(c) {
			continue
		}
		s.emitted++
		return c, true
	}
}

// Collect drains the spawner
func (s *Spawner) Collect() []world.Coord {
	var out []world.Coord
	for c, ok := s.Next(); ok; c, ok = s.Next() {
		out = append(out, c)
	}
	return out
}

// Around returns an exclusion predicate covering the clamped square of the given
// Chebyshev radius centred on c, inclusive on every side.
func Around[T any](g *world.Grid[T], c world.Coord, radius int) func(world.Coord) bool {
	excluded := mapset.New[world.Coord]()
	for _, sq := range world.Square(g, c, radius) {
		excluded.Put(sq)
	}
	return excluded.Has
}
