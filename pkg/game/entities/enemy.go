package entities

import (
	"math"
	"time"

	"haex/pkg/engine/world"
	gameworld "haex/pkg/game/world"
)

// EnemyWaitTime is both the pause between moves and the time one move takes
const EnemyWaitTime = time.Second

// Enemy is a basic wanderer: it waits, then glides to a random open neighbor
type Enemy struct {
	position Point
	previous Point
	wait     time.Duration
	moving   *motion
}

// NewEnemy places an enemy at x, y
func NewEnemy(x, y float64) *Enemy {
	p := Point{X: x, Y: y}
	return &Enemy{position: p, previous: p}
}

// Position returns the current, possibly interpolated, position
func (e *Enemy) Position() Point {
	if e.moving != nil {
		return e.moving.position()
	}
	return e.position
}

// Heading returns the angle in radians from the last position to the current one
func (e *Enemy) Heading() float64 {
	pos := e.Position()
	return math.Atan2(pos.Y-e.previous.Y, pos.X-e.previous.X)
}

// IsMoving reports whether the enemy is gliding
func (e *Enemy) IsMoving() bool {
	return e.moving != nil
}

// Update advances the enemy by dt. Once the wait elapses it tries the four
// cardinals in random order and starts gliding along the first open one.
func (e *Enemy) Update(dt time.Duration, m *gameworld.NavigableMap, rng world.Rand) {
	if e.moving != nil {
		e.moving.elapsed += dt
		if e.moving.elapsed >= e.moving.time {
			e.position = e.moving.to
			e.moving = nil
			e.wait = 0
		}
		return
	}

	e.wait += dt
	if e.wait < EnemyWaitTime {
		return
	}
	e.wait -= EnemyWaitTime

	from, ok := m.PixelToCoord(e.position.X, e.position.Y)
	if !ok {
		return
	}
	for _, d := range world.ShuffledCardinals(rng) {
		next, ok := m.ValidMove(from, d)
		if !ok {
			continue
		}
		x, y := m.CoordToMidPixel(next)
		e.previous = e.position
		e.moving = &motion{from: e.position, to: Point{X: x, Y: y}, time: EnemyWaitTime}
		return
	}
}

// CollidesWith reports whether the enemy is less than one tile from p on both axes
func (e *Enemy) CollidesWith(p Point, tileWidth, tileHeight float64) bool {
	pos := e.Position()
	return math.Abs(p.X-pos.X) < tileWidth && math.Abs(p.Y-pos.Y) < tileHeight
}
