// Package entities holds the things that move around a maze: the player and enemies.
// Both live in pixel space and glide between cell centres.
package entities

import (
	"time"

	"haex/pkg/engine/world"
	gameworld "haex/pkg/game/world"
)

// DefaultMoveTime is how long the player takes to cross one cell
const DefaultMoveTime = 200 * time.Millisecond

// Point is a position in pixels
type Point struct {
	X float64
	Y float64
}

func lerp(a, b Point, t float64) Point {
	return Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

// motion is a timed glide from one point to another
type motion struct {
	from    Point
	to      Point
	time    time.Duration
	elapsed time.Duration
}

func (m *motion) position() Point {
	if m.time <= 0 {
		return m.to
	}
	return lerp(m.from, m.to, min(float64(m.elapsed)/float64(m.time), 1))
}

// Player is either stationary or gliding towards a target
type Player struct {
	position Point
	moving   *motion
}

// NewPlayer places a stationary player at x, y
func NewPlayer(x, y float64) *Player {
	return &Player{position: Point{X: x, Y: y}}
}

// Position returns the current, possibly interpolated, position
func (p *Player) Position() Point {
	if p.moving != nil {
		return p.moving.position()
	}
	return p.position
}

// IsMoving reports whether the player is gliding
func (p *Player) IsMoving() bool {
	return p.moving != nil
}

// TryMove starts a glide to x, y. It fails while a glide is in progress.
func (p *Player) TryMove(x, y float64, d time.Duration) bool {
	if p.moving != nil {
		return false
	}
	p.moving = &motion{from: p.position, to: Point{X: x, Y: y}, time: d}
	return true
}

// Update advances the glide and lands the player once it completes
func (p *Player) Update(dt time.Duration) {
	if p.moving == nil {
		return
	}
	p.moving.elapsed += dt
	if p.moving.elapsed >= p.moving.time {
		p.position = p.moving.to
		p.moving = nil
	}
}

// Coord returns the cell under the player
func (p *Player) Coord(m *gameworld.NavigableMap) (world.Coord, bool) {
	pos := p.Position()
	return m.PixelToCoord(pos.X, pos.Y)
}

// ClipCharges is implemented by anything that can spend a NoClip charge
type ClipCharges interface {
	ConsumeClip() bool
}

// TryGridMove glides one cell in direction d when the passage is open. A
// blocked move into an in-bounds cell spends a clip charge instead, when one
// is available. It returns the destination cell.
func (p *Player) TryGridMove(d world.Direction, m *gameworld.NavigableMap, clips ClipCharges, moveTime time.Duration) (world.Coord, bool) {
	if p.moving != nil {
		return world.Coord{}, false
	}
	from, ok := p.Coord(m)
	if !ok {
		return world.Coord{}, false
	}

	next, ok := m.ValidMove(from, d)
	if !ok {
		n, err := m.Grid().Neighbor(from, d)
		if err != nil || !d.IsCardinal() || clips == nil || !clips.ConsumeClip() {
			return world.Coord{}, false
		}
		next = n
	}

	x, y := m.CoordToMidPixel(next)
	return next, p.TryMove(x, y, moveTime)
}
