package entities

import (
	"math/rand"
	"testing"
	"time"

	"haex/pkg/engine/world"
	gameworld "haex/pkg/game/world"
)

// corridorMap returns a 3x1 map with passages (0,0)-(1,0) only.
func corridorMap(t *testing.T) *gameworld.NavigableMap {
	t.Helper()
	g, err := world.NewGrid[world.DirectionBits](3, 1)
	if err != nil {
		t.Fatal(err)
	}
	m, err := gameworld.FromGrid(g, 32, 32)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.MakeOpen(world.C(0, 0), world.East); err != nil {
		t.Fatal(err)
	}
	return m
}

type clips int

func (c *clips) ConsumeClip() bool {
	if *c <= 0 {
		return false
	}
	*c--
	return true
}

func TestPlayer_Glide(t *testing.T) {
	p := NewPlayer(0, 0)
	if !p.TryMove(100, 0, time.Second) {
		t.Fatal("TryMove failed on a stationary player")
	}
	if p.TryMove(0, 100, time.Second) {
		t.Error("TryMove succeeded while moving")
	}
	p.Update(250 * time.Millisecond)
	if pos := p.Position(); pos.X != 25 || pos.Y != 0 {
		t.Errorf("Position() = %+v, want {25 0}", pos)
	}
	p.Update(time.Second)
	if p.IsMoving() {
		t.Error("still moving after the glide time")
	}
	if pos := p.Position(); pos.X != 100 {
		t.Errorf("landed at %+v", pos)
	}
}

func TestPlayer_TryGridMove(t *testing.T) {
	m := corridorMap(t)
	x, y := m.CoordToMidPixel(world.C(0, 0))
	p := NewPlayer(x, y)

	if _, ok := p.TryGridMove(world.South, m, nil, DefaultMoveTime); ok {
		t.Error("moved off the map")
	}
	next, ok := p.TryGridMove(world.East, m, nil, DefaultMoveTime)
	if !ok || next != world.C(1, 0) {
		t.Fatalf("TryGridMove(East) = %s, %v", next, ok)
	}
	p.Update(DefaultMoveTime)
	if c, _ := p.Coord(m); c != world.C(1, 0) {
		t.Errorf("player at %s, want (1,0)", c)
	}

	if _, ok := p.TryGridMove(world.East, m, nil, DefaultMoveTime); ok {
		t.Error("moved through a wall without a clip charge")
	}
	charges := clips(1)
	if next, ok := p.TryGridMove(world.East, m, &charges, DefaultMoveTime); !ok || next != world.C(2, 0) {
		t.Errorf("clip move = %s, %v", next, ok)
	}
	if charges != 0 {
		t.Errorf("clip charge not spent: %d", charges)
	}
}

func TestEnemy_WaitsThenMoves(t *testing.T) {
	m := corridorMap(t)
	x, y := m.CoordToMidPixel(world.C(0, 0))
	e := NewEnemy(x, y)
	rng := rand.New(rand.NewSource(1))

	e.Update(EnemyWaitTime/2, m, rng)
	if e.IsMoving() {
		t.Fatal("enemy moved before its wait elapsed")
	}
	e.Update(EnemyWaitTime/2, m, rng)
	if !e.IsMoving() {
		t.Fatal("enemy did not start moving")
	}
	e.Update(EnemyWaitTime, m, rng)
	pos := e.Position()
	if c, _ := m.PixelToCoord(pos.X, pos.Y); c != world.C(1, 0) {
		t.Errorf("enemy ended at %s, want (1,0)", c)
	}
}

func TestEnemy_CollidesWith(t *testing.T) {
	e := NewEnemy(48, 48)
	if !e.CollidesWith(Point{X: 70, Y: 30}, 32, 32) {
		t.Error("expected collision inside one tile")
	}
	if e.CollidesWith(Point{X: 80, Y: 48}, 32, 32) {
		t.Error("collision at exactly one tile apart")
	}
}
