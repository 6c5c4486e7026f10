package renderer

import (
	"testing"

	"haex/pkg/engine/world"
)

func TestWallRects(t *testing.T) {
	tests := []struct {
		name string
		bits world.DirectionBits
		want int
	}{
		{"closed", 0, 4},
		{"dead end", world.Bits(world.North), 3},
		{"corridor", world.Bits(world.East, world.West), 2},
		{"bend", world.Bits(world.North, world.East), 3},
		{"open bend", world.Bits(world.North, world.East, world.NorthEast), 2},
		{"crossing", world.Bits(world.North, world.East, world.South, world.West), 4},
		{"open block", world.Bits(world.North, world.East, world.South, world.West,
			world.NorthEast, world.SouthEast, world.SouthWest, world.NorthWest), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WallRects(tt.bits, 32, 4); len(got) != tt.want {
				t.Errorf("WallRects(%s) = %d pieces, want %d", tt.bits, len(got), tt.want)
			}
		})
	}

	post := WallRects(world.Bits(world.North, world.East), 32, 4)
	last := post[len(post)-1]
	if last != (Rect{28, 0, 4, 4}) {
		t.Errorf("north-east post = %+v", last)
	}
}
