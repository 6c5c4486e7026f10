package generator

import (
	"strings"
	"testing"

	"haex/pkg/engine/world"
)

// openBlock returns a 2x2 grid whose four cells form a loop.
func openBlock(t *testing.T) *world.Grid[world.DirectionBits] {
	t.Helper()
	g, err := world.NewGrid[world.DirectionBits](2, 2)
	if err != nil {
		t.Fatal(err)
	}
	_ = g.Set(world.C(0, 0), world.Bits(world.East, world.South))
	_ = g.Set(world.C(1, 0), world.Bits(world.West, world.South))
	_ = g.Set(world.C(0, 1), world.Bits(world.North, world.East))
	_ = g.Set(world.C(1, 1), world.Bits(world.North, world.West))
	return g
}

func TestResolveCorners_OpenBlock(t *testing.T) {
	g := openBlock(t)
	ResolveCorners(g)
	want := map[world.Coord]world.Direction{
		world.C(0, 0): world.SouthEast,
		world.C(1, 0): world.SouthWest,
		world.C(0, 1): world.NorthEast,
		world.C(1, 1): world.NorthWest,
	}
	for c, corner := range want {
		bits := g.At(c)
		if bits.Corner() != world.Bits(corner) {
			t.Errorf("cell %s corners = %s, want %s", c, bits.Corner(), corner)
		}
		if bits.Cardinal().Count() != 2 {
			t.Errorf("cell %s cardinals changed to %s", c, bits.Cardinal())
		}
	}
}

func TestResolveCorners_ClearsStale(t *testing.T) {
	g := openBlock(t)
	ResolveCorners(g)
	// break the loop between (0,1) and (1,1)
	_ = g.Set(world.C(0, 1), world.Bits(world.North))
	_ = g.Set(world.C(1, 1), world.Bits(world.North))
	ResolveCorners(g)
	g.ForEachCell(func(c world.Coord, bits world.DirectionBits) {
		if !bits.Corner().IsEmpty() {
			t.Errorf("cell %s kept stale corners %s", c, bits.Corner())
		}
	})
}

func TestTileClasses_Count(t *testing.T) {
	classes := TileClasses()
	if len(classes) != TileClassCount {
		t.Fatalf("got %d tile classes, want %d", len(classes), TileClassCount)
	}
	for i, c := range classes {
		if c.ID != i {
			t.Errorf("class %d has ID %d", i, c.ID)
		}
		if !strings.HasPrefix(c.Asset, "tiles/") || !strings.HasSuffix(c.Asset, ".png") {
			t.Errorf("class %d (%s) has malformed asset %q", i, c.Bits, c.Asset)
		}
	}
}

func TestClassOf_Total(t *testing.T) {
	for v := 0; v < 256; v++ {
		bits := world.DirectionBits(v)
		class := ClassOf(bits)
		if class.Bits.Cardinal() != bits.Cardinal() {
			t.Errorf("ClassOf(%s) changed cardinals to %s", bits, class.Bits)
		}
		if ClassOf(class.Bits).ID != class.ID {
			t.Errorf("ClassOf is not idempotent for %s", bits)
		}
	}
}

func TestTileKey(t *testing.T) {
	all := world.Bits(world.North, world.East, world.South, world.West)
	cases := []struct {
		bits world.DirectionBits
		want string
	}{
		{world.Bits(), "tiles/tile_342.png"},
		{world.Bits(world.North), "tiles/tile_286.png"},
		{world.Bits(world.North, world.East, world.NorthEast), "tiles/tile_314.png"},
		{all, "tiles/tile_341.png"},
		{all | world.Bits(world.NorthEast, world.SouthEast, world.SouthWest, world.NorthWest), "tiles/tile_340.png"},
		// a corner without both cardinals is dropped
		{world.Bits(world.North, world.NorthEast), "tiles/tile_286.png"},
		// no dedicated sprite, falls back to the plain crossing
		{all.With(world.SouthWest), "tiles/tile_341.png"},
	}
	for _, tc := range cases {
		if got := TileKey(tc.bits); got != tc.want {
			t.Errorf("TileKey(%s) = %q, want %q", tc.bits, got, tc.want)
		}
	}
}
