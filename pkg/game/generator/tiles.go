package generator

import (
	"slices"

	"haex/pkg/engine/world"
)

// TileClassCount is the number of distinct adjacency classes a resolved cell can fall into
const TileClassCount = 47

// TileClass describes one canonical adjacency pattern
type TileClass struct {
	ID    int
	Bits  world.DirectionBits
	Asset string
}

// tileAssets names the sprite drawn for each adjacency pattern
var tileAssets = newTileAssets()

func newTileAssets() map[world.DirectionBits]string {
	n, e, s, w := world.North, world.East, world.South, world.West
	ne, se, sw, nw := world.NorthEast, world.SouthEast, world.SouthWest, world.NorthWest

	return map[world.DirectionBits]string{
		world.Bits():     "tiles/tile_342.png",
		world.Bits(n):    "tiles/tile_286.png",
		world.Bits(e):    "tiles/tile_313.png",
		world.Bits(s):    "tiles/tile_312.png",
		world.Bits(w):    "tiles/tile_285.png",
		world.Bits(n, e): "tiles/tile_307.png",
		world.Bits(n, w): "tiles/tile_308.png",
		world.Bits(n, s): "tiles/tile_309.png",
		world.Bits(s, e): "tiles/tile_280.png",
		world.Bits(s, w): "tiles/tile_281.png",
		world.Bits(e, w): "tiles/tile_282.png",

		world.Bits(s, e, w): "tiles/tile_283.png",
		world.Bits(n, e, w): "tiles/tile_284.png",
		world.Bits(n, s, e): "tiles/tile_310.png",
		world.Bits(n, s, w): "tiles/tile_311.png",

		world.Bits(n, s, e, w): "tiles/tile_341.png",

		world.Bits(ne, n, e): "tiles/tile_314.png",
		world.Bits(nw, n, w): "tiles/tile_315.png",
		world.Bits(se, s, e): "tiles/tile_287.png",
		world.Bits(sw, s, w): "tiles/tile_288.png",

		world.Bits(ne, n, e, w): "tiles/tile_419.png",
		world.Bits(nw, n, e, w): "tiles/tile_420.png",
		world.Bits(se, s, e, w): "tiles/tile_392.png",
		world.Bits(sw, s, e, w): "tiles/tile_393.png",
		world.Bits(ne, n, s, e): "tiles/tile_417.png",
		world.Bits(se, n, s, e): "tiles/tile_390.png",
		world.Bits(nw, n, s, w): "tiles/tile_418.png",
		world.Bits(sw, n, s, w): "tiles/tile_391.png",

		world.Bits(ne, nw, n, e, w): "tiles/tile_366.png",
		world.Bits(se, sw, s, e, w): "tiles/tile_365.png",
		world.Bits(ne, se, n, s, e): "tiles/tile_338.png",
		world.Bits(nw, sw, n, s, w): "tiles/tile_339.png",

		world.Bits(ne, nw, n, s, e, w): "tiles/tile_336.png",
		world.Bits(se, sw, n, s, e, w): "tiles/tile_337.png",
		world.Bits(nw, sw, n, s, e, w): "tiles/tile_363.png",
		world.Bits(ne, se, n, s, e, w): "tiles/tile_364.png",

		world.Bits(sw, nw, ne, n, s, e, w): "tiles/tile_334.png",
		world.Bits(se, nw, ne, n, s, e, w): "tiles/tile_335.png",
		world.Bits(se, sw, ne, n, s, e, w): "tiles/tile_362.png",
		world.Bits(se, sw, nw, n, s, e, w): "tiles/tile_361.png",

		world.Bits(se, sw, nw, ne, n, s, e, w): "tiles/tile_340.png",
	}
}

// tileClasses and tileClassIndex are built once from every resolvable pattern
var (
	tileClasses    = buildTileClasses()
	tileClassIndex = indexTileClasses(tileClasses)
)

// Canonical drops corner bits that cannot be set on a resolved cell,
// i.e. corners whose two cardinals are not both open.
func Canonical(bits world.DirectionBits) world.DirectionBits {
	for _, corner := range world.Corners() {
		sides := cornerSides[corner]
		if bits.Has(corner) && !(bits.Has(sides[0]) && bits.Has(sides[1])) {
			bits = bits.Without(corner)
		}
	}
	return bits
}

// TileClasses returns every adjacency class ordered by ID
func TileClasses() []TileClass {
	return slices.Clone(tileClasses)
}

// ClassOf maps any bit pattern to its canonical adjacency class
func ClassOf(bits world.DirectionBits) TileClass {
	return tileClasses[tileClassIndex[Canonical(bits)]]
}

// TileKey returns the sprite asset for any bit pattern
func TileKey(bits world.DirectionBits) string {
	return ClassOf(bits).Asset
}

func buildTileClasses() []TileClass {
	var classes []TileClass
	for v := 0; v < 256; v++ {
		bits := world.DirectionBits(v)
		if Canonical(bits) != bits {
			continue
		}
		classes = append(classes, TileClass{
			ID:    len(classes),
			Bits:  bits,
			Asset: assetFor(bits),
		})
	}
	return classes
}

func indexTileClasses(classes []TileClass) map[world.DirectionBits]int {
	idx := make(map[world.DirectionBits]int, len(classes))
	for _, c := range classes {
		idx[c.Bits] = c.ID
	}
	return idx
}

// assetFor falls back to the pattern with fewer corners when a pattern has no
// dedicated sprite, dropping NW first and NE last.
func assetFor(bits world.DirectionBits) string {
	if a, ok := tileAssets[bits]; ok {
		return a
	}
	corners := world.Corners()
	for i := len(corners) - 1; i >= 0; i-- {
		if bits.Has(corners[i]) {
			return assetFor(bits.Without(corners[i]))
		}
	}
	return tileAssets[world.Bits()]
}
