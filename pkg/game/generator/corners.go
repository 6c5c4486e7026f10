package generator

import "haex/pkg/engine/world"

// cornerSides maps each corner to its vertical and horizontal cardinals
var cornerSides = map[world.Direction][2]world.Direction{
	world.NorthEast: {world.North, world.East},
	world.SouthEast: {world.South, world.East},
	world.SouthWest: {world.South, world.West},
	world.NorthWest: {world.North, world.West},
}

// ResolveCorners sets the corner bit of every cell whose 2x2 block around that
// corner is open on all three connecting edges, and clears it otherwise.
// Cardinal bits are never touched.
func ResolveCorners(g *world.Grid[world.DirectionBits]) {
	g.ForEachCell(func(c world.Coord, _ world.DirectionBits) {
		ResolveCornersAt(g, c)
	})
}

// ResolveCornersAt recomputes the corner bits of a single cell
func ResolveCornersAt(g *world.Grid[world.DirectionBits], c world.Coord) {
	bits, ok := g.Get(c)
	if !ok {
		return
	}
	for _, corner := range world.Corners() {
		if cornerOpen(g, c, bits, corner) {
			bits = bits.With(corner)
		} else {
			bits = bits.Without(corner)
		}
	}
	_ = g.Set(c, bits)
}

// ResolveCornersAround recomputes corner bits for c and its eight neighbors,
// which is every cell whose corners can change when c's passages change.
func ResolveCornersAround(g *world.Grid[world.DirectionBits], c world.Coord) {
	for _, n := range world.Square(g, c, 1) {
		ResolveCornersAt(g, n)
	}
}

func cornerOpen(g *world.Grid[world.DirectionBits], c world.Coord, bits world.DirectionBits, corner world.Direction) bool {
	sides := cornerSides[corner]
	vertical, horizontal := sides[0], sides[1]
	if !bits.Has(vertical) || !bits.Has(horizontal) {
		return false
	}
	vn, vok := g.Get(c.Step(vertical))
	hn, hok := g.Get(c.Step(horizontal))
	return vok && hok && vn.Has(horizontal) && hn.Has(vertical)
}
