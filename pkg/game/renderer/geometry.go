package renderer

import "haex/pkg/engine/world"

// Rect is an axis-aligned rectangle in cell-local pixels
type Rect struct {
	X, Y, W, H float64
}

// WallRects returns the wall pieces of a size x size cell with walls of the
// given thickness. Closed sides get a full-length strip. A corner whose two
// sides are open gets a post unless its corner bit marks the diagonal open.
func WallRects(bits world.DirectionBits, size, thickness float64) []Rect {
	var rects []Rect
	far := size - thickness

	if !bits.Has(world.North) {
		rects = append(rects, Rect{0, 0, size, thickness})
	}
	if !bits.Has(world.South) {
		rects = append(rects, Rect{0, far, size, thickness})
	}
	if !bits.Has(world.West) {
		rects = append(rects, Rect{0, 0, thickness, size})
	}
	if !bits.Has(world.East) {
		rects = append(rects, Rect{far, 0, thickness, size})
	}

	posts := []struct {
		corner world.Direction
		a, b   world.Direction
		x, y   float64
	}{
		{world.NorthEast, world.North, world.East, far, 0},
		{world.SouthEast, world.South, world.East, far, far},
		{world.SouthWest, world.South, world.West, 0, far},
		{world.NorthWest, world.North, world.West, 0, 0},
	}
	for _, p := range posts {
		if bits.Has(p.a) && bits.Has(p.b) && !bits.Has(p.corner) {
			rects = append(rects, Rect{p.x, p.y, thickness, thickness})
		}
	}
	return rects
}
