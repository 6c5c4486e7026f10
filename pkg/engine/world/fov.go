package world

// RevealRadius is the default reveal radius around the player (Manhattan distance)
const RevealRadius = 2

// Diamond returns the in-bounds coordinates whose Manhattan distance from center
// is at most radius, in row-major order.
func Diamond[T any](g *Grid[T], center Coord, radius int) []Coord {
	if radius < 0 {
		return nil
	}
	var cells []Coord
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			c := Coord{X: x, Y: y}
			if !g.InBounds(c) || center.Manhattan(c) > radius {
				continue
			}
			cells = append(cells, c)
		}
	}
	return cells
}

// Square returns the in-bounds coordinates whose Chebyshev distance from center
// is at most radius, in row-major order.
func Square[T any](g *Grid[T], center Coord, radius int) []Coord {
	if radius < 0 {
		return nil
	}
	var cells []Coord
	for y := max(center.Y-radius, 0); y <= min(center.Y+radius, g.height-1); y++ {
		for x := max(center.X-radius, 0); x <= min(center.X+radius, g.width-1); x++ {
			cells = append(cells, Coord{X: x, Y: y})
		}
	}
	return cells
}

// Reveal marks every cell within Manhattan radius of center as seen.
// It returns how many cells changed from unseen to seen.
func Reveal(seen *Grid[bool], center Coord, radius int) int {
	revealed := 0
	for _, c := range Diamond(seen, center, radius) {
		if !seen.At(c) {
			_ = seen.Set(c, true)
			revealed++
		}
	}
	return revealed
}
