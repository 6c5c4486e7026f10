// Package world provides generic 2D grid primitives: coordinates, direction
// bit flags and fog-of-war reveal helpers.
package world

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a grid is requested with negative dimensions
	ErrInvalidSize = errors.New("invalid grid size")

	// ErrOutOfRange is returned when a coordinate falls outside the grid
	ErrOutOfRange = errors.New("coordinate out of range")
)

// Coord is an integer cell coordinate. X grows eastwards, Y grows southwards.
type Coord struct {
	X int
	Y int
}

// C is shorthand for Coord{X: x, Y: y}
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Step returns the coordinate one cell away in direction d
func (c Coord) Step(d Direction) Coord {
	return c.StepN(d, 1)
}

// StepN returns the coordinate n cells away in direction d
func (c Coord) StepN(d Direction, n int) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx*n, Y: c.Y + dy*n}
}

// Manhattan returns the taxicab distance between c and o
func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Chebyshev returns the chessboard distance between c and o
func (c Coord) Chebyshev(o Coord) int {
	return max(abs(c.X-o.X), abs(c.Y-o.Y))
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is a dense, row-major width x height grid of values
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// NewGrid creates a grid with every cell set to the zero value of T
func NewGrid[T any](width, height int) (*Grid[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}, nil
}

// Width returns the number of columns
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid[T]) Height() int {
	return g.height
}

// Len returns the number of cells
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// InBounds checks if a coordinate is within grid bounds
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index converts an in-bounds coordinate to its linear index
func (g *Grid[T]) Index(c Coord) (int, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	return c.X + c.Y*g.width, true
}

// CoordOf converts a linear index back to a coordinate
func (g *Grid[T]) CoordOf(i int) (Coord, bool) {
	if i < 0 || i >= len(g.cells) {
		return Coord{}, false
	}
	return Coord{X: i % g.width, Y: i / g.width}, true
}

// Get returns the value at c, or false if c is out of bounds
func (g *Grid[T]) Get(c Coord) (T, bool) {
	i, ok := g.Index(c)
	if !ok {
		var zero T
		return zero, false
	}
	return g.cells[i], true
}

// At returns the value at c, or the zero value if c is out of bounds
func (g *Grid[T]) At(c Coord) T {
	v, _ := g.Get(c)
	return v
}

// Set stores v at c
func (g *Grid[T]) Set(c Coord, v T) error {
	i, ok := g.Index(c)
	if !ok {
		return fmt.Errorf("%w: %s in %dx%d", ErrOutOfRange, c, g.width, g.height)
	}
	g.cells[i] = v
	return nil
}

// Neighbor returns the coordinate adjacent to c in direction d, if it lies in the grid
func (g *Grid[T]) Neighbor(c Coord, d Direction) (Coord, error) {
	n := c.Step(d)
	if !g.InBounds(n) {
		return Coord{}, fmt.Errorf("%w: %s step %s", ErrOutOfRange, c, d)
	}
	return n, nil
}

// Fill sets every cell to v
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// ForEachCell calls fn for every cell in row-major order
func (g *Grid[T]) ForEachCell(fn func(c Coord, v T)) {
	for i, v := range g.cells {
		fn(Coord{X: i % g.width, Y: i / g.width}, v)
	}
}

// Clone returns an independent copy of the grid
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
