package world

import (
	"errors"
	"testing"
)

func TestNewGrid_NegativeSize(t *testing.T) {
	if _, err := NewGrid[int](-1, 3); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("NewGrid(-1, 3) error = %v, want ErrInvalidSize", err)
	}
}

func TestNewGrid_ZeroArea(t *testing.T) {
	g, err := NewGrid[int](0, 5)
	if err != nil {
		t.Fatalf("NewGrid(0, 5): %v", err)
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d, want 0", g.Len())
	}
	if _, ok := g.CoordOf(0); ok {
		t.Error("CoordOf(0) on empty grid should fail")
	}
}

func TestGridIndexRoundTrip(t *testing.T) {
	g, _ := NewGrid[int](7, 4)
	for i := 0; i < g.Len(); i++ {
		c, ok := g.CoordOf(i)
		if !ok {
			t.Fatalf("CoordOf(%d) failed", i)
		}
		j, ok := g.Index(c)
		if !ok || j != i {
			t.Errorf("Index(CoordOf(%d)) = %d, %v", i, j, ok)
		}
	}
	if i, _ := g.Index(C(3, 2)); i != 3+2*7 {
		t.Errorf("Index(3,2) = %d, want %d", i, 3+2*7)
	}
}

func TestGridBounds(t *testing.T) {
	g, _ := NewGrid[string](3, 3)
	for _, c := range []Coord{C(-1, 0), C(0, -1), C(3, 0), C(0, 3)} {
		if g.InBounds(c) {
			t.Errorf("InBounds(%s) = true", c)
		}
		if _, ok := g.Get(c); ok {
			t.Errorf("Get(%s) succeeded", c)
		}
		if err := g.Set(c, "x"); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Set(%s) error = %v", c, err)
		}
	}
	if err := g.Set(C(2, 2), "x"); err != nil {
		t.Fatalf("Set(2,2): %v", err)
	}
	if g.At(C(2, 2)) != "x" {
		t.Errorf("At(2,2) = %q", g.At(C(2, 2)))
	}
}

func TestGridNeighborRoundTrip(t *testing.T) {
	g, _ := NewGrid[int](4, 4)
	g.ForEachCell(func(c Coord, _ int) {
		for _, d := range Cardinals() {
			n, err := g.Neighbor(c, d)
			if err != nil {
				if g.InBounds(c.Step(d)) {
					t.Errorf("Neighbor(%s, %s) failed for in-bounds target", c, d)
				}
				continue
			}
			back, err := g.Neighbor(n, d.Opposite())
			if err != nil || back != c {
				t.Errorf("Neighbor(Neighbor(%s, %s), opposite) = %s, %v", c, d, back, err)
			}
		}
	})
}

func TestGridClone(t *testing.T) {
	g, _ := NewGrid[int](2, 2)
	_ = g.Set(C(1, 1), 5)
	c := g.Clone()
	_ = g.Set(C(1, 1), 9)
	if c.At(C(1, 1)) != 5 {
		t.Errorf("clone shares storage: got %d", c.At(C(1, 1)))
	}
}

func TestReveal(t *testing.T) {
	seen, _ := NewGrid[bool](5, 5)
	n := Reveal(seen, C(0, 0), 2)
	// (0,0) (1,0) (2,0) (0,1) (1,1) (0,2)
	if n != 6 {
		t.Errorf("Reveal revealed %d cells, want 6", n)
	}
	if seen.At(C(2, 1)) {
		t.Error("(2,1) is at distance 3 and should stay hidden")
	}
	if again := Reveal(seen, C(0, 0), 2); again != 0 {
		t.Errorf("second Reveal = %d, want 0", again)
	}
}

func TestSquareClamped(t *testing.T) {
	g, _ := NewGrid[int](4, 4)
	cells := Square(g, C(0, 0), 2)
	if len(cells) != 9 {
		t.Errorf("Square at corner returned %d cells, want 9", len(cells))
	}
	cells = Square(g, C(2, 2), 2)
	if len(cells) != 16 {
		t.Errorf("Square in middle returned %d cells, want 16", len(cells))
	}
}
