package generator

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"haex/pkg/engine/world"
)

var (
	// ErrZeroWeights is returned when every selection weight is zero
	ErrZeroWeights = errors.New("all growing tree weights are zero")

	// ErrInvalidWeights is returned when a weight is negative, NaN or infinite
	ErrInvalidWeights = errors.New("invalid growing tree weight")
)

// Selector picks which active cell the growing tree expands next
type Selector int

const (
	SelectRandom Selector = iota
	SelectNewest
	SelectMiddle
	SelectOldest
)

func (s Selector) String() string {
	switch s {
	case SelectRandom:
		return "random"
	case SelectNewest:
		return "newest"
	case SelectMiddle:
		return "middle"
	case SelectOldest:
		return "oldest"
	default:
		return "unknown"
	}
}

// Weights are the relative probabilities of each selector.
// {Newest: 1} is a recursive backtracker, {Random: 1} behaves like Prim's algorithm.
type Weights struct {
	Random float64 `yaml:"random"`
	Newest float64 `yaml:"newest"`
	Middle float64 `yaml:"middle"`
	Oldest float64 `yaml:"oldest"`
}

// DefaultWeights mixes random and newest selection evenly
func DefaultWeights() Weights {
	return Weights{Random: 1, Newest: 1}
}

func (w Weights) values() [4]float64 {
	return [4]float64{w.Random, w.Newest, w.Middle, w.Oldest}
}

// Validate reports whether the weights describe a usable distribution
func (w Weights) Validate() error {
	total := 0.0
	for i, v := range w.values() {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidWeights, Selector(i), v)
		}
		total += v
	}
	if total == 0 {
		return ErrZeroWeights
	}
	return nil
}

// pick draws a selector proportionally to its weight. Weights must be valid.
func (w Weights) pick(rng world.Rand) Selector {
	vals := w.values()
	total := 0.0
	for _, v := range vals {
		total += v
	}
	r := rng.Float64() * total
	last := SelectRandom
	for i, v := range vals {
		if v == 0 {
			continue
		}
		last = Selector(i)
		if r < v {
			return last
		}
		r -= v
	}
	return last
}

// index maps a selector onto a position in an active list of length n > 0
func (s Selector) index(n int, rng world.Rand) int {
	switch s {
	case SelectNewest:
		return n - 1
	case SelectMiddle:
		return (n - 1) / 2
	case SelectOldest:
		return 0
	default:
		return rng.Intn(n)
	}
}

// GrowingTree carves a perfect maze over a width x height grid.
//
// The active list starts with one random cell. Each step selects an active cell by
// weighted strategy, then carves to the first unvisited neighbor in a shuffled
// cardinal order. Cells with no unvisited neighbor leave the list. Only cardinal
// bits are set; corners are left to ResolveCorners.
func GrowingTree(width, height int, weights Weights, rng world.Rand) (*world.Grid[world.DirectionBits], error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	grid, err := world.NewGrid[world.DirectionBits](width, height)
	if err != nil {
		return nil, err
	}
	if grid.Len() == 0 {
		return grid, nil
	}

	start, _ := grid.CoordOf(rng.Intn(grid.Len()))
	active := []world.Coord{start}

	for len(active) > 0 {
		i := weights.pick(rng).index(len(active), rng)
		current := active[i]

		carved := false
		for _, d := range world.ShuffledCardinals(rng) {
			next, err := grid.Neighbor(current, d)
			if err != nil || !grid.At(next).IsEmpty() {
				continue
			}
			_ = grid.Set(current, grid.At(current).With(d))
			_ = grid.Set(next, grid.At(next).With(d.Opposite()))
			active = append(active, next)
			carved = true
			break
		}

		if !carved {
			active = slices.Delete(active, i, i+1)
		}
	}

	return grid, nil
}
