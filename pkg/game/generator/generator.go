package generator

import (
	"fmt"
	"sort"

	"haex/pkg/engine/world"
)

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(width, height int, rng world.Rand) (*world.Grid[world.DirectionBits], error)
	Name() string
}

// GrowingTreeGenerator carves a growing tree maze and resolves its corners
type GrowingTreeGenerator struct {
	name    string
	Weights Weights
}

// NewGrowingTree creates a generator with the given selection weights
func NewGrowingTree(name string, weights Weights) *GrowingTreeGenerator {
	return &GrowingTreeGenerator{name: name, Weights: weights}
}

// Name returns the generator name
func (g *GrowingTreeGenerator) Name() string {
	return g.name
}

// Generate builds a maze with cardinal passages and resolved corner bits
func (g *GrowingTreeGenerator) Generate(width, height int, rng world.Rand) (*world.Grid[world.DirectionBits], error) {
	grid, err := GrowingTree(width, height, g.Weights, rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.name, err)
	}
	ResolveCorners(grid)
	return grid, nil
}

// Available generators
var (
	Backtracker = NewGrowingTree("backtracker", Weights{Newest: 1})
	Prim        = NewGrowingTree("prim", Weights{Random: 1})
	Mixed       = NewGrowingTree("mixed", DefaultWeights())
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = Mixed

var registry = map[string]GridGenerator{
	Backtracker.Name(): Backtracker,
	Prim.Name():        Prim,
	Mixed.Name():       Mixed,
}

// Lookup returns a registered generator by name
func Lookup(name string) (GridGenerator, bool) {
	g, ok := registry[name]
	return g, ok
}

// Names returns the registered generator names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
