// Package graph builds the connectivity graph of a carved maze and answers
// reachability questions over it: dead ends, shortest paths and the longest
// dead-end to dead-end path used to place spawn and exit.
//
// A Graph is a snapshot. It is computed once from a grid and never follows
// later changes to that grid.
package graph

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
	"github.com/zyedidia/generic/stack"

	"haex/pkg/engine/world"
)

// Origin is the cell every graph is grown from
var Origin = world.C(0, 0)

// Edge is an undirected passage between two adjacent cells
type Edge struct {
	A world.Coord
	B world.Coord
}

// Graph is an undirected graph over the cells reachable from Origin
type Graph struct {
	nodes []world.Coord
	adj   map[world.Coord][]world.Coord
	edges []Edge
}

// Build walks the maze from Origin over open cardinal passages. Every traversed
// passage becomes one edge and nodes are numbered in depth-first pre-order.
// An empty grid yields an empty graph.
func Build(g *world.Grid[world.DirectionBits]) *Graph {
	gr := &Graph{adj: make(map[world.Coord][]world.Coord)}
	if !g.InBounds(Origin) {
		return gr
	}

	visited := mapset.New[world.Coord]()
	pending := stack.New[world.Coord]()
	pending.Push(Origin)

	for pending.Size() > 0 {
		c := pending.Pop()
		if visited.Has(c) {
			continue
		}
		visited.Put(c)
		gr.nodes = append(gr.nodes, c)
		if _, ok := gr.adj[c]; !ok {
			gr.adj[c] = nil
		}

		bits := g.At(c)
		dirs := world.Cardinals()
		// reversed so that North is explored first
		for i := len(dirs) - 1; i >= 0; i-- {
			d := dirs[i]
			if !bits.Has(d) {
				continue
			}
			n, err := g.Neighbor(c, d)
			if err != nil {
				continue
			}
			gr.addEdge(c, n)
			if !visited.Has(n) {
				pending.Push(n)
			}
		}
	}

	return gr
}

func (gr *Graph) addEdge(a, b world.Coord) {
	if gr.HasEdge(a, b) {
		return
	}
	gr.adj[a] = append(gr.adj[a], b)
	gr.adj[b] = append(gr.adj[b], a)
	gr.edges = append(gr.edges, Edge{A: a, B: b})
}

// Len returns the number of nodes
func (gr *Graph) Len() int {
	return len(gr.nodes)
}

// EdgeCount returns the number of undirected edges
func (gr *Graph) EdgeCount() int {
	return len(gr.edges)
}

// Nodes returns the nodes in depth-first pre-order from Origin
func (gr *Graph) Nodes() []world.Coord {
	return slices.Clone(gr.nodes)
}

// Edges returns every edge in the order it was traversed
func (gr *Graph) Edges() []Edge {
	return slices.Clone(gr.edges)
}

// Contains reports whether c is a node of the graph
func (gr *Graph) Contains(c world.Coord) bool {
	_, ok := gr.adj[c]
	return ok
}

// Neighbors returns the nodes joined to c by an edge
func (gr *Graph) Neighbors(c world.Coord) []world.Coord {
	return slices.Clone(gr.adj[c])
}

// Degree returns the number of edges at c
func (gr *Graph) Degree(c world.Coord) int {
	return len(gr.adj[c])
}

// HasEdge reports whether a and b are joined
func (gr *Graph) HasEdge(a, b world.Coord) bool {
	return slices.Contains(gr.adj[a], b)
}

// DeadEnds returns the nodes of degree one in depth-first pre-order from Origin
func (gr *Graph) DeadEnds() []world.Coord {
	var ends []world.Coord
	for _, c := range gr.nodes {
		if gr.Degree(c) == 1 {
			ends = append(ends, c)
		}
	}
	return ends
}

// ShortestPath returns the cells of a shortest path from one node to another,
// both ends included, or nil when either is missing or they are disconnected.
func (gr *Graph) ShortestPath(from, to world.Coord) []world.Coord {
	if !gr.Contains(from) || !gr.Contains(to) {
		return nil
	}

	parent := map[world.Coord]world.Coord{from: from}
	frontier := queue.New[world.Coord]()
	frontier.Enqueue(from)

	for !frontier.Empty() {
		c := frontier.Dequeue()
		if c == to {
			break
		}
		for _, n := range gr.adj[c] {
			if _, seen := parent[n]; seen {
				continue
			}
			parent[n] = c
			frontier.Enqueue(n)
		}
	}

	if _, ok := parent[to]; !ok {
		return nil
	}
	path := []world.Coord{to}
	for c := to; c != from; {
		c = parent[c]
		path = append(path, c)
	}
	slices.Reverse(path)
	return path
}

// LongestPath compares the shortest paths between every pair of dead ends and
// returns the longest. Pairs are taken in dead-end order and the first path
// found wins ties. The result is empty when there are fewer than two dead ends.
func (gr *Graph) LongestPath() []world.Coord {
	ends := gr.DeadEnds()
	var longest []world.Coord
	for i := 0; i < len(ends); i++ {
		for j := i + 1; j < len(ends); j++ {
			if path := gr.ShortestPath(ends[i], ends[j]); len(path) > len(longest) {
				longest = path
			}
		}
	}
	return longest
}
