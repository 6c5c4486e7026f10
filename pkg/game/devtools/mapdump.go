// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"haex/pkg/engine/world"
	"haex/pkg/game/generator"
	"haex/pkg/game/renderer"
	"haex/pkg/game/state"
	gameworld "haex/pkg/game/world"
)

// DumpOptions adds session details to a map dump. A nil Player omits the player.
type DumpOptions struct {
	Level   int
	Seed    int64
	Player  *world.Coord
	Enemies []world.Coord
}

// GameDumpOptions describes the current level of g. It reports false at the menu.
func GameDumpOptions(g *state.Game) (DumpOptions, bool) {
	lvl := g.Level()
	if lvl == nil {
		return DumpOptions{}, false
	}
	opts := DumpOptions{Level: lvl.Number, Seed: lvl.Seed}
	if c, ok := lvl.Player.Coord(lvl.Map); ok {
		opts.Player = &c
	}
	for _, e := range lvl.Enemies {
		pos := e.Position()
		if c, ok := lvl.Map.PixelToCoord(pos.X, pos.Y); ok {
			opts.Enemies = append(opts.Enemies, c)
		}
	}
	return opts, true
}

// overlay returns the symbol drawn over cell c in the path map, or 0 for none
func overlay(m *gameworld.NavigableMap, opts DumpOptions, onPath map[world.Coord]bool, c world.Coord) rune {
	start, _ := m.Start()
	exit, _ := m.Exit()
	if opts.Player != nil && *opts.Player == c {
		return '@'
	}
	for _, e := range opts.Enemies {
		if e == c {
			return 'X'
		}
	}
	switch {
	case len(onPath) > 0 && c == start:
		return 'S'
	case len(onPath) > 0 && c == exit:
		return 'E'
	case onPath[c]:
		return '*'
	}
	return 0
}

// writeMapGrid writes one map section; cell picks the text for each cell
func writeMapGrid(w io.Writer, m *gameworld.NavigableMap, cell func(c world.Coord, bits world.DirectionBits) string) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := world.C(x, y)
			fmt.Fprint(w, cell(c, m.Bits(c)))
		}
		fmt.Fprintln(w)
	}
}

// DumpMap writes a full debug dump of m: metadata, legend, the passage map,
// the path overlay, the revealed-only map, dead ends and per-cell tile classes.
// Format is human- and LLM-readable (sections, key: value, consistent structure).
func DumpMap(out io.Writer, m *gameworld.NavigableMap, opts DumpOptions) error {
	w := bufio.NewWriter(out)

	path := m.LongestPath()
	onPath := make(map[world.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	deadEnds := m.Graph().DeadEnds()

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (maze layout, routing) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "level: %d\n", opts.Level)
	fmt.Fprintf(w, "level_seed: %d\n", opts.Seed)
	fmt.Fprintf(w, "width: %d\n", m.Width())
	fmt.Fprintf(w, "height: %d\n", m.Height())
	fmt.Fprintln(w, "coordinate_system: x,y (0-based, x=horizontal, y=vertical, origin top left)")
	if start, ok := m.Start(); ok {
		exit, _ := m.Exit()
		fmt.Fprintf(w, "start: %d,%d\n", start.X, start.Y)
		fmt.Fprintf(w, "exit: %d,%d\n", exit.X, exit.Y)
	} else {
		fmt.Fprintln(w, "start: none")
		fmt.Fprintln(w, "exit: none")
	}
	fmt.Fprintf(w, "path_length: %d\n", len(path))
	fmt.Fprintf(w, "reachable_cells: %d\n", m.Graph().Len())
	fmt.Fprintf(w, "passages: %d\n", m.Graph().EdgeCount())
	fmt.Fprintf(w, "dead_ends: %d\n", len(deadEnds))
	if opts.Player != nil {
		fmt.Fprintf(w, "player: %d,%d\n", opts.Player.X, opts.Player.Y)
	}
	fmt.Fprintf(w, "enemies: %d\n", len(opts.Enemies))
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, "box drawing = open passages  S = start  E = exit  * = path  @ = player  X = enemy  # = unrevealed")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (passages) ---")
	writeMapGrid(w, m, func(_ world.Coord, bits world.DirectionBits) string {
		return renderer.TileGlyph(bits)
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (path and entities) ---")
	writeMapGrid(w, m, func(c world.Coord, _ world.DirectionBits) string {
		if r := overlay(m, opts, onPath, c); r != 0 {
			return string(r)
		}
		return "."
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (revealed cells only; unrevealed = #) ---")
	writeMapGrid(w, m, func(c world.Coord, bits world.DirectionBits) string {
		if !m.Seen(c) {
			return "#"
		}
		return renderer.TileGlyph(bits)
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Dead ends (depth-first order from 0,0) ---")
	for _, c := range deadEnds {
		fmt.Fprintf(w, "  %d,%d\n", c.X, c.Y)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Tiles (x,y class bits asset) ---")
	m.Grid().ForEachCell(func(c world.Coord, bits world.DirectionBits) {
		class := generator.ClassOf(bits)
		fmt.Fprintf(w, "  %d,%d class: %d bits: %s asset: %s\n", c.X, c.Y, class.ID, bits, class.Asset)
	})

	return w.Flush()
}

// DumpMapToFile writes DumpMap output to path and returns its absolute path.
func DumpMapToFile(path string, m *gameworld.NavigableMap, opts DumpOptions) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, m, opts); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
