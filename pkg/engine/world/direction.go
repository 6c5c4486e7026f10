package world

import "strings"

// Direction is a single direction flag
type Direction uint8

// Direction constants. Cardinals occupy the low nibble, corners the high nibble.
const (
	North Direction = 1 << iota
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

// Cardinals returns the four cardinal directions in N, E, S, W order
func Cardinals() [4]Direction {
	return [4]Direction{North, East, South, West}
}

// Corners returns the four corner directions in NE, SE, SW, NW order
func Corners() [4]Direction {
	return [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case NorthEast:
		return "NorthEast"
	case SouthEast:
		return "SouthEast"
	case SouthWest:
		return "SouthWest"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true if d is exactly one of the eight named directions
func (d Direction) IsValid() bool {
	return d != 0 && d&(d-1) == 0
}

// IsCardinal returns true for North, East, South and West
func (d Direction) IsCardinal() bool {
	return d.IsValid() && d <= West
}

// IsCorner returns true for the four diagonal directions
func (d Direction) IsCorner() bool {
	return d.IsValid() && d >= NorthEast
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	case SouthEast:
		return NorthWest
	case NorthWest:
		return SouthEast
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction. Y grows southwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	case NorthEast:
		return 1, -1
	case SouthEast:
		return 1, 1
	case SouthWest:
		return -1, 1
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}

// DirectionBits is a set of directions packed into one byte.
// Cardinal bits mark open passages; corner bits are derived annotations for tile art.
type DirectionBits uint8

const (
	cardinalMask DirectionBits = DirectionBits(North | East | South | West)
	cornerMask   DirectionBits = DirectionBits(NorthEast | SouthEast | SouthWest | NorthWest)
)

// Bits returns a set holding the given directions
func Bits(dirs ...Direction) DirectionBits {
	var b DirectionBits
	for _, d := range dirs {
		b = b.With(d)
	}
	return b
}

// Has reports whether d is set
func (b DirectionBits) Has(d Direction) bool {
	return b&DirectionBits(d) != 0
}

// With returns b with d set
func (b DirectionBits) With(d Direction) DirectionBits {
	return b | DirectionBits(d)
}

// Without returns b with d cleared
func (b DirectionBits) Without(d Direction) DirectionBits {
	return b &^ DirectionBits(d)
}

// IsEmpty reports whether no bit is set
func (b DirectionBits) IsEmpty() bool {
	return b == 0
}

// Cardinal returns only the cardinal bits
func (b DirectionBits) Cardinal() DirectionBits {
	return b & cardinalMask
}

// Corner returns only the corner bits
func (b DirectionBits) Corner() DirectionBits {
	return b & cornerMask
}

// Count returns the number of set bits
func (b DirectionBits) Count() int {
	n := 0
	for v := b; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Directions returns the set directions, cardinals first, in declaration order
func (b DirectionBits) Directions() []Direction {
	dirs := make([]Direction, 0, b.Count())
	for d := North; d != 0; d <<= 1 {
		if b.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// String renders the set as "North|East", or "None" when empty
func (b DirectionBits) String() string {
	if b.IsEmpty() {
		return "None"
	}
	names := make([]string, 0, b.Count())
	for _, d := range b.Directions() {
		names = append(names, d.String())
	}
	return strings.Join(names, "|")
}
