// Package maze provides the grid data model for perfect mazes: direction sets,
// grid coordinates, the visitation map used during generation, the wall grid
// and a room graph built from it.
package maze

import (
	"fmt"
	"iter"
	"strings"
)

// Direction4 is a set of 4-connected (Von Neumann) directions packed into the
// low four bits of a byte.
type Direction4 uint8

const (
	// North is the up direction.
	North Direction4 = 0b0001
	// South is the down direction.
	South Direction4 = 0b0010
	// East is the right direction.
	East Direction4 = 0b0100
	// West is the left direction.
	West Direction4 = 0b1000
	// All contains every direction.
	All Direction4 = 0b1111
	// None contains no direction.
	None Direction4 = 0b0000

	directionMask = All
)

// Wall4 encodes the walls of a four-sided cell.
type Wall4 = Direction4

// Door4 encodes the doors (open passages) of a four-sided cell.
// For any cell, its doors are the complement of its walls.
type Door4 = Direction4

// canonical lists the trivial directions in enumeration order.
var canonical = [4]Direction4{North, South, East, West}

// Join returns the union of d and other.
func (d Direction4) Join(other Direction4) Direction4 {
	return (d | other) & directionMask
}

// Without returns d with every direction in other removed.
func (d Direction4) Without(other Direction4) Direction4 {
	return d &^ other & directionMask
}

// Not returns the complement of d within the four directions.
func (d Direction4) Not() Direction4 {
	return ^d & directionMask
}

// Contains reports whether every direction in other is also in d.
func (d Direction4) Contains(other Direction4) bool {
	return d&other == other
}

// IsAll reports whether d contains all four directions.
func (d Direction4) IsAll() bool {
	return d == All
}

// IsNone reports whether d contains no direction.
func (d Direction4) IsNone() bool {
	return d == None
}

// IsTrivial reports whether d is exactly one of North, South, East or West.
func (d Direction4) IsTrivial() bool {
	switch d {
	case North, South, East, West:
		return true
	default:
		return false
	}
}

// Include adds other to d in place and returns d for chaining.
func (d *Direction4) Include(other Direction4) *Direction4 {
	*d = d.Join(other)
	return d
}

// Remove removes other from d in place and returns d for chaining.
func (d *Direction4) Remove(other Direction4) *Direction4 {
	*d = d.Without(other)
	return d
}

// Opposite returns the direction facing d. It panics if d is not trivial.
func (d Direction4) Opposite() Direction4 {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		panic(fmt.Sprintf("maze: opposite of non-trivial direction %v", d))
	}
}

// Bits returns the raw four-bit value of d.
func (d Direction4) Bits() uint8 {
	return uint8(d & directionMask)
}

// Each yields each trivial direction contained in d in the order
// North, South, East, West. The sequence can be ranged over repeatedly.
func (d Direction4) Each() iter.Seq[Direction4] {
	return func(yield func(Direction4) bool) {
		for _, c := range canonical {
			if d.Contains(c) && !yield(c) {
				return
			}
		}
	}
}

// Slice returns the trivial directions contained in d in enumeration order.
func (d Direction4) Slice() []Direction4 {
	out := make([]Direction4, 0, 4)
	for c := range d.Each() {
		out = append(out, c)
	}
	return out
}

// String renders d as its bit pattern followed by the contained directions,
// e.g. "0b0101 (NE)".
func (d Direction4) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "0b%04b ", d.Bits())
	if d.IsNone() {
		b.WriteString("(none)")
		return b.String()
	}
	b.WriteByte('(')
	for c := range d.Each() {
		b.WriteByte("NSEW"[directionOrdinal(c)])
	}
	b.WriteByte(')')
	return b.String()
}

func directionOrdinal(d Direction4) int {
	switch d {
	case North:
		return 0
	case South:
		return 1
	case East:
		return 2
	default:
		return 3
	}
}
