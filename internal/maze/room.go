package maze

import "fmt"

// RoomIndex is a stable handle to a room in a Room4List. The zero value
// refers to no room.
type RoomIndex int

// NoRoom is the absent room handle.
const NoRoom RoomIndex = 0

// IndexOf returns the handle for the i-th room pushed into a list.
func IndexOf(i int) RoomIndex {
	return RoomIndex(i + 1)
}

// Valid reports whether r refers to a room.
func (r RoomIndex) Valid() bool {
	return r > NoRoom
}

func (r RoomIndex) offset() int {
	return int(r) - 1
}

func (r RoomIndex) String() string {
	if !r.Valid() {
		return "none"
	}
	return fmt.Sprintf("%d", r.offset())
}

// Room4 is a four-sided room linked to its neighbours by handle.
type Room4[T any] struct {
	index RoomIndex
	north RoomIndex
	south RoomIndex
	east  RoomIndex
	west  RoomIndex
	Tag   T
}

// Index returns the room's own handle.
func (r *Room4[T]) Index() RoomIndex { return r.index }

// Neighbor returns the room behind the door in direction d, or NoRoom.
// It panics when d is not a single direction.
func (r *Room4[T]) Neighbor(d Direction4) RoomIndex {
	return *r.slot(d)
}

// SetNeighbor links direction d of this room to other without touching other.
// Use Room4List.Link to keep both ends consistent.
func (r *Room4[T]) SetNeighbor(d Direction4, other RoomIndex) {
	*r.slot(d) = other
}

// HasNeighbors reports whether the room has any door.
func (r *Room4[T]) HasNeighbors() bool {
	return !r.Doors().IsNone()
}

// Doors returns the directions that lead to a neighbour.
func (r *Room4[T]) Doors() Door4 {
	doors := None
	for _, d := range canonical {
		if r.Neighbor(d).Valid() {
			doors.Include(d)
		}
	}
	return doors
}

// Walls returns the directions without a neighbour.
func (r *Room4[T]) Walls() Wall4 {
	return r.Doors().Not()
}

func (r *Room4[T]) slot(d Direction4) *RoomIndex {
	switch d {
	case North:
		return &r.north
	case South:
		return &r.south
	case East:
		return &r.east
	case West:
		return &r.west
	default:
		panic(fmt.Sprintf("maze: must specify a trivial direction, got %v", d))
	}
}
