package maze

import "fmt"

// Room4List is an arena of rooms addressed by RoomIndex. Links between rooms
// are always kept symmetric: if A's north neighbour is B, then B's south
// neighbour is A.
type Room4List[T any] struct {
	rooms []Room4[T]
}

// NewRoom4List creates an empty list with room for capacity rooms.
func NewRoom4List[T any](capacity int) *Room4List[T] {
	return &Room4List[T]{rooms: make([]Room4[T], 0, capacity)}
}

// PushDefault adds an unlinked room and returns its handle.
func (l *Room4List[T]) PushDefault(tag T) RoomIndex {
	return l.PushNew(tag, nil)
}

// PushNew adds a room, lets configure set its neighbours, and propagates the
// reverse links into those neighbours. configure may be nil.
func (l *Room4List[T]) PushNew(tag T, configure func(*Room4[T])) RoomIndex {
	index := IndexOf(len(l.rooms))
	room := Room4[T]{index: index, Tag: tag}
	if configure != nil {
		configure(&room)
	}
	l.rooms = append(l.rooms, room)

	if room.HasNeighbors() {
		l.propagate(index)
	}
	return index
}

// Link connects a to b through direction d of a (and the opposite direction of b).
func (l *Room4List[T]) Link(a RoomIndex, d Direction4, b RoomIndex) {
	room := l.mustGet(a)
	if existing := room.Neighbor(d); existing.Valid() && existing != b {
		panic(fmt.Sprintf("maze: cannot link %v of room %v to %v, already linked to %v", d, a, b, existing))
	}
	room.SetNeighbor(d, b)
	l.propagate(a)
}

// Len returns the number of rooms.
func (l *Room4List[T]) Len() int {
	return len(l.rooms)
}

// IsEmpty reports whether the list has no rooms.
func (l *Room4List[T]) IsEmpty() bool {
	return len(l.rooms) == 0
}

// Get returns the room for index, or false when index is unknown.
func (l *Room4List[T]) Get(index RoomIndex) (*Room4[T], bool) {
	if !index.Valid() || index.offset() >= len(l.rooms) {
		return nil, false
	}
	return &l.rooms[index.offset()], true
}

// At returns the i-th room in insertion order. It panics when i is out of range.
func (l *Room4List[T]) At(i int) *Room4[T] {
	return &l.rooms[i]
}

func (l *Room4List[T]) mustGet(index RoomIndex) *Room4[T] {
	room, ok := l.Get(index)
	if !ok {
		panic(fmt.Sprintf("maze: unknown room %v", index))
	}
	return room
}

// propagate writes the reverse link into every neighbour of the room at index.
// A neighbour already linked back to a different room is a caller bug.
func (l *Room4List[T]) propagate(index RoomIndex) {
	room := l.mustGet(index)
	for _, d := range canonical {
		other := room.Neighbor(d)
		if !other.Valid() {
			continue
		}
		neighbor := l.mustGet(other)
		back := d.Opposite()
		existing := neighbor.Neighbor(back)
		if existing.Valid() && existing != index {
			panic(fmt.Sprintf("maze: cannot link %v of room %v to %v, already linked to %v",
				back, other, index, existing))
		}
		neighbor.SetNeighbor(back, index)
	}
}

// RoomsFromGrid builds a room graph from a finished grid. Room i corresponds to
// the cell with row-major index i and is tagged with its coordinate; rooms are
// linked for every open passage.
func RoomsFromGrid(g *Wall4Grid) *Room4List[GridCoord2D] {
	list := NewRoom4List[GridCoord2D](g.Width() * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			list.PushDefault(NewCoord(x, y))
		}
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := NewCoord(x, y)
			doors := g.DoorsAt(c)
			here := IndexOf(Linearize(g, c))
			if x+1 < g.Width() && doors.Contains(East) {
				list.Link(here, East, IndexOf(Linearize(g, NewCoord(x+1, y))))
			}
			if y+1 < g.Height() && doors.Contains(South) {
				list.Link(here, South, IndexOf(Linearize(g, NewCoord(x, y+1))))
			}
		}
	}
	return list
}
