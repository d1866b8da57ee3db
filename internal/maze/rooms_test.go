package maze

import "testing"

func TestEmptyRoomHasNoNeighbors(t *testing.T) {
	list := NewRoom4List[int](1)
	r, _ := list.Get(list.PushDefault(0))
	for _, d := range []Direction4{North, South, East, West} {
		if r.Neighbor(d).Valid() {
			t.Errorf("empty room has %v neighbour", d)
		}
	}
	if r.Doors() != None || r.Walls() != All {
		t.Errorf("doors=%v walls=%v", r.Doors(), r.Walls())
	}
}

func TestPushNewLinksBothEnds(t *testing.T) {
	list := NewRoom4List[int](5)
	n := list.PushDefault(0)
	s := list.PushDefault(1)
	e := list.PushDefault(2)
	w := list.PushDefault(3)

	c := list.PushNew(42, func(r *Room4[int]) {
		r.SetNeighbor(North, n)
		r.SetNeighbor(South, s)
		r.SetNeighbor(East, e)
		r.SetNeighbor(West, w)
	})

	center, ok := list.Get(c)
	if !ok || center.Index() != c || center.Tag != 42 {
		t.Fatalf("center room lookup failed: %v %v", center, ok)
	}
	if center.Doors() != All || center.Walls() != None {
		t.Errorf("center doors=%v walls=%v", center.Doors(), center.Walls())
	}

	tests := []struct {
		index RoomIndex
		door  Door4
	}{
		{n, South},
		{s, North},
		{e, West},
		{w, East},
	}
	for _, tt := range tests {
		r, _ := list.Get(tt.index)
		if r.Doors() != tt.door {
			t.Errorf("room %v doors = %v, want %v", tt.index, r.Doors(), tt.door)
		}
		if r.Neighbor(tt.door) != c {
			t.Errorf("room %v links to %v, want %v", tt.index, r.Neighbor(tt.door), c)
		}
		if r.Walls() != tt.door.Not() {
			t.Errorf("room %v walls = %v", tt.index, r.Walls())
		}
	}
}

func TestLinkConflictPanics(t *testing.T) {
	list := NewRoom4List[string](3)
	a := list.PushDefault("a")
	b := list.PushDefault("b")
	c := list.PushDefault("c")
	list.Link(a, East, b)

	defer func() {
		if recover() == nil {
			t.Error("linking c into b's taken west side should panic")
		}
	}()
	list.Link(c, East, b)
}

func TestRoomListGet(t *testing.T) {
	list := NewRoom4List[string](2)
	a := list.PushDefault("a")
	b := list.PushDefault("b")
	if a == b {
		t.Fatal("handles should be distinct")
	}

	if r, ok := list.Get(a); !ok || r.Tag != "a" {
		t.Errorf("Get(a) = %v, %v", r, ok)
	}
	if list.At(1).Tag != "b" {
		t.Errorf("At(1).Tag = %q", list.At(1).Tag)
	}
	if _, ok := list.Get(IndexOf(2)); ok {
		t.Error("Get past the end should miss")
	}
	if _, ok := list.Get(NoRoom); ok {
		t.Error("Get(NoRoom) should miss")
	}
	if list.Len() != 2 || list.IsEmpty() {
		t.Errorf("Len=%d IsEmpty=%v", list.Len(), list.IsEmpty())
	}
}

func TestSetNeighborRejectsCombinedDirection(t *testing.T) {
	list := NewRoom4List[int](1)
	r, _ := list.Get(list.PushDefault(0))
	defer func() {
		if recover() == nil {
			t.Error("SetNeighbor with a combined direction should panic")
		}
	}()
	r.SetNeighbor(North.Join(South), NoRoom)
}

func TestRoomsFromGrid(t *testing.T) {
	g := NewWall4Grid(2, 2)
	g.RemoveWallBetween(NewCoord(0, 0), NewCoord(1, 0))
	g.RemoveWallBetween(NewCoord(1, 0), NewCoord(1, 1))

	rooms := RoomsFromGrid(g)
	if rooms.Len() != 4 {
		t.Fatalf("Len = %d", rooms.Len())
	}
	for i := 0; i < rooms.Len(); i++ {
		r := rooms.At(i)
		if got := g.DoorsAt(r.Tag); r.Doors() != got {
			t.Errorf("room at %v doors = %v, grid says %v", r.Tag, r.Doors(), got)
		}
	}
	topRight := rooms.At(1)
	if topRight.Tag != NewCoord(1, 0) {
		t.Errorf("room 1 tag = %v", topRight.Tag)
	}
	if topRight.Neighbor(West) != IndexOf(0) || topRight.Neighbor(South) != IndexOf(3) {
		t.Errorf("room 1 links W=%v S=%v", topRight.Neighbor(West), topRight.Neighbor(South))
	}
}
