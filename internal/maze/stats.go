package maze

// Stats summarizes the layout of a maze.
type Stats struct {
	Cells     int // total cells
	Passages  int // open passages between neighbouring cells
	DeadEnds  int // cells with exactly one door
	Corridors int // cells with exactly two doors
	Junctions int // cells with three or more doors
	Isolated  int // cells with no door
	Reachable int // cells reachable from the start cell
}

// Analyze computes layout statistics for g.
func Analyze(g *Wall4Grid) Stats {
	rooms := RoomsFromGrid(g)
	s := Stats{
		Cells:    rooms.Len(),
		Passages: g.Passages(),
	}

	for i := 0; i < rooms.Len(); i++ {
		switch len(rooms.At(i).Doors().Slice()) {
		case 0:
			s.Isolated++
		case 1:
			s.DeadEnds++
		case 2:
			s.Corridors++
		default:
			s.Junctions++
		}
	}

	s.Reachable = Reachable(g, GridCoord2D{}).Size()
	return s
}
