package game

// CollapseAbove closes the gap at cell by walking its column upward, copying
// each symbol one row down, until it reaches the top of the stack segment
// (an Empty cell or row 0). The vacated topmost cell of the segment is set
// to Empty. The walk is iterative, so call depth does not grow with board
// height.
//
// The returned slice holds exactly the cells whose stored symbol changed,
// ordered from the gap upward, so callers can re-check lower cells before
// upper ones when seeding new run detection.
//
// When a removal vacates several cells of one column, callers must collapse
// the topmost gap first (ascending row, the order DestructionSet.Cells
// provides); each later gap then sees an already compacted stack above it
// and the column ends fully compacted.
func CollapseAbove(g *Grid, cell Cell) []Cell {
	var changed []Cell
	cur := cell
	for {
		if cur.Row == 0 {
			g.put(cur, Empty)
			return changed
		}
		above := Cell{Col: cur.Col, Row: cur.Row - 1}
		if g.at(above) == Empty {
			g.put(cur, Empty)
			return changed
		}
		g.put(cur, g.at(above))
		changed = append(changed, cur)
		cur = above
	}
}
