package game

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// Resolver runs the destroy -> gravity -> re-check loop to a fixed point.
// Depth counts cascade levels starting at 1 for the seed check and is the
// score multiplier for destructions at that level.
type Resolver struct {
	// Threshold is the minimum run length that qualifies for destruction,
	// applied identically to horizontal and vertical runs.
	Threshold int
}

// Outcome summarizes one full cascade resolution.
type Outcome struct {
	// Destroyed is the total number of cells removed across all levels.
	Destroyed int
	// Score is the accumulated delta: 10 * |set| * depth per destruction.
	Score int
	// Depth is the deepest level at which a destruction happened, or 0 if
	// the seed produced no qualifying run.
	Depth int
}

// Resolve checks seed for qualifying runs of letter, removes them, collapses
// the affected columns and re-checks every cell disturbed by gravity,
// level by level, until a level produces no destruction. Only cells touched
// by the cascade are re-checked; the rest of the board is never rescanned.
//
// Resolve mutates g. An Empty letter or out-of-bounds seed resolves to a
// zero Outcome with no mutation. Termination is guaranteed: a level either
// removes symbols from the finite board or ends the loop.
func (r *Resolver) Resolve(g *Grid, seed Cell, letter Symbol) Outcome {
	var out Outcome
	if letter == Empty || !g.InBounds(seed) {
		return out
	}

	level := []Cell{seed}
	for depth := 1; len(level) > 0; depth++ {
		var changed []Cell
		for _, candidate := range level {
			sym := g.at(candidate)
			if sym == Empty {
				// Vacated by an earlier destruction at this level.
				continue
			}
			set := Destructions(g, candidate, sym, r.Threshold)
			if set.Len() == 0 {
				continue
			}

			out.Score += 10 * set.Len() * depth
			out.Destroyed += set.Len()
			out.Depth = depth

			cells := set.Cells()
			for _, c := range cells {
				g.put(c, Empty)
			}
			// Topmost gap of each column first, per the CollapseAbove
			// contract; Cells already orders that way.
			for _, c := range cells {
				changed = append(changed, CollapseAbove(g, c)...)
			}
		}
		level = nextLevel(changed)
	}
	return out
}

// nextLevel deduplicates the cells disturbed by gravity and orders them by
// column, bottom-to-top within each column, so new runs are seeded the same
// way on every resolution.
func nextLevel(changed []Cell) []Cell {
	if len(changed) == 0 {
		return nil
	}
	seen := intmap.New[CellId, struct{}](len(changed))
	out := make([]Cell, 0, len(changed))
	for _, c := range changed {
		id := c.Id()
		if _, ok := seen.Get(id); ok {
			continue
		}
		seen.Put(id, struct{}{})
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Cell) int {
		if a.Col != b.Col {
			return a.Col - b.Col
		}
		return b.Row - a.Row
	})
	return out
}
