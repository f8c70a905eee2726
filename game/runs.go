package game

// DetectRuns returns the maximal horizontal and vertical runs of letter
// through origin. Each run is an ordered, contiguous span of cells holding
// letter and includes origin, so a run has length >= 1 even with no matching
// neighbors. An Empty letter yields no runs at all, which guards seed checks
// against probing cells that a removal just vacated.
func DetectRuns(g *Grid, origin Cell, letter Symbol) (horizontal, vertical []Cell) {
	if letter == Empty || !g.InBounds(origin) {
		return nil, nil
	}

	left := origin.Col
	for left > 0 && g.at(Cell{Col: left - 1, Row: origin.Row}) == letter {
		left--
	}
	right := origin.Col
	for right < g.width-1 && g.at(Cell{Col: right + 1, Row: origin.Row}) == letter {
		right++
	}
	for col := left; col <= right; col++ {
		horizontal = append(horizontal, Cell{Col: col, Row: origin.Row})
	}

	top := origin.Row
	for top > 0 && g.at(Cell{Col: origin.Col, Row: top - 1}) == letter {
		top--
	}
	bottom := origin.Row
	for bottom < g.height-1 && g.at(Cell{Col: origin.Col, Row: bottom + 1}) == letter {
		bottom++
	}
	for row := top; row <= bottom; row++ {
		vertical = append(vertical, Cell{Col: origin.Col, Row: row})
	}

	return horizontal, vertical
}

// Destructions collects the cells of qualifying runs through origin into a
// deduplicated DestructionSet. A run qualifies when its length is at least
// threshold; the rule is the same for both axes. A non-qualifying run
// contributes no cells, so a nil-result check is Len() == 0.
func Destructions(g *Grid, origin Cell, letter Symbol, threshold int) *DestructionSet {
	set := NewDestructionSet()
	horizontal, vertical := DetectRuns(g, origin, letter)
	if len(horizontal) >= threshold {
		for _, c := range horizontal {
			set.Add(c, letter)
		}
	}
	if len(vertical) >= threshold {
		for _, c := range vertical {
			set.Add(c, letter)
		}
	}
	return set
}
