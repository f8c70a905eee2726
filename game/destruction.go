package game

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// DestructionSet collects the cells removed in one resolution step. A cell
// can qualify through both a horizontal and a vertical run in the same
// check; the set deduplicates by CellId and remembers the symbol each cell
// held when it was added.
type DestructionSet struct {
	ids   *intmap.Map[CellId, Symbol]
	cells []Cell
}

// NewDestructionSet creates an empty set.
func NewDestructionSet() *DestructionSet {
	return &DestructionSet{
		ids: intmap.New[CellId, Symbol](16),
	}
}

// Add records c with the symbol it held. Adding a cell twice is a no-op.
func (d *DestructionSet) Add(c Cell, sym Symbol) {
	id := c.Id()
	if _, ok := d.ids.Get(id); ok {
		return
	}
	d.ids.Put(id, sym)
	d.cells = append(d.cells, c)
}

// Has reports whether c is in the set.
func (d *DestructionSet) Has(c Cell) bool {
	_, ok := d.ids.Get(c.Id())
	return ok
}

// Symbol returns the symbol c held when it was added.
func (d *DestructionSet) Symbol(c Cell) (Symbol, bool) {
	return d.ids.Get(c.Id())
}

// Len returns the number of distinct cells in the set.
func (d *DestructionSet) Len() int {
	return len(d.cells)
}

// Cells returns the destroyed cells sorted by column, then by ascending row
// within each column (topmost gap first). The order is part of the
// contract: CollapseAbove must close the topmost gap of a column before
// lower ones so that a multi-cell removal compacts the column fully, and a
// fixed order keeps cascade outcomes reproducible.
func (d *DestructionSet) Cells() []Cell {
	out := slices.Clone(d.cells)
	slices.SortFunc(out, func(a, b Cell) int {
		if a.Col != b.Col {
			return a.Col - b.Col
		}
		return a.Row - b.Row
	})
	return out
}
