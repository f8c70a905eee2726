// Package game implements the core of a falling-letter match-elimination
// puzzle: letters drop into columns of a grid, runs of identical letters at
// or above a threshold length are removed, cells above a removal fall to
// close the gap, and falling may trigger further runs in a scored cascade.
package game

import "fmt"

// Cell addresses a single grid position. Row 0 is the top of the board and
// row height-1 is the bottom: a dropped letter comes to rest on the
// highest-numbered empty row of its column. Run detection and gravity both
// depend on this orientation.
type Cell struct {
	Col int
	Row int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Id returns the cell's packed integer key.
func (c Cell) Id() CellId {
	return NewCellId(c.Col, c.Row)
}

// CellId encodes a cell's column (upper 32 bits) and row (lower 32 bits)
// into a single integer, usable as a key in int-keyed maps.
type CellId uint64

// NewCellId creates a CellId from a column and row.
func NewCellId(col, row int) CellId {
	return CellId(uint64(uint32(col))<<32 | uint64(uint32(row)))
}

// Col extracts the column from the id.
func (id CellId) Col() int {
	return int(uint32(id >> 32))
}

// Row extracts the row from the id.
func (id CellId) Row() int {
	return int(uint32(id))
}

// Cell unpacks the id back into a Cell.
func (id CellId) Cell() Cell {
	return Cell{Col: id.Col(), Row: id.Row()}
}

// Grid is the board storage: a total mapping from every in-bounds cell to a
// Symbol. Width and height are fixed at construction; a grid is mutated in
// place for the lifetime of its session and never resized.
type Grid struct {
	width  int
	height int
	cells  []Symbol
}

// NewGrid creates a fully Empty grid. Width and height must be >= 1.
func NewGrid(width, height int) *Grid {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("game: invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Symbol, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies inside [0,width) x [0,height).
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

// Get returns the symbol stored at c, or ErrOutOfBounds.
func (g *Grid) Get(c Cell) (Symbol, error) {
	if !g.InBounds(c) {
		return Empty, fmt.Errorf("get %v: %w", c, ErrOutOfBounds)
	}
	return g.at(c), nil
}

// Set stores sym at c, overwriting unconditionally, or returns
// ErrOutOfBounds.
func (g *Grid) Set(c Cell, sym Symbol) error {
	if !g.InBounds(c) {
		return fmt.Errorf("set %v: %w", c, ErrOutOfBounds)
	}
	g.put(c, sym)
	return nil
}

// IsEmpty reports whether c holds Empty. Out-of-bounds cells report false.
func (g *Grid) IsEmpty(c Cell) bool {
	return g.InBounds(c) && g.at(c) == Empty
}

// Snapshot returns a row-major copy of the grid contents, indexed
// [row][col], for renderers. Mutating the copy does not affect the grid.
func (g *Grid) Snapshot() [][]Symbol {
	rows := make([][]Symbol, g.height)
	for r := range rows {
		rows[r] = make([]Symbol, g.width)
		copy(rows[r], g.cells[r*g.width:(r+1)*g.width])
	}
	return rows
}

// at and put skip bounds checks; callers inside the engine validate bounds
// before producing cells.
func (g *Grid) at(c Cell) Symbol {
	return g.cells[c.Row*g.width+c.Col]
}

func (g *Grid) put(c Cell, sym Symbol) {
	g.cells[c.Row*g.width+c.Col] = sym
}
