package game

import "errors"

var (
	// ErrOutOfBounds reports an access outside the grid extents. The engine
	// never produces out-of-range cells itself, so reaching this from inside
	// a resolution indicates a caller bug.
	ErrOutOfBounds = errors.New("cell out of bounds")

	// ErrInvalidColumn reports a drop target outside [0, width).
	ErrInvalidColumn = errors.New("invalid column")
)
