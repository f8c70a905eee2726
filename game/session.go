package game

import "fmt"

// Board and rule defaults, matching the original game.
const (
	DefaultWidth          = 20
	DefaultHeight         = 10
	DefaultMatchThreshold = 3
)

// Config configures a new Session. Zero values fall back to the defaults
// above; a nil Letters gets a crypto-seeded RandomSource over
// DefaultAlphabet.
type Config struct {
	Width          int
	Height         int
	MatchThreshold int
	Letters        LetterSource
}

// Session owns one game: the grid, cursor, current letter, turn counter and
// score. It is a single-writer value with no internal locking; a
// multi-threaded driver must serialize all calls.
type Session struct {
	grid     *Grid
	resolver Resolver
	letters  LetterSource
	cursor   int
	current  Symbol
	turn     int
	score    int
}

// NewSession creates a session with a fully Empty grid, the cursor at the
// middle column, and the first letter already drawn from the source.
func NewSession(cfg Config) *Session {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.MatchThreshold < 2 {
		cfg.MatchThreshold = DefaultMatchThreshold
	}
	if cfg.Letters == nil {
		cfg.Letters = NewRandomSource(nil)
	}
	s := &Session{
		grid:     NewGrid(cfg.Width, cfg.Height),
		resolver: Resolver{Threshold: cfg.MatchThreshold},
		letters:  cfg.Letters,
		cursor:   cfg.Width / 2,
	}
	s.current = s.letters.Next()
	return s
}

// DropResult reports the outcome of a single drop.
type DropResult struct {
	// Placed is false when the target column was full; nothing changed and
	// the current letter is retained. This is a normal outcome, not an
	// error.
	Placed     bool
	Landing    Cell
	Destroyed  int
	ScoreDelta int
	// Depth is the deepest cascade level that destroyed cells, 0 when the
	// drop triggered nothing.
	Depth int
}

// Drop places the current letter in the lowest empty row of column, resolves
// the resulting cascade to a fixed point, and advances the turn. A full
// column declines silently with Placed false. An out-of-range column is
// rejected with ErrInvalidColumn and no mutation.
func (s *Session) Drop(column int) (DropResult, error) {
	if column < 0 || column >= s.grid.Width() {
		return DropResult{}, fmt.Errorf("drop at column %d: %w", column, ErrInvalidColumn)
	}

	landing := Cell{Col: column, Row: -1}
	for row := s.grid.Height() - 1; row >= 0; row-- {
		if s.grid.at(Cell{Col: column, Row: row}) == Empty {
			landing.Row = row
			break
		}
	}
	if landing.Row < 0 {
		return DropResult{Placed: false}, nil
	}

	letter := s.current
	s.grid.put(landing, letter)
	out := s.resolver.Resolve(s.grid, landing, letter)

	s.score += out.Score
	s.turn++
	s.current = s.letters.Next()

	return DropResult{
		Placed:     true,
		Landing:    landing,
		Destroyed:  out.Destroyed,
		ScoreDelta: out.Score,
		Depth:      out.Depth,
	}, nil
}

// MoveLeft moves the cursor one column left; at column 0 it stays put.
func (s *Session) MoveLeft() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveRight moves the cursor one column right; at the last column it stays
// put.
func (s *Session) MoveRight() {
	if s.cursor < s.grid.Width()-1 {
		s.cursor++
	}
}

// Cursor returns the cursor column.
func (s *Session) Cursor() int { return s.cursor }

// CurrentLetter returns the letter the next drop will place.
func (s *Session) CurrentLetter() Symbol { return s.current }

// Turn returns the number of successful drops so far.
func (s *Session) Turn() int { return s.turn }

// Score returns the accumulated score. It never decreases.
func (s *Session) Score() int { return s.score }

// Width returns the board width.
func (s *Session) Width() int { return s.grid.Width() }

// Height returns the board height.
func (s *Session) Height() int { return s.grid.Height() }

// Snapshot returns a copy of the board for rendering, indexed [row][col].
func (s *Session) Snapshot() [][]Symbol {
	return s.grid.Snapshot()
}

// Grid exposes the live board. Tests and tools may pre-seed it; frontends
// should prefer Snapshot.
func (s *Session) Grid() *Grid { return s.grid }
