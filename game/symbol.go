package game

// Symbol is the content of a single grid cell: one letter from the session's
// alphabet, or Empty.
type Symbol byte

// Empty marks a vacant cell.
const Empty Symbol = 0

// DefaultAlphabet is the letter set used when a session is configured
// without one.
var DefaultAlphabet = []Symbol{'A', 'B', 'C'}

func (s Symbol) String() string {
	if s == Empty {
		return "_"
	}
	return string(rune(s))
}
