package game

import (
	crand "crypto/rand"
	"math/rand/v2"
	"slices"
)

// IntNSource is the part of a random number generator the letter source
// needs. Generators from math/rand/v2 satisfy it.
type IntNSource interface {
	IntN(int) int
}

// LetterSource produces the next letter to drop. The session calls Next
// exactly once per successful drop and treats the policy behind it as
// opaque.
type LetterSource interface {
	Next() Symbol
}

// RandomSource draws letters uniformly from a fixed alphabet.
type RandomSource struct {
	rand     IntNSource
	alphabet []Symbol
}

// NewRandomSource creates a RandomSource over alphabet, seeded from
// crypto/rand. An empty alphabet means DefaultAlphabet.
func NewRandomSource(alphabet []Symbol) *RandomSource {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return NewRandomSourceFrom(rand.New(rand.NewChaCha8(seed)), alphabet)
}

// NewRandomSourceFrom is NewRandomSource with an injected generator, letting
// tests and tools replay a deterministic letter stream.
func NewRandomSourceFrom(r IntNSource, alphabet []Symbol) *RandomSource {
	if len(alphabet) == 0 {
		alphabet = DefaultAlphabet
	}
	return &RandomSource{
		rand:     r,
		alphabet: slices.Clone(alphabet),
	}
}

// Next returns a uniformly drawn letter.
func (s *RandomSource) Next() Symbol {
	return s.alphabet[s.rand.IntN(len(s.alphabet))]
}
