// SPDX-License-Identifier: MIT
// Package: lvmaze/rng
//
// shuffle.go - Fisher–Yates (Durstenfeld) permutation on top of Xorshift.
//
// The pass order is fixed: i runs from len-1 down to 1 and j is drawn with
// NextInt(0, i). Changing either breaks seed reproducibility of every maze
// and noise table built on it.

package rng

// Shuffle permutes slices in place with its own Xorshift stream.
type Shuffle struct {
	random *Xorshift
}

// NewShuffle returns a Shuffle seeded with s.
// Returns ErrInvalidSeed if every word of s is zero.
func NewShuffle(s Seed) (*Shuffle, error) {
	r, err := New(s)
	if err != nil {
		return nil, err
	}

	return &Shuffle{random: r}, nil
}

// NewShuffleFrom wraps an existing generator. The Shuffle consumes r's
// stream, so r must not be shared with other consumers that expect their
// own sequence.
func NewShuffleFrom(r *Xorshift) *Shuffle {
	return &Shuffle{random: r}
}

// Source returns the underlying generator.
func (s *Shuffle) Source() *Xorshift { return s.random }

// Permute shuffles a in place and returns it for chaining.
// Complexity: O(len(a)).
func Permute[T any](s *Shuffle, a []T) []T {
	for i := len(a) - 1; i > 0; i-- {
		j := s.random.NextInt(0, i)
		a[i], a[j] = a[j], a[i]
	}

	return a
}

// Ints returns a shuffled permutation of 0..n-1. n <= 0 yields an empty slice.
func (s *Shuffle) Ints(n int) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return Permute(s, out)
}
