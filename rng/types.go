// SPDX-License-Identifier: MIT
// Package: lvmaze/rng
//
// types.go - sentinel errors, seed type and defaults.

package rng

import "errors"

// Sentinel errors for the rng package.
var (
	// ErrInvalidSeed indicates that all four seed words are zero.
	ErrInvalidSeed = errors.New("rng: seed must not be all zero")

	// ErrBadSeedFormat indicates that a textual seed could not be parsed.
	ErrBadSeedFormat = errors.New("rng: bad seed format")
)

// Seed is the 128-bit xorshift state expressed as four 32-bit words.
type Seed [4]uint32

// DefaultSeed is Marsaglia's reference seed.
var DefaultSeed = Seed{123456789, 362436069, 521288629, 88675123}

// maxUint32 is the divisor used by NextFloat to map Next() onto [0,1].
const maxUint32 = float64(0xFFFFFFFF)

// IsZero reports whether every word of s is zero.
func (s Seed) IsZero() bool {
	return s[0] == 0 && s[1] == 0 && s[2] == 0 && s[3] == 0
}
