// SPDX-License-Identifier: MIT
// Package: lvmaze/rng

// Package rng provides the deterministic randomness shared by every lvmaze
// generator: a seeded 128-bit xorshift PRNG and a Fisher–Yates shuffle built
// on top of it.
//
// What:
//
//   - Xorshift: Marsaglia's xorshift128 over four 32-bit words. Next() yields a
//     uniformly distributed uint32; NextInt/NextFloat rescale it.
//   - Shuffle: in-place Durstenfeld permutation (descending pass, inclusive
//     bound) drawing indices from its own Xorshift stream.
//
// Determinism:
//
//   - Same seed and same call sequence ⇒ identical stream on every platform.
//   - With DefaultSeed the first Next() is 3701687786.
//
// Errors:
//
//   - ErrInvalidSeed: all four seed words are zero (the generator would be
//     stuck at zero forever).
//   - ErrBadSeedFormat: ParseSeed received malformed text.
//
// Concurrency:
//
//   - Xorshift and Shuffle are NOT goroutine-safe. Give each goroutine its own
//     instance.
//
// Complexity: Next O(1); Shuffle O(n) time, O(1) extra space.
package rng
