// SPDX-License-Identifier: MIT

// Package noise implements seeded Perlin "improved" noise with seamless
// 2D and 3D tiling.
//
// A Perlin generator shuffles the reference 256-entry permutation with
// rng.Shuffle and duplicates it to 512 entries so corner hashing never
// wraps. Noise(x,y,z) is approximately in [-1,1] and is exactly 0 at integer
// lattice points.
//
// Tiling:
//
//   - Seamless(x,y,z,w,h) blends the four samples (x,y), (x−w,y), (x−w,y−h)
//     and (x,y−h) so the field repeats every w units in x and h units in y.
//   - Seamless2D samples a width×height pixel grid at 1/smoothness units per
//     pixel; the result tiles edge to edge.
//   - Seamless3D additionally cross-fades the z and z−t slices so animating
//     z loops with period t.
//
// Fields are flat row-major []float64 slices. A Perlin value is not safe
// for concurrent mutation, but all sampling methods only read the table.
package noise
