// Package builder produces deterministic graph fixtures for tests, examples
// and benchmarks of the search package.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the Xorshift source, ID scheme and weight function.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant core.DefaultCost.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integer in [min,max].
//   - Topologies: Path, Cycle, Grid (lattice with core.Point payloads) and
//     RandomSparse (Erdős–Rényi).
//
// All randomness flows through rng.Xorshift, so a fixture built with
// WithSeed(s) is identical on every platform.
package builder
