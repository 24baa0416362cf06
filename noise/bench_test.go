// SPDX-License-Identifier: MIT
package noise_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/noise"
	"github.com/katalvlaran/lvmaze/rng"
)

func BenchmarkNoise(b *testing.B) {
	n, _ := noise.New(rng.DefaultSeed)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = n.Noise(float64(i)*0.01, 1.3, 0.7)
	}
}

func BenchmarkSeamless2D_64(b *testing.B) {
	n, _ := noise.New(rng.DefaultSeed)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = n.Seamless2D(64, 64, 16, 0.5)
	}
}
