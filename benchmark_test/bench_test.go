package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/dynvec"
	"github.com/hupe1980/dynvec/internal/kernel"
	"github.com/hupe1980/dynvec/testutil"
)

var sizes = []int{16, 1024, 65536}

var backends = []kernel.Backend{kernel.Generic, kernel.Unrolled, kernel.Gonum}

func mustFromSlice(b *testing.B, values []float64) *dynvec.Vector {
	b.Helper()
	v, err := dynvec.FromSlice(values)
	if err != nil {
		b.Fatal(err)
	}
	return v
}

// withBackends runs fn once per kernel backend and restores the original.
func withBackends(b *testing.B, fn func(b *testing.B)) {
	orig := kernel.Active()
	defer kernel.Use(orig)

	for _, be := range backends {
		b.Run(be.String(), func(b *testing.B) {
			kernel.Use(be)
			fn(b)
		})
	}
}

// BenchmarkAppend compares amortized growth against a single up-front Reserve.
func BenchmarkAppend(b *testing.B) {
	for _, n := range sizes {
		b.Run(fmt.Sprintf("grow/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				v, _ := dynvec.New(0)
				for i := range n {
					_ = v.Append(float64(i))
				}
			}
		})

		b.Run(fmt.Sprintf("reserve/n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				v, _ := dynvec.New(0)
				_ = v.Reserve(n)
				for i := range n {
					_ = v.Append(float64(i))
				}
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	rng := testutil.NewRNG(4711)

	withBackends(b, func(b *testing.B) {
		for _, n := range sizes {
			x := mustFromSlice(b, rng.Gaussian(n, 1))
			y := mustFromSlice(b, rng.Gaussian(n, 1))

			b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
				b.SetBytes(int64(2 * n * dynvec.ElementSize))
				for b.Loop() {
					_, _ = dynvec.Dot(x, y)
				}
			})
		}
	})
}

func BenchmarkAdd(b *testing.B) {
	rng := testutil.NewRNG(4711)

	withBackends(b, func(b *testing.B) {
		for _, n := range sizes {
			x := mustFromSlice(b, rng.Gaussian(n, 1))
			y := mustFromSlice(b, rng.Gaussian(n, 1))

			b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
				b.SetBytes(int64(3 * n * dynvec.ElementSize))
				for b.Loop() {
					_ = dynvec.Add(x, y, x)
				}
			})
		}
	})
}

func BenchmarkLerp(b *testing.B) {
	rng := testutil.NewRNG(4711)
	x := mustFromSlice(b, rng.Gaussian(1024, 1))
	y := mustFromSlice(b, rng.Gaussian(1024, 1))
	r, _ := dynvec.New(1024)

	for b.Loop() {
		_ = dynvec.Lerp(x, y, 0.25, r)
	}
}

func BenchmarkNormalize(b *testing.B) {
	rng := testutil.NewRNG(4711)
	v := mustFromSlice(b, rng.Gaussian(1024, 1))

	for b.Loop() {
		_ = v.Normalize()
	}
}
