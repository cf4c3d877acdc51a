package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/dynvec/internal/kernel"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// Uniform returns n values in range [-1, 1).
func (r *RNG) Uniform(n int) []float64 {
	xs := make([]float64, n)
	r.FillUniformRange(xs, -1, 1)
	return xs
}

// Gaussian returns n values from a normal distribution with the given
// standard deviation.
func (r *RNG) Gaussian(n int, stddev float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = r.rand.NormFloat64() * stddev
	}
	return xs
}

// UnitVector returns an L2-normalized random vector. Gaussian components
// make the direction uniform on the sphere.
func (r *RNG) UnitVector(n int) []float64 {
	xs := r.Gaussian(n, 1)

	norm := math.Sqrt(kernel.Dot(xs, xs))
	if norm == 0 {
		norm = 1
	}
	kernel.Scale(xs, xs, 1/norm)
	return xs
}

// ============================================================================
// Adversarial Generators
// ============================================================================

var specials = []float64{
	math.NaN(),
	math.Inf(1),
	math.Inf(-1),
	0,
	math.Copysign(0, -1),
	math.SmallestNonzeroFloat64,
	math.MaxFloat64,
}

// WithSpecials returns n Gaussian values where each slot is replaced by a
// special value (NaN, ±Inf, ±0, extremes) with probability rate.
func (r *RNG) WithSpecials(n int, rate float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	xs := make([]float64, n)
	for i := range xs {
		if r.rand.Float64() < rate {
			xs[i] = specials[r.rand.Intn(len(specials))]
			continue
		}
		xs[i] = r.rand.NormFloat64() * 1e9
	}
	return xs
}

// CancellingSeries returns [big, 1 × ones, -big]. Its exact sum is ones,
// while naive left-to-right summation loses every 1 once big ≥ 2^53.
func CancellingSeries(big float64, ones int) []float64 {
	xs := make([]float64, 0, ones+2)
	xs = append(xs, big)
	for range ones {
		xs = append(xs, 1)
	}
	return append(xs, -big)
}

// NaiveSum is the uncompensated left-to-right sum, the reference that
// compensated results are compared against.
func NaiveSum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

// NaiveDot is the uncompensated dot product.
func NaiveDot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
