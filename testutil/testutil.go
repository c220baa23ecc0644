package testutil

import (
	"math/rand"
	"slices"
	"sync"
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
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
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

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float32, minVal, maxVal float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float32()*span
	}
}

// FillIntegers fills dst with whole numbers in [minVal, maxVal].
// Sums and products of small whole numbers are exact in float32, which keeps
// algebraic identities checkable with plain equality.
func (r *RNG) FillIntegers(dst []float32, minVal, maxVal int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = float32(minVal + r.rand.Intn(maxVal-minVal+1))
	}
}

// DenseValues returns size whole numbers in [minVal, maxVal], roughly a
// zeroFraction share of them forced to zero.
func (r *RNG) DenseValues(size int, zeroFraction float64, minVal, maxVal int) []float32 {
	out := make([]float32, size)
	r.FillIntegers(out, minVal, maxVal)

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range out {
		if r.rand.Float64() < zeroFraction {
			out[i] = 0
		}
	}
	return out
}

// SparseEntries returns nnz distinct positions in [0, size) in random order,
// paired with non-zero whole numbers in [minVal, maxVal].
// nnz is clamped to size; the value range must contain a non-zero number.
func (r *RNG) SparseEntries(size, nnz, minVal, maxVal int) ([]int, []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nnz = min(nnz, size)
	indices := slices.Clone(r.rand.Perm(size)[:nnz])
	values := make([]float32, nnz)
	for i := range values {
		for values[i] == 0 {
			values[i] = float32(minVal + r.rand.Intn(maxVal-minVal+1))
		}
	}
	return indices, values
}
