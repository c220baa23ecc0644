package vecmath

import (
	"fmt"
	"slices"
)

// Kind identifies the physical representation of a Vector.
type Kind int

const (
	KindDense Kind = iota
	KindSparse
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindDense:
		return "Dense"
	case KindSparse:
		return "Sparse"
	case KindBinary:
		return "Binary"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Vector is a fixed-size column vector of float32 values.
//
// The set of implementations is closed: *DenseVector, *SparseVector and
// *BinaryVector. Vectors are immutable; every operation returns a new vector
// and accessors return copies.
type Vector interface {
	// Kind returns the physical representation.
	Kind() Kind

	// Size returns the logical number of elements (always >= 1).
	Size() int

	// Values returns every logical value, zeros included.
	Values() []float32

	// At returns the value at position i.
	At(i int) (float32, error)

	// Slice returns the half-open span [start, end) as a new vector of the
	// same representation, with positions rebased to start at 0.
	Slice(start, end int) (Vector, error)

	// NonZeroCount returns the number of positions holding a non-zero value.
	NonZeroCount() int

	// Compress returns a copy in whichever representation needs less memory.
	Compress() Vector

	String() string

	// nonZeros returns the populated positions in ascending order with their
	// values. Callers must not modify the returned slices.
	nonZeros() ([]int, []float32)
}

// Zero returns a sparse vector of the given size with no stored entries.
func Zero(size int) (*SparseVector, error) {
	if size <= 0 {
		return nil, invalidArgument("size must be greater than 0, got %d", size)
	}
	return &SparseVector{size: size}, nil
}

// One returns a vector of the given size in which every value is 1.
func One(size int) (*DenseVector, error) {
	if size <= 0 {
		return nil, invalidArgument("size must be greater than 0, got %d", size)
	}
	values := make([]float32, size)
	for i := range values {
		values[i] = 1
	}
	return newDense(values), nil
}

// Equal reports whether a and b have the same size and hold the same value
// at every position, regardless of representation.
func Equal(a, b Vector) bool {
	if a.Size() != b.Size() {
		return false
	}
	if x, ok := a.(*DenseVector); ok {
		if y, ok := b.(*DenseVector); ok {
			return slices.Equal(x.values, y.values)
		}
	}

	ai, av := a.nonZeros()
	bi, bv := b.nonZeros()
	return slices.Equal(ai, bi) && slices.Equal(av, bv)
}

// AlmostEqual reports whether a and b have the same size and every
// position-wise absolute difference is strictly less than eps.
func AlmostEqual(a, b Vector, eps float32) bool {
	if a.Size() != b.Size() || !(eps > 0) {
		return false
	}

	within := func(x, y float32) bool {
		d := x - y
		if d < 0 {
			d = -d
		}
		return d < eps
	}

	ai, av := a.nonZeros()
	bi, bv := b.nonZeros()

	i, j := 0, 0
	for i < len(ai) || j < len(bi) {
		switch {
		case j == len(bi) || (i < len(ai) && ai[i] < bi[j]):
			if !within(av[i], 0) {
				return false
			}
			i++
		case i == len(ai) || bi[j] < ai[i]:
			if !within(0, bv[j]) {
				return false
			}
			j++
		default:
			if !within(av[i], bv[j]) {
				return false
			}
			i++
			j++
		}
	}

	return true
}

// MustDense is like NewDense but panics on error.
func MustDense(values ...float32) *DenseVector {
	v, err := NewDense(values...)
	if err != nil {
		panic(err)
	}
	return v
}

// MustSparse is like NewSparse but panics on error.
func MustSparse(size int, indices []int, values []float32) *SparseVector {
	v, err := NewSparse(size, indices, values)
	if err != nil {
		panic(err)
	}
	return v
}

// MustBinary is like NewBinary but panics on error.
func MustBinary(size int, indices []int) *BinaryVector {
	v, err := NewBinary(size, indices)
	if err != nil {
		panic(err)
	}
	return v
}
