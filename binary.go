package vecmath

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/vecmath/internal/conv"
)

// BinaryVector is a sparse vector whose stored values are all exactly 1.
//
// Populated positions live in a 32-bit roaring bitmap, so the size must fit
// in a uint32.
type BinaryVector struct {
	size int
	bits *roaring.Bitmap
}

// NewBinary creates a binary vector with ones at the given positions.
func NewBinary(size int, indices []int) (*BinaryVector, error) {
	if err := validateIndices(size, indices); err != nil {
		return nil, err
	}
	if err := checkNegative(indices); err != nil {
		return nil, err
	}
	if _, err := conv.IntToUint32(size); err != nil {
		return nil, fmt.Errorf("%w: binary vector size: %w", ErrInvalidArgument, err)
	}

	// Indices are already known to be in [0, size), so they fit as well.
	ids, err := conv.IntsToUint32s(indices)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	bits := roaring.New()
	for k, id := range ids {
		if !bits.CheckedAdd(id) {
			return nil, &ErrDuplicateIndex{Index: indices[k], Indices: append([]int(nil), indices...)}
		}
	}

	return &BinaryVector{size: size, bits: bits}, nil
}

func (v *BinaryVector) Kind() Kind { return KindBinary }

func (v *BinaryVector) Size() int { return v.size }

// Indices returns the populated positions in ascending order.
func (v *BinaryVector) Indices() []int {
	indices, _ := v.nonZeros()
	return indices
}

// NonZeroValues returns a slice of ones, paired with Indices.
func (v *BinaryVector) NonZeroValues() []float32 {
	_, values := v.nonZeros()
	return values
}

func (v *BinaryVector) Values() []float32 {
	out := make([]float32, v.size)
	it := v.bits.Iterator()
	for it.HasNext() {
		out[it.Next()] = 1
	}
	return out
}

func (v *BinaryVector) At(i int) (float32, error) {
	if err := checkIndex(i, v.size); err != nil {
		return 0, err
	}
	if v.bits.Contains(uint32(i)) {
		return 1, nil
	}
	return 0, nil
}

func (v *BinaryVector) Slice(start, end int) (Vector, error) {
	if err := checkSpan(start, end, v.size); err != nil {
		return nil, err
	}

	out := roaring.New()
	it := v.bits.Iterator()
	it.AdvanceIfNeeded(uint32(start))
	for it.HasNext() {
		x := it.PeekNext()
		if int(x) >= end {
			break
		}
		out.Add(x - uint32(start))
		it.Next()
	}

	return &BinaryVector{size: end - start, bits: out}, nil
}

func (v *BinaryVector) NonZeroCount() int { return int(v.bits.GetCardinality()) }

func (v *BinaryVector) Compress() Vector { return defaultCompressor.Compress(v) }

func (v *BinaryVector) String() string {
	indices, values := v.nonZeros()
	return fmt.Sprintf("[[%d, %v, %v]]", v.size, indices, values)
}

func (v *BinaryVector) nonZeros() ([]int, []float32) {
	n := v.NonZeroCount()
	indices := make([]int, 0, n)
	values := make([]float32, 0, n)
	it := v.bits.Iterator()
	for it.HasNext() {
		indices = append(indices, int(it.Next()))
		values = append(values, 1)
	}
	return indices, values
}

func (v *BinaryVector) clone() *BinaryVector {
	return &BinaryVector{size: v.size, bits: v.bits.Clone()}
}

func (v *BinaryVector) toSparse() *SparseVector {
	indices, values := v.nonZeros()
	return &SparseVector{size: v.size, indices: indices, values: values}
}
