package vecmath

import (
	"cmp"
	"fmt"
	"slices"
)

// SparseVector stores only non-zero positions as (index, value) pairs.
//
// Indices are kept in ascending order, so lookups use binary search and
// sparse-sparse operations are linear merges.
type SparseVector struct {
	size    int
	indices []int
	values  []float32
}

// NewSparse creates a sparse vector of the given size.
//
// indices and values are paired by position and may arrive in any order.
// Entries whose value is exactly zero are dropped.
func NewSparse(size int, indices []int, values []float32) (*SparseVector, error) {
	if err := validateIndices(size, indices); err != nil {
		return nil, err
	}
	if len(indices) != len(values) {
		return nil, invalidArgument("length of indices is not equal to length of values")
	}
	if err := checkNegative(indices); err != nil {
		return nil, err
	}

	order := make([]int, len(indices))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(indices[a], indices[b])
	})

	for k := 1; k < len(order); k++ {
		if indices[order[k]] == indices[order[k-1]] {
			return nil, &ErrDuplicateIndex{Index: indices[order[k]], Indices: slices.Clone(indices)}
		}
	}

	v := &SparseVector{size: size}
	for _, o := range order {
		if values[o] == 0 {
			continue
		}
		v.indices = append(v.indices, indices[o])
		v.values = append(v.values, values[o])
	}

	return v, nil
}

// validateIndices checks the size and the upper bound of indices.
func validateIndices(size int, indices []int) error {
	if size <= 0 {
		return invalidArgument("size must be greater than 0, got %d", size)
	}
	if len(indices) > 0 {
		if m := slices.Max(indices); m > size-1 {
			return invalidArgument("found an index (%d) that is greater than size (%d)", m, size)
		}
	}
	return nil
}

func checkNegative(indices []int) error {
	var negs []int
	for _, i := range indices {
		if i < 0 {
			negs = append(negs, i)
		}
	}
	if len(negs) > 0 {
		return invalidArgument("can't instantiate SparseVector with negative indices, got %v", negs)
	}
	return nil
}

func (v *SparseVector) Kind() Kind { return KindSparse }

func (v *SparseVector) Size() int { return v.size }

// Indices returns the populated positions in ascending order.
func (v *SparseVector) Indices() []int { return slices.Clone(v.indices) }

// NonZeroValues returns the stored values, paired with Indices.
func (v *SparseVector) NonZeroValues() []float32 { return slices.Clone(v.values) }

func (v *SparseVector) Values() []float32 {
	out := make([]float32, v.size)
	for k, i := range v.indices {
		out[i] = v.values[k]
	}
	return out
}

func (v *SparseVector) At(i int) (float32, error) {
	if err := checkIndex(i, v.size); err != nil {
		return 0, err
	}
	if k, found := slices.BinarySearch(v.indices, i); found {
		return v.values[k], nil
	}
	return 0, nil
}

func (v *SparseVector) Slice(start, end int) (Vector, error) {
	if err := checkSpan(start, end, v.size); err != nil {
		return nil, err
	}

	lo, _ := slices.BinarySearch(v.indices, start)
	hi, _ := slices.BinarySearch(v.indices, end)

	out := &SparseVector{size: end - start}
	if hi > lo {
		out.indices = make([]int, hi-lo)
		for k, i := range v.indices[lo:hi] {
			out.indices[k] = i - start
		}
		out.values = slices.Clone(v.values[lo:hi])
	}
	return out, nil
}

func (v *SparseVector) NonZeroCount() int { return len(v.indices) }

func (v *SparseVector) Compress() Vector { return defaultCompressor.Compress(v) }

func (v *SparseVector) String() string {
	return fmt.Sprintf("[[%d, %v, %v]]", v.size, v.indices, v.values)
}

func (v *SparseVector) nonZeros() ([]int, []float32) { return v.indices, v.values }

func (v *SparseVector) clone() *SparseVector {
	return &SparseVector{
		size:    v.size,
		indices: slices.Clone(v.indices),
		values:  slices.Clone(v.values),
	}
}
