package vecmath

import (
	"fmt"
	"slices"

	"github.com/hupe1980/vecmath/internal/math32"
)

// DenseVector stores every position explicitly, zeros included.
type DenseVector struct {
	values []float32
}

// NewDense creates a dense vector holding a copy of values.
func NewDense(values ...float32) (*DenseVector, error) {
	if len(values) == 0 {
		return nil, invalidArgument("vectors must have at least 1 value")
	}
	return newDense(slices.Clone(values)), nil
}

// DenseFrom creates a dense vector from dynamically typed input.
// Every element must be a Go integer or floating point value.
func DenseFrom(values ...any) (*DenseVector, error) {
	if len(values) == 0 {
		return nil, invalidArgument("vectors must have at least 1 value")
	}

	out := make([]float32, len(values))
	for i, v := range values {
		f, ok := toFloat32(v)
		if !ok {
			return nil, invalidArgument("values must be numeric, got %s", describe(v))
		}
		out[i] = f
	}

	return newDense(out), nil
}

// newDense takes ownership of values.
func newDense(values []float32) *DenseVector {
	return &DenseVector{values: values}
}

func (v *DenseVector) Kind() Kind { return KindDense }

func (v *DenseVector) Size() int { return len(v.values) }

func (v *DenseVector) Values() []float32 { return slices.Clone(v.values) }

func (v *DenseVector) At(i int) (float32, error) {
	if err := checkIndex(i, len(v.values)); err != nil {
		return 0, err
	}
	return v.values[i], nil
}

func (v *DenseVector) Slice(start, end int) (Vector, error) {
	if err := checkSpan(start, end, len(v.values)); err != nil {
		return nil, err
	}
	return newDense(slices.Clone(v.values[start:end])), nil
}

func (v *DenseVector) NonZeroCount() int { return math32.CountNonZero(v.values) }

func (v *DenseVector) Compress() Vector { return defaultCompressor.Compress(v) }

func (v *DenseVector) String() string { return fmt.Sprint(v.values) }

func (v *DenseVector) nonZeros() ([]int, []float32) {
	n := math32.CountNonZero(v.values)
	indices := make([]int, 0, n)
	values := make([]float32, 0, n)
	for i, x := range v.values {
		if x != 0 {
			indices = append(indices, i)
			values = append(values, x)
		}
	}
	return indices, values
}

func (v *DenseVector) toSparse() *SparseVector {
	indices, values := v.nonZeros()
	return &SparseVector{size: len(v.values), indices: indices, values: values}
}

func toFloat32(v any) (float32, bool) {
	switch x := v.(type) {
	case float32:
		return x, true
	case float64:
		return float32(x), true
	case int:
		return float32(x), true
	case int8:
		return float32(x), true
	case int16:
		return float32(x), true
	case int32:
		return float32(x), true
	case int64:
		return float32(x), true
	case uint:
		return float32(x), true
	case uint8:
		return float32(x), true
	case uint16:
		return float32(x), true
	case uint32:
		return float32(x), true
	case uint64:
		return float32(x), true
	default:
		return 0, false
	}
}

func describe(v any) string {
	if s, ok := v.(string); ok {
		return "'" + s + "'"
	}
	return fmt.Sprintf("%v (%T)", v, v)
}
