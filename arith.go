package vecmath

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/vecmath/internal/math32"
)

// elementwise describes an operation f with f(0, 0) == 0 and f(x, 0) == x,
// which makes sparse-sparse evaluation over the union of populated positions valid.
type elementwise struct {
	apply func(x, y float32) float32
	dense func(dst, a, b []float32)
}

var (
	opAdd = elementwise{
		apply: func(x, y float32) float32 { return x + y },
		dense: math32.Add,
	}
	opSub = elementwise{
		apply: func(x, y float32) float32 { return x - y },
		dense: math32.Sub,
	}
)

// Add returns a + b.
func Add(a, b Vector) (Vector, error) {
	return union(a, b, opAdd)
}

// Sub returns a - b.
func Sub(a, b Vector) (Vector, error) {
	return union(a, b, opSub)
}

func union(a, b Vector, op elementwise) (Vector, error) {
	if err := checkSameSize(a, b); err != nil {
		return nil, err
	}

	x, aDense := a.(*DenseVector)
	y, bDense := b.(*DenseVector)

	switch {
	case aDense && bDense:
		dst := make([]float32, len(x.values))
		op.dense(dst, x.values, y.values)
		return defaultCompressor.settle(newDense(dst)), nil
	case aDense:
		dst := x.Values()
		bi, bv := b.nonZeros()
		for k, i := range bi {
			dst[i] = op.apply(dst[i], bv[k])
		}
		return defaultCompressor.settle(newDense(dst)), nil
	case bDense:
		dst := make([]float32, len(y.values))
		for i, yv := range y.values {
			dst[i] = op.apply(0, yv)
		}
		ai, av := a.nonZeros()
		for k, i := range ai {
			dst[i] = op.apply(av[k], y.values[i])
		}
		return defaultCompressor.settle(newDense(dst)), nil
	default:
		return defaultCompressor.settle(mergeUnion(a, b, op)), nil
	}
}

// mergeUnion walks the sorted populated positions of two sparse operands and
// never touches positions where both are zero.
func mergeUnion(a, b Vector, op elementwise) *SparseVector {
	ai, av := a.nonZeros()
	bi, bv := b.nonZeros()

	out := &SparseVector{size: a.Size()}
	emit := func(i int, r float32) {
		if r != 0 {
			out.indices = append(out.indices, i)
			out.values = append(out.values, r)
		}
	}

	i, j := 0, 0
	for i < len(ai) || j < len(bi) {
		switch {
		case j == len(bi) || (i < len(ai) && ai[i] < bi[j]):
			emit(ai[i], op.apply(av[i], 0))
			i++
		case i == len(ai) || bi[j] < ai[i]:
			emit(bi[j], op.apply(0, bv[j]))
			j++
		default:
			emit(ai[i], op.apply(av[i], bv[j]))
			i++
			j++
		}
	}

	return out
}

// Mul returns the element-wise product of a and b.
//
// When either operand is sparse only the other operand's values at its
// populated positions are read.
func Mul(a, b Vector) (Vector, error) {
	if err := checkSameSize(a, b); err != nil {
		return nil, err
	}

	if x, ok := a.(*BinaryVector); ok {
		if y, ok := b.(*BinaryVector); ok {
			return defaultCompressor.settle(&BinaryVector{size: x.size, bits: roaring.And(x.bits, y.bits)}), nil
		}
	}

	x, aDense := a.(*DenseVector)
	y, bDense := b.(*DenseVector)

	switch {
	case aDense && bDense:
		dst := make([]float32, len(x.values))
		math32.Mul(dst, x.values, y.values)
		return defaultCompressor.settle(newDense(dst)), nil
	case aDense:
		return defaultCompressor.settle(scatterMul(x, b)), nil
	case bDense:
		return defaultCompressor.settle(scatterMul(y, a)), nil
	default:
		return defaultCompressor.settle(mergeIntersect(a, b)), nil
	}
}

func scatterMul(d *DenseVector, s Vector) *SparseVector {
	si, sv := s.nonZeros()
	out := &SparseVector{size: s.Size()}
	for k, i := range si {
		if r := d.values[i] * sv[k]; r != 0 {
			out.indices = append(out.indices, i)
			out.values = append(out.values, r)
		}
	}
	return out
}

func mergeIntersect(a, b Vector) *SparseVector {
	ai, av := a.nonZeros()
	bi, bv := b.nonZeros()

	out := &SparseVector{size: a.Size()}
	i, j := 0, 0
	for i < len(ai) && j < len(bi) {
		switch {
		case ai[i] < bi[j]:
			i++
		case bi[j] < ai[i]:
			j++
		default:
			if r := av[i] * bv[j]; r != 0 {
				out.indices = append(out.indices, ai[i])
				out.values = append(out.values, r)
			}
			i++
			j++
		}
	}
	return out
}

// Div returns the element-wise quotient a / b.
//
// Every position of b must be non-zero, including positions where a is
// also zero; otherwise ErrDivisionByZero is returned.
func Div(a, b Vector) (Vector, error) {
	if err := checkSameSize(a, b); err != nil {
		return nil, err
	}
	if err := checkNoZero(b); err != nil {
		return nil, err
	}

	divisor := b.Values()
	if x, ok := a.(*DenseVector); ok {
		dst := make([]float32, len(x.values))
		math32.Div(dst, x.values, divisor)
		return defaultCompressor.settle(newDense(dst)), nil
	}

	ai, av := a.nonZeros()
	out := &SparseVector{size: a.Size()}
	for k, i := range ai {
		if r := av[k] / divisor[i]; r != 0 {
			out.indices = append(out.indices, i)
			out.values = append(out.values, r)
		}
	}
	return defaultCompressor.settle(out), nil
}

// checkNoZero fails with ErrDivisionByZero naming the first zero position of v.
func checkNoZero(v Vector) error {
	idx := -1
	switch x := v.(type) {
	case *DenseVector:
		idx = math32.IndexOfZero(x.values)
	default:
		if v.NonZeroCount() < v.Size() {
			indices, _ := v.nonZeros()
			idx = len(indices)
			for k, i := range indices {
				if i != k {
					idx = k
					break
				}
			}
		}
	}

	if idx >= 0 {
		return fmt.Errorf("%w: divisor is zero at index %d", ErrDivisionByZero, idx)
	}
	return nil
}

// AddScalar adds s to every position. A non-zero s populates every position.
func AddScalar(v Vector, s float32) Vector {
	if s == 0 {
		return defaultCompressor.Compress(v)
	}
	dst := v.Values()
	math32.AddScalar(dst, dst, s)
	return defaultCompressor.settle(newDense(dst))
}

// SubScalar subtracts s from every position.
func SubScalar(v Vector, s float32) Vector {
	return AddScalar(v, -s)
}

// MulScalar multiplies every position by s.
func MulScalar(v Vector, s float32) Vector {
	if s == 0 {
		return &SparseVector{size: v.Size()}
	}

	switch x := v.(type) {
	case *DenseVector:
		dst := make([]float32, len(x.values))
		math32.Scale(dst, x.values, s)
		return defaultCompressor.settle(newDense(dst))
	case *BinaryVector:
		if s == 1 {
			return defaultCompressor.settle(x.clone())
		}
	}

	return defaultCompressor.settle(mapSparse(v, func(f float32) float32 { return f * s }))
}

// DivScalar divides every position by s.
func DivScalar(v Vector, s float32) (Vector, error) {
	if s == 0 {
		return nil, fmt.Errorf("%w: scalar divisor is zero", ErrDivisionByZero)
	}

	switch x := v.(type) {
	case *DenseVector:
		dst := make([]float32, len(x.values))
		math32.DivScalar(dst, x.values, s)
		return defaultCompressor.settle(newDense(dst)), nil
	case *BinaryVector:
		if s == 1 {
			return defaultCompressor.settle(x.clone()), nil
		}
	}

	return defaultCompressor.settle(mapSparse(v, func(f float32) float32 { return f / s })), nil
}

// mapSparse applies fn to the populated positions of v; fn(0) must be 0.
func mapSparse(v Vector, fn func(float32) float32) *SparseVector {
	vi, vv := v.nonZeros()
	out := &SparseVector{size: v.Size()}
	for k, i := range vi {
		if r := fn(vv[k]); r != 0 {
			out.indices = append(out.indices, i)
			out.values = append(out.values, r)
		}
	}
	return out
}

// Neg returns -v.
func Neg(v Vector) Vector {
	return MulScalar(v, -1)
}

// Invert returns the element-wise reciprocal 1/v.
func Invert(v Vector) (Vector, error) {
	if err := checkNoZero(v); err != nil {
		return nil, err
	}
	if x, ok := v.(*BinaryVector); ok {
		return defaultCompressor.settle(x.clone()), nil
	}

	dst := v.Values()
	for i, f := range dst {
		dst[i] = 1 / f
	}
	return defaultCompressor.settle(newDense(dst)), nil
}

// Dot returns the sum of the position-wise products of a and b.
//
// Sparse operands contribute only at positions populated in both.
func Dot(a, b Vector) (float32, error) {
	if err := checkSameSize(a, b); err != nil {
		return 0, err
	}

	switch x := a.(type) {
	case *DenseVector:
		switch y := b.(type) {
		case *DenseVector:
			return math32.Dot(x.values, y.values), nil
		default:
			return gatherDot(x, y), nil
		}
	case *BinaryVector:
		switch y := b.(type) {
		case *DenseVector:
			return gatherDot(y, x), nil
		case *BinaryVector:
			return float32(x.bits.AndCardinality(y.bits)), nil
		case *SparseVector:
			return maskDot(x, y), nil
		}
	case *SparseVector:
		switch y := b.(type) {
		case *DenseVector:
			return gatherDot(y, x), nil
		case *BinaryVector:
			return maskDot(y, x), nil
		}
	}

	ai, av := a.nonZeros()
	bi, bv := b.nonZeros()

	var ret float32
	i, j := 0, 0
	for i < len(ai) && j < len(bi) {
		switch {
		case ai[i] < bi[j]:
			i++
		case bi[j] < ai[i]:
			j++
		default:
			ret += av[i] * bv[j]
			i++
			j++
		}
	}
	return ret, nil
}

func gatherDot(d *DenseVector, s Vector) float32 {
	si, sv := s.nonZeros()
	var ret float32
	for k, i := range si {
		ret += d.values[i] * sv[k]
	}
	return ret
}

func maskDot(b *BinaryVector, s *SparseVector) float32 {
	var ret float32
	for k, i := range s.indices {
		if b.bits.Contains(uint32(i)) {
			ret += s.values[k]
		}
	}
	return ret
}
