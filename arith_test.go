package vecmath

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noErr returns a checker for (Vector, error) results bound to t.
func noErr(t *testing.T) func(Vector, error) Vector {
	return func(v Vector, err error) Vector {
		t.Helper()
		require.NoError(t, err)
		return v
	}
}

func mustDot(t *testing.T, a, b Vector) float32 {
	t.Helper()
	got, err := Dot(a, b)
	require.NoError(t, err)
	return got
}

func zero(t *testing.T, size int) *SparseVector {
	t.Helper()
	z, err := Zero(size)
	require.NoError(t, err)
	return z
}

func TestNeg(t *testing.T) {
	ok := noErr(t)
	d1 := MustDense(1, 2, 3, 4)
	d2 := Neg(d1)
	assert.Equal(t, []float32{-1, -2, -3, -4}, d2.Values())

	sum := ok(Add(d1, d2))
	assert.True(t, Equal(sum, MustSparse(4, nil, nil)))
	assert.Equal(t, KindSparse, sum.Kind())

	diff := ok(Sub(d1, d1))
	assert.True(t, Equal(diff, MustSparse(4, nil, nil)))

	s1 := MustSparse(4, []int{1, 3}, []float32{1, 1})
	s2 := Neg(s1)
	assert.Equal(t, []float32{0, -1, 0, -1}, s2.Values())
	assert.True(t, Equal(ok(Add(s1, s2)), MustSparse(4, nil, nil)))

	t.Run("operand untouched", func(t *testing.T) {
		assert.Equal(t, []float32{1, 2, 3, 4}, d1.Values())
		assert.Equal(t, []float32{1, 1}, s1.NonZeroValues())
	})
}

func TestAdd(t *testing.T) {
	ok := noErr(t)
	d1 := MustDense(1, 2, 3, 4)
	d2 := MustDense(2, 2, 5, 5)

	assert.True(t, Equal(AddScalar(d1, 0), d1))
	assert.True(t, Equal(AddScalar(d1, 3), MustDense(4, 5, 6, 7)))
	assert.True(t, Equal(ok(Add(d1, d2)), MustDense(3, 4, 8, 9)))

	s1 := zero(t, 4)
	s2 := MustSparse(4, []int{1, 3}, []float32{1, 7})
	assert.True(t, Equal(ok(Add(s1, d1)), d1))
	assert.True(t, Equal(ok(Add(s2, d1)), MustDense(1, 3, 3, 11)))
	assert.True(t, Equal(ok(Add(d1, s2)), MustDense(1, 3, 3, 11)))
	assert.True(t, Equal(AddScalar(s1, 1), MustDense(1, 1, 1, 1)))

	t.Run("size mismatch", func(t *testing.T) {
		_, err := Add(MustDense(1, 2, 3, 4), MustDense(1, 2))
		require.ErrorIs(t, err, ErrInvalidArgument)
		assert.EqualError(t, err, "other vector size (2) is not compatible with (4)")

		_, err = Add(MustDense(1, 2, 3, 4), zero(t, 2))
		require.ErrorIs(t, err, ErrInvalidArgument)
		assert.ErrorContains(t, err, "other vector size (2) is not compatible with (4)")

		var sm *ErrSizeMismatch
		require.True(t, errors.As(err, &sm))
		assert.Equal(t, 4, sm.Size)
		assert.Equal(t, 2, sm.Other)
	})

	t.Run("sparse sparse stays sparse", func(t *testing.T) {
		ok := noErr(t)
		a := MustSparse(1000, []int{3, 500}, []float32{1, 2})
		b := MustSparse(1000, []int{500, 999}, []float32{-2, 4})
		got := ok(Add(a, b))
		require.Equal(t, KindSparse, got.Kind())
		assert.Equal(t, []int{3, 999}, got.(*SparseVector).Indices())
		assert.Equal(t, []float32{1, 4}, got.(*SparseVector).NonZeroValues())
	})

	t.Run("binary operands", func(t *testing.T) {
		ok := noErr(t)
		a := MustBinary(6, []int{0, 2})
		b := MustBinary(6, []int{2, 5})
		got := ok(Add(a, b))
		assert.Equal(t, []float32{1, 0, 2, 0, 0, 1}, got.Values())
	})
}

func TestSub(t *testing.T) {
	ok := noErr(t)
	d := MustDense(5, 5, 5)
	s := MustSparse(3, []int{1}, []float32{2})

	assert.Equal(t, []float32{5, 3, 5}, ok(Sub(d, s)).Values())
	assert.Equal(t, []float32{-5, -3, -5}, ok(Sub(s, d)).Values())
	assert.Equal(t, []float32{4, 4, 4}, SubScalar(d, 1).Values())

	_, err := Sub(d, MustDense(1))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	t.Run("sparse sparse", func(t *testing.T) {
		ok := noErr(t)
		a := MustSparse(5, []int{0, 2}, []float32{3, 1})
		b := MustSparse(5, []int{2, 4}, []float32{1, 1})
		got := ok(Sub(a, b))
		assert.Equal(t, []float32{3, 0, 0, 0, -1}, got.Values())
	})
}

func TestMult(t *testing.T) {
	ok := noErr(t)
	d1 := MustDense(1, 2, 3, 4)
	d2 := MustDense(2, 2, 5, 5)

	assert.True(t, Equal(MulScalar(d1, 0), zero(t, 4)))
	assert.True(t, Equal(MulScalar(d1, 3), MustDense(3, 6, 9, 12)))
	assert.True(t, Equal(ok(Mul(d1, d2)), MustDense(2, 4, 15, 20)))

	out3 := ok(Div(d1, d2))
	assert.True(t, AlmostEqual(out3, MustDense(1.0/2, 1, 3.0/5, 4.0/5), 1e-6))

	assert.True(t, Equal(d1, MulScalar(d1, 1)))
	assert.True(t, Equal(d1, ok(DivScalar(d1, 1))))

	t.Run("dense times sparse reads only populated positions", func(t *testing.T) {
		ok := noErr(t)
		d := MustDense(1, 2, 3, 4, 5, 6, 7, 8)
		s := MustSparse(8, []int{1, 3}, []float32{2, -1})
		got := ok(Mul(d, s))
		require.Equal(t, KindSparse, got.Kind())
		assert.Equal(t, []float32{0, 4, 0, -4, 0, 0, 0, 0}, got.Values())
		assert.True(t, Equal(got, ok(Mul(s, d))))
	})

	t.Run("sparse sparse intersect", func(t *testing.T) {
		ok := noErr(t)
		a := MustSparse(6, []int{0, 2, 4}, []float32{1, 2, 3})
		b := MustSparse(6, []int{2, 3, 4}, []float32{5, 5, -1})
		got := ok(Mul(a, b))
		assert.Equal(t, []float32{0, 0, 10, 0, -3, 0}, got.Values())
	})

	t.Run("binary binary stays binary", func(t *testing.T) {
		ok := noErr(t)
		a := MustBinary(100, []int{1, 2, 3})
		b := MustBinary(100, []int{2, 3, 4})
		got := ok(Mul(a, b))
		require.Equal(t, KindBinary, got.Kind())
		assert.Equal(t, []int{2, 3}, got.(*BinaryVector).Indices())
	})

	t.Run("binary scaled", func(t *testing.T) {
		b := MustBinary(10, []int{4})
		assert.Equal(t, KindBinary, MulScalar(b, 1).Kind())
		scaled := MulScalar(b, 3)
		assert.Equal(t, KindSparse, scaled.Kind())
		assert.Equal(t, []float32{3}, scaled.(*SparseVector).NonZeroValues())
	})

	t.Run("size mismatch", func(t *testing.T) {
		_, err := Mul(d1, MustDense(1))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestDiv(t *testing.T) {
	t.Run("scalar zero", func(t *testing.T) {
		_, err := DivScalar(MustDense(1, 2), 0)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})

	t.Run("dense divisor with zero", func(t *testing.T) {
		_, err := Div(MustDense(1, 2, 3), MustDense(1, 0, 3))
		require.ErrorIs(t, err, ErrDivisionByZero)
		assert.ErrorContains(t, err, "index 1")
	})

	t.Run("zero over zero", func(t *testing.T) {
		_, err := Div(MustDense(1, 0), MustDense(1, 0))
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})

	t.Run("sparse divisor with gaps", func(t *testing.T) {
		_, err := Div(MustDense(1, 2, 3), MustSparse(3, []int{0, 1}, []float32{1, 1}))
		require.ErrorIs(t, err, ErrDivisionByZero)
		assert.ErrorContains(t, err, "index 2")

		_, err = Div(MustDense(1, 2, 3), MustSparse(3, []int{0, 2}, []float32{1, 1}))
		require.ErrorIs(t, err, ErrDivisionByZero)
		assert.ErrorContains(t, err, "index 1")
	})

	t.Run("sparse numerator full sparse divisor", func(t *testing.T) {
		ok := noErr(t)
		num := MustSparse(4, []int{1}, []float32{3})
		den := MustSparse(4, []int{0, 1, 2, 3}, []float32{2, 2, 2, 2})
		got := ok(Div(num, den))
		require.Equal(t, KindSparse, got.Kind())
		assert.Equal(t, []float32{0, 1.5, 0, 0}, got.Values())
	})

	t.Run("sparse scalar", func(t *testing.T) {
		ok := noErr(t)
		got := ok(DivScalar(MustSparse(8, []int{2}, []float32{3}), 2))
		assert.Equal(t, KindSparse, got.Kind())
		assert.Equal(t, []float32{1.5}, got.(*SparseVector).NonZeroValues())
	})

	t.Run("size mismatch before zero check", func(t *testing.T) {
		_, err := Div(MustDense(1, 2), zero(t, 3))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestInvert(t *testing.T) {
	ok := noErr(t)
	got := ok(Invert(MustDense(1, 2, 4)))
	assert.Equal(t, []float32{1, 0.5, 0.25}, got.Values())

	_, err := Invert(MustDense(1, 0))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Invert(MustSparse(3, []int{0}, []float32{2}))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	full := ok(Invert(MustBinary(2, []int{0, 1})))
	assert.Equal(t, []float32{1, 1}, full.Values())
}

func TestDot(t *testing.T) {
	v0 := zero(t, 8)
	v1, err := One(8)
	require.NoError(t, err)
	d1 := MustDense(1, 2, 3, 4, 5, 6, 7, 8)
	s1 := MustSparse(8, []int{1, 4}, []float32{2, -2})

	assert.Zero(t, mustDot(t, v0, v1))
	assert.Zero(t, mustDot(t, v1, v0))
	assert.Zero(t, mustDot(t, d1, v0))
	assert.Zero(t, mustDot(t, s1, v0))

	assert.Equal(t, float32(36), mustDot(t, v1, d1))
	assert.Equal(t, float32(72), mustDot(t, MulScalar(v1, 2), d1))
	assert.Zero(t, mustDot(t, v1, s1))
	assert.Equal(t, float32(-6), mustDot(t, d1, s1))
	assert.Equal(t, float32(-6), mustDot(t, s1, d1))

	t.Run("sparse sparse", func(t *testing.T) {
		a := MustSparse(8, []int{1, 3, 4}, []float32{1, 5, 1})
		assert.Equal(t, float32(0), mustDot(t, a, s1))
		assert.Equal(t, float32(8), mustDot(t, s1, s1))
	})

	t.Run("binary", func(t *testing.T) {
		b := MustBinary(8, []int{0, 1, 4, 7})
		c := MustBinary(8, []int{1, 2, 7})
		assert.Equal(t, float32(2), mustDot(t, b, c))
		assert.Equal(t, float32(1+2+5+8), mustDot(t, b, d1))
		assert.Equal(t, float32(1+2+5+8), mustDot(t, d1, b))
		assert.Equal(t, float32(0), mustDot(t, b, s1))
		assert.Equal(t, float32(0), mustDot(t, s1, b))
		assert.Equal(t, float32(2), mustDot(t, c, s1))
	})

	t.Run("size mismatch", func(t *testing.T) {
		_, err := Dot(d1, MustDense(1))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
