package vecmath

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryVector(t *testing.T) {
	b, err := NewBinary(8, []int{6, 1, 3})
	require.NoError(t, err)

	assert.Equal(t, KindBinary, b.Kind())
	assert.Equal(t, 8, b.Size())
	assert.Equal(t, 3, b.NonZeroCount())
	assert.Equal(t, []int{1, 3, 6}, b.Indices())
	assert.Equal(t, []float32{1, 1, 1}, b.NonZeroValues())
	assert.Equal(t, []float32{0, 1, 0, 1, 0, 0, 1, 0}, b.Values())

	got, err := b.At(3)
	require.NoError(t, err)
	assert.Equal(t, float32(1), got)

	got, err = b.At(4)
	require.NoError(t, err)
	assert.Zero(t, got)

	t.Run("slice rebases", func(t *testing.T) {
		part, err := b.Slice(2, 7)
		require.NoError(t, err)
		require.Equal(t, KindBinary, part.Kind())
		assert.Equal(t, 5, part.Size())
		assert.Equal(t, []int{1, 4}, part.(*BinaryVector).Indices())
		assert.Equal(t, []float32{0, 1, 0, 0, 1}, part.Values())
	})

	t.Run("slice without entries", func(t *testing.T) {
		part, err := b.Slice(4, 6)
		require.NoError(t, err)
		assert.Zero(t, part.NonZeroCount())
		assert.Equal(t, 2, part.Size())
	})

	t.Run("empty", func(t *testing.T) {
		e := MustBinary(3, nil)
		assert.Zero(t, e.NonZeroCount())
		assert.Empty(t, e.Indices())
		assert.True(t, Equal(e, zero(t, 3)))
	})
}

func TestNewBinaryValidation(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		indices []int
		msg     string
	}{
		{"zero size", 0, nil, "size must be greater than 0, got 0"},
		{"index too large", 3, []int{0, 3}, "found an index (3) that is greater than size (3)"},
		{"negative indices", 3, []int{-2, 1}, "can't instantiate SparseVector with negative indices, got [-2]"},
		{"duplicate index", 5, []int{4, 1, 4}, "index 4 is duplicate in the indices=[4 1 4]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBinary(tt.size, tt.indices)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.ErrorContains(t, err, tt.msg)
		})
	}

	t.Run("duplicate is typed", func(t *testing.T) {
		_, err := NewBinary(5, []int{4, 4})
		var dup *ErrDuplicateIndex
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, 4, dup.Index)
	})

	t.Run("size beyond uint32", func(t *testing.T) {
		if math.MaxInt <= math.MaxUint32 {
			t.Skip("int is 32 bits wide")
		}
		size := uint64(math.MaxUint32) + 1
		_, err := NewBinary(int(size), nil)
		require.ErrorIs(t, err, ErrInvalidArgument)
		assert.ErrorContains(t, err, "integer overflow")
	})
}

func TestBinaryImmutable(t *testing.T) {
	in := []int{0, 2}
	b := MustBinary(40, in)
	in[0] = 3

	idx := b.Indices()
	idx[0] = 1

	assert.Equal(t, []int{0, 2}, b.Indices())

	c := MulScalar(b, 1).(*BinaryVector)
	assert.NotSame(t, b.bits, c.bits)
}
