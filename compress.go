package vecmath

import (
	"slices"
)

var defaultCompressor = NewCompressor()

// Compressor picks the cheaper of the dense and sparse encodings for a
// vector's content.
//
// The dense cost is size*floatWidth and the sparse cost is
// nonZero*(intWidth+floatWidth). A Compressor is safe for concurrent use as
// long as its logger and metrics collector are.
type Compressor struct {
	opts options
}

// NewCompressor creates a Compressor. Without options it uses 4-byte values
// and 8-byte indices.
func NewCompressor(optFns ...Option) *Compressor {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Compressor{opts: opts}
}

// DenseCost returns the byte cost of storing v densely.
func (c *Compressor) DenseCost(v Vector) int {
	return v.Size() * c.opts.floatWidth
}

// SparseCost returns the byte cost of storing v's populated positions.
func (c *Compressor) SparseCost(v Vector) int {
	return v.NonZeroCount() * (c.opts.intWidth + c.opts.floatWidth)
}

// Compress returns a new vector holding v's values in the cheaper
// representation. On a tie the representation of v is kept. v is never
// modified.
func (c *Compressor) Compress(v Vector) Vector {
	out := c.settle(v)
	if out != v {
		return out
	}

	switch x := v.(type) {
	case *DenseVector:
		return newDense(slices.Clone(x.values))
	case *SparseVector:
		return x.clone()
	case *BinaryVector:
		return x.clone()
	default:
		return v
	}
}

// settle converts v only when the other representation is strictly cheaper,
// otherwise it returns v itself. Arithmetic results go through settle since
// they are already owned by the caller.
func (c *Compressor) settle(v Vector) Vector {
	size, nonZero := v.Size(), v.NonZeroCount()
	denseCost, sparseCost := c.DenseCost(v), c.SparseCost(v)

	out := v
	switch x := v.(type) {
	case *DenseVector:
		if sparseCost < denseCost {
			out = x.toSparse()
		}
	default:
		if denseCost < sparseCost {
			out = newDense(v.Values())
		}
	}

	c.opts.logger.LogCompress(v.Kind(), out.Kind(), size, nonZero, denseCost, sparseCost)
	c.opts.metricsCollector.RecordCompress(v.Kind(), out.Kind(), size, nonZero)

	return out
}
