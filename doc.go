// Package vecmath provides immutable float32 vectors with interchangeable
// dense and sparse representations.
//
// A DenseVector stores every position. A SparseVector stores only the
// non-zero positions as sorted (index, value) pairs. A BinaryVector is a
// sparse vector whose stored values are all 1, backed by a roaring bitmap.
// All three satisfy the Vector interface, and callers only need to care which
// one they hold when they ask for Compress.
//
// # Quick Start
//
//	d := vecmath.MustDense(1, 2, 3, 4)
//	s := vecmath.MustSparse(4, []int{1, 3}, []float32{1, 7})
//
//	sum, err := vecmath.Add(d, s) // [1 3 3 11]
//	dot, err := vecmath.Dot(d, s) // 2 + 28 = 30
//
// # Arithmetic
//
// Add, Sub, Mul and Div combine two vectors of the same size; the scalar
// variants (AddScalar, MulScalar, ...) broadcast a scalar. Operands are never
// modified. Sparse-sparse operations only visit populated positions, so
// they stay cheap for large, mostly empty vectors.
//
// Every arithmetic result is stored in whichever representation needs less
// memory, so Add(d, Neg(d)) comes back sparse and empty.
//
// # Compress
//
// Compress compares size*4 bytes (dense) with nonZero*(8+4) bytes (sparse)
// and returns a copy in the cheaper representation. Use NewCompressor with
// WithFloatWidth/WithIntWidth to change the cost model, and WithLogger or
// WithMetricsCollector to observe decisions.
//
// # Errors
//
// Construction and size mismatches return errors matching ErrInvalidArgument,
// element access outside the vector returns ErrIndexOutOfRange, and a zero
// divisor anywhere returns ErrDivisionByZero. Use errors.Is to match them.
package vecmath
