package distance

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/vecmath"
)

// ErrZeroNorm is returned when a vector with zero L2 norm is normalized or
// compared by angle.
var ErrZeroNorm = errors.New("zero norm")

// Dot calculates the dot product of two vectors of equal size.
func Dot(a, b vecmath.Vector) (float32, error) {
	return vecmath.Dot(a, b)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
func SquaredL2(a, b vecmath.Vector) (float32, error) {
	diff, err := vecmath.Sub(a, b)
	if err != nil {
		return 0, err
	}
	return vecmath.Dot(diff, diff)
}

// Hamming counts the positions where a and b differ.
// For binary vectors this is the number of differing bits.
func Hamming(a, b vecmath.Vector) (float32, error) {
	diff, err := vecmath.Sub(a, b)
	if err != nil {
		return 0, err
	}
	return float32(diff.NonZeroCount()), nil
}

// Cosine returns the cosine similarity of a and b, in [-1, 1].
func Cosine(a, b vecmath.Vector) (float32, error) {
	dot, err := vecmath.Dot(a, b)
	if err != nil {
		return 0, err
	}
	na, err := norm(a)
	if err != nil {
		return 0, err
	}
	nb, err := norm(b)
	if err != nil {
		return 0, err
	}
	return float32(float64(dot) / (na * nb)), nil
}

// NormalizeL2 returns v scaled to unit L2 norm.
// The result follows the compression policy like every other operation.
func NormalizeL2(v vecmath.Vector) (vecmath.Vector, error) {
	n, err := norm(v)
	if err != nil {
		return nil, err
	}
	return vecmath.MulScalar(v, float32(1/n)), nil
}

func norm(v vecmath.Vector) (float64, error) {
	norm2, err := vecmath.Dot(v, v)
	if err != nil {
		return 0, err
	}
	if norm2 == 0 {
		return 0, fmt.Errorf("%w: %d-sized %s vector", ErrZeroNorm, v.Size(), v.Kind())
	}
	return math.Sqrt(float64(norm2)), nil
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricCosine
	MetricDot
	MetricHamming
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricCosine:
		return "Cosine"
	case MetricDot:
		return "Dot"
	case MetricHamming:
		return "Hamming"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b vecmath.Vector) (float32, error)

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return SquaredL2, nil
	case MetricCosine:
		return Cosine, nil
	case MetricDot:
		return Dot, nil
	case MetricHamming:
		return Hamming, nil
	default:
		return nil, fmt.Errorf("%w: unsupported metric: %v", vecmath.ErrInvalidArgument, m)
	}
}
