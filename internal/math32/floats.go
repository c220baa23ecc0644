// Package math32 provides float32 slice kernels for the dense vector paths.
// This is an internal package - external users should use the vecmath package.
package math32

// Dot calculates the dot product of two slices of equal length.
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// Add writes a[i] + b[i] into dst.
func Add(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub writes a[i] - b[i] into dst.
func Sub(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Mul writes a[i] * b[i] into dst.
func Mul(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Div writes a[i] / b[i] into dst.
// Callers must rule out zero divisors first.
func Div(dst, a, b []float32) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// AddScalar writes a[i] + scalar into dst.
func AddScalar(dst, a []float32, scalar float32) {
	for i := range dst {
		dst[i] = a[i] + scalar
	}
}

// Scale writes a[i] * scalar into dst.
func Scale(dst, a []float32, scalar float32) {
	for i := range dst {
		dst[i] = a[i] * scalar
	}
}

// DivScalar writes a[i] / scalar into dst.
func DivScalar(dst, a []float32, scalar float32) {
	for i := range dst {
		dst[i] = a[i] / scalar
	}
}

// ScaleInPlace multiplies all elements of a by scalar.
func ScaleInPlace(a []float32, scalar float32) {
	for i := range a {
		a[i] *= scalar
	}
}

// CountNonZero returns the number of elements that are not exactly zero.
func CountNonZero(a []float32) int {
	n := 0
	for _, v := range a {
		if v != 0 {
			n++
		}
	}

	return n
}

// IndexOfZero returns the position of the first zero element, or -1.
func IndexOfZero(a []float32) int {
	for i, v := range a {
		if v == 0 {
			return i
		}
	}

	return -1
}
