package majority

import (
	"iter"
	"slices"
)

// vote holds the current candidate and its surplus over all other elements.
type vote[T comparable] struct {
	slot  T
	count int
}

func (v *vote[T]) isZero() bool { return v.count == 0 }
func (v *vote[T]) plus1()       { v.count++ }
func (v *vote[T]) minus1()      { v.count-- }

func (v *vote[T]) observe(x T) {
	switch {
	case v.isZero():
		v.slot = x
		v.plus1()
	case v.slot == x:
		v.plus1()
	default:
		v.minus1()
	}
}

// Find returns the majority element of values.
// It reports false only when values is empty.
func Find[T comparable](values ...T) (T, bool) {
	return FindSeq(slices.Values(values))
}

// FindSeq is Find over an iterator. The sequence is consumed exactly once.
func FindSeq[T comparable](seq iter.Seq[T]) (T, bool) {
	var (
		v    vote[T]
		seen bool
	)
	for x := range seq {
		seen = true
		v.observe(x)
	}
	return v.slot, seen
}
