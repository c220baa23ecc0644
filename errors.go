package vecmath

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for malformed construction parameters and
	// incompatible operand sizes.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned when an index or slice bound falls outside [0, size).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDivisionByZero is returned when a divisor holds zero at any logical position.
	ErrDivisionByZero = errors.New("division by zero")
)

// ErrSizeMismatch indicates that two operands do not have the same size.
//
// It matches ErrInvalidArgument via errors.Is.
type ErrSizeMismatch struct {
	Size  int // size of the receiving operand
	Other int // size of the other operand
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("other vector size (%d) is not compatible with (%d)", e.Other, e.Size)
}

func (e *ErrSizeMismatch) Unwrap() error { return ErrInvalidArgument }

// ErrDuplicateIndex indicates that a sparse index list names the same position twice.
//
// It matches ErrInvalidArgument via errors.Is.
type ErrDuplicateIndex struct {
	Index   int
	Indices []int
}

func (e *ErrDuplicateIndex) Error() string {
	return fmt.Sprintf("index %d is duplicate in the indices=%v", e.Index, e.Indices)
}

func (e *ErrDuplicateIndex) Unwrap() error { return ErrInvalidArgument }

// ErrInvalidIndex indicates an element access outside [0, Size).
//
// It matches ErrIndexOutOfRange via errors.Is.
type ErrInvalidIndex struct {
	Index int
	Size  int
}

func (e *ErrInvalidIndex) Error() string {
	return fmt.Sprintf("index %d is out of range [0, %d)", e.Index, e.Size)
}

func (e *ErrInvalidIndex) Unwrap() error { return ErrIndexOutOfRange }

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func checkSameSize(a, b Vector) error {
	if a.Size() != b.Size() {
		return &ErrSizeMismatch{Size: a.Size(), Other: b.Size()}
	}
	return nil
}

func checkIndex(i, size int) error {
	if i < 0 || i >= size {
		return &ErrInvalidIndex{Index: i, Size: size}
	}
	return nil
}

func checkSpan(start, end, size int) error {
	if start < 0 || end > size || start >= end {
		return fmt.Errorf("%w: slice [%d:%d] is not a non-empty span of [0, %d)", ErrIndexOutOfRange, start, end, size)
	}
	return nil
}
