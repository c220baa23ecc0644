// Package conv provides checked integer conversions.
//
// The binary vector stores its populated positions in a 32-bit roaring bitmap,
// so sizes and indices arriving as int must be range-checked before they are
// narrowed to uint32.
package conv
