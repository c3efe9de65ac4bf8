// Package sequence provides partial sums over contiguous slices.
package sequence

import "golang.org/x/exp/constraints"

// Sum returns the sum of seq[start : start+length]. Out-of-range or negative
// bounds yield zero rather than a panic. Runs in O(length).
func Sum[T constraints.Integer](seq []T, start, length T) T {
	var zero T
	if start < zero || length < zero {
		return zero
	}

	size := uint64(len(seq))
	first, n := uint64(start), uint64(length)
	if first >= size || n > size-first {
		return zero
	}

	var sum T
	for _, v := range seq[first : first+n] {
		sum += v
	}

	return sum
}

// SumFrom returns the sum of seq[start:], or zero if start is out of range.
func SumFrom[T constraints.Integer](seq []T, start T) T {
	var zero T
	if start < zero || uint64(start) >= uint64(len(seq)) {
		return zero
	}

	var sum T
	for _, v := range seq[uint64(start):] {
		sum += v
	}

	return sum
}
