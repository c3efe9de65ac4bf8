// Package overflow guards unsigned multiplication against wrap-around.
package overflow

import "golang.org/x/exp/constraints"

// MaxOf returns the largest value representable by T.
func MaxOf[T constraints.Unsigned]() T {
	return ^T(0)
}

// WillMultiplyOverflow reports whether a*b exceeds the range of T.
func WillMultiplyOverflow[T constraints.Unsigned](a, b T) bool {
	if a == 0 || b == 0 {
		return false
	}

	return a > MaxOf[T]()/b
}

// SafeMultiply returns a*b, saturating at MaxOf[T]() instead of wrapping.
func SafeMultiply[T constraints.Unsigned](a, b T) T {
	if WillMultiplyOverflow(a, b) {
		return MaxOf[T]()
	}

	return a * b
}
