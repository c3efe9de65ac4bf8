// Package floats compares floating-point values with combined absolute and
// relative tolerances.
package floats

import "math"

const (
	// AbsEpsilon is the tolerance used when both values are close to zero.
	AbsEpsilon = 1e-12
	// RelEpsilon is scaled by the larger magnitude for values away from zero.
	RelEpsilon = 1e-8
)

// ApproximatelyEqual compares lhs and rhs with AbsEpsilon and RelEpsilon.
func ApproximatelyEqual(lhs, rhs float64) bool {
	return ApproximatelyEqualAbsRel(lhs, rhs, AbsEpsilon, RelEpsilon)
}

// ApproximatelyEqualAbsRel reports whether |lhs-rhs| <= absEpsilon, or failing
// that, whether |lhs-rhs| <= max(|lhs|, |rhs|) * relEpsilon (Knuth).
func ApproximatelyEqualAbsRel(lhs, rhs, absEpsilon, relEpsilon float64) bool {
	diff := math.Abs(lhs - rhs)
	if diff <= absEpsilon {
		return true
	}

	return diff <= math.Max(math.Abs(lhs), math.Abs(rhs))*relEpsilon
}
