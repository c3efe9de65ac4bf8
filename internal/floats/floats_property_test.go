//go:build property
// +build property

package floats

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestApproximatelyEqualProperties checks reflexivity and symmetry.
func TestApproximatelyEqualProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("reflexive for finite values", prop.ForAll(
		func(x float64) bool {
			return ApproximatelyEqual(x, x)
		},
		gen.Float64Range(-1e300, 1e300),
	))

	properties.Property("symmetric", prop.ForAll(
		func(x, y float64) bool {
			return ApproximatelyEqual(x, y) == ApproximatelyEqual(y, x)
		},
		gen.Float64(),
		gen.Float64(),
	))

	properties.Property("one ulp apart is equal", prop.ForAll(
		func(x float64) bool {
			return ApproximatelyEqual(x, math.Nextafter(x, math.Inf(1)))
		},
		gen.Float64Range(-1e300, 1e300),
	))

	properties.TestingRun(t)
}
