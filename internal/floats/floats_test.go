package floats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproximatelyEqual(t *testing.T) {
	t.Run("exact equality", func(t *testing.T) {
		assert.True(t, ApproximatelyEqual(math.Pi, math.Pi))
	})

	t.Run("near zero uses absolute tolerance", func(t *testing.T) {
		assert.True(t, ApproximatelyEqual(1e-13, 0))
	})

	t.Run("tighter absolute epsilon rejects", func(t *testing.T) {
		assert.False(t, ApproximatelyEqualAbsRel(1e-13, 0, 1e-14, RelEpsilon))
	})

	t.Run("relative tolerance for large values", func(t *testing.T) {
		assert.True(t, ApproximatelyEqual(1e9, 1e9+5))
	})

	t.Run("large values outside relative tolerance", func(t *testing.T) {
		assert.False(t, ApproximatelyEqual(1e9, 1e9+200))
	})

	t.Run("symmetric", func(t *testing.T) {
		a := -1000.0
		b := a + 1e-11
		assert.True(t, ApproximatelyEqual(a, b))
		assert.True(t, ApproximatelyEqual(b, a))
	})

	t.Run("NaN is never equal", func(t *testing.T) {
		assert.False(t, ApproximatelyEqual(math.NaN(), math.NaN()))
	})
}
