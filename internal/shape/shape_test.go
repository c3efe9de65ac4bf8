package shape

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type celsius float64

type label string

// These instantiations fail to compile if a constraint stops admitting the
// type, which is the closest Go gets to a static assertion.
var (
	_ = acceptIntegral[int]
	_ = acceptIntegral[int64]
	_ = acceptIntegral[uint8]
	_ = acceptSigned[int64]
	_ = acceptUnsigned[uint]
	_ = acceptFloat[float32]
	_ = acceptFloat[celsius]
	_ = acceptRational[int]
	_ = acceptRational[float64]
	_ = acceptString[string]
	_ = acceptString[label]
	_ = acceptScalar[bool]
	_ = acceptScalar[label]
)

func acceptIntegral[T Integral]()         {}
func acceptSigned[T SignedIntegral]()     {}
func acceptUnsigned[T UnsignedIntegral]() {}
func acceptFloat[T FloatingPoint]()       {}
func acceptRational[T RationalNumber]()   {}
func acceptString[T String]()             {}
func acceptScalar[T Scalar]()             {}

func TestOf(t *testing.T) {
	assert.Equal(t, Signed, Of[int]())
	assert.Equal(t, Signed, Of[int64]())
	assert.Equal(t, Signed, Of[rune]())
	assert.Equal(t, Unsigned, Of[uint32]())
	assert.Equal(t, Unsigned, Of[byte]())
	assert.Equal(t, Float, Of[float64]())
	assert.Equal(t, Float, Of[celsius]())
	assert.Equal(t, Bool, Of[bool]())
	assert.Equal(t, Text, Of[string]())
	assert.Equal(t, Text, Of[label]())
	assert.Equal(t, Unknown, Of[[]byte]())
	assert.Equal(t, Unknown, Of[*string]())
	assert.Equal(t, Unknown, Of[struct{}]())
}

func TestOfTypeNil(t *testing.T) {
	assert.Equal(t, Unknown, OfType(nil))
	assert.Equal(t, Signed, OfType(reflect.TypeOf(int16(0))))
}

func TestShapeString(t *testing.T) {
	testCases := []struct {
		shape    Shape
		expected string
	}{
		{Signed, "signed"},
		{Unsigned, "unsigned"},
		{Float, "float"},
		{Bool, "bool"},
		{Text, "text"},
		{Unknown, "unknown"},
		{Shape(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.shape.String())
		})
	}
}

func TestPredicates(t *testing.T) {
	t.Run("integral", func(t *testing.T) {
		assert.True(t, IsIntegral[int]())
		assert.True(t, IsIntegral[uint64]())
		assert.False(t, IsIntegral[bool]())
		assert.False(t, IsIntegral[float64]())
	})

	t.Run("signed and unsigned", func(t *testing.T) {
		assert.True(t, IsSigned[int64]())
		assert.True(t, IsUnsigned[uint]())
		assert.True(t, IsUnsigned[uint8]())
		assert.False(t, IsUnsigned[int]())
		assert.False(t, IsSigned[uint]())
	})

	t.Run("floating point", func(t *testing.T) {
		assert.True(t, IsFloat[float32]())
		assert.True(t, IsFloat[float64]())
		assert.False(t, IsFloat[int]())
	})

	t.Run("rational", func(t *testing.T) {
		assert.True(t, IsRational[int]())
		assert.True(t, IsRational[float64]())
		assert.False(t, IsRational[string]())
		assert.False(t, IsRational[bool]())
	})

	t.Run("string", func(t *testing.T) {
		assert.True(t, IsString[string]())
		assert.True(t, IsString[label]())
		assert.False(t, IsString[[]byte]())
		assert.False(t, IsString[*string]())
		assert.False(t, IsString[[6]byte]())
	})
}
