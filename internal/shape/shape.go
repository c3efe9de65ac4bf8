// Package shape classifies Go types into the scalar shapes the input reader
// knows how to parse.
//
// The constraint interfaces are checked by the compiler; the Shape values
// answer the same questions at runtime for code that only has a type
// parameter or a reflect.Type in hand. Unlike some languages, bool is not an
// integral type here.
package shape

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Integral permits any integer type.
type Integral interface {
	constraints.Integer
}

// SignedIntegral permits any signed integer type.
type SignedIntegral interface {
	constraints.Signed
}

// UnsignedIntegral permits any unsigned integer type.
type UnsignedIntegral interface {
	constraints.Unsigned
}

// FloatingPoint permits any floating-point type.
type FloatingPoint interface {
	constraints.Float
}

// RationalNumber permits any integer or floating-point type.
type RationalNumber interface {
	constraints.Integer | constraints.Float
}

// String permits string and types derived from it.
type String interface {
	~string
}

// Scalar permits every type the input reader can extract from a token.
type Scalar interface {
	RationalNumber | ~bool | ~string
}

// Shape is the syntactic form of a scalar value.
type Shape int

const (
	Unknown Shape = iota
	Signed
	Unsigned
	Float
	Bool
	Text
)

// String returns the string representation of the shape
func (s Shape) String() string {
	switch s {
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// Of reports the shape of T.
func Of[T any]() Shape {
	return OfType(reflect.TypeOf((*T)(nil)).Elem())
}

// OfType reports the shape of t. Named types take the shape of their
// underlying kind.
func OfType(t reflect.Type) Shape {
	if t == nil {
		return Unknown
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Signed
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Unsigned
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.Bool:
		return Bool
	case reflect.String:
		return Text
	default:
		return Unknown
	}
}

// IsIntegral reports whether T is an integer type.
func IsIntegral[T any]() bool {
	s := Of[T]()
	return s == Signed || s == Unsigned
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T any]() bool {
	return Of[T]() == Signed
}

// IsUnsigned reports whether T is an unsigned integer type.
func IsUnsigned[T any]() bool {
	return Of[T]() == Unsigned
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T any]() bool {
	return Of[T]() == Float
}

// IsRational reports whether T is an integer or floating-point type.
func IsRational[T any]() bool {
	return IsIntegral[T]() || IsFloat[T]()
}

// IsString reports whether T is a string type. Pointers, byte slices and
// rune slices are not strings.
func IsString[T any]() bool {
	return Of[T]() == Text
}
