package input

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/conneroisu/basekit/internal/errors"
	"github.com/conneroisu/basekit/internal/shape"
)

// Value extracts a scalar of type T. Integers are read in base 10 and must
// fit T; floats must be finite; bools use strconv.ParseBool; strings accept
// any single token.
//
// In lenient mode a number only needs a valid prefix: "12abc" reads 12 and
// "3.5" read as an int gives 3. The rest of the line is discarded.
func Value[T shape.Scalar](ctx context.Context, r *Reader, opts ...Option) (T, error) {
	if !r.options(opts).Strict {
		return Parse(ctx, r, parseScalarPrefix[T], opts...)
	}

	return Parse(ctx, r, ParseScalar[T], opts...)
}

// ParseScalar converts token to T using the grammar for T's shape.
func ParseScalar[T shape.Scalar](token string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()

	switch shape.OfType(rv.Type()) {
	case shape.Signed:
		n, err := strconv.ParseInt(token, 10, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetInt(n)
	case shape.Unsigned:
		n, err := strconv.ParseUint(token, 10, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetUint(n)
	case shape.Float:
		f, err := strconv.ParseFloat(token, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return v, fmt.Errorf("%q is not a finite number", token)
		}
		rv.SetFloat(f)
	case shape.Bool:
		b, err := strconv.ParseBool(token)
		if err != nil {
			return v, err
		}
		rv.SetBool(b)
	case shape.Text:
		rv.SetString(token)
	default:
		return v, fmt.Errorf("unsupported type %s", rv.Type())
	}

	return v, nil
}

// parseScalarPrefix parses the longest numeric prefix of token. Other shapes
// still need the whole token.
func parseScalarPrefix[T shape.Scalar](token string) (T, error) {
	var v T

	switch kind := shape.Of[T](); kind {
	case shape.Signed, shape.Unsigned, shape.Float:
		n := numericPrefix(token, kind)
		if n == 0 {
			return v, fmt.Errorf("%q does not start with a number", token)
		}

		return ParseScalar[T](token[:n])
	default:
		return ParseScalar[T](token)
	}
}

// numericPrefix returns the length of the longest prefix of s that reads as a
// base-10 number of the given shape, or 0 when there is none.
func numericPrefix(s string, kind shape.Shape) int {
	i := 0
	if kind != shape.Unsigned && i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := skipDigits(s, i)
	end := 0
	if digits > i {
		end = digits
	}
	i = digits

	if kind != shape.Float {
		return end
	}

	if i < len(s) && s[i] == '.' {
		if frac := skipDigits(s, i+1); frac > i+1 || end > 0 {
			end, i = frac, frac
		}
	}
	if end == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if exp := skipDigits(s, j); exp > j {
			end = exp
		}
	}

	return end
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	return i
}

// Char extracts a token consisting of exactly one character.
func Char(ctx context.Context, r *Reader, opts ...Option) (rune, error) {
	return Parse(ctx, r, func(token string) (rune, error) {
		if utf8.RuneCountInString(token) != 1 {
			return 0, fmt.Errorf("expected a single character, got %q", token)
		}
		c, _ := utf8.DecodeRuneInString(token)

		return c, nil
	}, opts...)
}

// Confirm extracts a yes/no answer. y, yes, true and 1 mean yes; n, no,
// false and 0 mean no; case is ignored.
func Confirm(ctx context.Context, r *Reader, opts ...Option) (bool, error) {
	return Parse(ctx, r, ParseConfirm, opts...)
}

// ParseConfirm is the parser behind Confirm.
func ParseConfirm(token string) (bool, error) {
	switch strings.ToLower(token) {
	case "y", "yes", "true", "1":
		return true, nil
	case "n", "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("expected yes or no, got %q", token)
	}
}

// Between extracts a value in the inclusive range [min, max]. Each
// out-of-range value is reported once and the user is asked again without
// repeating the prompt.
func Between[T shape.RationalNumber](ctx context.Context, r *Reader, min, max T, opts ...Option) (T, error) {
	var zero T
	if min > max || isNaN(min) || isNaN(max) {
		return zero, errors.NewValidationError(errors.ErrCodeEmptyRange,
			fmt.Sprintf("range [%v, %v] is empty", min, max)).WithComponent("input")
	}

	return constrained(ctx, r, opts,
		func(v T) bool { return v >= min && v <= max },
		func(v T) string { return fmt.Sprintf("%v was not in the range of [%v, %v].", v, min, max) },
	)
}

// OneOf extracts a value equal to one of choices, found by linear scan.
func OneOf[T shape.Scalar](ctx context.Context, r *Reader, choices []T, opts ...Option) (T, error) {
	var zero T
	if len(choices) == 0 {
		return zero, errors.NewValidationError(errors.ErrCodeNoChoices, "no choices to select from").
			WithComponent("input")
	}

	return constrained(ctx, r, opts,
		func(v T) bool { return slices.Contains(choices, v) },
		func(v T) string { return fmt.Sprintf("%v was not within the provided choices.", v) },
	)
}

// Satisfying extracts a value for which pred returns true.
func Satisfying[T shape.Scalar](ctx context.Context, r *Reader, pred func(T) bool, opts ...Option) (T, error) {
	var zero T
	if pred == nil {
		return zero, errors.NewValidationError(errors.ErrCodeNilPredicate, "predicate is nil").
			WithComponent("input")
	}

	return constrained(ctx, r, opts, pred,
		func(v T) string {
			return fmt.Sprintf("%v did not meet the conditions laid out by the provided function.", v)
		},
	)
}

// constrained reads a scalar and keeps re-reading, with the prompt already
// shown, until accept holds.
func constrained[T shape.Scalar](
	ctx context.Context,
	r *Reader,
	opts []Option,
	accept func(T) bool,
	reject func(T) string,
) (T, error) {
	v, err := Value[T](ctx, r, opts...)
	retry := append(slices.Clip(opts), PromptShown())

	for err == nil && !accept(v) {
		r.printf("%s\n", reject(v))
		r.logger.Debug(ctx, "Value rejected by constraint")

		v, err = Value[T](ctx, r, retry...)
	}

	return v, err
}

// isNaN reports whether v is a floating-point NaN; it is always false for
// integers.
func isNaN[T shape.RationalNumber](v T) bool {
	return v != v
}
