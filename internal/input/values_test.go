package input

import (
	"bytes"
	"context"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/basekit/internal/errors"
	"github.com/conneroisu/basekit/internal/shape"
)

func TestBetweenReportsOutOfRangeOnce(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("9\n3\n"), &out)

	v, err := Between(context.Background(), r, 1, 5, WithPrompt("Enter 1-5:"))
	require.NoError(t, err)

	assert.Equal(t, 3, v)
	assert.Equal(t, "Enter 1-5:9 was not in the range of [1, 5].\n", out.String())
}

func TestBetweenInclusiveBounds(t *testing.T) {
	for _, want := range []int{1, 5} {
		r, out := newTestReader(strconv.Itoa(want) + "\n")

		v, err := Between(context.Background(), r, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, want, v)
		assert.Equal(t, prompt, out.String())
	}
}

func TestBetweenMalformedThenOutOfRange(t *testing.T) {
	r, out := newTestReader("abc\n-4\n2\n")

	v, err := Between(context.Background(), r, 0, 10)
	require.NoError(t, err)

	assert.Equal(t, 2, v)
	assert.Equal(t,
		prompt+errMsg+"\n"+prompt+"-4 was not in the range of [0, 10].\n",
		out.String())
}

func TestBetweenFloats(t *testing.T) {
	r, out := newTestReader("0.75\n0.25\n")

	v, err := Between(context.Background(), r, 0.0, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)
	assert.Contains(t, out.String(), "0.75 was not in the range of [0, 0.5].")
}

func TestBetweenEmptyRange(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		run  func(r *Reader) error
	}{
		{"min above max", func(r *Reader) error {
			_, err := Between(ctx, r, 5, 1)
			return err
		}},
		{"nan bound", func(r *Reader) error {
			_, err := Between(ctx, r, math.NaN(), 1.0)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestReader("3\n")
			err := tt.run(r)
			assert.ErrorIs(t, err, ErrEmptyRange)
			assert.True(t, errors.IsValidationError(err))
			assert.Empty(t, out.String())
		})
	}
}

func TestBetweenSingletonRange(t *testing.T) {
	r, _ := newTestReader("4\n")

	v, err := Between(context.Background(), r, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestBetweenStreamClosedAfterRejection(t *testing.T) {
	r, out := newTestReader("99\n")

	_, err := Between(context.Background(), r, 1, 5)
	assert.ErrorIs(t, err, ErrStreamClosed)
	assert.Contains(t, out.String(), "99 was not in the range of [1, 5].")
}

func TestOneOf(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("4\n7\n"), &out)

	v, err := OneOf(context.Background(), r, []int{2, 7, 9}, WithPrompt(""))
	require.NoError(t, err)

	assert.Equal(t, 7, v)
	assert.Equal(t, "4 was not within the provided choices.\n", out.String())
}

func TestOneOfStrings(t *testing.T) {
	r, _ := newTestReader("purple\nred\n")

	v, err := OneOf(context.Background(), r, []string{"red", "green", "blue"})
	require.NoError(t, err)
	assert.Equal(t, "red", v)
}

func TestOneOfEmptyChoices(t *testing.T) {
	r, out := newTestReader("1\n")

	_, err := OneOf[int](context.Background(), r, nil)
	assert.ErrorIs(t, err, ErrNoChoices)
	assert.Empty(t, out.String())
}

func TestSatisfying(t *testing.T) {
	var out bytes.Buffer
	r := NewReader(strings.NewReader("3\n8\n"), &out)

	even := func(v int) bool { return v%2 == 0 }
	v, err := Satisfying(context.Background(), r, even, WithPrompt("Even: "))
	require.NoError(t, err)

	assert.Equal(t, 8, v)
	assert.Equal(t,
		"Even: 3 did not meet the conditions laid out by the provided function.\n",
		out.String())
}

func TestSatisfyingNilPredicate(t *testing.T) {
	r, _ := newTestReader("1\n")

	_, err := Satisfying[int](context.Background(), r, nil)
	assert.ErrorIs(t, err, ErrNilPredicate)
}

func TestConstrainedRetryKeepsCallerOptions(t *testing.T) {
	// Lenient mode must still apply after a rejection.
	r, _ := newTestReader("9 junk\n3 junk\n")

	v, err := Between(context.Background(), r, 1, 5, WithStrict(false))
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestParseScalar(t *testing.T) {
	i, err := ParseScalar[int64]("-9223372036854775808")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), i)

	_, err = ParseScalar[int8]("128")
	assert.Error(t, err)

	u, err := ParseScalar[uint64]("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), u)

	f, err := ParseScalar[float32]("1.5")
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f)

	_, err = ParseScalar[float64]("-Inf")
	assert.Error(t, err)

	_, err = ParseScalar[int]("0x10")
	assert.Error(t, err)
}

func TestNumericPrefix(t *testing.T) {
	tests := []struct {
		token string
		kind  shape.Shape
		want  int
	}{
		{"12abc", shape.Signed, 2},
		{"-7x", shape.Signed, 2},
		{"+3", shape.Signed, 2},
		{"-", shape.Signed, 0},
		{"abc", shape.Signed, 0},
		{"3.5", shape.Signed, 1},
		{"-1", shape.Unsigned, 0},
		{"0x10", shape.Unsigned, 1},
		{"3.5kg", shape.Float, 3},
		{".5", shape.Float, 2},
		{"3.", shape.Float, 2},
		{".", shape.Float, 0},
		{"1e5x", shape.Float, 3},
		{"1e", shape.Float, 1},
		{"-2.5E-3!", shape.Float, 7},
		{"inf", shape.Float, 0},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+" "+tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, numericPrefix(tt.token, tt.kind))
		})
	}
}

func TestLenientValueParsesNumericPrefix(t *testing.T) {
	ctx := context.Background()

	t.Run("float with unit", func(t *testing.T) {
		r, out := newTestReader("2.5kg\n")
		v, err := Value[float64](ctx, r, WithStrict(false))
		require.NoError(t, err)
		assert.Equal(t, 2.5, v)
		assert.Equal(t, prompt, out.String())
	})

	t.Run("prefix overflow is malformed", func(t *testing.T) {
		r, out := newTestReader("300x\n5\n")
		v, err := Value[uint8](ctx, r, WithStrict(false))
		require.NoError(t, err)
		assert.Equal(t, uint8(5), v)
		assert.Equal(t, 1, strings.Count(out.String(), errMsg))
	})

	t.Run("bool needs the whole token", func(t *testing.T) {
		r, out := newTestReader("truex\nfalse\n")
		v, err := Value[bool](ctx, r, WithStrict(false))
		require.NoError(t, err)
		assert.False(t, v)
		assert.Equal(t, 1, strings.Count(out.String(), errMsg))
	})

	t.Run("range check applies to the prefix", func(t *testing.T) {
		r, out := newTestReader("9x\n3x\n")
		v, err := Between(ctx, r, 1, 5, WithStrict(false))
		require.NoError(t, err)
		assert.Equal(t, 3, v)
		assert.Contains(t, out.String(), "9 was not in the range of [1, 5].\n")
	})
}

func TestParseConfirm(t *testing.T) {
	for _, yes := range []string{"y", "Yes", "TRUE", "1"} {
		v, err := ParseConfirm(yes)
		require.NoError(t, err, yes)
		assert.True(t, v, yes)
	}
	for _, no := range []string{"n", "NO", "false", "0"} {
		v, err := ParseConfirm(no)
		require.NoError(t, err, no)
		assert.False(t, v, no)
	}
	_, err := ParseConfirm("perhaps")
	assert.Error(t, err)
}
