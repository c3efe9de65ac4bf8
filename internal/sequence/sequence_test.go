package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	ints  = []int{1, 2, 3, 4, 5}
	large = []int64{10_000_000_000, 20_000_000_000, 30_000_000_000, 40_000_000_000}
)

func TestSum(t *testing.T) {
	tests := []struct {
		name          string
		start, length int
		want          int
	}{
		{"whole range", 0, len(ints), 15},
		{"subrange", 1, 3, 9},
		{"empty length", 2, 0, 0},
		{"single element", 4, 1, 5},
		{"start at end", len(ints), 0, 0},
		{"start beyond end", len(ints) + 5, 1, 0},
		{"length too large", 1, 10, 0},
		{"negative start", -1, 2, 0},
		{"negative length", 1, -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sum(ints, tt.start, tt.length))
		})
	}
}

func TestSumFrom(t *testing.T) {
	assert.Equal(t, 15, SumFrom(ints, 0))
	assert.Equal(t, 12, SumFrom(ints, 2))
	assert.Equal(t, 0, SumFrom(ints, len(ints)))
	assert.Equal(t, 0, SumFrom(ints, len(ints)+5))
	assert.Equal(t, 0, SumFrom([]int{}, 0))
}

func TestSumDifferentIntegralTypes(t *testing.T) {
	assert.Equal(t, int64(100_000_000_000), SumFrom(large, 0))
	assert.Equal(t, uint8(6), Sum([]uint8{1, 2, 3}, 0, 3))
}
