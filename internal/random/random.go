// Package random provides an injectable pseudo-random number generator for
// inclusive integer ranges. There is no package-level generator; callers
// construct one and pass it to whatever needs randomness.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"golang.org/x/exp/constraints"
)

// Source is the capability a Random draws bits from. *rand.PCG and
// *rand.ChaCha8 satisfy it, and tests can supply a fixed sequence.
type Source interface {
	Uint64() uint64
}

// Random produces uniformly distributed integers. It is not safe for
// concurrent use.
type Random struct {
	rng *rand.Rand
}

// New returns a deterministic generator seeded with seed.
func New(seed uint64) *Random {
	return FromSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeeded returns a generator seeded from the clock and the operating
// system's entropy source.
func NewSeeded() *Random {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand only fails on broken platforms; the clock still varies.
		binary.LittleEndian.PutUint64(seed[:8], uint64(time.Now().UnixNano()))
	}
	binary.LittleEndian.PutUint64(seed[24:], binary.LittleEndian.Uint64(seed[24:])^uint64(time.Now().UnixNano()))

	return FromSource(rand.NewChaCha8(seed))
}

// FromSource wraps an arbitrary Source.
func FromSource(src Source) *Random {
	return &Random{rng: rand.New(src)}
}

// Int returns a value in [min, max].
func (r *Random) Int(min, max int) int {
	return Between(r, min, max)
}

// Between returns a value of T in [min, max]. It panics if min > max.
func Between[T constraints.Integer](r *Random, min, max T) T {
	if min > max {
		panic(fmt.Sprintf("random: invalid range [%v, %v]", min, max))
	}

	span := uint64(max) - uint64(min)

	var offset uint64
	if span == math.MaxUint64 {
		offset = r.rng.Uint64()
	} else {
		offset = r.rng.Uint64N(span + 1)
	}

	return T(uint64(min) + offset)
}
