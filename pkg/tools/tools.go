// Package tools holds the random and numeric helpers of the Aardvark
// standard library.
package tools

import (
	crand "crypto/rand"
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/funvibe/aardvark/pkg/dynamic"
)

// Generator draws values from a single random stream. Successive draws are
// independent; the stream is seeded once. A Generator is not safe for
// concurrent use.
type Generator struct {
	r *rand.Rand
}

// NewGenerator returns a deterministic generator for seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomGenerator returns a generator seeded from system entropy.
func NewRandomGenerator() *Generator {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return NewGenerator(rand.Uint64())
	}
	return &Generator{r: rand.New(rand.NewChaCha8(seed))}
}

// FromSeed returns NewGenerator(seed) for a non-zero seed and a randomly
// seeded generator otherwise.
func FromSeed(seed uint64) *Generator {
	if seed == 0 {
		return NewRandomGenerator()
	}
	return NewGenerator(seed)
}

// RandNum returns a Double uniformly distributed in [0, 1).
func (g *Generator) RandNum() dynamic.Double {
	return dynamic.Double(g.r.Float64())
}

// RandInt returns an Int uniformly distributed over the inclusive range
// between start and end. The bounds may be given in either order.
func (g *Generator) RandInt(start, end int64) dynamic.Int {
	lo, hi := start, end
	if lo > hi {
		lo, hi = hi, lo
	}
	span := uint64(hi-lo) + 1
	if span == 0 {
		// [MinInt64, MaxInt64]
		return dynamic.Int(int64(g.r.Uint64()))
	}
	return dynamic.Int(lo + int64(g.r.Uint64N(span)))
}

// RandomChoice returns one of values, each with equal probability.
func (g *Generator) RandomChoice(values ...dynamic.Value) (dynamic.Value, error) {
	if len(values) == 0 {
		return nil, errors.WithMessage(dynamic.ErrUnsupported, "random choice from an empty list")
	}
	return values[g.r.IntN(len(values))], nil
}

var std = NewRandomGenerator()

// RandNum draws from the default generator.
func RandNum() dynamic.Double { return std.RandNum() }

// RandInt draws from the default generator.
func RandInt(start, end int64) dynamic.Int { return std.RandInt(start, end) }

// RandomChoice draws from the default generator.
func RandomChoice(values ...dynamic.Value) (dynamic.Value, error) {
	return std.RandomChoice(values...)
}
