// Package seed implements deterministic seed derivation and the
// sampling disciplines built on top of it. A Generator maps a string
// to a reproducible stream of integers; a Sampler expands a master
// seed into structured seed sets.
package seed

import (
	"fmt"
	"math/rand"

	"seedhash/domain/core"
)

// Generator deterministically draws integers within a range, seeded
// by the digest of its input string.
//
// Every Generator owns a private PRNG stream: no process-wide random
// state is seeded or read, so independent instances are safe to use
// concurrently. A single instance is not safe for concurrent Generate
// calls (each call reseeds the stream).
type Generator struct {
	input  string
	bounds core.Range
	seed   int64
	digest core.Digest
}

// NewGenerator builds a generator over the default platform-safe range.
func NewGenerator(input string) (*Generator, error) {
	return NewGeneratorWithRange(input, core.DefaultMin, core.DefaultMax)
}

// NewGeneratorWithRange builds a generator over [min, max]. The input
// string and the range are validated eagerly so configuration errors
// surface at construction, not at draw time.
func NewGeneratorWithRange(input string, min, max int64) (*Generator, error) {
	seedNumber, digest, err := core.DeriveSeed(input)
	if err != nil {
		return nil, err
	}

	bounds := core.Range{Min: min, Max: max}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	return &Generator{
		input:  input,
		bounds: bounds,
		seed:   seedNumber,
		digest: digest,
	}, nil
}

// Generate draws count uniform integers in [Min, Max] inclusive, with
// replacement, in draw order.
//
// The stream is reseeded from the derived seed on every call: two
// calls with the same count return identical sequences, and calls
// with different counts are each drawn from scratch (they are not
// prefixes of one another).
func (g *Generator) Generate(count int) ([]int64, error) {
	if count <= 0 {
		return nil, core.NewInvalidCountError(count)
	}

	rng := rand.New(rand.NewSource(g.seed))
	span := g.bounds.Span()

	values := make([]int64, count)
	for i := range values {
		values[i] = g.bounds.Min + rng.Int63n(span)
	}
	return values, nil
}

// Hash returns the full 32-character hex digest of the input string,
// independent of the truncated seed width used internally.
func (g *Generator) Hash() string {
	return g.digest.String()
}

// Seed returns the integer seed derived from the input string.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Bounds returns the validated range the generator draws from.
func (g *Generator) Bounds() core.Range {
	return g.bounds
}

func (g *Generator) String() string {
	return fmt.Sprintf("Generator(input=%q, min=%d, max=%d, seed=%d)",
		g.input, g.bounds.Min, g.bounds.Max, g.seed)
}
