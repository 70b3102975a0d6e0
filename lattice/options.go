// options.go - functional options and coupling distributions.

package lattice

import (
	"fmt"
	"math/rand"
)

// DefaultCoupling is the coupling strength used when no CouplingFn is set.
// Positive, i.e. antiferromagnetic.
const DefaultCoupling float64 = 1

// CouplingFn produces a coupling strength given an optional *rand.Rand.
// It must be deterministic for a fixed RNG state.
type CouplingFn func(rng *rand.Rand) float64

// ConstantCoupling returns a CouplingFn that always yields j. Negative j is
// valid (ferromagnetic).
func ConstantCoupling(j float64) CouplingFn {
	return func(_ *rand.Rand) float64 { return j }
}

// UniformCoupling returns a CouplingFn sampling uniformly from [min, max).
// Panics if max < min. Without an RNG it falls back to the midpoint, so
// unseeded use stays deterministic.
func UniformCoupling(min, max float64) CouplingFn {
	if max < min {
		panic(fmt.Sprintf("lattice: UniformCoupling: min=%g > max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return (min + max) / 2
		}
		return min + rng.Float64()*(max-min)
	}
}

// SpinGlassCoupling returns a CouplingFn yielding ±j with equal
// probability. Panics if j < 0. Without an RNG it always yields +j.
func SpinGlassCoupling(j float64) CouplingFn {
	if j < 0 {
		panic(fmt.Sprintf("lattice: SpinGlassCoupling: j=%g must be ≥ 0", j))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || rng.Intn(2) == 0 {
			return j
		}
		return -j
	}
}

// config collects generator settings; mutated only through Options.
type config struct {
	couplingFn CouplingFn
	rng        *rand.Rand
	offset     float64
}

func defaultConfig() config {
	return config{couplingFn: ConstantCoupling(DefaultCoupling)}
}

// Option customizes a generator.
type Option func(*config)

// WithCouplingFn sets the coupling distribution. Panics on nil.
func WithCouplingFn(fn CouplingFn) Option {
	if fn == nil {
		panic("lattice: WithCouplingFn(nil)")
	}
	return func(c *config) { c.couplingFn = fn }
}

// WithSeed installs a deterministic RNG for stochastic coupling functions.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("lattice: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithOffset sets the constant energy term of the generated model.
func WithOffset(offset float64) Option {
	return func(c *config) { c.offset = offset }
}
