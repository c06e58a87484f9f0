// SPDX-License-Identifier: MIT

// Package sampler: functional configuration for New.
//   - documented defaults (constants),
//   - WithX constructors that panic only on nonsensical values,
//   - gatherOptions, which resolves the defaults.

package sampler

import (
	"math"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlda/internal/linalg"
)

const (
	// DefaultPSDTolerance is the relative negative-eigenvalue tolerance of
	// the covariance square root: λ < −tol·max|λ| is rejected.
	DefaultPSDTolerance = linalg.DefaultPSDTolerance

	// DefaultSymmetryTolerance bounds |Σ[i,j] − Σ[j,i]| relative to the
	// entry magnitude for covariances not already typed as mat.Symmetric.
	DefaultSymmetryTolerance = 1e-9

	// MixtureTolerance bounds |Σπ − 1| under WithStrictMixture.
	MixtureTolerance = 1e-9
)

const (
	panicNilSource         = "sampler: WithSource: source must not be nil"
	panicPSDTolerance      = "sampler: WithPSDTolerance: tol must be finite, non-negative"
	panicSymmetryTolerance = "sampler: WithSymmetryTolerance: eps must be finite, non-negative"
)

// Option configures New.
type Option func(*options)

type options struct {
	seed    uint64
	hasSeed bool
	src     rand.Source
	strict  bool
	psdTol  float64
	symTol  float64
	logger  *zap.Logger
}

// WithSeed makes generation reproducible: two samplers built with the same
// seed and inputs produce identical Generate sequences.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
		o.src = nil
	}
}

// WithSource injects the random source. The sampler takes ownership: the
// source must not be used elsewhere while the sampler is in use.
// Panics when src is nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *options) {
		o.src = src
		o.hasSeed = false
	}
}

// WithStrictMixture rejects mixture vectors whose sum differs from 1 by more
// than MixtureTolerance. By default such vectors are accepted and the
// residual mass goes to the last cluster.
func WithStrictMixture() Option {
	return func(o *options) { o.strict = true }
}

// WithPSDTolerance overrides DefaultPSDTolerance. Panics on a negative or
// non-finite tol.
func WithPSDTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicPSDTolerance)
	}

	return func(o *options) { o.psdTol = tol }
}

// WithSymmetryTolerance overrides DefaultSymmetryTolerance. Panics on a
// negative or non-finite eps.
func WithSymmetryTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicSymmetryTolerance)
	}

	return func(o *options) { o.symTol = eps }
}

// WithLogger routes construction and generation diagnostics to l at debug
// level. A nil logger disables logging (the default).
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

func gatherOptions(opts []Option) options {
	o := options{
		psdTol: DefaultPSDTolerance,
		symTol: DefaultSymmetryTolerance,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
