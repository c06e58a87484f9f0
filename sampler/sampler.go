// SPDX-License-Identifier: MIT

package sampler

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlda/internal/linalg"
)

// Sampler generates clustered multivariate Gaussian samples with a shared
// covariance. Its configuration is fixed by New; only the random stream
// advances, under mu.
type Sampler struct {
	means      *mat.Dense    // C×d target means
	mixture    []float64     // C mixture probabilities, as supplied
	thresholds []float64     // cumulative sums of mixture
	sqrt       *mat.SymDense // S with S·S = Σ
	seed       uint64
	seeded     bool
	logger     *zap.Logger

	mu     sync.Mutex
	stream stream
}

// New builds a Sampler for covariance cov (d×d), cluster means (C×d) and
// mixture probabilities (length C).
//
// Implementation:
//   - Stage 1: Validate shapes and finiteness of cov, means and mixture.
//   - Stage 2: Read cov as symmetric (averaging triangles within tolerance).
//   - Stage 3: Compute S = Q·diag(√λ)·Qᵀ once; clamp tiny negative λ to 0.
//   - Stage 4: Precompute cumulative thresholds and set up the random stream.
//
// Errors:
//   - ErrInvalidInput: nil/empty matrices, cov not square, means columns ≠ d,
//     means rows ≠ len(mixture), empty mixture, negative or non-finite
//     mixture entries, NaN/Inf in cov or means; with WithStrictMixture also a
//     mixture whose sum is not 1 within MixtureTolerance.
//   - ErrDegenerateCovariance: cov asymmetric, eigen decomposition failed, or
//     an eigenvalue below −tol·max|λ|.
//
// Complexity: O(d³ + C·d).
func New(cov, means mat.Matrix, mixture []float64, opts ...Option) (*Sampler, error) {
	o := gatherOptions(opts)

	if err := validateInputs(cov, means, mixture, o.strict); err != nil {
		return nil, err
	}

	sym, err := linalg.AsSymmetric(cov, o.symTol)
	if err != nil {
		if errors.Is(err, linalg.ErrAsymmetry) {
			return nil, samplerErrorf(ErrDegenerateCovariance, opNew, err)
		}
		return nil, samplerErrorf(ErrInvalidInput, opNew, err)
	}
	sqrt, err := linalg.SqrtSym(sym, o.psdTol)
	if err != nil {
		o.logger.Debug("sampler: covariance has no real square root", zap.Error(err))
		return nil, samplerErrorf(ErrDegenerateCovariance, opNew, err)
	}

	s := &Sampler{
		means:      mat.DenseCopyOf(means),
		mixture:    append([]float64(nil), mixture...),
		thresholds: floats.CumSum(make([]float64, len(mixture)), mixture),
		sqrt:       sqrt,
		logger:     o.logger,
	}

	src := o.src
	if src == nil {
		s.seed, s.seeded = o.seed, true
		if !o.hasSeed {
			s.seed = rand.Uint64()
		}
		src = sourceFromSeed(s.seed)
	}
	s.stream = newStream(src)

	d, _ := cov.Dims()
	o.logger.Debug("sampler: built",
		zap.Int("clusters", len(mixture)),
		zap.Int("dims", d),
		zap.Float64("mixture_sum", floats.Sum(mixture)),
		zap.Bool("seeded", s.seeded),
		zap.Uint64("seed", s.seed))

	return s, nil
}

// validateInputs performs every ErrInvalidInput check of New.
func validateInputs(cov, means mat.Matrix, mixture []float64, strict bool) error {
	if err := linalg.ValidateNonEmpty(cov); err != nil {
		return samplerErrorf(ErrInvalidInput, opNew, fmt.Errorf("covariance: %w", err))
	}
	if err := linalg.ValidateSquare(cov); err != nil {
		return samplerErrorf(ErrInvalidInput, opNew, fmt.Errorf("covariance: %w", err))
	}
	if err := linalg.ValidateFinite(cov); err != nil {
		return samplerErrorf(ErrInvalidInput, opNew, fmt.Errorf("covariance: %w", err))
	}

	d, _ := cov.Dims()
	if err := linalg.ValidateNonEmpty(means); err != nil {
		return samplerErrorf(ErrInvalidInput, opNew, fmt.Errorf("means: %w", err))
	}
	if err := linalg.ValidateCols(means, d); err != nil {
		return samplerErrorf(ErrInvalidInput, opNew, fmt.Errorf("means: %w", err))
	}
	if err := linalg.ValidateFinite(means); err != nil {
		return samplerErrorf(ErrInvalidInput, opNew, fmt.Errorf("means: %w", err))
	}

	c, _ := means.Dims()
	if len(mixture) != c {
		return samplerErrorf(ErrInvalidInput, opNew,
			fmt.Errorf("%w: %d mixture entries for %d means: %w", errMixture, len(mixture), c, linalg.ErrDimensionMismatch))
	}
	for k, p := range mixture {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return samplerErrorf(ErrInvalidInput, opNew, fmt.Errorf("%w: entry %d: %w", errMixture, k, linalg.ErrNaNInf))
		}
		if p < 0 {
			return samplerErrorf(ErrInvalidInput, opNew, fmt.Errorf("%w: entry %d is negative (%g)", errMixture, k, p))
		}
	}
	if sum := floats.Sum(mixture); strict && math.Abs(sum-1) > MixtureTolerance {
		return samplerErrorf(ErrInvalidInput, opNew, fmt.Errorf("%w: sum is %g, want 1", errMixture, sum))
	}

	return nil
}

// Dims returns the feature dimensionality d.
func (s *Sampler) Dims() int {
	_, d := s.means.Dims()

	return d
}

// Clusters returns the number of clusters C.
func (s *Sampler) Clusters() int { return len(s.mixture) }

// Means returns a copy of the C×d target means.
func (s *Sampler) Means() *mat.Dense { return mat.DenseCopyOf(s.means) }

// Mixture returns a copy of the mixture probabilities as supplied to New.
func (s *Sampler) Mixture() []float64 { return append([]float64(nil), s.mixture...) }

// Sqrt returns a copy of the covariance square root S (S·S = Σ).
func (s *Sampler) Sqrt() *mat.SymDense {
	n, _ := s.sqrt.Dims()
	out := mat.NewSymDense(n, nil)
	out.CopySym(s.sqrt)

	return out
}

// Seed returns the seed of the random stream. The second result is false
// when the stream was injected with WithSource.
func (s *Sampler) Seed() (uint64, bool) { return s.seed, s.seeded }
