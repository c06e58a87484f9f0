// SPDX-License-Identifier: MIT

package lda

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlda/internal/linalg"
)

// Model is an estimated LDA classifier. It is created once by Estimate and
// never mutated; every method is read-only and safe for concurrent use.
type Model struct {
	counts     []int         // n_k per cluster
	priors     []float64     // π_k = n_k / N
	means      *mat.Dense    // C×d, row k = μ_k
	covariance *mat.SymDense // pooled Σ (d×d)
	precision  *mat.SymDense // Σ⁻¹, cached
	weights    *mat.Dense    // C×d, row k = (Σ⁻¹·μ_kᵀ)ᵀ
	offsets    []float64     // c_k = −½·μ_k·Σ⁻¹·μ_kᵀ + ln π_k
	cond       float64       // condition number of Σ
}

// Estimate fits an LDA model to an ordered set of clusters.
//
// Description:
//
//	clusters[k] holds the samples of cluster k, one row per sample (n_k×d).
//	The cluster order is the label order used by every query method.
//
// Algorithm:
//  1. Validate: C ≥ 1; every cluster non-empty, finite, with the same d.
//  2. priors[k] = n_k / N.
//  3. For each cluster: center by its own mean (μ_k) and accumulate Xcᵀ·Xc.
//  4. Σ = scatter / (N−1), a single shared normalization.
//  5. Factor Σ once (Cholesky) and cache Σ⁻¹, w_k = Σ⁻¹·μ_kᵀ, c_k.
//
// Errors:
//   - ErrInvalidInput: C = 0, nil/empty cluster, mismatched columns, NaN/Inf.
//   - ErrDegenerateCovariance: N < 2, or Σ is singular / not positive definite.
//
// Complexity:
//
//	Time   = O(N·d² + d³)
//	Memory = O(N_max·d + C·d + d²)
func Estimate(clusters []mat.Matrix, opts ...Option) (*Model, error) {
	o := gatherOptions(opts)

	d, err := validateClusters(clusters)
	if err != nil {
		return nil, err
	}
	c := len(clusters)

	counts := make([]int, c)
	total := 0
	for k, x := range clusters {
		counts[k], _ = x.Dims()
		total += counts[k]
	}

	priors := make([]float64, c)
	for k, n := range counts {
		priors[k] = float64(n) / float64(total)
	}

	means := mat.NewDense(c, d, nil)
	scatter := mat.NewSymDense(d, nil)
	for k, x := range clusters {
		xc, mu, err := linalg.CenterColumns(x)
		if err != nil {
			return nil, ldaErrorf(ErrInvalidInput, opEstimate, err)
		}
		means.SetRow(k, mu)
		if err = linalg.Scatter(scatter, xc); err != nil {
			return nil, ldaErrorf(ErrInvalidInput, opEstimate, err)
		}
	}

	// N−1 = 0 would divide by zero; there is no covariance to estimate.
	if total < 2 {
		return nil, ldaErrorf(ErrDegenerateCovariance, opEstimate, linalg.ErrSingular)
	}
	cov := mat.NewSymDense(d, nil)
	cov.ScaleSym(1/float64(total-1), scatter)

	precision, cond, err := linalg.InverseSPD(cov)
	if err != nil {
		o.logger.Debug("lda: pooled covariance is not invertible",
			zap.Int("samples", total), zap.Int("dims", d), zap.Float64("condition", cond))
		return nil, ldaErrorf(ErrDegenerateCovariance, opEstimate, err)
	}

	// Σ⁻¹ is symmetric, so row k of M·Σ⁻¹ equals (Σ⁻¹·μ_kᵀ)ᵀ.
	weights := mat.NewDense(c, d, nil)
	weights.Mul(means, precision)

	offsets := make([]float64, c)
	for k := 0; k < c; k++ {
		offsets[k] = -0.5*floats.Dot(means.RawRowView(k), weights.RawRowView(k)) + math.Log(priors[k])
	}

	o.logger.Debug("lda: model estimated",
		zap.Int("clusters", c),
		zap.Int("dims", d),
		zap.Int("samples", total),
		zap.Float64("condition", cond))

	return &Model{
		counts:     counts,
		priors:     priors,
		means:      means,
		covariance: cov,
		precision:  precision,
		weights:    weights,
		offsets:    offsets,
		cond:       cond,
	}, nil
}

// validateClusters checks the cluster set and returns the shared dimensionality d.
func validateClusters(clusters []mat.Matrix) (int, error) {
	if len(clusters) == 0 {
		return 0, ldaErrorf(ErrInvalidInput, opEstimate, linalg.ErrEmpty)
	}
	var d int
	for k, x := range clusters {
		if err := linalg.ValidateNonEmpty(x); err != nil {
			return 0, clusterErrorf(k, err)
		}
		if k == 0 {
			_, d = x.Dims()
		} else if err := linalg.ValidateCols(x, d); err != nil {
			return 0, clusterErrorf(k, err)
		}
		if err := linalg.ValidateFinite(x); err != nil {
			return 0, clusterErrorf(k, err)
		}
	}

	return d, nil
}

// clusterErrorf names the offending cluster while keeping the cause matchable.
func clusterErrorf(k int, err error) error {
	return ldaErrorf(ErrInvalidInput, opEstimate, fmt.Errorf("cluster %d: %w", k, err))
}

// Dims returns the feature dimensionality d.
func (m *Model) Dims() int {
	_, d := m.means.Dims()

	return d
}

// NumClusters returns the number of clusters C.
func (m *Model) NumClusters() int { return len(m.priors) }

// Priors returns a copy of the estimated cluster priors π_k.
func (m *Model) Priors() []float64 { return append([]float64(nil), m.priors...) }

// Counts returns a copy of the per-cluster sample counts n_k.
func (m *Model) Counts() []int { return append([]int(nil), m.counts...) }

// Means returns a copy of the C×d matrix of cluster means.
func (m *Model) Means() *mat.Dense { return mat.DenseCopyOf(m.means) }

// Covariance returns a copy of the pooled covariance Σ.
func (m *Model) Covariance() *mat.SymDense { return copySym(m.covariance) }

// Precision returns a copy of the cached inverse covariance Σ⁻¹.
func (m *Model) Precision() *mat.SymDense { return copySym(m.precision) }

// Condition returns the estimated condition number of Σ.
func (m *Model) Condition() float64 { return m.cond }

func copySym(s *mat.SymDense) *mat.SymDense {
	n, _ := s.Dims()
	out := mat.NewSymDense(n, nil)
	out.CopySym(s)

	return out
}
