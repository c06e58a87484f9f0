// SPDX-License-Identifier: MIT

package lda

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlda/internal/linalg"
)

// Score returns the linear discriminant δ_k(x) of every cluster, in
// estimation order:
//
//	δ_k(x) = x·Σ⁻¹·μ_kᵀ − ½·μ_k·Σ⁻¹·μ_kᵀ + ln π_k
//
// The quadratic term x·Σ⁻¹·xᵀ is the same for every k and is omitted; it
// does not change the arg-max.
//
// Errors: ErrInvalidInput when len(x) ≠ d or x holds NaN/Inf.
// Complexity: O(C·d).
func (m *Model) Score(x []float64) ([]float64, error) {
	if err := linalg.ValidateVec(x, m.Dims()); err != nil {
		return nil, ldaErrorf(ErrInvalidInput, opScore, err)
	}

	return m.score(x, make([]float64, len(m.offsets))), nil
}

// score writes δ(x) into dst without validation.
func (m *Model) score(x, dst []float64) []float64 {
	for k := range dst {
		dst[k] = floats.Dot(x, m.weights.RawRowView(k)) + m.offsets[k]
	}

	return dst
}

// Predict returns the cluster with the largest discriminant score.
// Exact ties resolve to the lowest cluster index.
//
// Errors: same as Score.
func (m *Model) Predict(x []float64) (int, error) {
	scores, err := m.Score(x)
	if err != nil {
		return -1, err
	}

	return floats.MaxIdx(scores), nil
}

// PredictBatch classifies every row of X (n×d) and returns n labels.
//
// Errors: ErrInvalidInput for a nil/empty X, a column count ≠ d or NaN/Inf.
// Complexity: O(n·C·d).
func (m *Model) PredictBatch(X mat.Matrix) ([]int, error) {
	if err := linalg.ValidateNonEmpty(X); err != nil {
		return nil, ldaErrorf(ErrInvalidInput, opPredict, err)
	}
	d := m.Dims()
	if err := linalg.ValidateCols(X, d); err != nil {
		return nil, ldaErrorf(ErrInvalidInput, opPredict, err)
	}
	if err := linalg.ValidateFinite(X); err != nil {
		return nil, ldaErrorf(ErrInvalidInput, opPredict, err)
	}

	n, _ := X.Dims()
	labels := make([]int, n)
	row := make([]float64, d)
	scores := make([]float64, len(m.offsets))
	for i := 0; i < n; i++ {
		mat.Row(row, i, X)
		labels[i] = floats.MaxIdx(m.score(row, scores))
	}

	return labels, nil
}

// Posteriors returns P(cluster k | x) under the shared-covariance Gaussian
// model: the softmax of the discriminant scores. The omitted quadratic term
// cancels in the normalization, so these are exact posteriors.
//
// Errors: same as Score.
func (m *Model) Posteriors(x []float64) ([]float64, error) {
	if err := linalg.ValidateVec(x, m.Dims()); err != nil {
		return nil, ldaErrorf(ErrInvalidInput, opPosteriors, err)
	}
	p := m.score(x, make([]float64, len(m.offsets)))
	lse := floats.LogSumExp(p)
	for k := range p {
		p[k] = math.Exp(p[k] - lse)
	}

	return p, nil
}
