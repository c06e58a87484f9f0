// SPDX-License-Identifier: MIT

package lda

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Boundary is the hyperplane a·x + b = 0 between clusters K and J.
// Coefficients holds a_1..a_d followed by b; a·x + b > 0 on K's side.
type Boundary struct {
	K, J         int
	Coefficients []float64
}

// BoundaryCoefficients returns (a_1, …, a_d, b) of the hyperplane separating
// cluster k from cluster j:
//
//	a = Σ⁻¹·(μ_k − μ_j)ᵀ
//	b = −½·μ_k·Σ⁻¹·μ_kᵀ + ½·μ_j·Σ⁻¹·μ_jᵀ + ln(π_k/π_j)
//
// so that δ_k(x) − δ_j(x) = a·x + b. The result is built from the cached
// per-cluster terms as (w_k − w_j, c_k − c_j), which makes
// BoundaryCoefficients(j, k) the exact negation of BoundaryCoefficients(k, j).
//
// Errors: ErrInvalidInput when k == j or either index is outside [0, C).
// Complexity: O(d).
func (m *Model) BoundaryCoefficients(k, j int) ([]float64, error) {
	c := len(m.offsets)
	if k < 0 || k >= c || j < 0 || j >= c {
		return nil, fmt.Errorf("%w: %s: cluster index (%d,%d) outside [0,%d)", ErrInvalidInput, opBoundary, k, j, c)
	}
	if k == j {
		return nil, fmt.Errorf("%w: %s: clusters must differ, got k=j=%d", ErrInvalidInput, opBoundary, k)
	}

	d := m.Dims()
	wk, wj := m.weights.RawRowView(k), m.weights.RawRowView(j)
	coeffs := make([]float64, d+1)
	for i := 0; i < d; i++ {
		coeffs[i] = wk[i] - wj[i]
	}
	coeffs[d] = m.offsets[k] - m.offsets[j]

	return coeffs, nil
}

// Boundaries returns the hyperplane of every unordered pair k < j, in
// (0,1), (0,2), …, (1,2), … order.
func (m *Model) Boundaries() []Boundary {
	c := len(m.offsets)
	out := make([]Boundary, 0, c*(c-1)/2)
	var k, j int
	for k = 0; k < c; k++ {
		for j = k + 1; j < c; j++ {
			coeffs, _ := m.BoundaryCoefficients(k, j) // indices are valid by construction
			out = append(out, Boundary{K: k, J: j, Coefficients: coeffs})
		}
	}

	return out
}

// Side evaluates a·x + b for the boundary; positive means x falls on K's side.
func (b Boundary) Side(x []float64) (float64, error) {
	d := len(b.Coefficients) - 1
	if len(x) != d {
		return 0, fmt.Errorf("%w: Side: point has %d features, boundary has %d", ErrInvalidInput, len(x), d)
	}

	return floats.Dot(b.Coefficients[:d], x) + b.Coefficients[d], nil
}
