// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Column statistics used by pooled covariance estimation:
//     ColumnMeans, CenterColumns and Scatter (Xcᵀ·Xc accumulation).
//
// Determinism & Performance:
//   - Fixed j order for means; Scatter is a BLAS symmetric rank-k update,
//     O(N·d²) for a d×d pooled scatter over N rows.

package linalg

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ColumnMeans returns the arithmetic mean of every column of X.
//
// Errors: ErrNilMatrix, ErrEmpty.
// Complexity: O(r*c) time, O(r + c) extra space.
func ColumnMeans(X mat.Matrix) ([]float64, error) {
	if err := ValidateNonEmpty(X); err != nil {
		return nil, linalgErrorf(opCenterColumns, err)
	}
	r, c := X.Dims()
	means := make([]float64, c)
	col := make([]float64, r) // reused column buffer
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		means[j] = stat.Mean(col, nil)
	}

	return means, nil
}

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: Validate X (non-nil, non-empty).
//   - Stage 2: Compute column means with ColumnMeans.
//   - Stage 3: Copy X and broadcast-subtract the means row by row.
//
// Returns:
//   - *mat.Dense: centered copy (r×c); X is not mutated.
//   - []float64: the column means (len=c).
//
// Errors: ErrNilMatrix, ErrEmpty.
// Complexity: O(r*c) time and space.
func CenterColumns(X mat.Matrix) (*mat.Dense, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, err
	}

	r, c := X.Dims()
	xc := mat.NewDense(r, c, nil)
	xc.Copy(X)
	var i, j int
	for i = 0; i < r; i++ {
		row := xc.RawRowView(i)
		for j = 0; j < c; j++ {
			row[j] -= means[j]
		}
	}

	return xc, means, nil
}

// Scatter accumulates dst += xcᵀ·xc in place.
//
// xc is expected to be already centered (r×d) and dst must be d×d. The
// update is a symmetric rank-k product, so dst stays exactly symmetric.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrDimensionMismatch.
// Complexity: O(r*d²).
func Scatter(dst *mat.SymDense, xc mat.Matrix) error {
	if dst == nil {
		return linalgErrorf(opScatter, ErrNilMatrix)
	}
	if err := ValidateNonEmpty(xc); err != nil {
		return linalgErrorf(opScatter, err)
	}
	n, _ := dst.Dims()
	if err := ValidateCols(xc, n); err != nil {
		return linalgErrorf(opScatter, err)
	}

	// SymRankK computes dst = dst + alpha * x * xᵀ with x = xcᵀ (d×r).
	dst.SymRankK(dst, 1, xc.T())

	return nil
}
