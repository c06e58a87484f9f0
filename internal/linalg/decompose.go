// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - InverseSPD: Σ⁻¹ for a symmetric positive-definite matrix via Cholesky,
//     with a documented singularity policy.
//   - SqrtSym: the symmetric square root Q·diag(√λ)·Qᵀ via EigenSym, with a
//     documented negative-eigenvalue policy.
//
// Both are computed once by their callers and cached in immutable values.

package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DefaultPSDTolerance is the relative tolerance for negative eigenvalues in
// SqrtSym: λ < −tol·max|λ| is rejected, anything above is clamped to zero.
const DefaultPSDTolerance = 1e-10

// InverseSPD computes a⁻¹ for a symmetric positive-definite a.
// Implementation:
//   - Stage 1: Cholesky-factorize a; failure means a is not positive definite.
//   - Stage 2: Reject factorizations whose condition number is ≥ mat.ConditionTolerance
//     or non-finite.
//   - Stage 3: Invert from the factor into a fresh SymDense.
//
// Returns:
//   - *mat.SymDense: the inverse (exactly symmetric).
//   - float64: the estimated condition number of a (for logging).
//
// Errors: ErrNilMatrix, ErrEmpty, ErrSingular.
// Complexity: O(n³).
func InverseSPD(a mat.Symmetric) (*mat.SymDense, float64, error) {
	if err := ValidateNonEmpty(a); err != nil {
		return nil, 0, linalgErrorf(opInverseSPD, err)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(a); !ok {
		return nil, math.Inf(1), linalgErrorf(opInverseSPD, ErrSingular)
	}
	cond := chol.Cond()
	if math.IsNaN(cond) || math.IsInf(cond, 0) || cond >= mat.ConditionTolerance {
		return nil, cond, linalgErrorf(opInverseSPD, ErrSingular)
	}

	n, _ := a.Dims()
	inv := mat.NewSymDense(n, nil)
	if err := chol.InverseTo(inv); err != nil {
		return nil, cond, linalgErrorf(opInverseSPD, ErrSingular)
	}

	return inv, cond, nil
}

// SqrtSym returns the symmetric square root S = Q·diag(√λ)·Qᵀ of a, so that S·S = a.
// Implementation:
//   - Stage 1: Symmetric eigendecomposition with vectors.
//   - Stage 2: Apply the PSD policy: λ < −tol·max|λ| ⇒ ErrNotPositiveSemidefinite;
//     remaining negatives (rounding noise) are clamped to 0.
//   - Stage 3: Scale column i of Q by √λ_i, multiply by Qᵀ, and symmetrize
//     the product into a SymDense.
//
// Inputs:
//   - a: symmetric matrix.
//   - tol: relative negative-eigenvalue tolerance (≥ 0); DefaultPSDTolerance is typical.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrEigenFailed, ErrNotPositiveSemidefinite.
// Complexity: O(n³).
func SqrtSym(a mat.Symmetric, tol float64) (*mat.SymDense, error) {
	if err := ValidateNonEmpty(a); err != nil {
		return nil, linalgErrorf(opSqrtSym, err)
	}

	var es mat.EigenSym
	if ok := es.Factorize(a, true); !ok {
		return nil, linalgErrorf(opSqrtSym, ErrEigenFailed)
	}
	vals := es.Values(nil)
	var q mat.Dense
	es.VectorsTo(&q)

	var scale float64
	for _, v := range vals {
		scale = math.Max(scale, math.Abs(v))
	}
	roots := make([]float64, len(vals))
	for i, v := range vals {
		if v < -tol*scale {
			return nil, linalgErrorf(opSqrtSym, ErrNotPositiveSemidefinite)
		}
		if v > 0 {
			roots[i] = math.Sqrt(v)
		}
	}

	n := len(vals)
	var ql mat.Dense
	ql.Apply(func(_, j int, v float64) float64 { return v * roots[j] }, &q)
	var prod mat.Dense
	prod.Mul(&ql, q.T())

	s := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			s.SetSym(i, j, 0.5*(prod.At(i, j)+prod.At(j, i)))
		}
	}

	return s, nil
}
