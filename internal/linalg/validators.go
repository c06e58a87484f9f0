// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Single source of truth for the shape/finiteness/symmetry checks used by
//     lda and sampler before any factorization runs.
//   - Return sentinels wrapped with a validator tag so call sites can wrap
//     once more with their own operation name.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing beyond the error value.
//   - Symmetry check visits the strict upper triangle only.

package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is a nil interface or a typed nil of the gonum
// concrete types we accept. Dims on a nil *mat.Dense would panic.
func isNil(m mat.Matrix) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *mat.Dense:
		return v == nil
	case *mat.SymDense:
		return v == nil
	case *mat.DiagDense:
		return v == nil
	case *mat.VecDense:
		return v == nil
	}

	return false
}

// ValidateNotNil ensures the matrix reference is usable.
// Returns ErrNilMatrix for a nil interface or nil gonum pointer.
// Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty is the composite NotNil → (rows>0 && cols>0) check.
//
// A zero-value *mat.Dense reports Dims()==(0,0) and is treated as empty.
// Complexity: O(1).
func ValidateNonEmpty(m mat.Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonEmpty", err)
	}
	if d, ok := m.(*mat.Dense); ok && d.IsEmpty() {
		return validatorErrorf("ValidateNonEmpty", ErrEmpty)
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return validatorErrorf("ValidateNonEmpty", ErrEmpty)
	}

	return nil
}

// ValidateSquare checks Rows == Cols. Assumes m is non-nil.
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	r, c := m.Dims()
	if r != c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateCols checks that m has exactly n columns. Assumes m is non-nil.
// Complexity: O(1).
func ValidateCols(m mat.Matrix, n int) error {
	if _, c := m.Dims(); c != n {
		return validatorErrorf("ValidateCols", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf element. Assumes m is non-nil.
// Complexity: O(r*c).
func ValidateFinite(m mat.Matrix) error {
	r, c := m.Dims()
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateFinite", ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateVec checks a vector is non-nil, of length n and finite.
// Complexity: O(n).
func ValidateVec(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVec", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVec", ErrDimensionMismatch)
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateVec", ErrNaNInf)
		}
	}

	return nil
}

// ValidateSymmetric checks |m[i,j] − m[j,i]| ≤ eps·max(1, |m[i,j]|, |m[j,i]|)
// for every i<j. Assumes m is non-nil and square.
// Complexity: O(n²).
func ValidateSymmetric(m mat.Matrix, eps float64) error {
	if _, ok := m.(mat.Symmetric); ok {
		return nil
	}
	n, _ := m.Dims()
	var i, j int
	var a, b, scale float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, b = m.At(i, j), m.At(j, i)
			scale = math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
			if math.Abs(a-b) > eps*scale {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// AsSymmetric returns m as a mat.Symmetric.
// Implementation:
//   - Stage 1: Validate non-empty, square and finite.
//   - Stage 2: If m already implements mat.Symmetric, return it unchanged.
//   - Stage 3: Otherwise validate symmetry within eps and build a SymDense from
//     the averaged triangles so tiny rounding asymmetries do not leak into
//     factorizations that read only one triangle.
//
// Errors: ErrNilMatrix, ErrEmpty, ErrNonSquare, ErrNaNInf, ErrAsymmetry.
// Complexity: O(n²).
func AsSymmetric(m mat.Matrix, eps float64) (mat.Symmetric, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, linalgErrorf(opAsSymmetric, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, linalgErrorf(opAsSymmetric, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, linalgErrorf(opAsSymmetric, err)
	}
	if s, ok := m.(mat.Symmetric); ok {
		return s, nil
	}
	if err := ValidateSymmetric(m, eps); err != nil {
		return nil, linalgErrorf(opAsSymmetric, err)
	}

	n, _ := m.Dims()
	s := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			s.SetSym(i, j, 0.5*(m.At(i, j)+m.At(j, i)))
		}
	}

	return s, nil
}
