// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// Callers match these with errors.Is; functions wrap them with an operation
// tag through linalgErrorf and never panic on caller-supplied data.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil matrix (or nil *mat.Dense) was passed.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrEmpty indicates a matrix with zero rows or zero columns where data is required.
	ErrEmpty = errors.New("linalg: empty matrix")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. clusters with different column counts or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not, within eps.
	ErrAsymmetry = errors.New("linalg: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf where finite values are required.
	ErrNaNInf = errors.New("linalg: NaN or Inf encountered")

	// ErrSingular is returned when a matrix cannot be inverted: the Cholesky
	// factorization failed or the condition number reached mat.ConditionTolerance.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrNotPositiveSemidefinite is returned when an eigenvalue is negative
	// beyond the configured tolerance, so no real square root exists.
	ErrNotPositiveSemidefinite = errors.New("linalg: matrix is not positive semi-definite")

	// ErrEigenFailed indicates that the symmetric eigendecomposition did not succeed.
	ErrEigenFailed = errors.New("linalg: eigen decomposition failed")
)

// Operation tags for uniform error wrapping.
const (
	opCenterColumns = "CenterColumns"
	opScatter       = "Scatter"
	opInverseSPD    = "InverseSPD"
	opSqrtSym       = "SqrtSym"
	opAsSymmetric   = "AsSymmetric"
)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
