// SPDX-License-Identifier: MIT
// Package sampler: sentinel error set.
// Every error returned by this package matches exactly one of the two kinds
// below via errors.Is; the linalg cause (if any) stays matchable as well.

package sampler

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates malformed caller-supplied shapes or values:
	// nil or empty matrices, mismatched dimensions, non-finite entries, a bad
	// mixture vector or a negative sample count.
	ErrInvalidInput = errors.New("sampler: invalid input")

	// ErrDegenerateCovariance indicates a covariance with no real symmetric
	// square root: asymmetric, or negative eigenvalues beyond tolerance.
	ErrDegenerateCovariance = errors.New("sampler: degenerate covariance")

	// errMixture is the cause attached to mixture-vector rejections.
	errMixture = errors.New("invalid mixture probabilities")
)

// Operation tags for uniform error wrapping.
const (
	opNew      = "New"
	opGenerate = "Generate"
	opCounts   = "Counts"
)

// samplerErrorf tags cause with the operation and error kind so that both
// errors.Is(err, kind) and errors.Is(err, cause) hold.
func samplerErrorf(kind error, op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", kind, op, cause)
}
