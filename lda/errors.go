// SPDX-License-Identifier: MIT

package lda

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates malformed caller-supplied shapes or values:
	// empty cluster set, empty cluster, mismatched dimensions, NaN/Inf samples,
	// out-of-range or equal cluster indices.
	ErrInvalidInput = errors.New("lda: invalid input")

	// ErrDegenerateCovariance indicates that the pooled covariance cannot be
	// inverted: fewer than two samples overall, or a singular estimate.
	ErrDegenerateCovariance = errors.New("lda: degenerate covariance")
)

// Operation tags for uniform error wrapping.
const (
	opEstimate   = "Estimate"
	opScore      = "Score"
	opPredict    = "PredictBatch"
	opBoundary   = "BoundaryCoefficients"
	opPosteriors = "Posteriors"
)

// ldaErrorf tags cause with the operation and the error kind so that both
// errors.Is(err, kind) and errors.Is(err, cause) hold.
func ldaErrorf(kind error, op string, cause error) error {
	return fmt.Errorf("%w: %s: %w", kind, op, cause)
}
