// SPDX-License-Identifier: MIT

// Package linalg is the shared matrix-algebra glue behind lda and sampler.
//
// The heavy lifting (products, Cholesky, symmetric eigendecomposition) is done
// by gonum.org/v1/gonum/mat. This package only adds what both estimators need
// on top of it:
//
//   - validators that return plain sentinels (nil, empty, shape, finiteness, symmetry);
//   - column centering and scatter accumulation (Xcᵀ·Xc) for pooled covariance;
//   - an SPD inverse with an explicit singularity policy;
//   - the symmetric square root Q·diag(√λ)·Qᵀ with a PSD tolerance policy.
//
// Every function is pure: inputs are never mutated and results are fresh
// allocations, so callers may cache them in immutable values.
package linalg
