// SPDX-License-Identifier: MIT

// Package lda_test holds fixtures shared by the lda tests.
package lda_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlda/lda"
)

// tolTight is used where results are exact up to a few ulps.
const tolTight = 1e-9

// squares returns the two-cluster fixture used throughout the tests:
//
//	cluster 0: corners of [0,2]×[0,2], mean (1,1)
//	cluster 1: corners of [4,6]×[0,2], mean (5,1)
//
// Pooled covariance is diag(8/7, 8/7); the boundary is the line x = 3.
func squares() []mat.Matrix {
	return []mat.Matrix{
		mat.NewDense(4, 2, []float64{0, 0, 2, 0, 0, 2, 2, 2}),
		mat.NewDense(4, 2, []float64{4, 0, 6, 0, 4, 2, 6, 2}),
	}
}

// blobs draws C well-separated Gaussian clusters of n points each in d
// dimensions from a seeded stream. Cluster k is centered at 10·e_(k mod d)
// shifted by 10·(k/d) along every axis.
func blobs(c, n, d int, seed uint64) []mat.Matrix {
	r := rand.New(rand.NewPCG(seed, seed+1))
	out := make([]mat.Matrix, c)
	var k, i, j int
	for k = 0; k < c; k++ {
		x := mat.NewDense(n, d, nil)
		for i = 0; i < n; i++ {
			for j = 0; j < d; j++ {
				v := r.NormFloat64() + 10*float64(k/d)
				if j == k%d {
					v += 10
				}
				x.Set(i, j, v)
			}
		}
		out[k] = x
	}

	return out
}

// mustEstimate fits a model or fails the test.
func mustEstimate(t testing.TB, clusters []mat.Matrix) *lda.Model {
	t.Helper()
	m, err := lda.Estimate(clusters)
	require.NoError(t, err)

	return m
}

// nestedLoopCovariance is the reference pooled covariance, written as the
// plain quadruple loop over (p, q, cluster, row).
func nestedLoopCovariance(clusters []mat.Matrix) *mat.Dense {
	_, d := clusters[0].Dims()
	means := make([][]float64, len(clusters))
	total := 0
	for k, x := range clusters {
		r, _ := x.Dims()
		total += r
		means[k] = make([]float64, d)
		for j := 0; j < d; j++ {
			for i := 0; i < r; i++ {
				means[k][j] += x.At(i, j)
			}
			means[k][j] /= float64(r)
		}
	}
	cov := mat.NewDense(d, d, nil)
	for p := 0; p < d; p++ {
		for q := 0; q < d; q++ {
			var sum float64
			for k, x := range clusters {
				r, _ := x.Dims()
				for i := 0; i < r; i++ {
					sum += (x.At(i, p) - means[k][p]) * (x.At(i, q) - means[k][q])
				}
			}
			cov.Set(p, q, sum/float64(total-1))
		}
	}

	return cov
}
