// SPDX-License-Identifier: MIT
// Package linalg_test contains shared fixtures for the linalg tests.
//
// Purpose:
//   - Small deterministic matrices with known means, scatter and spectra.
//   - A seeded SPD generator for property-style checks.

package linalg_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// tolTight is the tolerance for exact-arithmetic fixtures.
const tolTight = 1e-12

// tolLoose is the tolerance for factorization round-trips.
const tolLoose = 1e-9

// randomSPD builds A = Bᵀ·B + n·I from a seeded stream; always well conditioned.
func randomSPD(t *testing.T, n int, seed uint64) *mat.SymDense {
	t.Helper()
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	b := mat.NewDense(n, n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			b.Set(i, j, r.NormFloat64())
		}
	}
	a := mat.NewSymDense(n, nil)
	a.SymOuterK(1, b.T())
	for i = 0; i < n; i++ {
		a.SetSym(i, i, a.At(i, i)+float64(n))
	}
	rows, cols := a.Dims()
	require.Equal(t, n, rows)
	require.Equal(t, n, cols)

	return a
}

// identity returns I_n as a dense matrix.
func identity(n int) *mat.Dense {
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		d.Set(i, i, 1)
	}

	return d
}
