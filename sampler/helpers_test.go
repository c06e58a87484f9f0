// SPDX-License-Identifier: MIT

package sampler_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlda/sampler"
)

// threeClusters returns the reference scenario: Σ = diag(30,30,30), means on
// the axes at distance 10, mixture (0.3, 0.3, 0.4).
func threeClusters() (*mat.DiagDense, *mat.Dense, []float64) {
	cov := mat.NewDiagDense(3, []float64{30, 30, 30})
	means := mat.NewDense(3, 3, []float64{
		10, 0, 0,
		0, 10, 0,
		0, 0, 10,
	})

	return cov, means, []float64{0.3, 0.3, 0.4}
}

func mustNew(t testing.TB, cov, means mat.Matrix, mixture []float64, opts ...sampler.Option) *sampler.Sampler {
	t.Helper()
	s, err := sampler.New(cov, means, mixture, opts...)
	require.NoError(t, err)

	return s
}

// rows returns the row count of a generated cluster, treating the empty
// Dense as zero rows.
func rows(m *mat.Dense) int {
	if m.IsEmpty() {
		return 0
	}
	r, _ := m.Dims()

	return r
}
