// SPDX-License-Identifier: MIT

package sampler_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvlda/sampler"
)

func TestGenerate_RowCountsSumToSize(t *testing.T) {
	t.Parallel()

	cov, means, mix := threeClusters()
	s := mustNew(t, cov, means, mix, sampler.WithSeed(11))

	for _, size := range []int{0, 1, 2, 7, 1000, 12345} {
		clusters, err := s.Generate(size)
		require.NoError(t, err)
		require.Len(t, clusters, 3)

		total := 0
		for _, x := range clusters {
			require.NotNil(t, x)
			if n := rows(x); n > 0 {
				_, d := x.Dims()
				assert.Equal(t, 3, d)
				total += n
			}
		}
		assert.Equal(t, size, total, "size=%d", size)
	}
}

func TestGenerate_ZeroSize(t *testing.T) {
	t.Parallel()

	cov, means, mix := threeClusters()
	s := mustNew(t, cov, means, mix, sampler.WithSeed(1))
	clusters, err := s.Generate(0)
	require.NoError(t, err)
	require.Len(t, clusters, 3)
	for _, x := range clusters {
		assert.True(t, x.IsEmpty())
	}
}

func TestGenerate_NegativeSize(t *testing.T) {
	t.Parallel()

	cov, means, mix := threeClusters()
	s := mustNew(t, cov, means, mix)

	clusters, err := s.Generate(-1)
	assert.Nil(t, clusters)
	assert.ErrorIs(t, err, sampler.ErrInvalidInput)

	counts, err := s.Counts(-5)
	assert.Nil(t, counts)
	assert.ErrorIs(t, err, sampler.ErrInvalidInput)
}

func TestGenerate_SeedDeterminism(t *testing.T) {
	t.Parallel()

	cov, means, mix := threeClusters()
	a := mustNew(t, cov, means, mix, sampler.WithSeed(42))
	b := mustNew(t, cov, means, mix, sampler.WithSeed(42))
	c := mustNew(t, cov, means, mix, sampler.WithSeed(43))

	// Same seed: identical output on every call, not only the first.
	for call := 0; call < 3; call++ {
		ga, err := a.Generate(200)
		require.NoError(t, err)
		gb, err := b.Generate(200)
		require.NoError(t, err)
		for k := range ga {
			assert.True(t, mat.Equal(ga[k], gb[k]), "call %d cluster %d", call, k)
		}
	}

	// Repeated calls advance the stream.
	first, err := c.Generate(200)
	require.NoError(t, err)
	second, err := c.Generate(200)
	require.NoError(t, err)
	assert.False(t, rows(first[2]) == rows(second[2]) && mat.Equal(first[2], second[2]))

	// Different seeds diverge.
	ga, err := a.Generate(200)
	require.NoError(t, err)
	gc, err := c.Generate(200)
	require.NoError(t, err)
	assert.False(t, rows(ga[0]) == rows(gc[0]) && mat.Equal(ga[0], gc[0]))
}

// TestCounts_Proportions checks the assignment converges to the mixture.
func TestCounts_Proportions(t *testing.T) {
	t.Parallel()

	const size = 100000
	cov, means, _ := threeClusters()
	for _, mix := range [][]float64{
		{0.3, 0.3, 0.4},
		{0.05, 0.9, 0.05},
		{1.0 / 3, 1.0 / 3, 1.0 / 3},
	} {
		s := mustNew(t, cov, means, mix, sampler.WithSeed(5))
		counts, err := s.Counts(size)
		require.NoError(t, err)
		for k, p := range mix {
			assert.InDelta(t, p, float64(counts[k])/size, 0.01, "mix=%v k=%d", mix, k)
		}
	}
}

// TestCounts_MatchesGenerate: Counts is exactly Generate's first stage.
func TestCounts_MatchesGenerate(t *testing.T) {
	t.Parallel()

	cov, means, mix := threeClusters()
	a := mustNew(t, cov, means, mix, sampler.WithSeed(8))
	b := mustNew(t, cov, means, mix, sampler.WithSeed(8))

	counts, err := a.Counts(777)
	require.NoError(t, err)
	clusters, err := b.Generate(777)
	require.NoError(t, err)
	for k := range counts {
		assert.Equal(t, counts[k], rows(clusters[k]))
	}
}

func TestCounts_ResidualMass(t *testing.T) {
	t.Parallel()

	cov, means, _ := threeClusters()
	const size = 20000

	// Zero-probability clusters never receive a draw, except the last one,
	// which catches the mass missing from an unnormalized vector.
	cases := []struct {
		name    string
		mixture []float64
		want    []float64
	}{
		{"leading zero", []float64{0, 0.5, 0.5}, []float64{0, 0.5, 0.5}},
		{"middle zero", []float64{0.5, 0, 0.5}, []float64{0.5, 0, 0.5}},
		{"sums below one", []float64{0.2, 0.2, 0}, []float64{0.2, 0.2, 0.6}},
		{"sums above one", []float64{0.6, 0.6, 0.6}, []float64{0.6, 0.4, 0}},
		{"all zero", []float64{0, 0, 0}, []float64{0, 0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustNew(t, cov, means, tc.mixture, sampler.WithSeed(2))
			counts, err := s.Counts(size)
			require.NoError(t, err)
			for k, p := range tc.want {
				if p == 0 {
					assert.Zero(t, counts[k], "k=%d", k)
					continue
				}
				assert.InDelta(t, p, float64(counts[k])/size, 0.02, "k=%d", k)
			}
		})
	}
}

// TestGenerate_CovarianceRoundTrip compares the sample covariance of each
// generated cluster with the configured one.
func TestGenerate_CovarianceRoundTrip(t *testing.T) {
	t.Parallel()

	const size = 100000
	cases := []struct {
		name  string
		cov   mat.Matrix
		means *mat.Dense
		mix   []float64
	}{
		{
			name:  "diag 30",
			cov:   mat.NewDiagDense(3, []float64{30, 30, 30}),
			means: mat.NewDense(3, 3, []float64{10, 0, 0, 0, 10, 0, 0, 0, 10}),
			mix:   []float64{0.3, 0.3, 0.4},
		},
		{
			name:  "correlated",
			cov:   mat.NewSymDense(2, []float64{4, 1.5, 1.5, 2}),
			means: mat.NewDense(2, 2, []float64{-3, 3, 100, 0}),
			mix:   []float64{0.5, 0.5},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustNew(t, tc.cov, tc.means, tc.mix, sampler.WithSeed(2024))
			clusters, err := s.Generate(size)
			require.NoError(t, err)

			d, _ := tc.cov.Dims()
			for k, x := range clusters {
				var got mat.SymDense
				stat.CovarianceMatrix(&got, x, nil)
				for p := 0; p < d; p++ {
					for q := 0; q < d; q++ {
						want := tc.cov.At(p, q)
						scale := math.Sqrt(tc.cov.At(p, p) * tc.cov.At(q, q))
						assert.InDelta(t, want, got.At(p, q), 0.1*scale, "cluster %d (%d,%d)", k, p, q)
					}
				}

				col := make([]float64, rows(x))
				for j := 0; j < d; j++ {
					mat.Col(col, j, x)
					assert.InDelta(t, tc.means.At(k, j), stat.Mean(col, nil), 0.2, "cluster %d mean[%d]", k, j)
				}
			}
		})
	}
}

// TestGenerate_RankDeficient keeps samples on the support of a singular Σ.
func TestGenerate_RankDeficient(t *testing.T) {
	t.Parallel()

	cov := mat.NewSymDense(2, []float64{1, 1, 1, 1})
	means := mat.NewDense(1, 2, []float64{3, 3})
	s := mustNew(t, cov, means, []float64{1}, sampler.WithSeed(4))

	clusters, err := s.Generate(500)
	require.NoError(t, err)
	x := clusters[0]
	for i := 0; i < rows(x); i++ {
		assert.InDelta(t, x.At(i, 0), x.At(i, 1), 1e-9)
	}
}

// TestGenerate_Concurrent shares one sampler across goroutines. Run with -race.
func TestGenerate_Concurrent(t *testing.T) {
	t.Parallel()

	cov, means, mix := threeClusters()
	s := mustNew(t, cov, means, mix, sampler.WithSeed(99))

	const workers, size = 8, 250
	var wg sync.WaitGroup
	totals := make([]int, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			clusters, err := s.Generate(size)
			if !assert.NoError(t, err) {
				return
			}
			for _, x := range clusters {
				totals[w] += rows(x)
			}
		}(w)
	}
	wg.Wait()

	for w := range totals {
		assert.Equal(t, size, totals[w])
	}
}
