// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Generate draws size samples split across the clusters by the mixture and
// returns one n_k×d matrix per cluster, in cluster order, with Σ n_k = size.
//
// Implementation:
//   - Stage 1: Assign every draw to a cluster (see Counts).
//   - Stage 2: Per cluster fill Z (n_k×d) with standard normals.
//   - Stage 3: X = Z·S, then add μ_k to every row.
//
// A cluster that receives no draws (every cluster when size = 0) is returned
// as an empty *mat.Dense (IsEmpty reports true).
//
// Errors: ErrInvalidInput when size < 0.
// Complexity: O(size·d² + size·C).
func (s *Sampler) Generate(size int) ([]*mat.Dense, error) {
	if size < 0 {
		return nil, samplerErrorf(ErrInvalidInput, opGenerate, fmt.Errorf("negative size %d", size))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	counts := s.assign(size)
	d := s.Dims()
	out := make([]*mat.Dense, len(counts))
	var i int
	for k, n := range counts {
		if n == 0 {
			out[k] = &mat.Dense{}
			continue
		}

		z := mat.NewDense(n, d, nil)
		raw := z.RawMatrix().Data
		for i = range raw {
			raw[i] = s.stream.normal.Rand()
		}

		x := mat.NewDense(n, d, nil)
		x.Mul(z, s.sqrt)
		mu := s.means.RawRowView(k)
		for i = 0; i < n; i++ {
			floats.Add(x.RawRowView(i), mu)
		}
		out[k] = x
	}

	s.logger.Debug("sampler: generated", zap.Int("size", size), zap.Ints("counts", counts))

	return out, nil
}

// Counts performs only the cluster assignment step of Generate: size uniform
// draws, each going to the first cluster whose cumulative threshold exceeds
// it. It advances the random stream exactly as Generate's first stage does.
//
// Errors: ErrInvalidInput when size < 0.
// Complexity: O(size·C).
func (s *Sampler) Counts(size int) ([]int, error) {
	if size < 0 {
		return nil, samplerErrorf(ErrInvalidInput, opCounts, fmt.Errorf("negative size %d", size))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.assign(size), nil
}

// assign draws size cluster labels and returns the per-cluster counts.
// The last cluster catches any u at or above the second-to-last threshold,
// which absorbs rounding in the cumulative sums and any mass missing from a
// mixture that sums to less than 1.
// Callers must hold s.mu.
func (s *Sampler) assign(size int) []int {
	c := len(s.thresholds)
	counts := make([]int, c)
	var n, k int
	var u float64
	for n = 0; n < size; n++ {
		u = s.stream.uniform.Float64()
		for k = 0; k < c-1; k++ {
			if u < s.thresholds[k] {
				break
			}
		}
		counts[k]++
	}

	return counts
}
