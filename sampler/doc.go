// Package sampler draws synthetic clustered Gaussian data that shares one
// covariance structure across clusters.
//
// A Sampler is configured once with a d×d covariance Σ, a C×d matrix of
// cluster means and a length-C mixture vector. At construction it computes
// the symmetric square root S = Q·diag(√λ)·Qᵀ of Σ. Every Generate call then
//
//  1. assigns each of size draws to a cluster by inverting the cumulative
//     mixture thresholds with a uniform variate,
//  2. fills a count×d matrix Z with standard normals,
//  3. returns Z·S + 1·μ_k for every cluster k.
//
// Since S is symmetric, cov(Z·S) = SᵀS = S² = Σ.
//
// Randomness is owned by the Sampler: a math/rand/v2 source seeded through
// WithSeed, injected through WithSource, or seeded from the runtime when
// neither is given. Seed reports the seed in use so a run can be replayed.
//
// Usage:
//
//	s, err := sampler.New(cov, means, []float64{0.3, 0.3, 0.4}, sampler.WithSeed(42))
//	if err != nil {
//	  // errors.Is(err, sampler.ErrInvalidInput) or sampler.ErrDegenerateCovariance
//	}
//	clusters, _ := s.Generate(1000) // []*mat.Dense, row counts sum to 1000
//
// Concurrency: the configuration is immutable; Generate and Counts serialize
// on an internal mutex because they advance the shared stream.
package sampler
