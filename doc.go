// Package lvlda estimates Linear Discriminant Analysis classifiers and draws
// the clustered Gaussian data they are meant for.
//
// 🚀 What is lvlda?
//
//	A small numeric library built on gonum that brings together:
//		• lda:     pooled-covariance LDA (Estimate, Score, Predict, Posteriors)
//		           and closed-form pairwise decision boundaries
//		• sampler: a seedable multivariate Gaussian mixture generator with one
//		           shared covariance, via its symmetric square root
//
// ✨ Why lvlda?
//
//   - Immutable models: Σ⁻¹ and Σ^½ are factored once at construction
//   - Typed errors: ErrInvalidInput / ErrDegenerateCovariance with the
//     underlying linear-algebra cause kept for errors.Is
//   - Reproducible: samplers own their random stream and report their seed
//
// Layout:
//
//	lda/                 estimation, scoring, boundaries
//	sampler/             covariance-aware Gaussian sampler
//	internal/linalg/     validators, column statistics, Cholesky inverse, EigenSym root
//	internal/scenario/   YAML scenario files for the demo
//	cmd/ldademo/         sample → estimate → print boundaries
//
// Quick start:
//
//	s, _ := sampler.New(cov, means, []float64{0.3, 0.3, 0.4}, sampler.WithSeed(1))
//	generated, _ := s.Generate(1000)
//	clusters := make([]mat.Matrix, len(generated))
//	for k, x := range generated {
//		clusters[k] = x
//	}
//	model, _ := lda.Estimate(clusters)
//	coeffs, _ := model.BoundaryCoefficients(0, 1) // a_1..a_d, b
package lvlda
