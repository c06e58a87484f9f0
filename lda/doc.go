// Package lda estimates a Linear Discriminant Analysis classifier from
// labeled clusters of multivariate samples.
//
// 🚀 What is LDA?
//
//	Every cluster k is modeled as a Gaussian N(μ_k, Σ) with its own mean and
//	one covariance Σ shared by all clusters. Under that assumption the
//	log-posterior of a point x is, up to a term common to every cluster,
//
//	  δ_k(x) = x·Σ⁻¹·μ_kᵀ − ½·μ_k·Σ⁻¹·μ_kᵀ + ln π_k
//
//	which is affine in x. The predicted cluster is argmax_k δ_k(x) and the
//	boundary between clusters k and j is the hyperplane δ_k(x) = δ_j(x).
//
// ✨ Key features:
//   - pooled covariance estimated in one batch pass (Xcᵀ·Xc per cluster, one /(N−1));
//   - Σ⁻¹ factored once via Cholesky and cached in the immutable Model;
//   - Score / Predict / Posteriors / BoundaryCoefficients are read-only and
//     safe for concurrent use.
//
// ⚙️ Usage:
//
//	model, err := lda.Estimate([]mat.Matrix{c0, c1, c2})
//	if err != nil {
//	  // errors.Is(err, lda.ErrInvalidInput) or lda.ErrDegenerateCovariance
//	}
//	scores, _ := model.Score([]float64{1, 2, 3})
//	coeffs, _ := model.BoundaryCoefficients(0, 1) // a_1..a_d, b
//
// Performance:
//
//   - Estimate: O(N·d² + d³)
//   - Score:    O(C·d)
//   - Boundary: O(d)
package lda
