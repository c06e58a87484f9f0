// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlda/internal/scenario"
	"github.com/katalvlaran/lvlda/lda"
	"github.com/katalvlaran/lvlda/sampler"
)

// report is everything render prints.
type report struct {
	seed       uint64
	counts     []int
	model      *lda.Model
	boundaries []lda.Boundary
	accuracy   float64 // resubstitution accuracy on the generated samples
}

// run samples the scenario, estimates the model and collects the boundaries.
func run(sc scenario.Scenario, logger *zap.Logger) (*report, error) {
	opts := []sampler.Option{sampler.WithLogger(logger.Named("sampler"))}
	if sc.Seed != nil {
		opts = append(opts, sampler.WithSeed(*sc.Seed))
	}
	s, err := sampler.New(sc.CovarianceMatrix(), sc.MeansMatrix(), sc.Mixture(), opts...)
	if err != nil {
		return nil, fmt.Errorf("build sampler: %w", err)
	}
	seed, _ := s.Seed()

	generated, err := s.Generate(sc.Size)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	labels := sc.Labels()
	counts := make([]int, len(generated))
	clusters := make([]mat.Matrix, len(generated))
	for k, x := range generated {
		if x.IsEmpty() {
			return nil, fmt.Errorf("cluster %s received no samples (size %d, seed %d); increase --size",
				labels[k], sc.Size, seed)
		}
		counts[k], _ = x.Dims()
		clusters[k] = x
	}

	model, err := lda.Estimate(clusters, lda.WithLogger(logger.Named("lda")))
	if err != nil {
		return nil, fmt.Errorf("estimate: %w", err)
	}

	correct := 0
	for k, x := range clusters {
		predicted, err := model.PredictBatch(x)
		if err != nil {
			return nil, fmt.Errorf("classify cluster %s: %w", labels[k], err)
		}
		for _, p := range predicted {
			if p == k {
				correct++
			}
		}
	}

	logger.Info("model estimated",
		zap.Uint64("seed", seed),
		zap.Ints("counts", counts),
		zap.Float64("condition", model.Condition()))

	return &report{
		seed:       seed,
		counts:     counts,
		model:      model,
		boundaries: model.Boundaries(),
		accuracy:   float64(correct) / float64(sc.Size),
	}, nil
}
