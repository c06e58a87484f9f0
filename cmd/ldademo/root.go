// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlda/internal/scenario"
)

type rootFlags struct {
	configPath string
	size       int
	seed       uint64
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "ldademo",
		Short: "Fit LDA to sampled Gaussian clusters and print the decision boundaries",
		Long: `ldademo draws samples from a clustered Gaussian scenario that shares one
covariance across clusters, estimates a Linear Discriminant Analysis model
from them and prints, for every pair of clusters (k, j), the coefficients
(a_1..a_d, b) of the hyperplane a·x + b = 0 separating them.

Without --config the built-in scenario is used: covariance diag(30,30,30),
means (10,0,0), (0,10,0), (0,0,10) and mixture (0.3, 0.3, 0.4).`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(f.logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			sc, err := scenario.Load(f.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("size") {
				sc.Size = f.size
			}
			if cmd.Flags().Changed("seed") {
				seed := f.seed
				sc.Seed = &seed
			}
			if err = sc.Validate(); err != nil {
				return err
			}

			rep, err := run(sc, logger)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), sc, rep)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "scenario YAML file (default: built-in three-cluster scenario)")
	cmd.Flags().IntVarP(&f.size, "size", "n", 0, "total number of samples (overrides the scenario)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (overrides the scenario; random when neither sets one)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "warn", "log level: debug|info|warn|error")

	return cmd
}

// newLogger builds a development-style zap logger writing to stderr.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	return cfg.Build()
}
