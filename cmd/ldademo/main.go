// SPDX-License-Identifier: MIT

// Command ldademo samples a clustered Gaussian scenario, fits an LDA model
// to the samples and prints the pairwise decision boundaries.
//
//	ldademo                          # built-in three-cluster scenario
//	ldademo --config plane.yaml      # scenario from YAML
//	ldademo --size 100000 --seed 7   # override size and seed
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
