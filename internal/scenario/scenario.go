// SPDX-License-Identifier: MIT

// Package scenario describes a synthetic clustering experiment: the shared
// covariance, per-cluster means and mixture probabilities fed to the
// sampler, plus the sample size and seed. Scenarios are read from YAML and
// validated before any matrix is built.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario is returned by Load and Validate for any scenario that
// cannot be turned into sampler inputs.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Scenario is the YAML document read by Load.
//
//	name: axes
//	size: 1000
//	seed: 42
//	covariance:
//	  - [30, 0, 0]
//	  - [0, 30, 0]
//	  - [0, 0, 30]
//	clusters:
//	  - {name: x, mean: [10, 0, 0], probability: 0.3}
//	  - {name: y, mean: [0, 10, 0], probability: 0.3}
//	  - {name: z, mean: [0, 0, 10], probability: 0.4}
type Scenario struct {
	Name       string      `yaml:"name" validate:"max=64"`
	Size       int         `yaml:"size" validate:"gte=0"`
	Seed       *uint64     `yaml:"seed,omitempty"`
	Covariance [][]float64 `yaml:"covariance" validate:"required,min=1,dive,required,min=1"`
	Clusters   []Cluster   `yaml:"clusters" validate:"required,min=1,dive"`
}

// Cluster is one mixture component.
type Cluster struct {
	Name        string    `yaml:"name" validate:"max=64"`
	Mean        []float64 `yaml:"mean" validate:"required,min=1"`
	Probability float64   `yaml:"probability" validate:"gte=0,lte=1"`
}

// Default returns the three-cluster scenario: Σ = diag(30,30,30), means on
// the coordinate axes at distance 10, mixture (0.3, 0.3, 0.4), 1000 samples.
func Default() Scenario {
	return Scenario{
		Name: "axes",
		Size: 1000,
		Covariance: [][]float64{
			{30, 0, 0},
			{0, 30, 0},
			{0, 0, 30},
		},
		Clusters: []Cluster{
			{Name: "x", Mean: []float64{10, 0, 0}, Probability: 0.3},
			{Name: "y", Mean: []float64{0, 10, 0}, Probability: 0.3},
			{Name: "z", Mean: []float64{0, 0, 10}, Probability: 0.4},
		},
	}
}

// Load reads and validates the scenario at path. An empty path yields
// Default.
func Load(path string) (Scenario, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML scenario document. Unknown keys are
// rejected.
func Parse(data []byte) (Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("%w: parse: %w", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}

	return s, nil
}

// Validate runs the struct-tag rules and then the cross-field shape rules:
// the covariance is square and every mean has one entry per covariance row.
func (s Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	d := len(s.Covariance)
	for i, row := range s.Covariance {
		if len(row) != d {
			return fmt.Errorf("%w: covariance row %d has %d entries, want %d", ErrInvalidScenario, i, len(row), d)
		}
	}
	for k, c := range s.Clusters {
		if len(c.Mean) != d {
			return fmt.Errorf("%w: cluster %d (%s) mean has %d entries, want %d", ErrInvalidScenario, k, c.Name, len(c.Mean), d)
		}
	}

	return nil
}

// Dims returns the feature dimensionality d.
func (s Scenario) Dims() int { return len(s.Covariance) }

// CovarianceMatrix returns the covariance as a d×d dense matrix.
// Call only on a validated scenario.
func (s Scenario) CovarianceMatrix() *mat.Dense {
	d := s.Dims()
	m := mat.NewDense(d, d, nil)
	for i, row := range s.Covariance {
		m.SetRow(i, row)
	}

	return m
}

// MeansMatrix returns the cluster means as a C×d dense matrix.
// Call only on a validated scenario.
func (s Scenario) MeansMatrix() *mat.Dense {
	m := mat.NewDense(len(s.Clusters), s.Dims(), nil)
	for k, c := range s.Clusters {
		m.SetRow(k, c.Mean)
	}

	return m
}

// Mixture returns the cluster probabilities in cluster order.
func (s Scenario) Mixture() []float64 {
	p := make([]float64, len(s.Clusters))
	for k, c := range s.Clusters {
		p[k] = c.Probability
	}

	return p
}

// Labels returns a display name per cluster, falling back to the index.
func (s Scenario) Labels() []string {
	out := make([]string, len(s.Clusters))
	for k, c := range s.Clusters {
		out[k] = c.Name
		if out[k] == "" {
			out[k] = fmt.Sprintf("%d", k)
		}
	}

	return out
}
