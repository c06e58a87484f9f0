// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/lvlda/internal/scenario"
)

// render writes the cluster summary and the boundary table to w.
func render(w io.Writer, sc scenario.Scenario, rep *report) error {
	labels := sc.Labels()
	d := sc.Dims()
	priors := rep.model.Priors()
	means := rep.model.Means()

	title := sc.Name
	if title == "" {
		title = "scenario"
	}
	if _, err := fmt.Fprint(w, pterm.DefaultSection.Sprintf("%s: %d samples, seed %d", title, sc.Size, rep.seed)); err != nil {
		return err
	}

	clusterRows := [][]string{{"cluster", "n", "prior", "estimated mean"}}
	for k := range labels {
		clusterRows = append(clusterRows, []string{
			labels[k],
			strconv.Itoa(rep.counts[k]),
			formatFloat(priors[k]),
			"(" + strings.Join(formatVector(means.RawRowView(k)), ", ") + ")",
		})
	}
	if err := writeTable(w, clusterRows); err != nil {
		return err
	}

	header := []string{"k", "j"}
	for i := 1; i <= d; i++ {
		header = append(header, "a"+strconv.Itoa(i))
	}
	header = append(header, "b")
	boundaryRows := [][]string{header}
	for _, b := range rep.boundaries {
		row := []string{labels[b.K], labels[b.J]}
		row = append(row, formatVector(b.Coefficients)...)
		boundaryRows = append(boundaryRows, row)
	}
	if _, err := fmt.Fprint(w, pterm.DefaultSection.Sprint("decision boundaries a·x + b = 0")); err != nil {
		return err
	}
	if err := writeTable(w, boundaryRows); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "resubstitution accuracy: %.2f%%\n", 100*rep.accuracy)

	return err
}

func writeTable(w io.Writer, data pterm.TableData) error {
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)

	return err
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

func formatVector(v []float64) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = formatFloat(x)
	}

	return out
}
