// Package report aggregates per-model metrics into a comparison table and
// renders the two diagnostic figures.
package report

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/insurebench/evaluation"
	"github.com/YuminosukeSato/insurebench/pkg/errors"
)

// Table indexes metric rows by model columns for display.
type Table struct {
	Records []evaluation.Metrics
}

// NewTable wraps the per-model metric records in display order.
func NewTable(records []evaluation.Metrics) *Table {
	return &Table{Records: records}
}

// String renders the comparison: one row per metric, one column per model.
func (t *Table) String() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	header := "metric"
	for _, r := range t.Records {
		header += "\t" + r.Model
	}
	fmt.Fprintln(w, header)

	rows := []struct {
		name  string
		value func(evaluation.Metrics) float64
	}{
		{"MAE", func(m evaluation.Metrics) float64 { return m.MAE }},
		{"MSE", func(m evaluation.Metrics) float64 { return m.MSE }},
		{"RMSE", func(m evaluation.Metrics) float64 { return m.RMSE }},
		{"R2", func(m evaluation.Metrics) float64 { return m.R2 }},
	}
	for _, row := range rows {
		line := row.name
		for _, r := range t.Records {
			line += fmt.Sprintf("\t%.4f", row.value(r))
		}
		fmt.Fprintln(w, line)
	}

	w.Flush()
	return sb.String()
}

// WriteYAML exports the metric records as a YAML artifact.
func (t *Table) WriteYAML(path string) error {
	data, err := yaml.Marshal(t.Records)
	if err != nil {
		return errors.Wrap(err, "report.WriteYAML: marshal")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "report.WriteYAML: write %s", path)
	}
	return nil
}
