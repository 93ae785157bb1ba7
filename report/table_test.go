package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/insurebench/evaluation"
)

func sampleRecords() []evaluation.Metrics {
	return []evaluation.Metrics{
		{Model: "Linear Regression", MAE: 4100.5, MSE: 3.2e7, RMSE: 5656.8, R2: 0.76},
		{Model: "Ridge Regression", MAE: 4102.1, MSE: 3.21e7, RMSE: 5660.0, R2: 0.755},
		{Model: "Random Forest", MAE: 2800.0, MSE: 2.4e7, RMSE: 4898.9, R2: 0.84},
	}
}

func TestTableString(t *testing.T) {
	out := NewTable(sampleRecords()).String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want header + 4 metric rows:\n%s", len(lines), out)
	}
	for _, name := range []string{"Linear Regression", "Ridge Regression", "Random Forest"} {
		if !strings.Contains(lines[0], name) {
			t.Errorf("header missing column %q: %s", name, lines[0])
		}
	}
	for i, metric := range []string{"MAE", "MSE", "RMSE", "R2"} {
		if !strings.HasPrefix(lines[i+1], metric) {
			t.Errorf("row %d = %q, want prefix %q", i+1, lines[i+1], metric)
		}
	}
	if !strings.Contains(out, "0.8400") {
		t.Errorf("output missing formatted R2 value:\n%s", out)
	}
}

func TestTableStringEmpty(t *testing.T) {
	out := NewTable(nil).String()
	if !strings.HasPrefix(out, "metric") {
		t.Errorf("empty table should still render the header, got:\n%s", out)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	records := sampleRecords()
	path := filepath.Join(t.TempDir(), "metrics.yaml")

	if err := NewTable(records).WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var got []evaluation.Metrics
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("got %d records, want %d", len(got), len(records))
	}
	if got[2].Model != "Random Forest" || got[2].R2 != 0.84 {
		t.Errorf("record 2 = %+v", got[2])
	}
}

func TestWriteYAMLBadPath(t *testing.T) {
	err := NewTable(sampleRecords()).WriteYAML(filepath.Join(t.TempDir(), "no", "such", "dir.yaml"))
	if err == nil {
		t.Error("WriteYAML() into a nonexistent directory should fail")
	}
}
