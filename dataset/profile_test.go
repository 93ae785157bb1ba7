package dataset

import (
	"math"
	"strings"
	"testing"
)

func TestDescribe(t *testing.T) {
	ds, err := New([]Column{
		numericCol("age", []float64{10, 20, 30}, make([]bool, 3)),
		categoricalCol("region", []string{"a", "b", "a"}, make([]bool, 3)),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	summaries := ds.Describe()
	if len(summaries) != 1 {
		t.Fatalf("Describe() returned %d summaries, want 1 (numeric fields only)", len(summaries))
	}
	s := summaries[0]
	if s.Field != "age" || s.Count != 3 {
		t.Errorf("summary = %+v, want field age, count 3", s)
	}
	if math.Abs(s.Mean-20) > 1e-12 {
		t.Errorf("Mean = %v, want 20", s.Mean)
	}
	if s.Min != 10 || s.Max != 30 {
		t.Errorf("Min/Max = %v/%v, want 10/30", s.Min, s.Max)
	}
}

func TestDescribeSkipsMissing(t *testing.T) {
	ds, _ := New([]Column{
		numericCol("bmi", []float64{10, 0, 30}, []bool{false, true, false}),
	})
	s := ds.Describe()[0]
	if s.Count != 2 {
		t.Errorf("Count = %d, want 2", s.Count)
	}
	if math.Abs(s.Mean-20) > 1e-12 {
		t.Errorf("Mean = %v, want 20", s.Mean)
	}
}

func TestInfoAndDescribeString(t *testing.T) {
	ds, _ := New([]Column{
		numericCol("age", []float64{10, 20}, []bool{false, true}),
		categoricalCol("sex", []string{"m", "f"}, make([]bool, 2)),
	})

	infos := ds.Info()
	if len(infos) != 2 {
		t.Fatalf("Info() returned %d entries, want 2", len(infos))
	}
	if infos[0].Missing != 1 {
		t.Errorf("age missing count = %d, want 1", infos[0].Missing)
	}

	rendered := ds.DescribeString()
	if !strings.Contains(rendered, "age") || !strings.Contains(rendered, "mean") {
		t.Errorf("DescribeString() missing expected columns:\n%s", rendered)
	}
}
