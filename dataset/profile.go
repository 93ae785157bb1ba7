package dataset

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"
)

// FieldInfo is one line of the shape summary.
type FieldInfo struct {
	Name    string
	Kind    FieldKind
	Missing int
}

// Info summarizes the dataset shape and per-field missing counts without
// mutating anything.
func (ds *Dataset) Info() []FieldInfo {
	infos := make([]FieldInfo, len(ds.cols))
	for i := range ds.cols {
		infos[i] = FieldInfo{
			Name:    ds.cols[i].Name,
			Kind:    ds.cols[i].Kind,
			Missing: ds.cols[i].MissingCount(),
		}
	}
	return infos
}

// Summary holds descriptive statistics for one numeric field, computed over
// its observed (non-missing) values.
type Summary struct {
	Field string
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
}

// Describe computes a Summary per numeric field.
func (ds *Dataset) Describe() []Summary {
	var out []Summary
	for i := range ds.cols {
		c := &ds.cols[i]
		if c.Kind != Numeric {
			continue
		}
		values := make([]float64, 0, len(c.Floats))
		for r, v := range c.Floats {
			if !c.Missing[r] {
				values = append(values, v)
			}
		}
		s := Summary{Field: c.Name, Count: len(values)}
		if len(values) > 0 {
			s.Mean, s.Std = stat.MeanStdDev(values, nil)
			s.Min, s.Max = values[0], values[0]
			for _, v := range values[1:] {
				if v < s.Min {
					s.Min = v
				}
				if v > s.Max {
					s.Max = v
				}
			}
		}
		out = append(out, s)
	}
	return out
}

// DescribeString renders Describe as an aligned text table for logging.
func (ds *Dataset) DescribeString() string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "field\tcount\tmean\tstd\tmin\tmax")
	for _, s := range ds.Describe() {
		fmt.Fprintf(w, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n", s.Field, s.Count, s.Mean, s.Std, s.Min, s.Max)
	}
	w.Flush()
	return sb.String()
}
