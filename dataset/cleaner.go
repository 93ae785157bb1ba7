package dataset

import (
	"github.com/YuminosukeSato/insurebench/pkg/errors"
)

// CleanReport counts what Clean changed.
type CleanReport struct {
	ImputedNumeric     int
	ImputedCategorical int
	DroppedRows        int
}

// Clean repairs missing values field by field: categorical cells adopt the
// nearest preceding non-missing value (forward fill), numeric cells adopt the
// column mean over observed values. The mean is computed before any row is
// dropped, so the later drop of still-empty records cannot skew it. Rows that
// remain missing in every field after imputation are removed. A leading
// categorical gap with no preceding value, in a row that survives the drop,
// adopts the first observed value of its column so that no missing values
// remain.
//
// A dataset without missing values is returned unchanged (same pointer).
// A column with no observed values at all cannot be imputed and is an error.
func Clean(ds *Dataset) (*Dataset, CleanReport, error) {
	var report CleanReport
	if !ds.HasMissing() {
		return ds, report, nil
	}

	out := ds.clone()
	for i := range out.cols {
		c := &out.cols[i]
		switch c.Kind {
		case Numeric:
			var sum float64
			n := 0
			for r, v := range c.Floats {
				if !c.Missing[r] {
					sum += v
					n++
				}
			}
			if n == 0 {
				return nil, report, errors.NewValueError("dataset.Clean", "field "+c.Name+" has no observed values")
			}
			mean := sum / float64(n)
			for r := range c.Floats {
				if c.Missing[r] {
					c.Floats[r] = mean
					c.Missing[r] = false
					report.ImputedNumeric++
				}
			}
		case Categorical:
			last := ""
			seen := false
			for r := range c.Labels {
				if c.Missing[r] {
					if seen {
						c.Labels[r] = last
						c.Missing[r] = false
						report.ImputedCategorical++
					}
					// A leading missing run has no preceding value and
					// stays missing until the row-drop pass.
					continue
				}
				last = c.Labels[r]
				seen = true
			}
		}
	}

	// Drop records that are still entirely empty across all fields.
	drop := make([]bool, out.rows)
	for r := 0; r < out.rows; r++ {
		allMissing := true
		for i := range out.cols {
			if !out.cols[i].Missing[r] {
				allMissing = false
				break
			}
		}
		drop[r] = allMissing
		if allMissing {
			report.DroppedRows++
		}
	}
	out.dropRows(drop)

	// Backfill leading categorical gaps that survived the drop.
	for i := range out.cols {
		c := &out.cols[i]
		if c.Kind != Categorical {
			continue
		}
		first := ""
		seen := false
		for r := range c.Labels {
			if !c.Missing[r] {
				first = c.Labels[r]
				seen = true
				break
			}
		}
		for r := range c.Labels {
			if !c.Missing[r] {
				break
			}
			if !seen {
				return nil, report, errors.NewValueError("dataset.Clean", "field "+c.Name+" has no observed values")
			}
			c.Labels[r] = first
			c.Missing[r] = false
			report.ImputedCategorical++
		}
	}

	if out.HasMissing() {
		return nil, report, errors.NewValueError("dataset.Clean", "missing values remain after imputation")
	}
	return out, report, nil
}
