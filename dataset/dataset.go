// Package dataset provides the in-memory tabular structure the benchmark
// pipeline runs on: a column-major table with a fixed schema, an explicit
// missing-value mask, loading from CSV, descriptive profiling and
// missing-value repair.
package dataset

import (
	"strings"

	"github.com/YuminosukeSato/insurebench/pkg/errors"
)

// FieldKind distinguishes numeric from categorical fields.
type FieldKind int

const (
	// Numeric fields parse as float64 and feed the scaler.
	Numeric FieldKind = iota
	// Categorical fields are enumerated strings and feed the one-hot encoder.
	Categorical
)

func (k FieldKind) String() string {
	if k == Numeric {
		return "numeric"
	}
	return "categorical"
}

// Field is one named, typed column of the schema.
type Field struct {
	Name string
	Kind FieldKind
}

// Schema is the ordered field list of a Dataset. It is constant across the
// pipeline: every stage sees the same fields in the same order.
type Schema []Field

// Names returns the field names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Field looks up a field by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// InsuranceSchema is the schema of the insurance charges benchmark file.
// The target field is "charges".
var InsuranceSchema = Schema{
	{Name: "age", Kind: Numeric},
	{Name: "sex", Kind: Categorical},
	{Name: "bmi", Kind: Numeric},
	{Name: "children", Kind: Numeric},
	{Name: "smoker", Kind: Categorical},
	{Name: "region", Kind: Categorical},
	{Name: "charges", Kind: Numeric},
}

// TargetField is the column predicted by every benchmark model.
const TargetField = "charges"

// Column holds the values of one field. Exactly one of Floats or Labels is
// populated depending on Kind; Missing marks cells without an observed value.
type Column struct {
	Field
	Floats  []float64
	Labels  []string
	Missing []bool
}

// MissingCount returns the number of missing cells in the column.
func (c *Column) MissingCount() int {
	n := 0
	for _, m := range c.Missing {
		if m {
			n++
		}
	}
	return n
}

// Dataset is an ordered collection of equal-length columns.
type Dataset struct {
	cols []Column
	rows int
}

// New builds a Dataset from prepared columns. All columns must have the same
// length.
func New(cols []Column) (*Dataset, error) {
	if len(cols) == 0 {
		return nil, errors.NewValueError("dataset.New", "no columns")
	}
	rows := len(cols[0].Missing)
	for i := range cols {
		if len(cols[i].Missing) != rows {
			return nil, errors.NewDimensionError("dataset.New", rows, len(cols[i].Missing), 0)
		}
	}
	return &Dataset{cols: cols, rows: rows}, nil
}

// NumRows returns the record count.
func (ds *Dataset) NumRows() int { return ds.rows }

// NumFields returns the field count.
func (ds *Dataset) NumFields() int { return len(ds.cols) }

// Schema returns the ordered field list.
func (ds *Dataset) Schema() Schema {
	s := make(Schema, len(ds.cols))
	for i := range ds.cols {
		s[i] = ds.cols[i].Field
	}
	return s
}

// Column returns the column with the given name.
func (ds *Dataset) Column(name string) (*Column, error) {
	for i := range ds.cols {
		if ds.cols[i].Name == name {
			return &ds.cols[i], nil
		}
	}
	return nil, errors.NewValueError("dataset.Column", "unknown field "+name)
}

// HasMissing reports whether any cell of any column is missing.
func (ds *Dataset) HasMissing() bool {
	for i := range ds.cols {
		for _, m := range ds.cols[i].Missing {
			if m {
				return true
			}
		}
	}
	return false
}

// clone returns a deep copy, so cleaning never mutates the caller's data.
func (ds *Dataset) clone() *Dataset {
	cols := make([]Column, len(ds.cols))
	for i := range ds.cols {
		src := &ds.cols[i]
		dst := Column{Field: src.Field, Missing: append([]bool(nil), src.Missing...)}
		if src.Kind == Numeric {
			dst.Floats = append([]float64(nil), src.Floats...)
		} else {
			dst.Labels = append([]string(nil), src.Labels...)
		}
		cols[i] = dst
	}
	return &Dataset{cols: cols, rows: ds.rows}
}

// Subset returns a new Dataset containing the given rows, in index order.
func (ds *Dataset) Subset(idx []int) (*Dataset, error) {
	for _, i := range idx {
		if i < 0 || i >= ds.rows {
			return nil, errors.NewValueError("dataset.Subset", "row index out of range")
		}
	}
	cols := make([]Column, len(ds.cols))
	for ci := range ds.cols {
		src := &ds.cols[ci]
		dst := Column{Field: src.Field, Missing: make([]bool, len(idx))}
		if src.Kind == Numeric {
			dst.Floats = make([]float64, len(idx))
		} else {
			dst.Labels = make([]string, len(idx))
		}
		for i, r := range idx {
			dst.Missing[i] = src.Missing[r]
			if src.Kind == Numeric {
				dst.Floats[i] = src.Floats[r]
			} else {
				dst.Labels[i] = src.Labels[r]
			}
		}
		cols[ci] = dst
	}
	return &Dataset{cols: cols, rows: len(idx)}, nil
}

// dropRows removes the rows marked true in drop, preserving order.
func (ds *Dataset) dropRows(drop []bool) {
	kept := 0
	for _, d := range drop {
		if !d {
			kept++
		}
	}
	if kept == ds.rows {
		return
	}
	for i := range ds.cols {
		c := &ds.cols[i]
		missing := make([]bool, 0, kept)
		var floats []float64
		var labels []string
		if c.Kind == Numeric {
			floats = make([]float64, 0, kept)
		} else {
			labels = make([]string, 0, kept)
		}
		for r := 0; r < ds.rows; r++ {
			if drop[r] {
				continue
			}
			missing = append(missing, c.Missing[r])
			if c.Kind == Numeric {
				floats = append(floats, c.Floats[r])
			} else {
				labels = append(labels, c.Labels[r])
			}
		}
		c.Missing = missing
		c.Floats = floats
		c.Labels = labels
	}
	ds.rows = kept
}

// IsMissingCell reports whether a raw CSV cell denotes a missing value.
func IsMissingCell(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "", "na", "nan", "null":
		return true
	}
	return false
}
