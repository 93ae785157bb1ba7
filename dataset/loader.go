package dataset

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/insurebench/pkg/errors"
)

// LoadCSV reads the delimited file at path into a Dataset with the given
// schema. The file must carry a header row naming every schema field; header
// order may differ from schema order. Cells that cannot be parsed into their
// declared type produce a ParseError; a missing file surfaces the wrapped os
// error so callers can test with os.IsNotExist / errors.Is(fs.ErrNotExist).
func LoadCSV(path string, schema Schema) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset.LoadCSV: open %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "dataset.LoadCSV: read header of %s", path)
	}

	// Map each schema field to its position in the file.
	colIdx := make([]int, len(schema))
	for i, f := range schema {
		colIdx[i] = -1
		for j, h := range header {
			if strings.TrimSpace(h) == f.Name {
				colIdx[i] = j
				break
			}
		}
		if colIdx[i] < 0 {
			return nil, errors.NewValueError("dataset.LoadCSV", "header is missing field "+f.Name)
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "dataset.LoadCSV: read records of %s", path)
	}
	if len(records) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "dataset.LoadCSV: "+path)
	}

	cols := make([]Column, len(schema))
	for i, f := range schema {
		cols[i] = Column{Field: f, Missing: make([]bool, len(records))}
		if f.Kind == Numeric {
			cols[i].Floats = make([]float64, len(records))
		} else {
			cols[i].Labels = make([]string, len(records))
		}
	}

	for r, record := range records {
		for i := range schema {
			cell := record[colIdx[i]]
			if IsMissingCell(cell) {
				cols[i].Missing[r] = true
				continue
			}
			if schema[i].Kind == Numeric {
				v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
				if err != nil {
					// r is 0-based over data rows; +2 accounts for the header.
					return nil, errors.NewParseError(path, r+2, schema[i].Name, err)
				}
				cols[i].Floats[r] = v
			} else {
				cols[i].Labels[r] = strings.TrimSpace(cell)
			}
		}
	}

	return New(cols)
}
