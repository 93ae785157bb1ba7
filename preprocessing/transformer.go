package preprocessing

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/insurebench/core/model"
	"github.com/YuminosukeSato/insurebench/dataset"
	"github.com/YuminosukeSato/insurebench/pkg/errors"
)

// ColumnTransformer is the reusable mapping from raw records to the numeric
// feature space: numeric fields standardized, categorical fields one-hot
// expanded, the target field split off. It is fitted exactly once; the same
// fitted mapping must be applied to every later input, including the holdout
// partition and anything scored in production. A ColumnTransformer is
// gob-encodable so it travels inside a model bundle.
type ColumnTransformer struct {
	model.BaseEstimator

	// Target is the field excluded from the features and returned by Target.
	Target string

	// NumericFields and CategoricalFields are the feature fields in schema
	// order.
	NumericFields     []string
	CategoricalFields []string

	// Scaler standardizes the numeric block.
	Scaler *StandardScaler

	// Encoders holds one fitted OneHotEncoder per categorical field.
	Encoders map[string]*OneHotEncoder

	// Unknown is the unseen-category policy handed to each encoder.
	Unknown UnknownPolicy
}

// NewColumnTransformer prepares an unfitted transformer for the given schema
// and target field.
func NewColumnTransformer(schema dataset.Schema, target string, policy UnknownPolicy) (*ColumnTransformer, error) {
	tf, ok := schema.Field(target)
	if !ok {
		return nil, errors.NewValueError("preprocessing.NewColumnTransformer", "target field "+target+" not in schema")
	}
	if tf.Kind != dataset.Numeric {
		return nil, errors.NewValueError("preprocessing.NewColumnTransformer", "target field "+target+" must be numeric")
	}

	ct := &ColumnTransformer{
		Target:   target,
		Scaler:   NewStandardScaler(),
		Encoders: make(map[string]*OneHotEncoder),
		Unknown:  policy,
	}
	for _, f := range schema {
		if f.Name == target {
			continue
		}
		if f.Kind == dataset.Numeric {
			ct.NumericFields = append(ct.NumericFields, f.Name)
		} else {
			ct.CategoricalFields = append(ct.CategoricalFields, f.Name)
		}
	}
	if len(ct.NumericFields)+len(ct.CategoricalFields) == 0 {
		return nil, errors.NewValueError("preprocessing.NewColumnTransformer", "schema has no feature fields")
	}
	return ct, nil
}

// Fit learns scaling statistics and category vocabularies from ds. Fitting
// twice is an error: refitting would silently change the feature space and
// break comparability with anything trained on the first fit.
func (ct *ColumnTransformer) Fit(ds *dataset.Dataset) error {
	if ct.IsFitted() {
		return errors.Wrap(errors.ErrAlreadyFitted, "ColumnTransformer.Fit")
	}
	if ds.HasMissing() {
		return errors.NewValueError("ColumnTransformer.Fit", "dataset still has missing values; run Clean first")
	}

	if len(ct.NumericFields) > 0 {
		numeric, err := ct.numericBlock(ds)
		if err != nil {
			return err
		}
		if err := ct.Scaler.Fit(numeric); err != nil {
			return err
		}
	}
	for _, name := range ct.CategoricalFields {
		col, err := ds.Column(name)
		if err != nil {
			return err
		}
		enc := NewOneHotEncoder(ct.Unknown)
		if err := enc.Fit(col.Labels); err != nil {
			return errors.Wrap(err, "ColumnTransformer.Fit: "+name)
		}
		ct.Encoders[name] = enc
	}

	ct.SetFitted()
	return nil
}

// Transform maps ds into the fitted feature space: the standardized numeric
// block first, then one indicator block per categorical field, in schema
// order. The output has one row per record and NumFeatures columns.
func (ct *ColumnTransformer) Transform(ds *dataset.Dataset) (*mat.Dense, error) {
	if !ct.IsFitted() {
		return nil, errors.NewNotFittedError("ColumnTransformer", "Transform")
	}

	rows := ds.NumRows()
	if rows == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "ColumnTransformer.Transform")
	}
	result := mat.NewDense(rows, ct.NumFeatures(), nil)
	offset := 0

	if len(ct.NumericFields) > 0 {
		numeric, err := ct.numericBlock(ds)
		if err != nil {
			return nil, err
		}
		scaled, err := ct.Scaler.Transform(numeric)
		if err != nil {
			return nil, err
		}
		for i := 0; i < rows; i++ {
			for j := range ct.NumericFields {
				result.Set(i, j, scaled.At(i, j))
			}
		}
		offset = len(ct.NumericFields)
	}

	for _, name := range ct.CategoricalFields {
		col, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		enc := ct.Encoders[name]
		block, err := enc.Transform(col.Labels)
		if err != nil {
			return nil, errors.Wrap(err, "ColumnTransformer.Transform: "+name)
		}
		for i := 0; i < rows; i++ {
			for j := 0; j < enc.NumCategories(); j++ {
				result.Set(i, offset+j, block.At(i, j))
			}
		}
		offset += enc.NumCategories()
	}

	return result, nil
}

// FitTransform fits on ds and transforms the same records.
func (ct *ColumnTransformer) FitTransform(ds *dataset.Dataset) (*mat.Dense, error) {
	if err := ct.Fit(ds); err != nil {
		return nil, err
	}
	return ct.Transform(ds)
}

// TargetVector extracts the target column of ds as a column vector.
func (ct *ColumnTransformer) TargetVector(ds *dataset.Dataset) (*mat.VecDense, error) {
	col, err := ds.Column(ct.Target)
	if err != nil {
		return nil, err
	}
	y := mat.NewVecDense(ds.NumRows(), nil)
	for i, v := range col.Floats {
		if col.Missing[i] {
			return nil, errors.NewValueError("ColumnTransformer.TargetVector", "target has missing values")
		}
		y.SetVec(i, v)
	}
	return y, nil
}

// NumFeatures returns the transformed width: the numeric field count plus the
// total number of distinct categories across all categorical fields.
func (ct *ColumnTransformer) NumFeatures() int {
	n := len(ct.NumericFields)
	for _, name := range ct.CategoricalFields {
		if enc, ok := ct.Encoders[name]; ok {
			n += enc.NumCategories()
		}
	}
	return n
}

// FeatureNames returns one name per output column, categorical columns as
// "field=value".
func (ct *ColumnTransformer) FeatureNames() []string {
	names := append([]string(nil), ct.NumericFields...)
	for _, field := range ct.CategoricalFields {
		if enc, ok := ct.Encoders[field]; ok {
			for _, cat := range enc.Categories {
				names = append(names, field+"="+cat)
			}
		}
	}
	return names
}

// numericBlock gathers the raw numeric feature columns as a dense matrix.
func (ct *ColumnTransformer) numericBlock(ds *dataset.Dataset) (*mat.Dense, error) {
	rows := ds.NumRows()
	block := mat.NewDense(rows, len(ct.NumericFields), nil)
	for j, name := range ct.NumericFields {
		col, err := ds.Column(name)
		if err != nil {
			return nil, err
		}
		for i := 0; i < rows; i++ {
			block.Set(i, j, col.Floats[i])
		}
	}
	return block, nil
}
