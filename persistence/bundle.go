// Package persistence serializes a fitted estimator together with the exact
// transformation that produced its training features. The two are one atomic
// unit: scoring a model through any other transformation is a feature-space
// mismatch.
package persistence

import (
	"encoding/gob"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/YuminosukeSato/insurebench/core/model"
	"github.com/YuminosukeSato/insurebench/evaluation"
	"github.com/YuminosukeSato/insurebench/preprocessing"
	"github.com/YuminosukeSato/insurebench/regression"
)

func init() {
	// Concrete regressors travel through the model.Regressor interface
	// field, so gob needs them registered up front.
	gob.Register(&regression.LinearRegression{})
	gob.Register(&regression.Ridge{})
	gob.Register(&regression.RandomForest{})
}

// Metadata describes the benchmark run that produced a bundle.
type Metadata struct {
	RunID     string
	ModelName string
	CreatedAt time.Time
	Metrics   evaluation.Metrics
	Params    map[string]interface{}
}

// ModelBundle pairs a fitted estimator with its fitted ColumnTransformer.
type ModelBundle struct {
	Model       model.Regressor
	Transformer *preprocessing.ColumnTransformer
	Meta        Metadata
}

// NewBundle assembles a bundle for a trained and evaluated model. runID ties
// every bundle of one pipeline run together; pass an empty string to mint a
// fresh one.
func NewBundle(name string, reg model.Regressor, tf *preprocessing.ColumnTransformer, m evaluation.Metrics, runID string) *ModelBundle {
	if runID == "" {
		runID = uuid.NewString()
	}
	meta := Metadata{
		RunID:     runID,
		ModelName: name,
		CreatedAt: time.Now().UTC(),
		Metrics:   m,
	}
	if pg, ok := reg.(model.ParameterGetter); ok {
		meta.Params = pg.GetParams()
	}
	return &ModelBundle{Model: reg, Transformer: tf, Meta: meta}
}

// Filename derives the on-disk name for a model display name: spaces become
// underscores, extension is .gob.
func Filename(displayName string) string {
	return strings.ReplaceAll(displayName, " ", "_") + ".gob"
}

// Save writes the bundle under dir using the deterministic filename for its
// model name. I/O failures propagate; callers must not continue as if the
// artifact existed.
func (b *ModelBundle) Save(dir string) (string, error) {
	path := filepath.Join(dir, Filename(b.Meta.ModelName))
	if err := model.SaveGob(b, path); err != nil {
		return "", err
	}
	return path, nil
}

// Load reads a bundle back. The decoded estimator and transformer come back
// fitted, ready for Predict and Transform.
func Load(path string) (*ModelBundle, error) {
	var b ModelBundle
	if err := model.LoadGob(&b, path); err != nil {
		return nil, err
	}
	return &b, nil
}
