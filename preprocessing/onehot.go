package preprocessing

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/insurebench/core/model"
	"github.com/YuminosukeSato/insurebench/pkg/errors"
)

// UnknownPolicy decides what Transform does with a category value that was
// not seen during Fit.
type UnknownPolicy int

const (
	// UnknownError rejects unseen categories with a ValueError. This is the
	// default: a value outside the fitted vocabulary usually means the wrong
	// transformer is paired with the data.
	UnknownError UnknownPolicy = iota
	// UnknownIgnore encodes an unseen category as an all-zero indicator
	// block.
	UnknownIgnore
)

// OneHotEncoder expands a categorical field into one indicator column per
// distinct value observed at fit time. Categories are kept sorted so the
// column layout is deterministic.
type OneHotEncoder struct {
	model.BaseEstimator

	// Categories is the sorted fit-time vocabulary.
	Categories []string

	// Unknown selects the unseen-category behavior.
	Unknown UnknownPolicy

	index map[string]int
}

// NewOneHotEncoder creates an unfitted encoder with the given policy.
func NewOneHotEncoder(policy UnknownPolicy) *OneHotEncoder {
	return &OneHotEncoder{Unknown: policy}
}

// Fit records the distinct values of labels as the encoding vocabulary.
func (e *OneHotEncoder) Fit(labels []string) error {
	if len(labels) == 0 {
		return errors.NewModelError("OneHotEncoder.Fit", "empty data", errors.ErrEmptyData)
	}

	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	e.Categories = make([]string, 0, len(set))
	for l := range set {
		e.Categories = append(e.Categories, l)
	}
	sort.Strings(e.Categories)
	e.buildIndex()
	e.SetFitted()
	return nil
}

// buildIndex rebuilds the lookup map. It is also called after gob decoding,
// which does not restore unexported fields.
func (e *OneHotEncoder) buildIndex() {
	e.index = make(map[string]int, len(e.Categories))
	for i, c := range e.Categories {
		e.index[c] = i
	}
}

// NumCategories returns the vocabulary size.
func (e *OneHotEncoder) NumCategories() int {
	return len(e.Categories)
}

// Transform encodes labels into an n×NumCategories indicator matrix.
func (e *OneHotEncoder) Transform(labels []string) (*mat.Dense, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("OneHotEncoder", "Transform")
	}
	if e.index == nil {
		e.buildIndex()
	}
	if len(labels) == 0 {
		return nil, errors.NewModelError("OneHotEncoder.Transform", "empty data", errors.ErrEmptyData)
	}

	result := mat.NewDense(len(labels), len(e.Categories), nil)
	for i, l := range labels {
		j, ok := e.index[l]
		if !ok {
			if e.Unknown == UnknownIgnore {
				continue
			}
			return nil, errors.NewValueError("OneHotEncoder.Transform", "unseen category "+l)
		}
		result.Set(i, j, 1.0)
	}
	return result, nil
}
