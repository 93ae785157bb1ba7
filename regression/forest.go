package regression

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/insurebench/core/model"
	"github.com/YuminosukeSato/insurebench/core/parallel"
	"github.com/YuminosukeSato/insurebench/pkg/errors"
)

// RandomForest averages a bootstrap ensemble of regression trees. Every tree
// draws its bootstrap sample and feature subsets from an rng seeded with
// Seed plus the tree index, so a fixed Seed reproduces the exact same forest
// regardless of how tree growth is scheduled across workers.
type RandomForest struct {
	model.BaseEstimator

	// NTrees is the ensemble size.
	NTrees int

	// MaxDepth bounds tree height.
	MaxDepth int

	// MinSamplesSplit is the smallest node still considered for splitting.
	MinSamplesSplit int

	// MaxFeatures is the number of features sampled per split; zero means
	// all features.
	MaxFeatures int

	// Seed fixes the ensemble randomness for reproducibility.
	Seed int64

	// Trees holds the grown ensemble.
	Trees []*TreeNode

	// NFeatures is the fitted feature count.
	NFeatures int
}

// NewRandomForest creates an unfitted forest with the given ensemble size
// and seed, and the usual depth defaults.
func NewRandomForest(nTrees int, seed int64) *RandomForest {
	return &RandomForest{
		NTrees:          nTrees,
		MaxDepth:        10,
		MinSamplesSplit: 2,
		Seed:            seed,
	}
}

// Fit grows the ensemble on X and the column vector y. Trees are grown in
// parallel; determinism is preserved by the per-tree rng seeding.
func (rf *RandomForest) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("RandomForest.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("RandomForest.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("RandomForest.Fit", "y must be a column vector")
	}
	if rf.NTrees <= 0 {
		return errors.NewValueError("RandomForest.Fit", "NTrees must be positive")
	}

	rows := make([][]float64, r)
	target := make([]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = X.At(i, j)
		}
		target[i] = y.At(i, 0)
	}

	cfg := treeConfig{
		maxDepth:        rf.MaxDepth,
		minSamplesSplit: rf.MinSamplesSplit,
		maxFeatures:     rf.MaxFeatures,
	}

	rf.NFeatures = c
	rf.Trees = make([]*TreeNode, rf.NTrees)
	parallel.ParallelizeWithThreshold(rf.NTrees, 4, func(start, end int) {
		for t := start; t < end; t++ {
			rng := rand.New(rand.NewSource(rf.Seed + int64(t)))
			sample := make([]int, r)
			for i := range sample {
				sample[i] = rng.Intn(r)
			}
			rf.Trees[t] = growTree(rows, target, sample, 0, cfg, rng)
		}
	})

	rf.SetFitted()
	return nil
}

// Predict returns the ensemble mean per row as an n×1 matrix.
func (rf *RandomForest) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !rf.IsFitted() {
		return nil, errors.NewNotFittedError("RandomForest", "Predict")
	}

	r, c := X.Dims()
	if c != rf.NFeatures {
		return nil, errors.NewDimensionError("RandomForest.Predict", rf.NFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			row[j] = X.At(i, j)
		}
		var sum float64
		for _, tree := range rf.Trees {
			sum += predictTree(tree, row)
		}
		predictions.Set(i, 0, sum/float64(len(rf.Trees)))
	}
	return predictions, nil
}

// GetParams returns the hyperparameters.
func (rf *RandomForest) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"n_trees":           rf.NTrees,
		"max_depth":         rf.MaxDepth,
		"min_samples_split": rf.MinSamplesSplit,
		"max_features":      rf.MaxFeatures,
		"seed":              rf.Seed,
	}
}
