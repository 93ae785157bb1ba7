package regression

import (
	"math/rand"
	"sort"
)

// TreeNode is one node of a regression tree. Exported fields keep the tree
// gob-encodable inside a model bundle.
type TreeNode struct {
	Leaf      bool
	Value     float64
	Feature   int
	Threshold float64
	Left      *TreeNode
	Right     *TreeNode
}

// treeConfig carries the growth limits shared by all trees of a forest.
type treeConfig struct {
	maxDepth        int
	minSamplesSplit int
	maxFeatures     int
}

// growTree builds a regression tree over the rows in idx, choosing at each
// node the split with the lowest total squared error among a random feature
// subset drawn from rng.
func growTree(X [][]float64, y []float64, idx []int, depth int, cfg treeConfig, rng *rand.Rand) *TreeNode {
	mean := meanOf(y, idx)
	if depth >= cfg.maxDepth || len(idx) < cfg.minSamplesSplit || isConstant(y, idx) {
		return &TreeNode{Leaf: true, Value: mean}
	}

	feature, threshold, ok := bestSplit(X, y, idx, cfg.maxFeatures, rng)
	if !ok {
		return &TreeNode{Leaf: true, Value: mean}
	}

	var left, right []int
	for _, i := range idx {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &TreeNode{Leaf: true, Value: mean}
	}

	return &TreeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      growTree(X, y, left, depth+1, cfg, rng),
		Right:     growTree(X, y, right, depth+1, cfg, rng),
	}
}

// bestSplit scans a random subset of features for the split minimizing the
// summed squared error of the two children. Candidate thresholds are the
// midpoints between consecutive distinct feature values.
func bestSplit(X [][]float64, y []float64, idx []int, maxFeatures int, rng *rand.Rand) (int, float64, bool) {
	nFeatures := len(X[idx[0]])
	features := rng.Perm(nFeatures)
	if maxFeatures > 0 && maxFeatures < nFeatures {
		features = features[:maxFeatures]
	}

	bestSSE := 0.0
	bestFeature, bestThreshold := -1, 0.0
	found := false

	order := make([]int, len(idx))
	for _, f := range features {
		copy(order, idx)
		// Ties broken by row index so tree growth is fully deterministic
		// for a given rng stream.
		sort.Slice(order, func(a, b int) bool {
			if X[order[a]][f] != X[order[b]][f] {
				return X[order[a]][f] < X[order[b]][f]
			}
			return order[a] < order[b]
		})

		// Prefix sums allow evaluating every split position in one pass.
		var sumL, sqL float64
		var sumR, sqR float64
		for _, i := range order {
			sumR += y[i]
			sqR += y[i] * y[i]
		}

		for k := 0; k < len(order)-1; k++ {
			v := y[order[k]]
			sumL += v
			sqL += v * v
			sumR -= v
			sqR -= v * v

			if X[order[k]][f] == X[order[k+1]][f] {
				continue
			}

			nL := float64(k + 1)
			nR := float64(len(order) - k - 1)
			sse := (sqL - sumL*sumL/nL) + (sqR - sumR*sumR/nR)
			if !found || sse < bestSSE {
				found = true
				bestSSE = sse
				bestFeature = f
				bestThreshold = (X[order[k]][f] + X[order[k+1]][f]) / 2
			}
		}
	}

	return bestFeature, bestThreshold, found
}

// predictTree walks the tree for one feature row.
func predictTree(node *TreeNode, row []float64) float64 {
	for !node.Leaf {
		if row[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Value
}

func meanOf(y []float64, idx []int) float64 {
	var sum float64
	for _, i := range idx {
		sum += y[i]
	}
	return sum / float64(len(idx))
}

func isConstant(y []float64, idx []int) bool {
	for _, i := range idx[1:] {
		if y[i] != y[idx[0]] {
			return false
		}
	}
	return true
}
