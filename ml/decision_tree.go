package ml

import (
	"encoding/json"
	"errors"
	"fmt"
)

type DecisionTree struct {
	classSpace
	Nodes []TreeNode `json:"nodes"`
}

// TreeNode is one node of a fitted tree. Value holds the per-class sample
// weight that reached the node, in the tree's class order.
type TreeNode struct {
	FeatureIdx int       `json:"feature_idx"`
	Threshold  float64   `json:"threshold"`
	LeftChild  int       `json:"left_child"`
	RightChild int       `json:"right_child"`
	IsLeaf     bool      `json:"is_leaf"`
	Value      []float64 `json:"value"`
}

func (dt *DecisionTree) Predict(features []float64) (int, []float64, error) {
	if err := dt.checkWidth(features); err != nil {
		return 0, nil, err
	}
	proba, err := dt.leafProba(features)
	if err != nil {
		return 0, nil, err
	}
	return dt.pick(proba), proba, nil
}

func (dt *DecisionTree) leafProba(features []float64) ([]float64, error) {
	if len(dt.Nodes) == 0 {
		return nil, errors.New("model not trained")
	}
	idx := 0
	for steps := 0; steps <= len(dt.Nodes); steps++ {
		node := dt.Nodes[idx]
		if node.IsLeaf {
			return normalize(node.Value), nil
		}
		if features[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
	}
	return nil, errors.New("invalid tree state")
}

func (dt *DecisionTree) validate() error {
	if err := dt.classSpace.validate("decision_tree"); err != nil {
		return err
	}
	return validateNodes(dt.Nodes, dt.Width, len(dt.ClassValues))
}

func validateNodes(nodes []TreeNode, width, classes int) error {
	if len(nodes) == 0 {
		return invalidModel("tree has no nodes")
	}
	for i, node := range nodes {
		if node.IsLeaf {
			if len(node.Value) != classes {
				return invalidModel("leaf %d has %d class weights, want %d", i, len(node.Value), classes)
			}
			continue
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= width {
			return invalidModel("node %d feature index %d out of range", i, node.FeatureIdx)
		}
		// children always follow their parent in the flattened layout
		if node.LeftChild <= i || node.LeftChild >= len(nodes) || node.RightChild <= i || node.RightChild >= len(nodes) {
			return invalidModel("node %d has invalid children %d/%d", i, node.LeftChild, node.RightChild)
		}
	}
	return nil
}

func decodeDecisionTree(payload []byte) (Classifier, error) {
	dt := &DecisionTree{}
	if err := json.Unmarshal(payload, dt); err != nil {
		return nil, err
	}
	if err := dt.validate(); err != nil {
		return nil, err
	}
	return dt, nil
}

// RandomForest averages the leaf distributions of its trees.
type RandomForest struct {
	classSpace
	Estimators []Estimator `json:"estimators"`
}

type Estimator struct {
	Nodes []TreeNode `json:"nodes"`
}

func (rf *RandomForest) Predict(features []float64) (int, []float64, error) {
	if err := rf.checkWidth(features); err != nil {
		return 0, nil, err
	}
	proba := make([]float64, len(rf.ClassValues))
	for i, est := range rf.Estimators {
		tree := DecisionTree{classSpace: rf.classSpace, Nodes: est.Nodes}
		p, err := tree.leafProba(features)
		if err != nil {
			return 0, nil, fmt.Errorf("estimator %d: %w", i, err)
		}
		for j := range proba {
			proba[j] += p[j]
		}
	}
	for j := range proba {
		proba[j] /= float64(len(rf.Estimators))
	}
	return rf.pick(proba), proba, nil
}

func decodeRandomForest(payload []byte) (Classifier, error) {
	rf := &RandomForest{}
	if err := json.Unmarshal(payload, rf); err != nil {
		return nil, err
	}
	if err := rf.classSpace.validate("random_forest"); err != nil {
		return nil, err
	}
	if len(rf.Estimators) == 0 {
		return nil, invalidModel("random_forest: no estimators")
	}
	for i, est := range rf.Estimators {
		if err := validateNodes(est.Nodes, rf.Width, len(rf.ClassValues)); err != nil {
			return nil, fmt.Errorf("estimator %d: %w", i, err)
		}
	}
	return rf, nil
}
