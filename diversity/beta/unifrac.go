// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package beta

import (
	"github.com/js-arias/biodiv/diversity/phylo"
	"github.com/js-arias/biodiv/phytree"
)

// UnweightedUniFrac returns the unweighted UniFrac distance
// between two samples:
// the fraction of the observed branch length of the tree
// that leads only to OTUs
// present in one of the samples.
// Each OTU must be the name of a terminal of the tree.
// If validate is false
// the structural checks on the tree
// and the OTU identifiers are skipped.
//
// To compute the distances among many samples
// that share the same OTUs and tree
// use the diversity package,
// which traverses the tree only once.
func UnweightedUniFrac(u, v []float64, otuIDs []string, t *phytree.Tree, validate bool) (float64, error) {
	s, err := phylo.NewSetup([][]float64{u, v}, otuIDs, t, validate)
	if err != nil {
		return 0, err
	}
	return s.UnweightedUniFrac(0, 1), nil
}

// WeightedUniFrac returns the weighted UniFrac distance
// between two samples:
// the branch lengths of the tree
// weighted by the difference
// of the relative abundances of the samples.
// If normalized is true
// the distance is scaled to lie in [0, 1].
func WeightedUniFrac(u, v []float64, otuIDs []string, t *phytree.Tree, normalized, validate bool) (float64, error) {
	s, err := phylo.NewSetup([][]float64{u, v}, otuIDs, t, validate)
	if err != nil {
		return 0, err
	}
	return s.WeightedUniFrac(0, 1, normalized), nil
}
