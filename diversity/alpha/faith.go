// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package alpha

import (
	"github.com/js-arias/biodiv/diversity/phylo"
	"github.com/js-arias/biodiv/phytree"
)

// FaithPD returns Faith's phylogenetic diversity of a sample:
// the total branch length of the tree
// spanned by the OTUs present in the sample.
// Each OTU must be the name of a terminal of the tree.
// If validate is false
// the structural checks on the tree
// and the OTU identifiers are skipped.
//
// To compute the metric over many samples
// that share the same OTUs and tree
// use the diversity package,
// which traverses the tree only once.
func FaithPD(counts []float64, otuIDs []string, t *phytree.Tree, validate bool) (float64, error) {
	s, err := phylo.NewSetup([][]float64{counts}, otuIDs, t, validate)
	if err != nil {
		return 0, err
	}
	return s.FaithPD(0), nil
}
