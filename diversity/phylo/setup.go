// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo

import (
	"fmt"
	"math"

	"github.com/js-arias/biodiv/phytree"
)

// A Setup bundles the tree index,
// the propagated counts,
// and the per sample totals
// required by the phylogenetic diversity metrics.
// It is built once per group of samples
// that share the same OTUs and tree,
// so an all pairs computation
// traverses the tree a single time.
//
// A Setup is read only after construction.
type Setup struct {
	ix      *Index
	counts  [][]float64 // per sample counts by node
	totals  []float64   // per sample total counts
	tipDist []float64   // root to terminal path lengths
}

// NewSetup validates the tree and the OTU identifiers,
// builds the node index,
// and propagates the counts of every sample.
//
// When validate is false
// the structural checks on the tree and the OTUs are skipped;
// the index construction still requires
// that every OTU resolves to a terminal
// and that every spanned node has a branch length.
// Skipping validation on malformed input
// produces undefined metric values.
func NewSetup(counts [][]float64, otuIDs []string, t *phytree.Tree, validate bool) (*Setup, error) {
	if validate {
		if err := validateTree(t, otuIDs, counts); err != nil {
			return nil, err
		}
	}

	ix, err := NewIndex(t, otuIDs)
	if err != nil {
		return nil, err
	}

	s := &Setup{
		ix:      ix,
		counts:  make([][]float64, len(counts)),
		totals:  make([]float64, len(counts)),
		tipDist: ix.TipDistances(),
	}
	root := ix.Root()
	if root == -1 {
		// an unrooted tree with validation off:
		// use the first index as the accumulation point
		root = 0
	}
	for i, row := range counts {
		cbn := ix.CountsByNode(row)
		s.counts[i] = cbn
		s.totals[i] = cbn[root]
	}
	return s, nil
}

func validateTree(t *phytree.Tree, otuIDs []string, counts [][]float64) error {
	if !t.IsRooted() {
		return fmt.Errorf("%w: tree %q", ErrNotRooted, t.Name())
	}
	if t.Len() < 2 {
		return fmt.Errorf("%w: tree %q", ErrSingleNode, t.Name())
	}

	terms := t.Terms()
	for i := 1; i < len(terms); i++ {
		if terms[i] == terms[i-1] {
			return fmt.Errorf("%w: %q", ErrRepeatedTips, terms[i])
		}
	}

	otus := make(map[string]bool, len(otuIDs))
	for _, otu := range otuIDs {
		if otus[otu] {
			return fmt.Errorf("%w: %q", ErrRepeatedOTU, otu)
		}
		otus[otu] = true
	}

	for i, row := range counts {
		if len(row) != len(otuIDs) {
			return fmt.Errorf("%w: sample %d has %d values, want %d", ErrCountsWidth, i, len(row), len(otuIDs))
		}
	}
	return nil
}

// Index returns the node index of the setup.
func (s *Setup) Index() *Index {
	return s.ix
}

// Samples returns the number of samples of the setup.
func (s *Setup) Samples() int {
	return len(s.counts)
}

// Total returns the total count of the i-th sample.
func (s *Setup) Total(i int) float64 {
	return s.totals[i]
}

// FaithPD returns Faith's phylogenetic diversity
// of the i-th sample:
// the sum of the branch lengths
// of the nodes spanned by the OTUs
// present in the sample.
func (s *Setup) FaithPD(i int) float64 {
	cbn := s.counts[i]

	var pd float64
	for k, c := range cbn {
		if c > 0 {
			pd += s.ix.lengths[k]
		}
	}
	return pd
}

// UnweightedUniFrac returns the unweighted UniFrac distance
// between the i-th and j-th samples:
// the fraction of the observed branch length
// that leads to OTUs present in only one of the samples.
// It is 0 when no branch is observed in either sample.
func (s *Setup) UnweightedUniFrac(i, j int) float64 {
	u := s.counts[i]
	v := s.counts[j]

	var unique, observed float64
	for k := range u {
		inU := u[k] > 0
		inV := v[k] > 0
		if !inU && !inV {
			continue
		}
		ln := s.ix.lengths[k]
		observed += ln
		if inU != inV {
			unique += ln
		}
	}
	if observed == 0 {
		return 0
	}
	return unique / observed
}

// WeightedUniFrac returns the weighted UniFrac distance
// between the i-th and j-th samples:
// the sum of the branch lengths
// weighted by the difference
// of the relative abundances of the samples on each branch.
// If normalized is true
// the distance is scaled by the abundance weighted
// root to terminal distances,
// so it lies in [0, 1].
func (s *Setup) WeightedUniFrac(i, j int, normalized bool) float64 {
	u := s.counts[i]
	v := s.counts[j]
	uTot := s.totals[i]
	vTot := s.totals[j]

	var d float64
	for k := range u {
		var uf, vf float64
		if uTot > 0 {
			uf = u[k] / uTot
		}
		if vTot > 0 {
			vf = v[k] / vTot
		}
		d += s.ix.lengths[k] * math.Abs(uf-vf)
	}
	if !normalized {
		return d
	}

	var c float64
	for _, tip := range s.ix.tips {
		var uf, vf float64
		if uTot > 0 {
			uf = u[tip] / uTot
		}
		if vTot > 0 {
			vf = v[tip] / vTot
		}
		c += s.tipDist[tip] * (uf + vf)
	}
	if c == 0 {
		return 0
	}
	return d / c
}
