// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package phylo implements the tree machinery
// shared by the phylogenetic diversity metrics:
// a dense index over the tree nodes
// spanned by a set of OTUs,
// and the propagation of per sample OTU counts
// over that index.
//
// Building the index
// and propagating every sample once
// amortizes the cost of the tree traversal
// over all the per sample
// and per pair metric evaluations of a call.
package phylo

import (
	"fmt"

	"github.com/js-arias/biodiv/phytree"
)

// An Index is a dense mapping
// of the tree nodes spanned by a set of OTUs,
// that is the OTU terminals
// and all their ancestors up to the root.
// Each spanned node receives an index
// in the order in which it is first encountered
// while walking each terminal towards the root.
//
// An Index is read only after construction
// and can be shared freely between goroutines.
type Index struct {
	t *phytree.Tree

	nodes   []int       // tree node ID at each index
	pos     map[int]int // tree node ID to index
	parent  []int       // index of the parent, -1 for a walk root
	lengths []float64   // branch length at each index, 0 for a root
	tips    []int       // index of each OTU terminal, in OTU order
	post    []int       // indexes in postorder, children before parents
}

// NewIndex creates a new index
// for the nodes of a tree
// spanned by the given OTU identifiers.
// Each OTU must be the name of a terminal of the tree,
// and every spanned node,
// except the root,
// must have a defined branch length.
func NewIndex(t *phytree.Tree, otuIDs []string) (*Index, error) {
	ix := &Index{
		t:    t,
		pos:  make(map[int]int),
		tips: make([]int, len(otuIDs)),
	}

	for i, otu := range otuIDs {
		tip := t.TaxNode(otu)
		if tip < 0 || !t.IsTerm(tip) {
			return nil, &MissingTipError{ID: otu}
		}
		for id := tip; id != -1; id = t.Parent(id) {
			if _, ok := ix.pos[id]; ok {
				break
			}
			ix.pos[id] = len(ix.nodes)
			ix.nodes = append(ix.nodes, id)
		}
		ix.tips[i] = ix.pos[tip]
	}

	ix.parent = make([]int, len(ix.nodes))
	ix.lengths = make([]float64, len(ix.nodes))
	for i, id := range ix.nodes {
		p := t.Parent(id)
		if p == -1 {
			ix.parent[i] = -1
			continue
		}
		ix.parent[i] = ix.pos[p]
		ln, ok := t.Length(id)
		if !ok {
			return nil, &MissingLengthError{Node: id}
		}
		ix.lengths[i] = ln
	}

	ix.postorder()
	return ix, nil
}

// postorder sets the traversal order
// used to propagate counts.
// The walk order used to build the index
// does not guarantee that all the children of a node
// come before the node itself,
// so an explicit postorder pass is required.
func (ix *Index) postorder() {
	children := make([][]int, len(ix.nodes))
	var roots []int
	for i, p := range ix.parent {
		if p == -1 {
			roots = append(roots, i)
			continue
		}
		children[p] = append(children[p], i)
	}

	ix.post = make([]int, 0, len(ix.nodes))
	var walk func(i int)
	walk = func(i int) {
		for _, c := range children[i] {
			walk(c)
		}
		ix.post = append(ix.post, i)
	}
	for _, r := range roots {
		walk(r)
	}
}

// CountsByNode propagates a counts vector,
// with one value per OTU in index order,
// over the spanned nodes:
// the value of a terminal is its OTU count,
// and the value of an internal node
// is the sum of the values of its children.
func (ix *Index) CountsByNode(counts []float64) []float64 {
	if len(counts) != len(ix.tips) {
		panic(fmt.Sprintf("phylo: counts vector with %d values, want %d", len(counts), len(ix.tips)))
	}

	cbn := make([]float64, len(ix.nodes))
	for i, tip := range ix.tips {
		cbn[tip] += counts[i]
	}
	for _, i := range ix.post {
		if p := ix.parent[i]; p != -1 {
			cbn[p] += cbn[i]
		}
	}
	return cbn
}

// Len returns the number of spanned nodes.
func (ix *Index) Len() int {
	return len(ix.nodes)
}

// Lengths returns the branch length of each spanned node,
// in index order.
// The length of the root is 0.
func (ix *Index) Lengths() []float64 {
	lengths := make([]float64, len(ix.lengths))
	copy(lengths, ix.lengths)
	return lengths
}

// Node returns the tree node ID
// at the indicated index.
func (ix *Index) Node(i int) int {
	return ix.nodes[i]
}

// Root returns the index of the root of the tree,
// or -1 if the tree is not rooted.
func (ix *Index) Root() int {
	r := ix.t.Root()
	if r == -1 {
		return -1
	}
	p, ok := ix.pos[r]
	if !ok {
		return -1
	}
	return p
}

// Tip returns the index of the terminal
// of the i-th OTU.
func (ix *Index) Tip(i int) int {
	return ix.tips[i]
}

// TipDistances returns,
// for each spanned node,
// the sum of the branch lengths
// in the path from the node to the root.
// Only the values at terminal indexes
// are meaningful for the metrics.
func (ix *Index) TipDistances() []float64 {
	dist := make([]float64, len(ix.nodes))
	for _, tip := range ix.tips {
		var d float64
		for i := tip; i != -1; i = ix.parent[i] {
			d += ix.lengths[i]
		}
		dist[tip] = d
	}
	return dist
}
