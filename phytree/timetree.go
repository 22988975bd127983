// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phytree

import (
	"math"

	"github.com/js-arias/timetree"
)

const millionYears = 1_000_000

// FromTimetree creates a new tree from a dated tree,
// setting the length of each branch
// to the time extension of the branch,
// in million years.
// The root keeps an undefined branch length.
func FromTimetree(t *timetree.Tree) *Tree {
	nt := New(t.Name())
	copyNode(nt, t, t.Root(), -1)
	return nt
}

func copyNode(nt *Tree, t *timetree.Tree, id, parent int) {
	ln := math.NaN()
	if parent != -1 {
		ln = float64(t.Age(t.Parent(id))-t.Age(id)) / millionYears
	}
	nid, err := nt.Add(parent, ln, t.Taxon(id))
	if err != nil {
		// negative time branches are invalid in a dated tree
		panic(err)
	}
	for _, c := range t.Children(id) {
		copyNode(nt, t, c, nid)
	}
}
