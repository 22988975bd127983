// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package phytree implements a phylogenetic tree
// in which each node stores the length
// of the branch that connects it with its parent.
//
// Nodes are identified by an integer
// given in the order in which the nodes are added to the tree.
// A tree built with a single parentless node is rooted;
// adding several parentless nodes produces a forest,
// which is a valid container
// but will be rejected by any analysis
// that requires a rooted tree.
package phytree

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// ErrInvalidLength is returned when adding a node
// with a negative branch length.
var ErrInvalidLength = errors.New("phytree: invalid branch length")

type node struct {
	id       int
	parent   int
	children []int
	length   float64 // NaN if undefined
	taxon    string
}

// A Tree is a phylogenetic tree,
// a collection of nodes
// connected by branches with lengths.
type Tree struct {
	name  string
	nodes []node
	taxa  map[string]int
	roots []int
}

// New creates a new empty tree with a given name.
func New(name string) *Tree {
	return &Tree{
		name: strings.Join(strings.Fields(name), " "),
		taxa: make(map[string]int),
	}
}

// Add adds a new node as a child of the indicated node,
// and returns the ID of the added node.
// If parent is -1 the node will be added without a parent,
// that is, as a root of the tree.
// The branch length is the length of the branch
// that connects the node with its parent;
// use NaN to indicate an undefined length
// (for example, for a root).
// A name is required for terminal nodes
// and optional for internal nodes.
//
// Node names are not required to be unique at build time;
// analyses that require unique terminals
// validate the tree when called.
// TaxNode always resolves a repeated name
// to the first node added with it.
func (t *Tree) Add(parent int, length float64, name string) (int, error) {
	if parent != -1 && (parent < 0 || parent >= len(t.nodes)) {
		return -1, fmt.Errorf("phytree: tree %q: invalid parent node %d", t.name, parent)
	}
	if length < 0 {
		return -1, fmt.Errorf("phytree: tree %q: %w: %.6f", t.name, ErrInvalidLength, length)
	}

	name = strings.Join(strings.Fields(name), " ")
	id := len(t.nodes)
	t.nodes = append(t.nodes, node{
		id:     id,
		parent: parent,
		length: length,
		taxon:  name,
	})
	if parent == -1 {
		t.roots = append(t.roots, id)
	} else {
		p := &t.nodes[parent]
		p.children = append(p.children, id)
	}
	if name != "" {
		if _, dup := t.taxa[name]; !dup {
			t.taxa[name] = id
		}
	}
	return id, nil
}

// Children returns the IDs of the children of the indicated node,
// in the order in which they were added.
func (t *Tree) Children(id int) []int {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	return slices.Clone(t.nodes[id].children)
}

// IsRooted reports whether the tree has one,
// and only one,
// parentless node.
func (t *Tree) IsRooted() bool {
	return len(t.roots) == 1
}

// IsTerm reports whether the indicated node is a terminal,
// a node without descendants.
func (t *Tree) IsTerm(id int) bool {
	if id < 0 || id >= len(t.nodes) {
		return false
	}
	return len(t.nodes[id].children) == 0
}

// Len returns the number of nodes of the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Length returns the length of the branch
// that connects the indicated node with its parent.
// The second return value is false
// if the node does not have a defined branch length.
func (t *Tree) Length(id int) (float64, bool) {
	if id < 0 || id >= len(t.nodes) {
		return 0, false
	}
	ln := t.nodes[id].length
	if math.IsNaN(ln) {
		return 0, false
	}
	return ln, true
}

// Name returns the name of the tree.
func (t *Tree) Name() string {
	return t.name
}

// Nodes returns the IDs of all nodes of the tree.
func (t *Tree) Nodes() []int {
	ids := make([]int, len(t.nodes))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// Parent returns the ID of the parent of the indicated node,
// or -1 if the node is a root.
func (t *Tree) Parent(id int) int {
	if id < 0 || id >= len(t.nodes) {
		return -1
	}
	return t.nodes[id].parent
}

// Root returns the ID of the root node of the tree.
// It returns -1 if the tree is empty,
// or if it is a forest
// with multiple parentless nodes.
func (t *Tree) Root() int {
	if len(t.roots) != 1 {
		return -1
	}
	return t.roots[0]
}

// TaxNode returns the ID of the first node
// with a given taxon name,
// or -1 if no node has that name.
func (t *Tree) TaxNode(name string) int {
	name = strings.Join(strings.Fields(name), " ")
	id, ok := t.taxa[name]
	if !ok {
		return -1
	}
	return id
}

// Taxon returns the taxon name of the indicated node,
// or an empty string for unnamed nodes.
func (t *Tree) Taxon(id int) string {
	if id < 0 || id >= len(t.nodes) {
		return ""
	}
	return t.nodes[id].taxon
}

// Terms returns the names of all named terminals of the tree,
// sorted alphabetically.
func (t *Tree) Terms() []string {
	var terms []string
	for _, n := range t.nodes {
		if len(n.children) > 0 {
			continue
		}
		if n.taxon == "" {
			continue
		}
		terms = append(terms, n.taxon)
	}
	slices.Sort(terms)
	return terms
}
