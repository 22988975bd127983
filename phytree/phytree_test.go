// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phytree_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/js-arias/biodiv/phytree"
)

func TestTree(t *testing.T) {
	tr := phytree.New("vertebrata")

	root, err := tr.Add(-1, math.NaN(), "")
	if err != nil {
		t.Fatalf("unable to add root: %v", err)
	}
	in, err := tr.Add(root, 10, "")
	if err != nil {
		t.Fatalf("unable to add internal node: %v", err)
	}
	t1, err := tr.Add(in, 5, "Homo sapiens")
	if err != nil {
		t.Fatalf("unable to add terminal: %v", err)
	}
	t2, err := tr.Add(in, 5, "Pan troglodytes")
	if err != nil {
		t.Fatalf("unable to add terminal: %v", err)
	}
	t3, err := tr.Add(root, 15, "Mus  musculus")
	if err != nil {
		t.Fatalf("unable to add terminal: %v", err)
	}

	if got := tr.Name(); got != "vertebrata" {
		t.Errorf("name: got %q, want %q", got, "vertebrata")
	}
	if got := tr.Len(); got != 5 {
		t.Errorf("nodes: got %d, want %d", got, 5)
	}
	if !tr.IsRooted() {
		t.Errorf("tree %q should be rooted", tr.Name())
	}
	if got := tr.Root(); got != root {
		t.Errorf("root: got %d, want %d", got, root)
	}
	if got := tr.Parent(t1); got != in {
		t.Errorf("parent of %d: got %d, want %d", t1, got, in)
	}
	if got := tr.Parent(root); got != -1 {
		t.Errorf("parent of root: got %d, want %d", got, -1)
	}
	if got := tr.Children(root); !reflect.DeepEqual(got, []int{in, t3}) {
		t.Errorf("children of root: got %v, want %v", got, []int{in, t3})
	}
	if !tr.IsTerm(t2) {
		t.Errorf("node %d should be a terminal", t2)
	}
	if tr.IsTerm(in) {
		t.Errorf("node %d should not be a terminal", in)
	}

	// name canonicalization
	if got := tr.Taxon(t3); got != "Mus musculus" {
		t.Errorf("taxon of %d: got %q, want %q", t3, got, "Mus musculus")
	}
	if got := tr.TaxNode("Homo   sapiens"); got != t1 {
		t.Errorf("node of taxon: got %d, want %d", got, t1)
	}
	if got := tr.TaxNode("Gallus gallus"); got != -1 {
		t.Errorf("node of absent taxon: got %d, want %d", got, -1)
	}

	if ln, ok := tr.Length(t3); !ok || ln != 15 {
		t.Errorf("length of %d: got %.3f [%v], want %.3f", t3, ln, ok, 15.0)
	}
	if _, ok := tr.Length(root); ok {
		t.Errorf("root should not have a defined branch length")
	}

	terms := []string{"Homo sapiens", "Mus musculus", "Pan troglodytes"}
	if got := tr.Terms(); !reflect.DeepEqual(got, terms) {
		t.Errorf("terminals: got %v, want %v", got, terms)
	}
	if got := tr.Nodes(); !reflect.DeepEqual(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("node IDs: got %v, want %v", got, []int{0, 1, 2, 3, 4})
	}
}

func TestForest(t *testing.T) {
	tr := phytree.New("forest")
	r1, _ := tr.Add(-1, math.NaN(), "")
	tr.Add(r1, 1, "tip A")
	tr.Add(r1, 1, "tip B")
	r2, _ := tr.Add(-1, math.NaN(), "")
	tr.Add(r2, 1, "tip C")

	if tr.IsRooted() {
		t.Errorf("a forest should not be rooted")
	}
	if got := tr.Root(); got != -1 {
		t.Errorf("root of a forest: got %d, want %d", got, -1)
	}
}

func TestAddErrors(t *testing.T) {
	tr := phytree.New("bad adds")
	root, _ := tr.Add(-1, math.NaN(), "")

	if _, err := tr.Add(100, 1, "far tip"); err == nil {
		t.Errorf("expecting error when adding to an invalid parent")
	}
	if _, err := tr.Add(root, -3, "negative tip"); !errors.Is(err, phytree.ErrInvalidLength) {
		t.Errorf("got error %q, want %q", err, phytree.ErrInvalidLength)
	}
}
