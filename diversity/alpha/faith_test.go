// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package alpha_test

import (
	"errors"
	"math"
	"testing"

	"github.com/js-arias/biodiv/diversity/alpha"
	"github.com/js-arias/biodiv/diversity/phylo"
	"github.com/js-arias/biodiv/phytree"
)

func TestFaithPD(t *testing.T) {
	tr := phytree.New("cherry")
	root, _ := tr.Add(-1, math.NaN(), "")
	anc, _ := tr.Add(root, 1, "")
	tr.Add(anc, 2, "x")
	tr.Add(anc, 2, "y")
	tr.Add(root, 5, "z")

	otuIDs := []string{"x", "y", "z"}

	pd, err := alpha.FaithPD([]float64{1, 1, 1}, otuIDs, tr, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 10.0; math.Abs(pd-want) > 1e-9 {
		t.Errorf("faith_pd: got %.6f, want %.6f", pd, want)
	}

	// only the branches to "x" are spanned
	pd, err = alpha.FaithPD([]float64{3, 0, 0}, otuIDs, tr, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := 3.0; math.Abs(pd-want) > 1e-9 {
		t.Errorf("faith_pd: got %.6f, want %.6f", pd, want)
	}

	var tipErr *phylo.MissingTipError
	if _, err := alpha.FaithPD([]float64{1, 1, 1}, []string{"x", "y", "w"}, tr, true); !errors.As(err, &tipErr) {
		t.Errorf("got error %q, want a MissingTipError", err)
	}
}
