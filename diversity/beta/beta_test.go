// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package beta_test

import (
	"math"
	"testing"

	"github.com/js-arias/biodiv/diversity/beta"
	"github.com/js-arias/biodiv/phytree"
)

func equalFloat(t testing.TB, metric string, got, want float64) {
	t.Helper()

	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s: got %.6f, want %.6f [diff = %.6f]", metric, got, want, math.Abs(got-want))
	}
}

func TestPairMetrics(t *testing.T) {
	u := []float64{1, 0, 2, 4}
	v := []float64{0, 1, 2, 1}

	equalFloat(t, "braycurtis", beta.BrayCurtis(u, v), 5.0/11)
	equalFloat(t, "canberra", beta.Canberra(u, v), 1+1+0+3.0/5)
	equalFloat(t, "chebyshev", beta.Chebyshev(u, v), 3)
	equalFloat(t, "cityblock", beta.CityBlock(u, v), 5)
	equalFloat(t, "euclidean", beta.Euclidean(u, v), math.Sqrt(11))
	equalFloat(t, "jaccard", beta.Jaccard(u, v), 0.5)

	dot := 4.0 + 4
	nu := math.Sqrt(1 + 4 + 16)
	nv := math.Sqrt(1 + 4 + 1)
	equalFloat(t, "cosine", beta.Cosine(u, v), 1-dot/(nu*nv))
}

func TestPairMetricsIdentity(t *testing.T) {
	u := []float64{3, 0, 1, 2}

	equalFloat(t, "braycurtis", beta.BrayCurtis(u, u), 0)
	equalFloat(t, "canberra", beta.Canberra(u, u), 0)
	equalFloat(t, "chebyshev", beta.Chebyshev(u, u), 0)
	equalFloat(t, "cityblock", beta.CityBlock(u, u), 0)
	equalFloat(t, "cosine", beta.Cosine(u, u), 0)
	equalFloat(t, "euclidean", beta.Euclidean(u, u), 0)
	equalFloat(t, "jaccard", beta.Jaccard(u, u), 0)
}

func TestUniFracPair(t *testing.T) {
	tr := phytree.New("cherry")
	root, _ := tr.Add(-1, math.NaN(), "")
	tr.Add(root, 1, "x")
	tr.Add(root, 1, "y")

	otuIDs := []string{"x", "y"}

	d, err := beta.UnweightedUniFrac([]float64{1, 0}, []float64{0, 1}, otuIDs, tr, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalFloat(t, "unweighted_unifrac", d, 1)

	d, err = beta.WeightedUniFrac([]float64{1, 0}, []float64{0, 1}, otuIDs, tr, false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalFloat(t, "weighted_unifrac", d, 2)

	d, err = beta.WeightedUniFrac([]float64{1, 0}, []float64{0, 1}, otuIDs, tr, true, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalFloat(t, "weighted_unifrac normalized", d, 1)
}
