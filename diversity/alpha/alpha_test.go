// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package alpha_test

import (
	"math"
	"testing"

	"github.com/js-arias/biodiv/diversity/alpha"
)

func equalFloat(t testing.TB, metric string, got, want float64) {
	t.Helper()

	if math.IsNaN(want) {
		if !math.IsNaN(got) {
			t.Errorf("%s: got %.6f, want NaN", metric, got)
		}
		return
	}
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("%s: got %.6f, want %.6f [diff = %.6f]", metric, got, want, math.Abs(got-want))
	}
}

func TestCountMetrics(t *testing.T) {
	counts := []float64{4, 3, 4, 0, 1, 0, 2}

	equalFloat(t, "observed_otus", alpha.ObservedOTUs(counts), 5)
	equalFloat(t, "singles", alpha.Singles(counts), 1)
	equalFloat(t, "doubles", alpha.Doubles(counts), 1)

	o, s, d := alpha.OSD(counts)
	equalFloat(t, "osd-observed", o, 5)
	equalFloat(t, "osd-singles", s, 1)
	equalFloat(t, "osd-doubles", d, 1)
}

func TestShannon(t *testing.T) {
	equalFloat(t, "shannon", alpha.Shannon([]float64{1, 1, 1, 1}, 2), 2)
	equalFloat(t, "shannon", alpha.Shannon([]float64{1, 1, 1, 1}, math.E), math.Log(4))
	equalFloat(t, "shannon", alpha.Shannon([]float64{8, 0, 0, 0}, 2), 0)
}

func TestSimpsonFamily(t *testing.T) {
	counts := []float64{1, 0, 2, 5, 2}

	equalFloat(t, "dominance", alpha.Dominance(counts), 0.34)
	equalFloat(t, "simpson", alpha.Simpson(counts), 0.66)
	equalFloat(t, "enspie", alpha.ENSPIE(counts), 1/0.34)
	equalFloat(t, "simpson_e", alpha.SimpsonE(counts), 1/0.34/4)
}

func TestEstimators(t *testing.T) {
	counts := []float64{2, 2, 1, 1, 1}

	equalFloat(t, "chao1", alpha.Chao1(counts, true), 6)
	equalFloat(t, "chao1", alpha.Chao1(counts, false), 7.25)

	est := alpha.Chao1(counts, true)
	lo, hi := alpha.Chao1CI(counts, true)
	if lo > est || hi < est {
		t.Errorf("chao1_ci: interval [%.6f, %.6f] does not bracket %.6f", lo, hi, est)
	}

	equalFloat(t, "ace", alpha.ACE([]float64{1, 1, 2, 3, 12}), 6.786667)
	equalFloat(t, "ace", alpha.ACE([]float64{1, 1, 1}), math.NaN())
	equalFloat(t, "robbins", alpha.Robbins([]float64{1, 2, 3}), 1.0/7)
	equalFloat(t, "goods_coverage", alpha.GoodsCoverage([]float64{1, 2, 3}), 1-1.0/6)

	f1 := alpha.Singles([]float64{1, 1, 2, 3})
	n := 7.0
	lo, hi = alpha.EstyCI([]float64{1, 1, 2, 3})
	if mid := (lo + hi) / 2; math.Abs(mid-f1/n) > 1e-9 {
		t.Errorf("esty_ci: interval [%.6f, %.6f] not centered on %.6f", lo, hi, f1/n)
	}
}

func TestFisherAlpha(t *testing.T) {
	counts := []float64{5, 4, 3, 2, 1}
	a := alpha.FisherAlpha(counts)

	// the returned alpha must solve S = a * ln(1 + N/a)
	s := a * math.Log(1+15/a)
	equalFloat(t, "fisher_alpha", s, 5)

	// no solution when every OTU is a singleton
	equalFloat(t, "fisher_alpha", alpha.FisherAlpha([]float64{1, 1, 1}), math.NaN())
}

func TestRichness(t *testing.T) {
	even := []float64{1, 1, 1, 1}

	equalFloat(t, "margalef", alpha.Margalef(even), 3/math.Log(4))
	equalFloat(t, "menhinick", alpha.Menhinick(even), 2)
	equalFloat(t, "berger_parker_d", alpha.BergerParker(even), 0.25)
	equalFloat(t, "brillouin_d", alpha.Brillouin([]float64{1, 1, 1}), math.Log(6)/3)
	equalFloat(t, "kempton_taylor_q", alpha.KemptonTaylorQ([]float64{8, 3, 1, 2, 5, 4, 6, 7}, 0.25, 0.75), 4/math.Log(7.0/3))
}

func TestEvenness(t *testing.T) {
	even := []float64{1, 1, 1, 1}

	equalFloat(t, "pielou_e", alpha.PielouEvenness(even), 1)
	equalFloat(t, "heip_e", alpha.HeipEvenness(even), 1)
	equalFloat(t, "mcintosh_d", alpha.McIntoshD([]float64{1, 2, 3}), 0.636061)
	equalFloat(t, "mcintosh_e", alpha.McIntoshE([]float64{1, 2, 3}), math.Sqrt(14)/math.Sqrt(18))
	equalFloat(t, "strong", alpha.Strong([]float64{1, 2, 3}), 1.0/6)
	equalFloat(t, "gini_index", alpha.GiniIndex(even), 0)
	equalFloat(t, "gini_index", alpha.GiniIndex([]float64{0, 0, 0, 10}), 0.75)
}
