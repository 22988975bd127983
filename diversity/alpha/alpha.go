// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package alpha implements metrics
// of the diversity within a single sample.
//
// Each metric takes a vector of OTU counts
// (non negative integer abundances)
// and returns a scalar.
// Metrics return NaN
// when they are undefined for the input
// (for example on an empty sample).
package alpha

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal is used for the confidence interval metrics.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// ObservedOTUs returns the number of OTUs
// present in the sample.
func ObservedOTUs(counts []float64) float64 {
	var o float64
	for _, c := range counts {
		if c > 0 {
			o++
		}
	}
	return o
}

// Singles returns the number of OTUs
// observed exactly once.
func Singles(counts []float64) float64 {
	var s float64
	for _, c := range counts {
		if c == 1 {
			s++
		}
	}
	return s
}

// Doubles returns the number of OTUs
// observed exactly twice.
func Doubles(counts []float64) float64 {
	var d float64
	for _, c := range counts {
		if c == 2 {
			d++
		}
	}
	return d
}

// OSD returns the number of observed OTUs,
// singletons,
// and doubletons,
// the base quantities of several estimators.
func OSD(counts []float64) (obs, singles, doubles float64) {
	return ObservedOTUs(counts), Singles(counts), Doubles(counts)
}

// ACE returns the abundance based coverage estimator
// of the OTU richness of the sample.
// OTUs with an abundance over the rare threshold of 10
// are considered abundant.
// It is NaN when every rare OTU is a singleton.
func ACE(counts []float64) float64 {
	const rareThreshold = 10

	var freq [rareThreshold + 1]float64
	var sAbun, sRare, nRare float64
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		if c > rareThreshold {
			sAbun++
			continue
		}
		sRare++
		nRare += c
		freq[int(c)]++
	}
	if sRare == 0 {
		return sAbun
	}
	if freq[1] == nRare {
		// all rare OTUs are singletons:
		// the sample coverage is zero
		return math.NaN()
	}

	cACE := 1 - freq[1]/nRare
	var top float64
	for i := 1.0; i <= rareThreshold; i++ {
		top += i * (i - 1) * freq[int(i)]
	}
	gamma := (sRare / cACE) * top / (nRare * (nRare - 1))
	gamma = math.Max(gamma-1, 0)
	return sAbun + sRare/cACE + (freq[1]/cACE)*gamma
}

// BergerParker returns the Berger-Parker dominance:
// the fraction of the sample
// that belongs to the most abundant OTU.
func BergerParker(counts []float64) float64 {
	return slices.Max(counts) / floats.Sum(counts)
}

// Brillouin returns the Brillouin index of the sample.
func Brillouin(counts []float64) float64 {
	n := floats.Sum(counts)
	var lf float64
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		g, _ := math.Lgamma(c + 1)
		lf += g
	}
	ln, _ := math.Lgamma(n + 1)
	return (ln - lf) / n
}

// Chao1 returns the Chao1 estimator
// of the OTU richness of the sample.
// If biasCorrected is false
// and the sample has both singletons and doubletons,
// the classic uncorrected form is used.
func Chao1(counts []float64, biasCorrected bool) float64 {
	o, s, d := OSD(counts)
	if !biasCorrected && s > 0 && d > 0 {
		return o + s*s/(2*d)
	}
	return o + s*(s-1)/(2*(d+1))
}

// Chao1CI returns the 95% confidence interval
// for the Chao1 estimator.
func Chao1CI(counts []float64, biasCorrected bool) (lo, hi float64) {
	o, s, d := OSD(counts)
	z := stdNormal.Quantile(0.975)

	if s == 0 {
		n := floats.Sum(counts)
		p := math.Exp(-n / o)
		est := o / (1 - p)
		delta := z * math.Sqrt(o*p/(1-p))
		return math.Max(o, est-delta), est + delta
	}

	est := Chao1(counts, biasCorrected)
	var variance float64
	switch {
	case !biasCorrected && d > 0:
		r := s / d
		variance = d * (r*r/2 + r*r*r + r*r*r*r/4)
	case d > 0:
		variance = s*(s-1)/(2*(d+1)) +
			s*(2*s-1)*(2*s-1)/(4*(d+1)*(d+1)) +
			s*s*d*(s-1)*(s-1)/(4*(d+1)*(d+1)*(d+1)*(d+1))
	default:
		variance = s*(s-1)/2 + s*(2*s-1)*(2*s-1)/4 - s*s*s*s/(4*est)
	}

	t := est - o
	if t == 0 {
		return o, o
	}
	k := math.Exp(z * math.Sqrt(math.Log(1+variance/(t*t))))
	return o + t/k, o + t*k
}

// Dominance returns the Simpson dominance:
// the probability that two individuals
// taken at random from the sample
// belong to the same OTU.
func Dominance(counts []float64) float64 {
	n := floats.Sum(counts)
	var d float64
	for _, c := range counts {
		f := c / n
		d += f * f
	}
	return d
}

// ENSPIE returns the effective number of OTUs,
// the inverse of the Simpson dominance.
func ENSPIE(counts []float64) float64 {
	return 1 / Dominance(counts)
}

// EstyCI returns the Esty 95% confidence interval
// for the probability
// that the next observed individual
// belongs to a new OTU.
func EstyCI(counts []float64) (lo, hi float64) {
	n := floats.Sum(counts)
	f1 := Singles(counts)
	f2 := Doubles(counts)
	z := stdNormal.Quantile(0.975)

	w := (f1*(n-f1) + 2*n*f2) / (n * n * n)
	delta := z * math.Sqrt(w)
	return f1/n - delta, f1/n + delta
}

// FisherAlpha returns Fisher's alpha,
// the diversity parameter
// of a logarithmic series abundance model,
// solved from S = alpha * ln(1 + N/alpha)
// by bisection.
// It is NaN when the equation has no solution,
// as when every OTU is a singleton.
func FisherAlpha(counts []float64) float64 {
	n := floats.Sum(counts)
	s := ObservedOTUs(counts)
	if n == 0 || s == 0 {
		return math.NaN()
	}

	f := func(a float64) float64 {
		return a * math.Log(1+n/a)
	}

	lo, hi := 1e-9, 1.0
	for f(hi) < s {
		hi *= 2
		if hi > 1e12 {
			return math.NaN()
		}
	}
	for range 200 {
		mid := (lo + hi) / 2
		if f(mid) < s {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// GiniIndex returns the Gini index of the sample:
// the deviation of the abundance distribution
// from perfect evenness,
// measured as twice the area
// between the Lorenz curve
// and the evenness diagonal,
// integrated with trapezoids.
func GiniIndex(counts []float64) float64 {
	sorted := slices.Clone(counts)
	slices.Sort(sorted)
	n := floats.Sum(sorted)

	var b, acc, x0, y0 float64
	for i, c := range sorted {
		x1 := float64(i+1) / float64(len(sorted))
		acc += c
		y1 := acc / n
		b += (x1 - x0) * (y1 + y0) / 2
		x0, y0 = x1, y1
	}
	return 1 - 2*b
}

// GoodsCoverage returns Good's coverage estimator:
// the estimated fraction of the population
// represented by the OTUs observed in the sample.
func GoodsCoverage(counts []float64) float64 {
	return 1 - Singles(counts)/floats.Sum(counts)
}

// HeipEvenness returns the Heip evenness measure of the sample.
func HeipEvenness(counts []float64) float64 {
	s := ObservedOTUs(counts)
	h := Shannon(counts, math.E)
	return (math.Exp(h) - 1) / (s - 1)
}

// KemptonTaylorQ returns the Kempton-Taylor Q index,
// the slope of the cumulative abundance curve
// between the lower and upper quantiles
// of the sorted abundances.
func KemptonTaylorQ(counts []float64, lowerQuantile, upperQuantile float64) float64 {
	sorted := slices.Clone(counts)
	slices.Sort(sorted)

	n := len(sorted)
	lower := int(math.Ceil(float64(n) * lowerQuantile))
	upper := int(float64(n) * upperQuantile)
	return float64(upper-lower) / math.Log(sorted[upper]/sorted[lower])
}

// Margalef returns the Margalef richness index of the sample.
func Margalef(counts []float64) float64 {
	return (ObservedOTUs(counts) - 1) / math.Log(floats.Sum(counts))
}

// McIntoshD returns the McIntosh dominance index of the sample.
func McIntoshD(counts []float64) float64 {
	n := floats.Sum(counts)
	var ss float64
	for _, c := range counts {
		ss += c * c
	}
	u := math.Sqrt(ss)
	return (n - u) / (n - math.Sqrt(n))
}

// McIntoshE returns the McIntosh evenness measure of the sample.
func McIntoshE(counts []float64) float64 {
	n := floats.Sum(counts)
	s := ObservedOTUs(counts)
	var ss float64
	for _, c := range counts {
		ss += c * c
	}
	return math.Sqrt(ss) / math.Sqrt((n-s+1)*(n-s+1)+s-1)
}

// Menhinick returns the Menhinick richness index of the sample.
func Menhinick(counts []float64) float64 {
	return ObservedOTUs(counts) / math.Sqrt(floats.Sum(counts))
}

// PielouEvenness returns the Pielou evenness of the sample:
// the Shannon entropy
// scaled by the maximum entropy
// attainable with the observed richness.
func PielouEvenness(counts []float64) float64 {
	return Shannon(counts, math.E) / math.Log(ObservedOTUs(counts))
}

// Robbins returns the Robbins estimator
// of the probability
// that the next observed individual
// belongs to an unobserved OTU.
func Robbins(counts []float64) float64 {
	return Singles(counts) / (floats.Sum(counts) + 1)
}

// Shannon returns the Shannon entropy of the sample
// in the given logarithm base.
// The common base for diversity is 2.
func Shannon(counts []float64, base float64) float64 {
	n := floats.Sum(counts)
	freqs := make([]float64, len(counts))
	for i, c := range counts {
		freqs[i] = c / n
	}
	return stat.Entropy(freqs) / math.Log(base)
}

// Simpson returns the Simpson diversity index:
// the probability that two individuals
// taken at random from the sample
// belong to different OTUs.
func Simpson(counts []float64) float64 {
	return 1 - Dominance(counts)
}

// SimpsonE returns the Simpson evenness measure:
// the effective number of OTUs
// scaled by the observed richness.
func SimpsonE(counts []float64) float64 {
	return ENSPIE(counts) / ObservedOTUs(counts)
}

// Strong returns the Strong dominance index of the sample:
// the maximum departure
// of the cumulative abundance curve
// from the evenness diagonal.
func Strong(counts []float64) float64 {
	n := floats.Sum(counts)
	s := ObservedOTUs(counts)

	sorted := slices.Clone(counts)
	slices.Sort(sorted)
	slices.Reverse(sorted)

	var acc, dw float64
	for i, c := range sorted {
		acc += c
		if d := acc/n - float64(i+1)/s; d > dw {
			dw = d
		}
	}
	return dw
}
