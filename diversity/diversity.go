// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package diversity implements the computation
// of ecological diversity measures
// over a matrix of OTU counts:
// alpha diversity,
// a scalar for each sample,
// and beta diversity,
// a distance matrix between all pairs of samples.
//
// Metrics are requested by name
// from a fixed registry
// (see AlphaMetrics and BetaMetrics),
// or given directly as functions
// with AlphaWith and BetaWith.
// The phylogenetic metrics
// ("faith_pd",
// "unweighted_unifrac",
// and "weighted_unifrac")
// take the tree and the OTU identifiers
// from the call options,
// and index the tree a single time
// for all the samples of the call.
package diversity

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/js-arias/biodiv/diversity/alpha"
	"github.com/js-arias/biodiv/diversity/beta"
	"github.com/js-arias/biodiv/diversity/phylo"
	"github.com/js-arias/biodiv/dmatrix"
	"github.com/js-arias/biodiv/phytree"
)

// An AlphaMetric is a diversity measure
// within a single sample.
type AlphaMetric func(counts []float64) float64

// A BetaMetric is a dissimilarity measure
// between two samples
// with counts over the same OTUs.
type BetaMetric func(u, v []float64) float64

// Options are the metric parameters of a call.
// The zero value
// (or a nil pointer)
// selects the default of every parameter.
type Options struct {
	// OTUIDs are the names of the OTUs
	// of each counts column,
	// required by the phylogenetic metrics.
	OTUIDs []string

	// Tree is the phylogenetic tree
	// required by the phylogenetic metrics.
	// Every OTU must be the name
	// of a terminal of the tree.
	Tree *phytree.Tree

	// Normalized indicates if the weighted UniFrac distance
	// is scaled to lie in [0, 1].
	// It defaults to true.
	Normalized *bool

	// Base is the logarithm base
	// of the Shannon entropy.
	// It defaults to 2.
	Base float64

	// BiasCorrected indicates if the Chao1 estimator
	// uses the bias corrected form.
	// It defaults to true.
	BiasCorrected *bool
}

func (o *Options) normalized() bool {
	if o == nil || o.Normalized == nil {
		return true
	}
	return *o.Normalized
}

func (o *Options) base() float64 {
	if o == nil || o.Base == 0 {
		return 2
	}
	return o.Base
}

func (o *Options) biasCorrected() bool {
	if o == nil || o.BiasCorrected == nil {
		return true
	}
	return *o.BiasCorrected
}

func (o *Options) phylogeny(metric string) ([]string, *phytree.Tree, error) {
	if o == nil || o.Tree == nil || len(o.OTUIDs) == 0 {
		return nil, nil, fmt.Errorf("%w: metric %q", ErrNoPhylogeny, metric)
	}
	return o.OTUIDs, o.Tree, nil
}

// A Series is an ordered association
// of sample IDs
// with the values of an alpha diversity metric.
type Series struct {
	ids  []string
	vals []float64
	pos  map[string]int
}

func newSeries(ids []string, vals []float64) *Series {
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	return &Series{
		ids:  ids,
		vals: vals,
		pos:  pos,
	}
}

// At returns the value of the i-th sample.
func (s *Series) At(i int) float64 {
	return s.vals[i]
}

// IDs returns the sample IDs of the series,
// in sample order.
func (s *Series) IDs() []string {
	return slices.Clone(s.ids)
}

// Len returns the number of samples of the series.
func (s *Series) Len() int {
	return len(s.ids)
}

// Value returns the value of a sample
// indicated by its ID.
func (s *Series) Value(id string) (float64, bool) {
	i, ok := s.pos[id]
	if !ok {
		return 0, false
	}
	return s.vals[i], true
}

// alphaMetrics is the registry of non phylogenetic
// alpha diversity metrics.
// The "faith_pd" metric is resolved by Alpha itself
// because it requires the phylogenetic setup.
var alphaMetrics = map[string]func(o *Options) AlphaMetric{
	"ace":             func(o *Options) AlphaMetric { return alpha.ACE },
	"berger_parker_d": func(o *Options) AlphaMetric { return alpha.BergerParker },
	"brillouin_d":     func(o *Options) AlphaMetric { return alpha.Brillouin },
	"chao1": func(o *Options) AlphaMetric {
		bc := o.biasCorrected()
		return func(counts []float64) float64 { return alpha.Chao1(counts, bc) }
	},
	"dominance":      func(o *Options) AlphaMetric { return alpha.Dominance },
	"doubles":        func(o *Options) AlphaMetric { return alpha.Doubles },
	"enspie":         func(o *Options) AlphaMetric { return alpha.ENSPIE },
	"fisher_alpha":   func(o *Options) AlphaMetric { return alpha.FisherAlpha },
	"gini_index":     func(o *Options) AlphaMetric { return alpha.GiniIndex },
	"goods_coverage": func(o *Options) AlphaMetric { return alpha.GoodsCoverage },
	"heip_e":         func(o *Options) AlphaMetric { return alpha.HeipEvenness },
	"kempton_taylor_q": func(o *Options) AlphaMetric {
		return func(counts []float64) float64 { return alpha.KemptonTaylorQ(counts, 0.25, 0.75) }
	},
	"margalef":      func(o *Options) AlphaMetric { return alpha.Margalef },
	"mcintosh_d":    func(o *Options) AlphaMetric { return alpha.McIntoshD },
	"mcintosh_e":    func(o *Options) AlphaMetric { return alpha.McIntoshE },
	"menhinick":     func(o *Options) AlphaMetric { return alpha.Menhinick },
	"observed_otus": func(o *Options) AlphaMetric { return alpha.ObservedOTUs },
	"pielou_e":      func(o *Options) AlphaMetric { return alpha.PielouEvenness },
	"robbins":       func(o *Options) AlphaMetric { return alpha.Robbins },
	"shannon": func(o *Options) AlphaMetric {
		base := o.base()
		return func(counts []float64) float64 { return alpha.Shannon(counts, base) }
	},
	"simpson":   func(o *Options) AlphaMetric { return alpha.Simpson },
	"simpson_e": func(o *Options) AlphaMetric { return alpha.SimpsonE },
	"singles":   func(o *Options) AlphaMetric { return alpha.Singles },
	"strong":    func(o *Options) AlphaMetric { return alpha.Strong },
}

// betaMetrics is the registry of non phylogenetic
// beta diversity metrics.
// The UniFrac metrics are resolved by Beta itself.
var betaMetrics = map[string]func(o *Options) BetaMetric{
	"braycurtis": func(o *Options) BetaMetric { return beta.BrayCurtis },
	"canberra":   func(o *Options) BetaMetric { return beta.Canberra },
	"chebyshev":  func(o *Options) BetaMetric { return beta.Chebyshev },
	"cityblock":  func(o *Options) BetaMetric { return beta.CityBlock },
	"cosine":     func(o *Options) BetaMetric { return beta.Cosine },
	"euclidean":  func(o *Options) BetaMetric { return beta.Euclidean },
	"jaccard":    func(o *Options) BetaMetric { return beta.Jaccard },
}

// AlphaMetrics returns the names
// of the alpha diversity metrics,
// sorted alphabetically.
func AlphaMetrics() []string {
	names := make([]string, 0, len(alphaMetrics)+1)
	for n := range alphaMetrics {
		names = append(names, n)
	}
	names = append(names, "faith_pd")
	slices.Sort(names)
	return names
}

// BetaMetrics returns the names
// of the beta diversity metrics,
// sorted alphabetically.
func BetaMetrics() []string {
	names := make([]string, 0, len(betaMetrics)+2)
	for n := range betaMetrics {
		names = append(names, n)
	}
	names = append(names, "unweighted_unifrac", "weighted_unifrac")
	slices.Sort(names)
	return names
}

// Alpha computes an alpha diversity metric
// for every sample of a counts matrix.
// Sample IDs default to the row positions
// ("0", "1", ...).
// If validate is false
// the checks on the counts
// (and on the tree,
// for the phylogenetic metrics)
// are skipped;
// skipping validation on malformed input
// produces undefined values.
func Alpha(metric string, counts [][]float64, ids []string, validate bool, o *Options) (*Series, error) {
	if validate {
		if err := validateCounts(counts, ids); err != nil {
			return nil, err
		}
	}
	ids = defaultIDs(len(counts), ids)
	vals := make([]float64, len(counts))

	if metric == "faith_pd" {
		otuIDs, t, err := o.phylogeny(metric)
		if err != nil {
			return nil, err
		}
		s, err := phylo.NewSetup(counts, otuIDs, t, validate)
		if err != nil {
			return nil, err
		}
		for i := range counts {
			vals[i] = s.FaithPD(i)
		}
		return newSeries(ids, vals), nil
	}

	mf, ok := alphaMetrics[metric]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
	fn := mf(o)
	for i, row := range counts {
		vals[i] = fn(row)
	}
	return newSeries(ids, vals), nil
}

// AlphaWith computes an arbitrary alpha diversity metric
// for every sample of a counts matrix.
// Any failure of the metric function
// propagates unmodified to the caller.
func AlphaWith(fn AlphaMetric, counts [][]float64, ids []string, validate bool) (*Series, error) {
	if validate {
		if err := validateCounts(counts, ids); err != nil {
			return nil, err
		}
	}
	ids = defaultIDs(len(counts), ids)
	vals := make([]float64, len(counts))
	for i, row := range counts {
		vals[i] = fn(row)
	}
	return newSeries(ids, vals), nil
}

// Beta computes a beta diversity metric
// between all pairs of samples of a counts matrix,
// and returns the resulting distance matrix.
// Sample IDs default to the row positions
// ("0", "1", ...).
// If validate is false
// the checks on the counts
// (and on the tree,
// for the phylogenetic metrics)
// are skipped;
// skipping validation on malformed input
// produces undefined values.
func Beta(metric string, counts [][]float64, ids []string, validate bool, o *Options) (*dmatrix.Matrix, error) {
	if validate {
		if err := validateCounts(counts, ids); err != nil {
			return nil, err
		}
	}
	ids = defaultIDs(len(counts), ids)

	var pair func(i, j int) float64
	switch metric {
	case "unweighted_unifrac":
		otuIDs, t, err := o.phylogeny(metric)
		if err != nil {
			return nil, err
		}
		s, err := phylo.NewSetup(counts, otuIDs, t, validate)
		if err != nil {
			return nil, err
		}
		pair = s.UnweightedUniFrac
	case "weighted_unifrac":
		otuIDs, t, err := o.phylogeny(metric)
		if err != nil {
			return nil, err
		}
		normalized := o.normalized()
		s, err := phylo.NewSetup(counts, otuIDs, t, validate)
		if err != nil {
			return nil, err
		}
		pair = func(i, j int) float64 { return s.WeightedUniFrac(i, j, normalized) }
	default:
		mf, ok := betaMetrics[metric]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
		}
		fn := mf(o)
		pair = func(i, j int) float64 { return fn(counts[i], counts[j]) }
	}

	return pairDistances(ids, len(counts), pair)
}

// BetaWith computes an arbitrary beta diversity metric
// between all pairs of samples of a counts matrix.
// Any failure of the metric function
// propagates unmodified to the caller.
func BetaWith(fn BetaMetric, counts [][]float64, ids []string, validate bool) (*dmatrix.Matrix, error) {
	if validate {
		if err := validateCounts(counts, ids); err != nil {
			return nil, err
		}
	}
	ids = defaultIDs(len(counts), ids)
	pair := func(i, j int) float64 { return fn(counts[i], counts[j]) }
	return pairDistances(ids, len(counts), pair)
}

// pairDistances evaluates a pair function
// over every i < j pair
// in row major order,
// and builds the distance matrix
// from the condensed result.
// The pair function must be pure,
// so the result does not depend
// on the evaluation order.
func pairDistances(ids []string, n int, pair func(i, j int) float64) (*dmatrix.Matrix, error) {
	condensed := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			condensed = append(condensed, pair(i, j))
		}
	}
	return dmatrix.New(ids, condensed)
}

func defaultIDs(n int, ids []string) []string {
	if ids != nil {
		return ids
	}
	ids = make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i)
	}
	return ids
}
