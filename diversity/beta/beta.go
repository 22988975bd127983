// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package beta implements distance metrics
// between pairs of samples.
//
// Each metric takes two vectors of OTU counts
// over the same OTUs in the same order
// and returns a non negative dissimilarity.
package beta

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// BrayCurtis returns the Bray-Curtis dissimilarity
// between two samples.
func BrayCurtis(u, v []float64) float64 {
	var num, den float64
	for i := range u {
		num += math.Abs(u[i] - v[i])
		den += u[i] + v[i]
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// Canberra returns the Canberra distance
// between two samples.
// Positions absent from both samples
// do not contribute.
func Canberra(u, v []float64) float64 {
	var d float64
	for i := range u {
		den := math.Abs(u[i]) + math.Abs(v[i])
		if den == 0 {
			continue
		}
		d += math.Abs(u[i]-v[i]) / den
	}
	return d
}

// Chebyshev returns the Chebyshev distance
// between two samples,
// the maximum difference on a single OTU.
func Chebyshev(u, v []float64) float64 {
	return floats.Distance(u, v, math.Inf(1))
}

// CityBlock returns the Manhattan distance
// between two samples.
func CityBlock(u, v []float64) float64 {
	return floats.Distance(u, v, 1)
}

// Cosine returns the cosine distance
// between two samples.
// It is NaN when a sample is empty.
func Cosine(u, v []float64) float64 {
	dot := floats.Dot(u, v)
	nu := floats.Norm(u, 2)
	nv := floats.Norm(v, 2)
	return 1 - dot/(nu*nv)
}

// Euclidean returns the Euclidean distance
// between two samples.
func Euclidean(u, v []float64) float64 {
	return floats.Distance(u, v, 2)
}

// Jaccard returns the Jaccard distance
// between two samples
// based on OTU presence:
// the fraction of the OTUs present in either sample
// that are present in only one of them.
func Jaccard(u, v []float64) float64 {
	var either, diff float64
	for i := range u {
		inU := u[i] > 0
		inV := v[i] > 0
		if !inU && !inV {
			continue
		}
		either++
		if inU != inV {
			diff++
		}
	}
	if either == 0 {
		return 0
	}
	return diff / either
}
