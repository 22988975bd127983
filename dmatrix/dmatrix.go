// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dmatrix implements a symmetric distance matrix
// between a set of identified samples.
//
// A matrix is built from a condensed vector,
// the upper triangle of the matrix
// stored in row major order
// (i.e. the distances 0-1, 0-2, ..., 0-n, 1-2, ...),
// so the symmetry of the matrix
// and its zero diagonal
// hold by construction.
package dmatrix

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmpty is returned when creating a matrix
	// without any sample.
	ErrEmpty = errors.New("dmatrix: matrix without samples")

	// ErrInvalidLen is returned when the condensed vector
	// does not have the n*(n-1)/2 values
	// required by the number of sample IDs.
	ErrInvalidLen = errors.New("dmatrix: invalid condensed vector length")

	// ErrRepeatedID is returned when a sample ID is repeated.
	ErrRepeatedID = errors.New("dmatrix: repeated sample ID")
)

// A Matrix is a symmetric distance matrix
// with a zero diagonal,
// indexed by sample position or sample ID.
type Matrix struct {
	ids []string
	pos map[string]int
	sym *mat.SymDense
}

// New creates a new distance matrix
// from a set of sample IDs
// and a condensed vector
// with the n*(n-1)/2 upper triangle distances
// in row major order.
// At least one sample ID is required.
func New(ids []string, condensed []float64) (*Matrix, error) {
	n := len(ids)
	if n == 0 {
		return nil, ErrEmpty
	}
	if want := n * (n - 1) / 2; len(condensed) != want {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrInvalidLen, len(condensed), want)
	}

	pos := make(map[string]int, n)
	for i, id := range ids {
		if _, dup := pos[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrRepeatedID, id)
		}
		pos[id] = i
	}

	sym := mat.NewSymDense(n, nil)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sym.SetSym(i, j, condensed[k])
			k++
		}
	}

	return &Matrix{
		ids: slices.Clone(ids),
		pos: pos,
		sym: sym,
	}, nil
}

// At returns the distance between the samples
// at the i-th and j-th positions.
func (m *Matrix) At(i, j int) float64 {
	return m.sym.At(i, j)
}

// Condensed returns the upper triangle of the matrix
// in row major order.
func (m *Matrix) Condensed() []float64 {
	n := len(m.ids)
	condensed := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			condensed = append(condensed, m.sym.At(i, j))
		}
	}
	return condensed
}

// Distance returns the distance between two samples
// indicated by their IDs.
func (m *Matrix) Distance(a, b string) (float64, error) {
	i, ok := m.pos[a]
	if !ok {
		return 0, fmt.Errorf("dmatrix: unknown sample ID %q", a)
	}
	j, ok := m.pos[b]
	if !ok {
		return 0, fmt.Errorf("dmatrix: unknown sample ID %q", b)
	}
	return m.sym.At(i, j), nil
}

// Equal reports whether two matrices
// have the same samples in the same order
// and the same distances.
func (m *Matrix) Equal(om *Matrix) bool {
	if !slices.Equal(m.ids, om.ids) {
		return false
	}
	return mat.Equal(m.sym, om.sym)
}

// IDs returns the sample IDs of the matrix,
// in matrix order.
func (m *Matrix) IDs() []string {
	return slices.Clone(m.ids)
}

// Len returns the number of samples of the matrix.
func (m *Matrix) Len() int {
	return len(m.ids)
}

// Sym returns a copy of the matrix
// as a gonum symmetric matrix.
func (m *Matrix) Sym() *mat.SymDense {
	n := len(m.ids)
	sym := mat.NewSymDense(n, nil)
	sym.CopySym(m.sym)
	return sym
}
