// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package msa implements a tabular multiple sequence alignment:
// an ordered collection of sequences of the same length,
// indexed by a sequence label,
// in which each column is an aligned position.
package msa

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// GapChars are the characters
// read as alignment gaps.
const GapChars = "-."

var (
	// ErrRepeatedLabel is returned when adding a sequence
	// with a label already in the alignment.
	ErrRepeatedLabel = errors.New("msa: repeated sequence label")

	// ErrSeqLength is returned when adding a sequence
	// with a length different
	// from the sequences already in the alignment.
	ErrSeqLength = errors.New("msa: sequence length does not match the alignment")
)

// An Alignment is a tabular multiple sequence alignment.
// Sequences keep the order in which they were added,
// unless the alignment is sorted.
type Alignment struct {
	name   string
	labels []string
	pos    map[string]int
	seqs   []string
	meta   map[string]string
}

// New creates a new empty alignment with a given name.
func New(name string) *Alignment {
	return &Alignment{
		name: strings.Join(strings.Fields(name), " "),
		pos:  make(map[string]int),
		meta: make(map[string]string),
	}
}

// Append adds a sequence to the end of the alignment.
// The label must be unique within the alignment,
// and the sequence must have the same length
// as the sequences already added.
func (a *Alignment) Append(label, seq string) error {
	label = strings.Join(strings.Fields(label), " ")
	if label == "" {
		return fmt.Errorf("msa: alignment %q: expecting sequence label", a.name)
	}
	if _, dup := a.pos[label]; dup {
		return fmt.Errorf("msa: alignment %q: %w: %q", a.name, ErrRepeatedLabel, label)
	}
	if len(a.seqs) > 0 && len(seq) != len(a.seqs[0]) {
		return fmt.Errorf("msa: alignment %q: sequence %q: %w: got %d, want %d", a.name, label, ErrSeqLength, len(seq), len(a.seqs[0]))
	}

	a.pos[label] = len(a.labels)
	a.labels = append(a.labels, label)
	a.seqs = append(a.seqs, seq)
	return nil
}

// At returns the label and the sequence
// at the i-th row of the alignment.
func (a *Alignment) At(i int) (label, seq string) {
	return a.labels[i], a.seqs[i]
}

// Column returns the characters
// at an aligned position,
// one per sequence,
// in row order.
func (a *Alignment) Column(p int) string {
	var sb strings.Builder
	for _, s := range a.seqs {
		sb.WriteByte(s[p])
	}
	return sb.String()
}

// Consensus returns the majority character
// of each aligned position.
// Ties resolve to the character
// first seen in the column.
func (a *Alignment) Consensus() string {
	var sb strings.Builder
	for p := 0; p < a.Positions(); p++ {
		freq := make(map[byte]int)
		var order []byte
		for _, s := range a.seqs {
			c := s[p]
			if _, ok := freq[c]; !ok {
				order = append(order, c)
			}
			freq[c]++
		}

		best := order[0]
		for _, c := range order {
			if freq[c] > freq[best] {
				best = c
			}
		}
		sb.WriteByte(best)
	}
	return sb.String()
}

// Contains reports whether the alignment
// has a sequence with the given label.
func (a *Alignment) Contains(label string) bool {
	label = strings.Join(strings.Fields(label), " ")
	_, ok := a.pos[label]
	return ok
}

// Copy returns a deep copy of the alignment.
func (a *Alignment) Copy() *Alignment {
	return &Alignment{
		name:   a.name,
		labels: slices.Clone(a.labels),
		pos:    maps.Clone(a.pos),
		seqs:   slices.Clone(a.seqs),
		meta:   maps.Clone(a.meta),
	}
}

// Equal reports whether two alignments
// have the same sequences,
// with the same labels,
// in the same order,
// and the same metadata.
func (a *Alignment) Equal(oa *Alignment) bool {
	if !slices.Equal(a.labels, oa.labels) {
		return false
	}
	if !slices.Equal(a.seqs, oa.seqs) {
		return false
	}
	return maps.Equal(a.meta, oa.meta)
}

// GapFrequencies returns the number of gaps
// at each aligned position.
// If relative is true
// the values are scaled
// by the number of sequences.
func (a *Alignment) GapFrequencies(relative bool) []float64 {
	freqs := make([]float64, a.Positions())
	for _, s := range a.seqs {
		for p := range freqs {
			if strings.IndexByte(GapChars, s[p]) >= 0 {
				freqs[p]++
			}
		}
	}
	if relative {
		for p := range freqs {
			freqs[p] /= float64(len(a.seqs))
		}
	}
	return freqs
}

// SeqGapFrequencies returns the number of gaps
// in each sequence,
// in row order.
// If relative is true
// the values are scaled
// by the number of positions.
func (a *Alignment) SeqGapFrequencies(relative bool) []float64 {
	freqs := make([]float64, len(a.seqs))
	for i, s := range a.seqs {
		for p := 0; p < len(s); p++ {
			if strings.IndexByte(GapChars, s[p]) >= 0 {
				freqs[i]++
			}
		}
		if relative {
			freqs[i] /= float64(a.Positions())
		}
	}
	return freqs
}

// Labels returns the sequence labels of the alignment,
// in row order.
func (a *Alignment) Labels() []string {
	return slices.Clone(a.labels)
}

// Len returns the number of sequences of the alignment.
func (a *Alignment) Len() int {
	return len(a.labels)
}

// Metadata returns the metadata value
// stored under a given key,
// or an empty string.
func (a *Alignment) Metadata(key string) string {
	return a.meta[key]
}

// MetadataKeys returns the keys
// of the metadata of the alignment,
// sorted alphabetically.
func (a *Alignment) MetadataKeys() []string {
	keys := make([]string, 0, len(a.meta))
	for k := range a.meta {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Name returns the name of the alignment.
func (a *Alignment) Name() string {
	return a.name
}

// Positions returns the number of aligned positions
// (the number of columns)
// of the alignment.
func (a *Alignment) Positions() int {
	if len(a.seqs) == 0 {
		return 0
	}
	return len(a.seqs[0])
}

// Relabel replaces every sequence label
// using a function
// that receives the current label
// and the row position.
// The new labels must be unique.
func (a *Alignment) Relabel(fn func(label string, i int) string) error {
	labels := make([]string, len(a.labels))
	pos := make(map[string]int, len(a.labels))
	for i, l := range a.labels {
		nl := strings.Join(strings.Fields(fn(l, i)), " ")
		if nl == "" {
			return fmt.Errorf("msa: alignment %q: expecting sequence label", a.name)
		}
		if _, dup := pos[nl]; dup {
			return fmt.Errorf("msa: alignment %q: %w: %q", a.name, ErrRepeatedLabel, nl)
		}
		labels[i] = nl
		pos[nl] = i
	}

	a.labels = labels
	a.pos = pos
	return nil
}

// Sequence returns the sequence with a given label.
func (a *Alignment) Sequence(label string) (string, bool) {
	label = strings.Join(strings.Fields(label), " ")
	i, ok := a.pos[label]
	if !ok {
		return "", false
	}
	return a.seqs[i], true
}

// SetMetadata stores a metadata value under a given key.
// An empty value removes the key.
func (a *Alignment) SetMetadata(key, value string) {
	if value == "" {
		delete(a.meta, key)
		return
	}
	a.meta[key] = value
}

// Sort sorts the sequences of the alignment
// by their labels.
func (a *Alignment) Sort() {
	rows := make([]int, len(a.labels))
	for i := range rows {
		rows[i] = i
	}
	slices.SortFunc(rows, func(x, y int) int {
		return strings.Compare(a.labels[x], a.labels[y])
	})

	labels := make([]string, len(rows))
	seqs := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = a.labels[r]
		seqs[i] = a.seqs[r]
		a.pos[a.labels[r]] = i
	}
	a.labels = labels
	a.seqs = seqs
}
