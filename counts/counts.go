// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package counts implements reading and writing
// of abundance tables,
// the number of observed individuals
// of each taxon
// (an OTU)
// in each sampled site.
package counts

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ErrNegative is returned when adding
// a negative number of individuals.
var ErrNegative = errors.New("counts: negative count")

// A Table is an abundance table:
// the counts of a set of taxa
// over a set of samples.
// Samples keep the order in which they were added;
// taxa are kept sorted by name.
type Table struct {
	samples []string
	counts  map[string]map[string]float64 // sample to taxon to count
	taxa    map[string]bool
}

// New creates a new empty abundance table.
func New() *Table {
	return &Table{
		counts: make(map[string]map[string]float64),
		taxa:   make(map[string]bool),
	}
}

// Add adds a number of individuals of a taxon
// observed in a sample.
// Repeated additions accumulate.
func (t *Table) Add(sample, taxon string, n float64) error {
	sample = strings.Join(strings.Fields(sample), " ")
	taxon = strings.Join(strings.Fields(taxon), " ")
	if sample == "" || taxon == "" {
		return fmt.Errorf("counts: expecting sample and taxon names")
	}
	if n < 0 {
		return fmt.Errorf("%w: sample %q, taxon %q: %.6f", ErrNegative, sample, taxon, n)
	}

	sc, ok := t.counts[sample]
	if !ok {
		sc = make(map[string]float64)
		t.counts[sample] = sc
		t.samples = append(t.samples, sample)
	}
	sc[taxon] += n
	t.taxa[taxon] = true
	return nil
}

// Count returns the number of individuals of a taxon
// observed in a sample.
func (t *Table) Count(sample, taxon string) float64 {
	return t.counts[sample][taxon]
}

// Matrix returns the counts of all samples,
// one row per sample
// in the order given by Samples,
// one column per taxon
// in the order given by Taxa.
func (t *Table) Matrix() [][]float64 {
	m := make([][]float64, 0, len(t.samples))
	for _, s := range t.samples {
		m = append(m, t.Row(s))
	}
	return m
}

// Row returns the counts of a sample,
// with one value per taxon
// in the order given by Taxa.
func (t *Table) Row(sample string) []float64 {
	taxa := t.Taxa()
	row := make([]float64, len(taxa))
	sc, ok := t.counts[sample]
	if !ok {
		return row
	}
	for i, tax := range taxa {
		row[i] = sc[tax]
	}
	return row
}

// Samples returns the sample names of the table,
// in the order in which they were added.
func (t *Table) Samples() []string {
	return slices.Clone(t.samples)
}

// Taxa returns the taxon names of the table,
// sorted alphabetically.
func (t *Table) Taxa() []string {
	taxa := make([]string, 0, len(t.taxa))
	for tax := range t.taxa {
		taxa = append(taxa, tax)
	}
	slices.Sort(taxa)
	return taxa
}

var header = []string{
	"sample",
	"taxon",
	"count",
}

// Read reads an abundance table from a TSV file.
//
// The TSV must contain the following fields:
//
//   - sample, the name of the sampled site
//   - taxon, the name of the taxon (an OTU)
//   - count, the number of observed individuals
//
// Here is an example file:
//
//	# abundance counts
//	sample	taxon	count
//	pond	Daphnia pulex	25
//	pond	Cyclops strenuus	4
//	river	Cyclops strenuus	11
func Read(r io.Reader) (*Table, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("counts: header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("counts: expecting field %q", h)
		}
	}

	t := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("counts: on row %d: %v", ln, err)
		}

		sample := row[fields["sample"]]
		taxon := row[fields["taxon"]]

		f := "count"
		n, err := strconv.ParseFloat(row[fields[f]], 64)
		if err != nil {
			return nil, fmt.Errorf("counts: on row %d, field %q: %v", ln, f, err)
		}
		if err := t.Add(sample, taxon, n); err != nil {
			return nil, fmt.Errorf("counts: on row %d: %v", ln, err)
		}
	}
	return t, nil
}

// Write writes an abundance table into a TSV file.
// Taxa with a zero count in a sample
// are not written.
func (t *Table) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# abundance counts\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("counts: while writing header: %v", err)
	}

	taxa := t.Taxa()
	for _, s := range t.samples {
		for _, tax := range taxa {
			n := t.counts[s][tax]
			if n == 0 {
				continue
			}
			row := []string{
				s,
				tax,
				strconv.FormatFloat(n, 'f', -1, 64),
			}
			if err := tsv.Write(row); err != nil {
				return fmt.Errorf("counts: %v", err)
			}
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("counts: while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("counts: while writing data: %v", err)
	}
	return nil
}
