// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package msa_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/biodiv/msa"
)

type seq struct {
	label string
	data  string
}

var seqs = []seq{
	{"taxon C", "ACG-T"},
	{"taxon A", "AC--T"},
	{"taxon B", "TCGTT"},
}

func fillAlignment(t testing.TB) *msa.Alignment {
	t.Helper()

	a := msa.New("test alignment")
	for _, s := range seqs {
		if err := a.Append(s.label, s.data); err != nil {
			t.Fatalf("unable to add sequence %q: %v", s.label, err)
		}
	}
	return a
}

func TestAlignment(t *testing.T) {
	a := fillAlignment(t)

	if got := a.Name(); got != "test alignment" {
		t.Errorf("name: got %q, want %q", got, "test alignment")
	}
	if got := a.Len(); got != 3 {
		t.Errorf("sequences: got %d, want %d", got, 3)
	}
	if got := a.Positions(); got != 5 {
		t.Errorf("positions: got %d, want %d", got, 5)
	}

	labels := []string{"taxon C", "taxon A", "taxon B"}
	if got := a.Labels(); !reflect.DeepEqual(got, labels) {
		t.Errorf("labels: got %v, want %v", got, labels)
	}

	for i, s := range seqs {
		l, sq := a.At(i)
		if l != s.label || sq != s.data {
			t.Errorf("row %d: got %q %q, want %q %q", i, l, sq, s.label, s.data)
		}
		got, ok := a.Sequence(s.label)
		if !ok || got != s.data {
			t.Errorf("sequence %q: got %q, want %q", s.label, got, s.data)
		}
		if !a.Contains(s.label) {
			t.Errorf("expecting label %q", s.label)
		}
	}
	if a.Contains("taxon X") {
		t.Errorf("unexpected label %q", "taxon X")
	}
	if _, ok := a.Sequence("taxon X"); ok {
		t.Errorf("unexpected sequence %q", "taxon X")
	}

	if got := a.Column(3); got != "--T" {
		t.Errorf("column: got %q, want %q", got, "--T")
	}
}

func TestAlignmentErrors(t *testing.T) {
	a := fillAlignment(t)

	if err := a.Append("taxon A", "GGGGG"); !errors.Is(err, msa.ErrRepeatedLabel) {
		t.Errorf("got error %q, want %q", err, msa.ErrRepeatedLabel)
	}
	if err := a.Append("taxon D", "ACGT"); !errors.Is(err, msa.ErrSeqLength) {
		t.Errorf("got error %q, want %q", err, msa.ErrSeqLength)
	}
	if err := a.Append("", "ACGTT"); err == nil {
		t.Errorf("expecting error for an empty label")
	}
}

func TestConsensus(t *testing.T) {
	a := fillAlignment(t)

	// position 3 is a majority gap
	if got := a.Consensus(); got != "ACG-T" {
		t.Errorf("consensus: got %q, want %q", got, "ACG-T")
	}

	// ties resolve to the first character seen
	tie := msa.New("tie")
	if err := tie.Append("x", "AC"); err != nil {
		t.Fatalf("unable to add sequence: %v", err)
	}
	if err := tie.Append("y", "AG"); err != nil {
		t.Fatalf("unable to add sequence: %v", err)
	}
	if got := tie.Consensus(); got != "AC" {
		t.Errorf("consensus: got %q, want %q", got, "AC")
	}
}

func TestGapFrequencies(t *testing.T) {
	a := fillAlignment(t)

	want := []float64{0, 0, 1, 2, 0}
	if got := a.GapFrequencies(false); !reflect.DeepEqual(got, want) {
		t.Errorf("gap frequencies: got %v, want %v", got, want)
	}
	wantRel := []float64{0, 0, 1.0 / 3, 2.0 / 3, 0}
	if got := a.GapFrequencies(true); !reflect.DeepEqual(got, wantRel) {
		t.Errorf("relative gap frequencies: got %v, want %v", got, wantRel)
	}

	wantSeq := []float64{1, 2, 0}
	if got := a.SeqGapFrequencies(false); !reflect.DeepEqual(got, wantSeq) {
		t.Errorf("sequence gap frequencies: got %v, want %v", got, wantSeq)
	}
	wantSeqRel := []float64{0.2, 0.4, 0}
	if got := a.SeqGapFrequencies(true); !reflect.DeepEqual(got, wantSeqRel) {
		t.Errorf("relative sequence gap frequencies: got %v, want %v", got, wantSeqRel)
	}
}

func TestSort(t *testing.T) {
	a := fillAlignment(t)
	a.Sort()

	labels := []string{"taxon A", "taxon B", "taxon C"}
	if got := a.Labels(); !reflect.DeepEqual(got, labels) {
		t.Errorf("labels: got %v, want %v", got, labels)
	}
	for _, s := range seqs {
		got, ok := a.Sequence(s.label)
		if !ok || got != s.data {
			t.Errorf("sequence %q: got %q, want %q", s.label, got, s.data)
		}
	}
}

func TestRelabel(t *testing.T) {
	a := fillAlignment(t)
	err := a.Relabel(func(label string, i int) string {
		return strings.ToUpper(label)
	})
	if err != nil {
		t.Fatalf("unable to relabel: %v", err)
	}

	labels := []string{"TAXON C", "TAXON A", "TAXON B"}
	if got := a.Labels(); !reflect.DeepEqual(got, labels) {
		t.Errorf("labels: got %v, want %v", got, labels)
	}
	got, ok := a.Sequence("TAXON C")
	if !ok || got != "ACG-T" {
		t.Errorf("sequence %q: got %q, want %q", "TAXON C", got, "ACG-T")
	}

	err = a.Relabel(func(label string, i int) string {
		return "same"
	})
	if !errors.Is(err, msa.ErrRepeatedLabel) {
		t.Errorf("got error %q, want %q", err, msa.ErrRepeatedLabel)
	}
}

func TestCopyEqual(t *testing.T) {
	a := fillAlignment(t)
	a.SetMetadata("id", "MSA-001")

	c := a.Copy()
	if !a.Equal(c) {
		t.Errorf("expecting equal alignments")
	}
	if got := c.Metadata("id"); got != "MSA-001" {
		t.Errorf("metadata: got %q, want %q", got, "MSA-001")
	}
	if got := c.MetadataKeys(); !reflect.DeepEqual(got, []string{"id"}) {
		t.Errorf("metadata keys: got %v, want %v", got, []string{"id"})
	}

	c.SetMetadata("id", "")
	if a.Equal(c) {
		t.Errorf("expecting different alignments")
	}

	c = a.Copy()
	if err := c.Append("taxon D", "GGGGG"); err != nil {
		t.Fatalf("unable to add sequence: %v", err)
	}
	if a.Equal(c) {
		t.Errorf("expecting different alignments")
	}
	if a.Len() != 3 {
		t.Errorf("copy is not independent")
	}
}
