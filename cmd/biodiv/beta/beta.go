// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package beta implements a command to measure
// the beta diversity between pairs of samples.
package beta

import (
	"fmt"
	"os"

	"github.com/js-arias/biodiv/counts"
	"github.com/js-arias/biodiv/diversity"
	"github.com/js-arias/biodiv/phytree"
	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `beta --metric <name> [--tree <tree-file>]
	[--name <tree-name>] [--raw] <counts-file>`,
	Short: "measure the beta diversity between samples",
	Long: `
Command beta reads an abundance table and prints the beta diversity between
all pairs of samples in the standard output, as a tab delimited square
distance matrix.

The argument of the command is the name of the counts file, a TSV file with
the fields "sample", "taxon", and "count".

The flag --metric is required and indicates the diversity metric. Use the
command "metrics" to print the list of the known metric names.

The metrics "unweighted_unifrac" and "weighted_unifrac" require a
phylogenetic tree, given with the flag --tree, as a TSV file of one or more
time calibrated trees. Every taxon of the counts file must be a terminal of
the tree. By default the first tree of the file will be used; use the flag
--name to select a tree by its name.

By default the "weighted_unifrac" distance is scaled to lie between 0 and 1.
Use the flag --raw for the unscaled distance.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var metricFlag string
var treeFile string
var treeName string
var rawFlag bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&metricFlag, "metric", "", "")
	c.Flags().StringVar(&treeFile, "tree", "", "")
	c.Flags().StringVar(&treeName, "name", "", "")
	c.Flags().BoolVar(&rawFlag, "raw", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting counts file")
	}
	if metricFlag == "" {
		return c.UsageError("flag --metric undefined")
	}

	tbl, err := readCounts(args[0])
	if err != nil {
		return err
	}

	normalized := !rawFlag
	o := &diversity.Options{
		Normalized: &normalized,
	}
	if treeFile != "" {
		t, err := readTree(treeFile, treeName)
		if err != nil {
			return err
		}
		o.OTUIDs = tbl.Taxa()
		o.Tree = t
	}

	m, err := diversity.Beta(metricFlag, tbl.Matrix(), tbl.Samples(), true, o)
	if err != nil {
		return err
	}

	ids := m.IDs()
	fmt.Fprintf(c.Stdout(), "sample")
	for _, id := range ids {
		fmt.Fprintf(c.Stdout(), "\t%s", id)
	}
	fmt.Fprintf(c.Stdout(), "\n")
	for i, a := range ids {
		fmt.Fprintf(c.Stdout(), "%s", a)
		for j := range ids {
			fmt.Fprintf(c.Stdout(), "\t%.6f", m.At(i, j))
		}
		fmt.Fprintf(c.Stdout(), "\n")
	}
	return nil
}

func readCounts(name string) (*counts.Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tbl, err := counts.Read(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return tbl, nil
}

func readTree(name, tree string) (*phytree.Tree, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}

	if tree == "" {
		tree = c.Names()[0]
	}
	t := c.Tree(tree)
	if t == nil {
		return nil, fmt.Errorf("tree %q not in file %q", tree, name)
	}
	return phytree.FromTimetree(t), nil
}
