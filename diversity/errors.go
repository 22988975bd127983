// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package diversity

import "errors"

var (
	// ErrUnknownMetric is returned when a metric name
	// is not in the metric registry.
	ErrUnknownMetric = errors.New("diversity: unknown metric")

	// ErrNoPhylogeny is returned when a phylogenetic metric
	// is requested without a tree
	// or without OTU identifiers.
	ErrNoPhylogeny = errors.New("diversity: metric requires a tree and OTU identifiers")

	// ErrCountsShape is returned when the rows
	// of a counts matrix
	// have different lengths.
	ErrCountsShape = errors.New("diversity: counts rows with different lengths")

	// ErrNegativeCounts is returned when a counts matrix
	// contains a negative value.
	ErrNegativeCounts = errors.New("diversity: negative counts")

	// ErrNonIntegerCounts is returned when a counts matrix
	// contains a value
	// that cannot be interpreted as a whole number.
	ErrNonIntegerCounts = errors.New("diversity: non integer counts")

	// ErrIDsMismatch is returned when the number of sample IDs
	// does not match the number of samples.
	ErrIDsMismatch = errors.New("diversity: sample IDs do not match the number of samples")
)
