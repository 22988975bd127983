// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package diversity

import (
	"fmt"
	"math"
)

// validateCounts checks that a counts matrix is rectangular,
// that every value is a non negative whole number,
// and that the number of sample IDs,
// if any,
// matches the number of samples.
// The checks run before any computation,
// so a failed call never returns a partial result.
func validateCounts(counts [][]float64, ids []string) error {
	if ids != nil && len(ids) != len(counts) {
		return fmt.Errorf("%w: got %d IDs for %d samples", ErrIDsMismatch, len(ids), len(counts))
	}
	if len(counts) == 0 {
		return nil
	}

	width := len(counts[0])
	for s, row := range counts {
		if len(row) != width {
			return fmt.Errorf("%w: sample %d has %d values, want %d", ErrCountsShape, s, len(row), width)
		}
		for i, c := range row {
			if c < 0 {
				return fmt.Errorf("%w: sample %d, OTU %d: %.6f", ErrNegativeCounts, s, i, c)
			}
			if math.IsNaN(c) || math.IsInf(c, 0) || c != math.Trunc(c) {
				return fmt.Errorf("%w: sample %d, OTU %d: %v", ErrNonIntegerCounts, s, i, c)
			}
		}
	}
	return nil
}
