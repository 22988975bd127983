// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylo

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRooted is returned when a tree
	// does not have a single root.
	ErrNotRooted = errors.New("phylo: tree is not rooted")

	// ErrSingleNode is returned when a tree
	// has less than two nodes.
	ErrSingleNode = errors.New("phylo: tree has a single node")

	// ErrRepeatedTips is returned when two or more terminals
	// of a tree share the same name.
	ErrRepeatedTips = errors.New("phylo: repeated terminal names")

	// ErrRepeatedOTU is returned when an OTU identifier
	// appears more than once.
	ErrRepeatedOTU = errors.New("phylo: repeated OTU identifier")

	// ErrCountsWidth is returned when a counts vector
	// does not have one value per OTU identifier.
	ErrCountsWidth = errors.New("phylo: counts do not match the OTU number")
)

// MissingTipError is the error
// for an OTU identifier
// without a corresponding terminal in the tree.
type MissingTipError struct {
	ID string
}

func (e *MissingTipError) Error() string {
	return fmt.Sprintf("phylo: OTU %q without a terminal in the tree", e.ID)
}

// MissingLengthError is the error
// for a non root node
// without a defined branch length.
type MissingLengthError struct {
	Node int
}

func (e *MissingLengthError) Error() string {
	return fmt.Sprintf("phylo: node %d without a branch length", e.Node)
}
