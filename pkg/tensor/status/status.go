// Package status exports errors produced by the tensor package.
package status

import (
	"github.com/quiltlabs/quilt/pkg/errors"
)

var (
	// ErrDuplicateLabel indicates an axis was given repeated labels
	ErrDuplicateLabel = errors.New("duplicate axis label")

	// ErrUnsortedOrDuplicateLabels indicates a label subset is not strictly ascending
	ErrUnsortedOrDuplicateLabels = errors.New("labels must be strictly ascending and unique")

	// ErrShapeMismatch indicates dense content whose size disagrees with its axis subsets
	ErrShapeMismatch = errors.New("content shape does not match axis subsets")

	// ErrDimensionMismatch indicates a patch with the wrong number of dimensions
	ErrDimensionMismatch = errors.New("dimension count mismatch")

	// ErrAxisNameMismatch indicates a patch whose axis order disagrees with its quilt
	ErrAxisNameMismatch = errors.New("axis name mismatch")

	// ErrBadSelection indicates an axis selection that cannot be materialized
	ErrBadSelection = errors.New("invalid axis selection")

	// ErrBadEncoding indicates a patch blob that cannot be decoded
	ErrBadEncoding = errors.New("undecodable patch blob")
)
