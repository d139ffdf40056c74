// Package status exports errors produced by the core package.
//
// All caller-input errors are detected before any mutation: an
// operation that returns one of them has left the catalog unchanged.
package status

import (
	"github.com/quiltlabs/quilt/pkg/errors"
)

var (
	// ErrNameConflict indicates the name is already registered
	ErrNameConflict = errors.New("name already in use")

	// ErrUnknownName indicates no axis or quilt is registered under the name
	ErrUnknownName = errors.New("unknown name")

	// ErrUnknownAxis indicates an axis name that is not registered
	ErrUnknownAxis = errors.New("unknown axis")

	// ErrUnknownTag indicates a tag that does not exist on the quilt
	ErrUnknownTag = errors.New("unknown tag")

	// ErrCorruption indicates stored history violating an internal
	// invariant. It is not recoverable locally: the quilt must be
	// treated as unusable until repaired.
	ErrCorruption = errors.New("store corruption")
)
