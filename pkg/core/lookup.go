package core

import (
	"context"

	"github.com/quiltlabs/quilt/pkg/tensor"
)

// LookupKind discriminates what a name resolved to
type LookupKind uint8

const (
	// LookupNotFound means the name is registered as neither
	LookupNotFound LookupKind = iota

	// LookupQuilt means the name is a quilt
	LookupQuilt

	// LookupAxis means the name is an axis
	LookupAxis
)

func (k LookupKind) String() string {
	switch k {
	case LookupQuilt:
		return "quilt"
	case LookupAxis:
		return "axis"
	default:
		return "not found"
	}
}

// LookupResult is a tagged resolution of a name. Exactly the field
// matching Kind is populated.
type LookupResult struct {
	Kind  LookupKind
	Quilt *Quilt
	Axis  tensor.Axis
}

// Lookup resolves a name to the quilt or axis registered under it.
// Quilt and axis names never collide, so the answer is unambiguous.
func (c *Catalog) Lookup(ctx context.Context, name string) LookupResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if q, ok := c.quilts[name]; ok {
		return LookupResult{Kind: LookupQuilt, Quilt: q}
	}
	if axis, ok := c.axes[name]; ok {
		return LookupResult{Kind: LookupAxis, Axis: axis.Clone()}
	}
	return LookupResult{Kind: LookupNotFound}
}
