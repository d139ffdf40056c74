package core

import (
	"context"

	"github.com/quiltlabs/quilt/pkg/core/status"
	"github.com/quiltlabs/quilt/pkg/tensor"
	"go.uber.org/zap"
)

// Fetch reconciles the history behind a tag into a single dense patch
// over the requested region.
//
// Selections are keyed by axis name; an axis left unselected defaults
// to the full current extent of the quilt-wide axis. Cells never
// written by any patch are zero. Later commits win cell-wise, and
// within a commit later patches win.
//
// Fetching the default tag of a quilt with no commits yields the empty
// history: an all-zero patch over the materialized selections.
func (c *Catalog) Fetch(ctx context.Context, quiltName string, selections map[string]tensor.Selection, opts ...FetchOption) (*tensor.Patch, error) {
	params := defaultFetchParams()
	for _, apply := range opts {
		apply(&params)
	}

	q, err := c.getQuilt(quiltName)
	if err != nil {
		return nil, err
	}
	for name := range selections {
		if !quiltHasAxis(q, name) {
			return nil, status.ErrUnknownAxis.WrapMessage("selection axis %q is not an axis of quilt %q", name, quiltName)
		}
	}

	// one consistent snapshot of registry axes, commit chain and tag;
	// patch application happens outside any lock
	c.mu.RLock()
	q.stateMu.RLock()
	snapshots := make([]tensor.Axis, 0, len(q.desc.Axes))
	for _, name := range q.desc.Axes {
		axis, ok := c.axes[name]
		if !ok {
			q.stateMu.RUnlock()
			c.mu.RUnlock()
			return nil, status.ErrCorruption.WrapMessage("quilt %q references unregistered axis %q", quiltName, name)
		}
		snapshots = append(snapshots, axis)
	}
	chain, err := q.resolveChainLocked(params.tag)
	q.stateMu.RUnlock()
	c.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	window := make([]tensor.Axis, 0, len(snapshots))
	for _, snapshot := range snapshots {
		sel, ok := selections[snapshot.Name]
		if !ok {
			sel = tensor.All()
		}
		axis, err := sel.Materialize(snapshot)
		if err != nil {
			return nil, err
		}
		window = append(window, axis)
	}

	result, err := tensor.NewEmptyPatch(window)
	if err != nil {
		return nil, err
	}
	for _, entry := range chain {
		for _, p := range entry.patches {
			if err := result.Apply(p); err != nil {
				return nil, status.ErrCorruption.WrapMessage(
					"commit %s of quilt %q holds an incompatible patch: %v", entry.desc.ID, quiltName, err)
			}
		}
	}

	c.metrics.incFetches()
	c.l.Debug("fetch reconciled",
		zap.String("quilt", quiltName),
		zap.String("tag", params.tag),
		zap.Int("commits", len(chain)),
		zap.Int("cells", result.Size()),
	)
	return result, nil
}

func quiltHasAxis(q *Quilt, name string) bool {
	for _, axis := range q.desc.Axes {
		if axis == name {
			return true
		}
	}
	return false
}
