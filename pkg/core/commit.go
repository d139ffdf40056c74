package core

import (
	"context"

	"github.com/quiltlabs/quilt/pkg/core/status"
	"github.com/quiltlabs/quilt/pkg/model"
	"github.com/quiltlabs/quilt/pkg/tensor"
	tensorstatus "github.com/quiltlabs/quilt/pkg/tensor/status"
	"go.uber.org/zap"
)

// Commit validates patches against a quilt, extends the axes touched,
// appends a commit to the quilt's log and advances the target tag —
// all or nothing.
//
// The patches of one call are a single atomic unit, applied in the
// given order against the same parent. A validation failure leaves the
// catalog untouched. Commits to the same quilt are serialized; fetches
// are never blocked beyond the final in-memory swap.
//
// When the catalog is write-through, patch blobs, axis and commit
// descriptors and finally the tag are durable before Commit returns;
// the tag write is the durable commit point.
func (c *Catalog) Commit(ctx context.Context, quiltName string, patches []*tensor.Patch, opts ...CommitOption) (string, error) {
	params := defaultCommitParams()
	for _, apply := range opts {
		apply(&params)
	}
	if err := model.ValidateName(params.newTag); err != nil {
		return "", err
	}

	q, err := c.getQuilt(quiltName)
	if err != nil {
		return "", err
	}

	q.commitMu.Lock()
	defer q.commitMu.Unlock()

	// step 1: shape of every patch must agree with the quilt
	if err := validatePatches(q, patches); err != nil {
		return "", err
	}

	// axis unions are computed (not yet applied) under axisMu, so two
	// quilts sharing an axis cannot interleave their extensions
	c.axisMu.Lock()
	defer c.axisMu.Unlock()

	grown, err := c.computeUnions(q, patches)
	if err != nil {
		return "", err
	}

	// step 3: resolve the parent before mutating anything
	q.stateMu.RLock()
	parent, err := q.resolveParentLocked(params.parentTag)
	q.stateMu.RUnlock()
	if err != nil {
		return "", err
	}

	desc := model.CommitDescriptor{
		ID:         model.NewCommitID(),
		Parent:     parent,
		Message:    params.message,
		PatchCount: len(patches),
		Timestamp:  model.GetTimeStamp(),
	}
	entry := &commitEntry{desc: desc, patches: patches}

	// durability first: the in-memory state is only advanced once the
	// whole commit, tag included, is on the store
	if c.meta != nil {
		if err := c.persistCommit(ctx, q, entry, grown, params.newTag); err != nil {
			return "", err
		}
	}

	// steps 2, 5, 6 applied in one critical section: readers observe
	// the axis union, the appended commit and the advanced tag together
	c.mu.Lock()
	q.stateMu.Lock()
	for name, axis := range grown {
		c.axes[name] = axis
	}
	q.commits[desc.ID] = entry
	q.tags[params.newTag] = model.TagDescriptor{
		Name:      params.newTag,
		CommitID:  desc.ID,
		Timestamp: desc.Timestamp,
	}
	q.stateMu.Unlock()
	c.mu.Unlock()

	c.metrics.incCommits()
	c.l.Info("commit applied",
		zap.String("quilt", quiltName),
		zap.String("commit", desc.ID),
		zap.String("parent", parent),
		zap.String("tag", params.newTag),
		zap.Int("patches", len(patches)),
		zap.Int("axes_grown", len(grown)),
	)
	return desc.ID, nil
}

func validatePatches(q *Quilt, patches []*tensor.Patch) error {
	for i, p := range patches {
		names := p.AxisNames()
		if len(names) != len(q.desc.Axes) {
			return tensorstatus.ErrDimensionMismatch.WrapMessage(
				"patch %d has %d dimensions, quilt %q has %d", i, len(names), q.desc.Name, len(q.desc.Axes))
		}
		for d, name := range names {
			if name != q.desc.Axes[d] {
				return tensorstatus.ErrAxisNameMismatch.WrapMessage(
					"patch %d dimension %d is %q, quilt %q expects %q", i, d, name, q.desc.Name, q.desc.Axes[d])
			}
		}
	}
	return nil
}

// computeUnions returns the extended registry axes the patches imply,
// keyed by axis name. Only axes that actually grow are returned. The
// caller holds axisMu.
func (c *Catalog) computeUnions(q *Quilt, patches []*tensor.Patch) (map[string]tensor.Axis, error) {
	c.mu.RLock()
	current := make(map[string]tensor.Axis, len(q.desc.Axes))
	for _, name := range q.desc.Axes {
		axis, ok := c.axes[name]
		if !ok {
			c.mu.RUnlock()
			return nil, status.ErrCorruption.WrapMessage("quilt %q references unregistered axis %q", q.desc.Name, name)
		}
		current[name] = axis
	}
	c.mu.RUnlock()

	grown := make(map[string]tensor.Axis)
	for _, p := range patches {
		for _, sub := range p.Axes() {
			base, ok := grown[sub.Name]
			if !ok {
				base = current[sub.Name]
			}
			union, grew := base.Union(sub.Labels)
			if grew {
				grown[sub.Name] = union
			}
		}
	}
	return grown, nil
}

// resolveParentLocked maps the parent tag to a commit id. An absent
// default tag on a commit-less quilt denotes the root; any other
// absent tag is the caller's error. The caller holds stateMu.
func (q *Quilt) resolveParentLocked(parentTag string) (string, error) {
	if tag, ok := q.tags[parentTag]; ok {
		return tag.CommitID, nil
	}
	if parentTag == model.DefaultTag && len(q.commits) == 0 {
		return "", nil
	}
	return "", status.ErrUnknownTag.WrapMessage("parent tag %q on quilt %q", parentTag, q.desc.Name)
}
