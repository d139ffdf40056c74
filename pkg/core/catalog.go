// Package core implements the catalog: the axis registry, the quilts
// with their commit logs and tags, and the commit and fetch engines
// reconciling patches into dense slices.
package core

import (
	"context"
	"sort"
	"sync"

	"github.com/quiltlabs/quilt/pkg/core/status"
	"github.com/quiltlabs/quilt/pkg/model"
	"github.com/quiltlabs/quilt/pkg/storage"
	"github.com/quiltlabs/quilt/pkg/tensor"
	"go.uber.org/zap"
)

// Catalog owns all mutable state: the axis registry and the quilts.
// Construct one explicitly with New or Reopen and share it by
// reference; every mutation passes through it.
//
// Reads run in parallel. Commits to one quilt are serialized among
// themselves but never block fetches beyond the brief snapshot of the
// quilt's log and tags.
type Catalog struct {
	mu     sync.RWMutex // guards the axes and quilts registries
	axisMu sync.Mutex   // serializes axis union-extension across quilts
	axes   map[string]tensor.Axis
	quilts map[string]*Quilt

	meta        storage.Store // optional write-through persistence
	compression tensor.Compression
	metrics     *coreMetrics
	l           *zap.Logger
}

// New builds an in-memory catalog
func New(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		axes:        make(map[string]tensor.Axis),
		quilts:      make(map[string]*Quilt),
		compression: tensor.CompressionLZ4,
		l:           zap.NewNop(),
	}
	for _, apply := range opts {
		apply(c)
	}
	return c
}

// Quilt is the runtime state of one named dataset: its descriptor, its
// append-only commit log and its tags.
type Quilt struct {
	desc model.QuiltDescriptor

	commitMu sync.Mutex   // serializes commits to this quilt
	stateMu  sync.RWMutex // guards commits and tags
	commits  map[string]*commitEntry
	tags     map[string]model.TagDescriptor
}

type commitEntry struct {
	desc    model.CommitDescriptor
	patches []*tensor.Patch
}

// Name of the quilt
func (q *Quilt) Name() string {
	return q.desc.Name
}

// AxisNames is the quilt's fixed, ordered axis list
func (q *Quilt) AxisNames() []string {
	return append([]string(nil), q.desc.Axes...)
}

func newQuilt(desc model.QuiltDescriptor) *Quilt {
	return &Quilt{
		desc:    desc,
		commits: make(map[string]*commitEntry),
		tags:    make(map[string]model.TagDescriptor),
	}
}

// CreateAxis registers a new axis with its initial labels. Labels are
// stored sorted ascending; duplicates are rejected.
func (c *Catalog) CreateAxis(ctx context.Context, name string, labels []int64) (tensor.Axis, error) {
	if err := model.ValidateName(name); err != nil {
		return tensor.Axis{}, err
	}
	axis, err := tensor.NewAxis(name, labels)
	if err != nil {
		return tensor.Axis{}, err
	}

	// axes and quilts share one namespace: Lookup must be unambiguous
	c.mu.Lock()
	if _, ok := c.axes[name]; ok {
		c.mu.Unlock()
		return tensor.Axis{}, status.ErrNameConflict.WrapMessage("axis %q", name)
	}
	if _, ok := c.quilts[name]; ok {
		c.mu.Unlock()
		return tensor.Axis{}, status.ErrNameConflict.WrapMessage("%q is a quilt", name)
	}
	c.axes[name] = axis
	c.mu.Unlock()

	if c.meta != nil {
		if err := c.persistAxis(ctx, axis); err != nil {
			c.mu.Lock()
			delete(c.axes, name)
			c.mu.Unlock()
			return tensor.Axis{}, err
		}
	}
	c.l.Info("axis created", zap.String("axis", name), zap.Int("labels", axis.Len()))
	return axis.Clone(), nil
}

// AxisSnapshot returns an immutable copy of the axis's current labels
func (c *Catalog) AxisSnapshot(ctx context.Context, name string) (tensor.Axis, error) {
	c.mu.RLock()
	axis, ok := c.axes[name]
	c.mu.RUnlock()
	if !ok {
		return tensor.Axis{}, status.ErrUnknownAxis.WrapMessage("axis %q", name)
	}
	return axis.Clone(), nil
}

// ListAxes returns the registered axis names, sorted
func (c *Catalog) ListAxes(ctx context.Context) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.axes))
	for name := range c.axes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateQuilt registers a new quilt over an ordered list of previously
// created axes. The axis list is fixed for the quilt's lifetime.
func (c *Catalog) CreateQuilt(ctx context.Context, name string, axisNames []string) error {
	desc := model.NewQuiltDescriptor(name, axisNames)
	if err := desc.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	if _, ok := c.quilts[name]; ok {
		c.mu.Unlock()
		return status.ErrNameConflict.WrapMessage("quilt %q", name)
	}
	if _, ok := c.axes[name]; ok {
		c.mu.Unlock()
		return status.ErrNameConflict.WrapMessage("%q is an axis", name)
	}
	for _, axis := range desc.Axes {
		if _, ok := c.axes[axis]; !ok {
			c.mu.Unlock()
			return status.ErrUnknownAxis.WrapMessage("axis %q in quilt %q", axis, name)
		}
	}
	c.quilts[name] = newQuilt(desc)
	c.mu.Unlock()

	if c.meta != nil {
		if err := c.persistQuilt(ctx, desc); err != nil {
			c.mu.Lock()
			delete(c.quilts, name)
			c.mu.Unlock()
			return err
		}
	}
	c.l.Info("quilt created", zap.String("quilt", name), zap.Strings("axes", desc.Axes))
	return nil
}

// ListQuilts returns the descriptors of all quilts, sorted by name
func (c *Catalog) ListQuilts(ctx context.Context) []model.QuiltDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.QuiltDescriptor, 0, len(c.quilts))
	for _, q := range c.quilts {
		out = append(out, q.desc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ListTags returns the tags of a quilt, sorted by name
func (c *Catalog) ListTags(ctx context.Context, quiltName string) ([]model.TagDescriptor, error) {
	q, err := c.getQuilt(quiltName)
	if err != nil {
		return nil, err
	}
	q.stateMu.RLock()
	defer q.stateMu.RUnlock()
	out := make([]model.TagDescriptor, 0, len(q.tags))
	for _, tag := range q.tags {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// History returns the commit descriptors reachable from a tag, oldest
// first.
func (c *Catalog) History(ctx context.Context, quiltName string, opts ...FetchOption) ([]model.CommitDescriptor, error) {
	params := defaultFetchParams()
	for _, apply := range opts {
		apply(&params)
	}
	q, err := c.getQuilt(quiltName)
	if err != nil {
		return nil, err
	}
	q.stateMu.RLock()
	chain, err := q.resolveChainLocked(params.tag)
	q.stateMu.RUnlock()
	if err != nil {
		return nil, err
	}
	out := make([]model.CommitDescriptor, len(chain))
	for i, entry := range chain {
		out[i] = entry.desc
	}
	return out, nil
}

func (c *Catalog) getQuilt(name string) (*Quilt, error) {
	c.mu.RLock()
	q, ok := c.quilts[name]
	c.mu.RUnlock()
	if !ok {
		return nil, status.ErrUnknownName.WrapMessage("quilt %q", name)
	}
	return q, nil
}

// resolveChainLocked walks parent links from the commit the tag names
// back to the root, returning entries oldest to newest. The caller
// holds stateMu.
//
// A quilt with no commits resolves the default tag to an empty chain.
// A broken parent link means the commit engine's invariants were
// violated and surfaces as ErrCorruption.
func (q *Quilt) resolveChainLocked(tag string) ([]*commitEntry, error) {
	head, ok := q.tags[tag]
	if !ok {
		if tag == model.DefaultTag && len(q.commits) == 0 {
			return nil, nil
		}
		return nil, status.ErrUnknownTag.WrapMessage("tag %q on quilt %q", tag, q.desc.Name)
	}
	var reversed []*commitEntry
	for id := head.CommitID; id != ""; {
		entry, ok := q.commits[id]
		if !ok {
			return nil, status.ErrCorruption.WrapMessage("quilt %q: commit %q missing from log", q.desc.Name, id)
		}
		reversed = append(reversed, entry)
		id = entry.desc.Parent
	}
	chain := make([]*commitEntry, len(reversed))
	for i, entry := range reversed {
		chain[len(reversed)-1-i] = entry
	}
	return chain, nil
}
