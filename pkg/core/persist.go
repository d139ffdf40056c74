package core

import (
	"bytes"
	"context"

	"github.com/quiltlabs/quilt/pkg/core/status"
	"github.com/quiltlabs/quilt/pkg/model"
	"github.com/quiltlabs/quilt/pkg/storage"
	"github.com/quiltlabs/quilt/pkg/tensor"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v2"
)

// Write ordering within a commit: patch blobs, then the commit
// descriptor, then the grown axes, then the tag. The tag is the commit
// point; Reopen ignores any commit no tag can reach, so a crash in the
// middle of this sequence leaves at worst unreferenced garbage.

func (c *Catalog) putYAML(ctx context.Context, path string, v interface{}, mode storage.WriteMode) error {
	buf, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return c.meta.Put(ctx, path, bytes.NewReader(buf), mode)
}

func (c *Catalog) getYAML(ctx context.Context, path string, v interface{}) error {
	rdr, err := c.meta.Get(ctx, path)
	if err != nil {
		return err
	}
	defer rdr.Close()
	var buf bytes.Buffer
	if _, err := storage.PipeIO(&buf, rdr); err != nil {
		return err
	}
	return yaml.Unmarshal(buf.Bytes(), v)
}

func (c *Catalog) persistAxis(ctx context.Context, axis tensor.Axis) error {
	return c.putYAML(ctx, model.GetArchivePathToAxis(axis.Name), axis, storage.OverWrite)
}

func (c *Catalog) persistQuilt(ctx context.Context, desc model.QuiltDescriptor) error {
	return c.putYAML(ctx, model.GetArchivePathToQuilt(desc.Name), desc, storage.IfNotPresent)
}

// persistCommit makes one commit durable: blobs, descriptor, grown
// axes, tag, in that order. On failure before the tag it deletes what
// it wrote, best effort; an axis already rewritten stays grown, which
// only widens future windows with zeros.
func (c *Catalog) persistCommit(ctx context.Context, q *Quilt, entry *commitEntry, grown map[string]tensor.Axis, newTag string) error {
	quilt := q.desc.Name
	written := make([]string, 0, len(entry.patches)+1)
	cleanup := func() {
		for _, key := range written {
			if derr := c.meta.Delete(ctx, key); derr != nil {
				c.l.Warn("could not clean up after failed commit",
					zap.String("key", key), zap.Error(derr))
			}
		}
	}

	for i, p := range entry.patches {
		var buf bytes.Buffer
		if err := tensor.EncodePatch(&buf, p, c.compression); err != nil {
			cleanup()
			return err
		}
		key := model.GetArchivePathToPatch(quilt, entry.desc.ID, i)
		if err := c.meta.Put(ctx, key, bytes.NewReader(buf.Bytes()), storage.IfNotPresent); err != nil {
			cleanup()
			return err
		}
		written = append(written, key)
		c.metrics.addPatchBytesWritten(buf.Len())
	}

	commitKey := model.GetArchivePathToCommit(quilt, entry.desc.ID)
	if err := c.putYAML(ctx, commitKey, entry.desc, storage.IfNotPresent); err != nil {
		cleanup()
		return err
	}
	written = append(written, commitKey)

	for _, axis := range grown {
		if err := c.persistAxis(ctx, axis); err != nil {
			cleanup()
			return err
		}
	}

	tag := model.TagDescriptor{Name: newTag, CommitID: entry.desc.ID, Timestamp: entry.desc.Timestamp}
	if err := c.putYAML(ctx, model.GetArchivePathToTag(quilt, newTag), tag, storage.OverWrite); err != nil {
		cleanup()
		return err
	}
	return nil
}

// Reopen rebuilds a catalog from a metadata store written by a
// previous instance. The returned catalog keeps writing through to the
// same store.
//
// Only commits reachable from some tag are loaded; anything else on
// the store is the debris of an interrupted commit and is ignored.
func Reopen(ctx context.Context, store storage.Store, opts ...CatalogOption) (*Catalog, error) {
	c := New(append([]CatalogOption{MetadataStore(store)}, opts...)...)

	if err := c.loadAxes(ctx); err != nil {
		return nil, err
	}
	if err := c.loadQuilts(ctx); err != nil {
		return nil, err
	}
	for _, q := range c.quilts {
		if err := c.loadHistory(ctx, q); err != nil {
			return nil, err
		}
	}
	c.l.Info("catalog reopened",
		zap.String("store", store.String()),
		zap.Int("axes", len(c.axes)),
		zap.Int("quilts", len(c.quilts)),
	)
	return c, nil
}

func (c *Catalog) loadAxes(ctx context.Context) error {
	keys, err := c.meta.KeysPrefix(ctx, model.GetArchivePathPrefixToAxes())
	if err != nil {
		return err
	}
	for _, key := range keys {
		var stored tensor.Axis
		if err := c.getYAML(ctx, key, &stored); err != nil {
			return status.ErrCorruption.WrapMessage("axis descriptor %s: %v", key, err)
		}
		if stored.Name != model.NameFromArchivePath(key) {
			return status.ErrCorruption.WrapMessage("axis descriptor %s names axis %q", key, stored.Name)
		}
		axis, err := tensor.NewAxis(stored.Name, stored.Labels)
		if err != nil {
			return status.ErrCorruption.WrapMessage("axis descriptor %s: %v", key, err)
		}
		c.axes[axis.Name] = axis
	}
	return nil
}

func (c *Catalog) loadQuilts(ctx context.Context) error {
	keys, err := c.meta.KeysPrefix(ctx, model.GetArchivePathPrefixToQuilts())
	if err != nil {
		return err
	}
	for _, key := range keys {
		var desc model.QuiltDescriptor
		if err := c.getYAML(ctx, key, &desc); err != nil {
			return status.ErrCorruption.WrapMessage("quilt descriptor %s: %v", key, err)
		}
		if err := desc.Validate(); err != nil {
			return status.ErrCorruption.WrapMessage("quilt descriptor %s: %v", key, err)
		}
		for _, axisName := range desc.Axes {
			if _, ok := c.axes[axisName]; !ok {
				return status.ErrCorruption.WrapMessage("quilt %q references unregistered axis %q", desc.Name, axisName)
			}
		}
		c.quilts[desc.Name] = newQuilt(desc)
	}
	return nil
}

// loadHistory loads the quilt's tags and every commit reachable from
// them, newest to oldest along each chain, with their patch blobs.
func (c *Catalog) loadHistory(ctx context.Context, q *Quilt) error {
	quilt := q.desc.Name
	tagKeys, err := c.meta.KeysPrefix(ctx, model.GetArchivePathPrefixToTags(quilt))
	if err != nil {
		return err
	}
	for _, key := range tagKeys {
		var tag model.TagDescriptor
		if err := c.getYAML(ctx, key, &tag); err != nil {
			return status.ErrCorruption.WrapMessage("tag descriptor %s: %v", key, err)
		}
		if tag.Name != model.NameFromArchivePath(key) {
			return status.ErrCorruption.WrapMessage("tag descriptor %s names tag %q", key, tag.Name)
		}
		q.tags[tag.Name] = tag

		for id := tag.CommitID; id != ""; {
			if _, ok := q.commits[id]; ok {
				break // chains converge; the rest is already loaded
			}
			entry, err := c.loadCommit(ctx, quilt, id)
			if err != nil {
				return err
			}
			q.commits[id] = entry
			id = entry.desc.Parent
		}
	}
	return nil
}

func (c *Catalog) loadCommit(ctx context.Context, quilt, commitID string) (*commitEntry, error) {
	var desc model.CommitDescriptor
	key := model.GetArchivePathToCommit(quilt, commitID)
	if err := c.getYAML(ctx, key, &desc); err != nil {
		return nil, status.ErrCorruption.WrapMessage("commit descriptor %s: %v", key, err)
	}
	if desc.ID != commitID {
		return nil, status.ErrCorruption.WrapMessage("commit descriptor %s names commit %s", key, desc.ID)
	}

	patches := make([]*tensor.Patch, 0, desc.PatchCount)
	for i := 0; i < desc.PatchCount; i++ {
		blobKey := model.GetArchivePathToPatch(quilt, commitID, i)
		rdr, err := c.meta.Get(ctx, blobKey)
		if err != nil {
			return nil, status.ErrCorruption.WrapMessage("patch blob %s: %v", blobKey, err)
		}
		var buf bytes.Buffer
		_, err = storage.PipeIO(&buf, rdr)
		_ = rdr.Close()
		if err != nil {
			return nil, status.ErrCorruption.WrapMessage("patch blob %s: %v", blobKey, err)
		}
		p, err := tensor.DecodePatch(bytes.NewReader(buf.Bytes()))
		if err != nil {
			return nil, status.ErrCorruption.WrapMessage("patch blob %s: %v", blobKey, err)
		}
		patches = append(patches, p)
		c.metrics.addPatchBytesRead(buf.Len())
	}
	return &commitEntry{desc: desc, patches: patches}, nil
}
