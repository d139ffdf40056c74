package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/quiltlabs/quilt/pkg/model"
	"github.com/quiltlabs/quilt/pkg/storage"
	"github.com/quiltlabs/quilt/pkg/tensor"
	"go.uber.org/zap"
)

// CatalogOption is a functor to build a catalog with some options
type CatalogOption func(*Catalog)

// Logger injects a logging facility into catalog operations
func Logger(l *zap.Logger) CatalogOption {
	return func(c *Catalog) {
		if l != nil {
			c.l = l
		}
	}
}

// MetadataStore makes the catalog write-through: descriptors and patch
// blobs are persisted on every successful mutation.
func MetadataStore(store storage.Store) CatalogOption {
	return func(c *Catalog) {
		c.meta = store
	}
}

// BlobCompression selects the compression applied to persisted patch
// blobs (default LZ4).
func BlobCompression(compression tensor.Compression) CatalogOption {
	return func(c *Catalog) {
		c.compression = compression
	}
}

// Metrics registers the catalog's prometheus counters on reg
func Metrics(reg prometheus.Registerer) CatalogOption {
	return func(c *Catalog) {
		if reg != nil {
			c.metrics = newMetrics(reg)
		}
	}
}

// CommitOption is a functor to parameterize a commit
type CommitOption func(*commitParams)

type commitParams struct {
	parentTag string
	newTag    string
	message   string
}

func defaultCommitParams() commitParams {
	return commitParams{
		parentTag: model.DefaultTag,
		newTag:    model.DefaultTag,
	}
}

// Message sets the commit message
func Message(m string) CommitOption {
	return func(p *commitParams) {
		p.message = m
	}
}

// ParentTag names the tag the commit builds upon (default "latest")
func ParentTag(tag string) CommitOption {
	return func(p *commitParams) {
		if tag != "" {
			p.parentTag = tag
		}
	}
}

// NewTag names the tag advanced onto the new commit (default "latest").
// The tag is created when absent.
func NewTag(tag string) CommitOption {
	return func(p *commitParams) {
		if tag != "" {
			p.newTag = tag
		}
	}
}

// FetchOption is a functor to parameterize a fetch
type FetchOption func(*fetchParams)

type fetchParams struct {
	tag string
}

func defaultFetchParams() fetchParams {
	return fetchParams{tag: model.DefaultTag}
}

// Tag selects which history state the fetch observes (default "latest")
func Tag(tag string) FetchOption {
	return func(p *fetchParams) {
		if tag != "" {
			p.tag = tag
		}
	}
}
