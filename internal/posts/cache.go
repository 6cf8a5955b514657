package posts

import (
	"io/fs"
	"time"

	"github.com/viccon/sturdyc"

	"github.com/goliatone/go-posts/pkg/interfaces"
)

const (
	maxCacheShards          = 10
	cacheEvictionPercentage = 10
)

// DocumentCache keeps parsed documents keyed by their path inside the
// content root. An entry is only served while the file's modification time
// and size still match, so edits on disk are picked up on the next query.
// Cached documents are shared and must be treated as read-only.
type DocumentCache struct {
	client *sturdyc.Client[*interfaces.Document]
}

// NewDocumentCache returns a cache holding up to capacity documents for at
// most ttl each.
func NewDocumentCache(capacity int, ttl time.Duration) *DocumentCache {
	if capacity < 1 {
		capacity = 1
	}
	shards := min(maxCacheShards, capacity)
	return &DocumentCache{
		client: sturdyc.New[*interfaces.Document](capacity, shards, ttl, cacheEvictionPercentage),
	}
}

// Len reports the number of cached documents.
func (c *DocumentCache) Len() int {
	if c == nil {
		return 0
	}
	return c.client.Size()
}

func (c *DocumentCache) lookup(path string, info fs.FileInfo) (*interfaces.Document, bool) {
	if c == nil {
		return nil, false
	}
	doc, ok := c.client.Get(path)
	if !ok || doc == nil {
		return nil, false
	}
	if !doc.LastModified.Equal(info.ModTime()) || doc.Size != info.Size() {
		c.client.Delete(path)
		return nil, false
	}
	return doc, true
}

func (c *DocumentCache) store(doc *interfaces.Document) {
	if c == nil || doc == nil {
		return
	}
	c.client.Set(doc.FilePath, doc)
}
