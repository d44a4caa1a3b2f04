package pageforge

import (
	"sync"
	"time"

	"github.com/eringen/pageforge/document"
)

// PageCache is an in-memory cache of published documents with TTL. It keeps
// the public path off the database between admin edits.
type PageCache struct {
	mu      sync.RWMutex
	docs    map[string]document.Document
	pages   []document.Page
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewPageCache creates a PageCache backed by the given Store.
func NewPageCache(s *Store, ttl time.Duration) *PageCache {
	return &PageCache{store: s, ttl: ttl}
}

func (c *PageCache) valid() bool {
	return c.docs != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.docs = nil
	c.pages = nil
	c.mu.Unlock()
}

func (c *PageCache) load() error {
	if c.valid() {
		return nil
	}
	pages, err := c.store.ListPublishedPages()
	if err != nil {
		return err
	}
	docs := make(map[string]document.Document, len(pages))
	for _, p := range pages {
		doc, err := c.store.GetPublishedDocument(p.Slug)
		if err != nil {
			return err
		}
		docs[p.Slug] = doc
	}
	c.docs = docs
	c.pages = pages
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns cached documents and page list after ensuring the
// cache is fresh. It tries a read lock first; only takes a write lock when a
// reload is needed.
func (c *PageCache) ensureLoaded() (map[string]document.Document, []document.Page, error) {
	c.mu.RLock()
	if c.valid() {
		docs, pages := c.docs, c.pages
		c.mu.RUnlock()
		return docs, pages, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.docs, c.pages, nil
}

// ListPages returns all published pages.
func (c *PageCache) ListPages() ([]document.Page, error) {
	_, pages, err := c.ensureLoaded()
	return pages, err
}

// GetDocument returns a published document by slug from the cache.
func (c *PageCache) GetDocument(slug string) (document.Document, error) {
	docs, _, err := c.ensureLoaded()
	if err != nil {
		return document.Document{}, err
	}
	doc, ok := docs[slug]
	if !ok {
		return document.Document{}, ErrNotFound
	}
	return doc, nil
}
