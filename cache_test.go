package pageforge

import (
	"testing"
	"time"

	"github.com/eringen/pageforge/document"
)

func TestPageCacheServesAndInvalidates(t *testing.T) {
	s := setupTestStore(t)
	cache := NewPageCache(s, time.Minute)

	if err := s.CreatePage(testPage("cached", document.StatusPublished)); err != nil {
		t.Fatal(err)
	}

	doc, err := cache.GetDocument("cached")
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if doc.Page.Slug != "cached" {
		t.Errorf("slug = %q", doc.Page.Slug)
	}

	// A page created after the load stays invisible until invalidation.
	if err := s.CreatePage(testPage("later", document.StatusPublished)); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.GetDocument("later"); err != ErrNotFound {
		t.Errorf("stale cache returned fresh page, err = %v", err)
	}

	cache.Invalidate()
	if _, err := cache.GetDocument("later"); err != nil {
		t.Errorf("post-invalidate read failed: %v", err)
	}

	pages, err := cache.ListPages()
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 2 {
		t.Errorf("pages = %d, want 2", len(pages))
	}
}

func TestPageCacheSkipsDrafts(t *testing.T) {
	s := setupTestStore(t)
	cache := NewPageCache(s, time.Minute)

	if err := s.CreatePage(testPage("hidden-draft", document.StatusDraft)); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.GetDocument("hidden-draft"); err != ErrNotFound {
		t.Errorf("draft served from cache, err = %v", err)
	}
}
