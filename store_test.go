package pageforge

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/eringen/pageforge/document"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "pages.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPage(slug string, status document.Status) document.Page {
	return document.Page{
		ID:              uuid.NewString(),
		Slug:            slug,
		Title:           "Test Page",
		MetaTitle:       "Meta",
		MetaDescription: "Desc",
		OGImageURL:      "/og.png",
		Status:          status,
	}
}

func TestCreateAndGetDocument(t *testing.T) {
	s := setupTestStore(t)

	p := testPage("launch", document.StatusPublished)
	if err := s.CreatePage(p); err != nil {
		t.Fatalf("CreatePage failed: %v", err)
	}

	comps := []document.Component{
		document.NewComponent(document.TypeHero, map[string]any{"title": "Hi"}),
		document.NewComponent(document.TypeSpacer, map[string]any{"height": 48}),
	}
	if err := s.SaveComponents(p.ID, comps); err != nil {
		t.Fatalf("SaveComponents failed: %v", err)
	}

	doc, err := s.GetPublishedDocument("launch")
	if err != nil {
		t.Fatalf("GetPublishedDocument failed: %v", err)
	}
	if doc.Page.ID != p.ID || doc.Page.MetaTitle != "Meta" || doc.Page.OGImageURL != "/og.png" {
		t.Errorf("page fields lost: %+v", doc.Page)
	}
	if len(doc.Components) != 2 {
		t.Fatalf("components = %d, want 2", len(doc.Components))
	}
	if doc.Components[0].Type != document.TypeHero {
		t.Errorf("first component type = %s", doc.Components[0].Type)
	}
	if doc.Components[0].Config["title"] != "Hi" {
		t.Errorf("config round-trip lost title: %v", doc.Components[0].Config)
	}
	// JSON round-trip turns ints into float64; the render-boundary coercion
	// handles that shape.
	if doc.Components[1].Config["height"] != float64(48) {
		t.Errorf("height = %v (%T)", doc.Components[1].Config["height"], doc.Components[1].Config["height"])
	}
}

func TestDraftPagesAreNotPubliclyVisible(t *testing.T) {
	s := setupTestStore(t)

	p := testPage("draft-page", document.StatusDraft)
	if err := s.CreatePage(p); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetPublishedDocument("draft-page"); err != ErrNotFound {
		t.Errorf("draft page served publicly, err = %v", err)
	}
	if _, err := s.GetDocumentAny("draft-page"); err != nil {
		t.Errorf("builder access failed: %v", err)
	}
	pages, err := s.ListPublishedPages()
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 0 {
		t.Errorf("published list = %d pages, want 0", len(pages))
	}
}

func TestSaveComponentsRewritesPositions(t *testing.T) {
	s := setupTestStore(t)

	p := testPage("order", document.StatusPublished)
	if err := s.CreatePage(p); err != nil {
		t.Fatal(err)
	}
	a := document.NewComponent(document.TypeText, map[string]any{"content": "A"})
	b := document.NewComponent(document.TypeText, map[string]any{"content": "B"})
	// Stale positions on the way in; slice order is the source of truth.
	a.Position = 9
	b.Position = 3
	if err := s.SaveComponents(p.ID, []document.Component{a, b}); err != nil {
		t.Fatal(err)
	}
	doc, err := s.GetPublishedDocument("order")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Components[0].ID != a.ID || doc.Components[0].Position != 0 {
		t.Errorf("first component: %+v", doc.Components[0])
	}
	if doc.Components[1].ID != b.ID || doc.Components[1].Position != 1 {
		t.Errorf("second component: %+v", doc.Components[1])
	}
}

func TestSavePageUpdatesSlugAndStatus(t *testing.T) {
	s := setupTestStore(t)

	p := testPage("old-slug", document.StatusDraft)
	if err := s.CreatePage(p); err != nil {
		t.Fatal(err)
	}
	p.Slug = "new-slug"
	p.Status = document.StatusPublished
	if err := s.SavePage(p); err != nil {
		t.Fatalf("SavePage failed: %v", err)
	}
	if _, err := s.GetDocumentAny("old-slug"); err != ErrNotFound {
		t.Errorf("old slug still resolves, err = %v", err)
	}
	doc, err := s.GetPublishedDocument("new-slug")
	if err != nil {
		t.Fatalf("new slug not found: %v", err)
	}
	if doc.Page.Status != document.StatusPublished {
		t.Errorf("status = %s", doc.Page.Status)
	}
}

func TestDeletePageCascades(t *testing.T) {
	s := setupTestStore(t)

	p := testPage("doomed", document.StatusPublished)
	if err := s.CreatePage(p); err != nil {
		t.Fatal(err)
	}
	comp := document.NewComponent(document.TypeForm, map[string]any{})
	if err := s.SaveComponents(p.ID, []document.Component{comp}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveSubmission(p.ID, comp.ID, map[string]string{"email": "a@b.c"}); err != nil {
		t.Fatal(err)
	}

	if err := s.DeletePage("doomed"); err != nil {
		t.Fatalf("DeletePage failed: %v", err)
	}
	if _, err := s.GetDocumentAny("doomed"); err != ErrNotFound {
		t.Errorf("page still present, err = %v", err)
	}
	subs, err := s.ListSubmissions(p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 0 {
		t.Errorf("submissions survived delete: %d", len(subs))
	}
	// Deleting a missing page is not an error.
	if err := s.DeletePage("doomed"); err != nil {
		t.Errorf("second delete errored: %v", err)
	}
}

func TestSubmissionsRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	p := testPage("contact", document.StatusPublished)
	if err := s.CreatePage(p); err != nil {
		t.Fatal(err)
	}
	data := map[string]string{"email": "a@b.c", "message": "hello"}
	if err := s.SaveSubmission(p.ID, "form-1", data); err != nil {
		t.Fatalf("SaveSubmission failed: %v", err)
	}

	subs, err := s.ListSubmissions(p.ID)
	if err != nil {
		t.Fatalf("ListSubmissions failed: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("submissions = %d, want 1", len(subs))
	}
	if subs[0].ComponentID != "form-1" {
		t.Errorf("ComponentID = %q", subs[0].ComponentID)
	}
	if subs[0].Data["email"] != "a@b.c" || subs[0].Data["message"] != "hello" {
		t.Errorf("Data = %v", subs[0].Data)
	}
	if subs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestCountPages(t *testing.T) {
	s := setupTestStore(t)
	n, err := s.CountPages()
	if err != nil || n != 0 {
		t.Fatalf("CountPages = %d, %v; want 0, nil", n, err)
	}
	if err := s.CreatePage(testPage("one", document.StatusDraft)); err != nil {
		t.Fatal(err)
	}
	if n, _ := s.CountPages(); n != 1 {
		t.Errorf("CountPages = %d, want 1", n)
	}
}
