package pageforge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eringen/pageforge/document"
)

const testSeed = `pages:
  - slug: Launch Page
    title: Launch
    metaDescription: A seeded landing page
    status: published
    components:
      - type: hero
        config:
          title: Welcome
          alignment: left
      - type: hologram
        config:
          foo: bar
      - type: form
        visible: false
        config:
          fields:
            - id: field-1
              type: email
              label: Email
              required: true
  - title: Second Draft
    components: []
`

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSeedImportsPages(t *testing.T) {
	a := &App{Store: setupTestStore(t)}

	if err := a.seedIfEmpty(writeSeedFile(t, testSeed)); err != nil {
		t.Fatalf("seedIfEmpty failed: %v", err)
	}

	doc, err := a.Store.GetPublishedDocument("launch-page")
	if err != nil {
		t.Fatalf("seeded page not found: %v", err)
	}
	// Unknown component types are skipped, so hero + form survive.
	if len(doc.Components) != 2 {
		t.Fatalf("components = %d, want 2", len(doc.Components))
	}
	hero := doc.Components[0]
	if hero.Type != document.TypeHero {
		t.Errorf("first component type = %s", hero.Type)
	}
	if hero.Config["title"] != "Welcome" || hero.Config["alignment"] != "left" {
		t.Errorf("seed config not overlaid: %v", hero.Config)
	}
	// Catalog defaults survive underneath the overlay.
	if hero.Config["backgroundType"] != "gradient" {
		t.Errorf("default lost: backgroundType = %v", hero.Config["backgroundType"])
	}
	form := doc.Components[1]
	if form.Visible {
		t.Error("visible: false not honored")
	}
	fields, ok := form.Config["fields"].([]any)
	if !ok || len(fields) != 1 {
		t.Fatalf("fields = %v (%T)", form.Config["fields"], form.Config["fields"])
	}
	field, ok := fields[0].(map[string]any)
	if !ok || field["label"] != "Email" {
		t.Errorf("field shape = %v (%T)", fields[0], fields[0])
	}

	// Title-only page gets its slug from the title and defaults to draft.
	if _, err := a.Store.GetDocumentAny("second-draft"); err != nil {
		t.Errorf("title-derived slug missing: %v", err)
	}
	if _, err := a.Store.GetPublishedDocument("second-draft"); err != ErrNotFound {
		t.Errorf("draft seed page published, err = %v", err)
	}
}

func TestSeedSkipsPopulatedDatabase(t *testing.T) {
	a := &App{Store: setupTestStore(t)}
	if err := a.Store.CreatePage(testPage("existing", document.StatusDraft)); err != nil {
		t.Fatal(err)
	}

	if err := a.seedIfEmpty(writeSeedFile(t, testSeed)); err != nil {
		t.Fatalf("seedIfEmpty failed: %v", err)
	}
	if _, err := a.Store.GetDocumentAny("launch-page"); err != ErrNotFound {
		t.Errorf("seed ran against populated database, err = %v", err)
	}
}

func TestSeedMissingFileIsNoop(t *testing.T) {
	a := &App{Store: setupTestStore(t)}
	if err := a.seedIfEmpty(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Errorf("missing seed file errored: %v", err)
	}
}
