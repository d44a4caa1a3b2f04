package document

import "testing"

func sampleDoc() Document {
	return Document{
		Page: Page{ID: "p1", Slug: "launch", Title: "Launch", Status: StatusPublished},
		Components: []Component{
			{ID: "a", Type: TypeHero, Position: 0, Visible: true, Config: map[string]any{"title": "Hi"}},
			{ID: "b", Type: TypeText, Position: 1, Visible: true, Config: map[string]any{}},
			{ID: "c", Type: TypeSpacer, Position: 2, Visible: true, Config: map[string]any{}},
		},
	}
}

func TestNewComponentAssignsUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		c := NewComponent(TypeHero, map[string]any{"title": "x"})
		if c.ID == "" {
			t.Fatal("component id should not be empty")
		}
		if seen[c.ID] {
			t.Fatalf("component id %q reused", c.ID)
		}
		seen[c.ID] = true
		if !c.Visible {
			t.Fatal("new components should default to visible")
		}
	}
}

func TestNewComponentClonesConfig(t *testing.T) {
	defaults := map[string]any{"title": "x"}
	c := NewComponent(TypeHero, defaults)
	c.Config["title"] = "y"
	if defaults["title"] != "x" {
		t.Errorf("default config mutated: %v", defaults["title"])
	}
}

func TestAppendDoesNotMutateOriginal(t *testing.T) {
	doc := sampleDoc()
	out := doc.Append(NewComponent(TypeCTA, map[string]any{}))
	if len(doc.Components) != 3 {
		t.Fatalf("original length = %d, want 3", len(doc.Components))
	}
	if len(out.Components) != 4 {
		t.Fatalf("new length = %d, want 4", len(out.Components))
	}
	if out.Components[3].Position != 3 {
		t.Errorf("appended Position = %d, want 3", out.Components[3].Position)
	}
}

func TestRemove(t *testing.T) {
	doc := sampleDoc()
	out := doc.Remove("b")
	if len(out.Components) != 2 {
		t.Fatalf("length = %d, want 2", len(out.Components))
	}
	if out.Components[0].ID != "a" || out.Components[1].ID != "c" {
		t.Errorf("unexpected order: %s, %s", out.Components[0].ID, out.Components[1].ID)
	}
	if out.Components[1].Position != 1 {
		t.Errorf("Position = %d, want 1 after renumber", out.Components[1].Position)
	}
	if got := doc.Remove("nope"); len(got.Components) != 3 {
		t.Errorf("removing unknown id changed length to %d", len(got.Components))
	}
}

func TestMoveSwapsNeighbors(t *testing.T) {
	doc := sampleDoc()
	out := doc.Move(0, 1)
	if out.Components[0].ID != "b" || out.Components[1].ID != "a" {
		t.Errorf("move down: got %s, %s", out.Components[0].ID, out.Components[1].ID)
	}
	if out.Components[0].Position != 0 || out.Components[1].Position != 1 {
		t.Error("positions not renumbered after move")
	}
}

func TestMoveOutOfRangeIsNoOp(t *testing.T) {
	doc := sampleDoc()
	for _, tc := range []struct{ i, dir int }{{2, 1}, {0, -1}, {-1, 1}, {5, -1}, {1, 2}} {
		out := doc.Move(tc.i, tc.dir)
		for i := range doc.Components {
			if out.Components[i].ID != doc.Components[i].ID {
				t.Errorf("Move(%d, %d) changed order", tc.i, tc.dir)
			}
		}
	}
}

func TestReplace(t *testing.T) {
	doc := sampleDoc()
	c, _, ok := doc.Find("b")
	if !ok {
		t.Fatal("Find(b) failed")
	}
	c.Visible = false
	out := doc.Replace(c)
	if doc.Components[1].Visible != true {
		t.Error("original document mutated by Replace")
	}
	if out.Components[1].Visible != false {
		t.Error("replacement not applied")
	}
}

func TestMetadataFallsBackToTitle(t *testing.T) {
	p := Page{Title: "Launch", MetaDescription: "desc", OGImageURL: "/og.png"}
	meta := p.Metadata("https://example.com/p/launch/")
	if meta.Title != "Launch" {
		t.Errorf("Title = %q, want %q", meta.Title, "Launch")
	}
	p.MetaTitle = "Launch — Product"
	if got := p.Metadata("").Title; got != "Launch — Product" {
		t.Errorf("Title = %q, want meta title", got)
	}
	if meta.Description != "desc" || meta.OGImageURL != "/og.png" {
		t.Errorf("metadata fields not carried: %+v", meta)
	}
}
