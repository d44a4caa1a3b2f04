package catalog

import (
	"testing"

	"github.com/eringen/pageforge/document"
)

func TestLookupKnownTypes(t *testing.T) {
	for _, typ := range document.Types {
		d, ok := Lookup(typ)
		if !ok {
			t.Errorf("Lookup(%s) not found", typ)
			continue
		}
		if d.Label == "" || d.Description == "" || d.Category == "" {
			t.Errorf("descriptor for %s incomplete: %+v", typ, d)
		}
	}
}

func TestLookupUnknownType(t *testing.T) {
	if _, ok := Lookup("carousel"); ok {
		t.Error("unknown type should not resolve")
	}
}

func TestAllCoversEveryType(t *testing.T) {
	if got, want := len(All()), len(document.Types); got != want {
		t.Errorf("All() = %d descriptors, want %d", got, want)
	}
}

func TestByCategoryOmitsEmptyGroupsAndKeepsOrder(t *testing.T) {
	groups := ByCategory()
	if len(groups) == 0 {
		t.Fatal("no groups")
	}
	seen := 0
	for _, g := range groups {
		if len(g.Descriptors) == 0 {
			t.Errorf("category %s has no descriptors", g.Category)
		}
		seen += len(g.Descriptors)
	}
	if seen != len(document.Types) {
		t.Errorf("grouped %d descriptors, want %d", seen, len(document.Types))
	}
	// Groups follow the declared category order.
	idx := make(map[Category]int, len(Categories))
	for i, c := range Categories {
		idx[c] = i
	}
	for i := 1; i < len(groups); i++ {
		if idx[groups[i-1].Category] > idx[groups[i].Category] {
			t.Errorf("categories out of order: %s before %s", groups[i-1].Category, groups[i].Category)
		}
	}
}

func TestDefaultConfigIsACopy(t *testing.T) {
	d, _ := Lookup(document.TypeHero)
	a := d.DefaultConfig()
	a["title"] = "mutated"
	b := d.DefaultConfig()
	if b["title"] == "mutated" {
		t.Error("DefaultConfig shares state between calls")
	}
}

func TestNewComponent(t *testing.T) {
	c, ok := NewComponent(document.TypeSpacer)
	if !ok {
		t.Fatal("expected spacer to exist")
	}
	if c.Type != document.TypeSpacer || !c.Visible || c.ID == "" {
		t.Errorf("unexpected component: %+v", c)
	}
	if c.Config["height"] != 48 {
		t.Errorf("default height = %v, want 48", c.Config["height"])
	}
	if _, ok := NewComponent("carousel"); ok {
		t.Error("unknown type should not create a component")
	}
}
