package pageforge

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/eringen/pageforge/catalog"
	"github.com/eringen/pageforge/document"
)

// seedFileDoc is the YAML shape of a seed file: a list of pages, each with
// an ordered component list. Scaffolded projects ship one so a fresh site
// boots with a demo landing page.
type seedFileDoc struct {
	Pages []seedPage `yaml:"pages"`
}

type seedPage struct {
	Slug            string          `yaml:"slug"`
	Title           string          `yaml:"title"`
	MetaTitle       string          `yaml:"metaTitle"`
	MetaDescription string          `yaml:"metaDescription"`
	OGImageURL      string          `yaml:"ogImageUrl"`
	Status          string          `yaml:"status"`
	Components      []seedComponent `yaml:"components"`
}

type seedComponent struct {
	Type    string         `yaml:"type"`
	Visible *bool          `yaml:"visible"`
	Config  map[string]any `yaml:"config"`
}

// seedIfEmpty imports pages from a YAML file when the database holds none.
// A populated database is left alone so the seed never clobbers real edits.
func (a *App) seedIfEmpty(path string) error {
	n, err := a.Store.CountPages()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var seed seedFileDoc
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for _, sp := range seed.Pages {
		slug := Slugify(sp.Slug)
		if slug == "" {
			slug = Slugify(sp.Title)
		}
		if slug == "" {
			return fmt.Errorf("seed page needs a slug or title")
		}
		status := document.StatusDraft
		if sp.Status == string(document.StatusPublished) {
			status = document.StatusPublished
		}
		p := document.Page{
			ID:              uuid.NewString(),
			Slug:            slug,
			Title:           sp.Title,
			MetaTitle:       sp.MetaTitle,
			MetaDescription: sp.MetaDescription,
			OGImageURL:      sp.OGImageURL,
			Status:          status,
		}
		if err := a.Store.CreatePage(p); err != nil {
			return err
		}

		doc := document.Document{Page: p}
		for _, sc := range sp.Components {
			comp, ok := catalog.NewComponent(document.Type(sc.Type))
			if !ok {
				// Unknown types in a seed are skipped the same way the
				// renderer skips them.
				continue
			}
			for k, v := range normalizeSeedConfig(sc.Config) {
				comp.Config[k] = v
			}
			if sc.Visible != nil {
				comp.Visible = *sc.Visible
			}
			doc = doc.Append(comp)
		}
		if err := a.Store.SaveComponents(p.ID, doc.Components); err != nil {
			return err
		}
	}
	return nil
}

// normalizeSeedConfig converts YAML map values into the shapes the config
// readers expect: nested maps become map[string]any and lists []any, the
// same as a JSON round-trip produces.
func normalizeSeedConfig(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeSeedValue(v)
	}
	return out
}

func normalizeSeedValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return normalizeSeedConfig(t)
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeSeedValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeSeedValue(val)
		}
		return out
	default:
		return v
	}
}
