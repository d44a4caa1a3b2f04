package document

import "testing"

func TestHeroFromDefaults(t *testing.T) {
	cfg := HeroFrom(map[string]any{})
	if cfg.Alignment != "center" {
		t.Errorf("Alignment = %q, want center", cfg.Alignment)
	}
	if cfg.BackgroundType != "gradient" {
		t.Errorf("BackgroundType = %q, want gradient", cfg.BackgroundType)
	}
	if cfg.ShowCTA {
		t.Error("ShowCTA should default to false")
	}
}

func TestHeroFromOverrides(t *testing.T) {
	cfg := HeroFrom(map[string]any{
		"title":          "Big",
		"backgroundType": "image",
		"backgroundValue": "/bg.jpg",
		"showCta":        true,
		"ctaText":        "Go",
	})
	if cfg.Title != "Big" || cfg.BackgroundType != "image" || cfg.BackgroundValue != "/bg.jpg" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if !cfg.ShowCTA || cfg.CTAText != "Go" {
		t.Errorf("cta fields not applied: %+v", cfg)
	}
}

func TestBooleanAcceptsFormValues(t *testing.T) {
	if !boolean(map[string]any{"x": "on"}, "x", false) {
		t.Error(`"on" should read as true`)
	}
	if !boolean(map[string]any{"x": "true"}, "x", false) {
		t.Error(`"true" should read as true`)
	}
	if boolean(map[string]any{"x": "false"}, "x", true) {
		t.Error(`"false" should read as false`)
	}
}

func TestIntegerAcceptsJSONAndFormValues(t *testing.T) {
	m := map[string]any{"a": float64(3), "b": "4", "c": 5, "d": "junk"}
	if got := integer(m, "a", 0); got != 3 {
		t.Errorf("float64: got %d", got)
	}
	if got := integer(m, "b", 0); got != 4 {
		t.Errorf("string: got %d", got)
	}
	if got := integer(m, "c", 0); got != 5 {
		t.Errorf("int: got %d", got)
	}
	if got := integer(m, "d", 7); got != 7 {
		t.Errorf("junk should fall back to default, got %d", got)
	}
}

func TestFeaturesFromClampsColumns(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want int
	}{
		{float64(2), 2}, {float64(4), 4}, {float64(1), 3}, {float64(9), 3}, {"3", 3}, {nil, 3},
	} {
		cfg := FeaturesFrom(map[string]any{"columns": tc.in})
		if cfg.Columns != tc.want {
			t.Errorf("columns %v: got %d, want %d", tc.in, cfg.Columns, tc.want)
		}
	}
}

func TestTestimonialFromClampsRating(t *testing.T) {
	if got := TestimonialFrom(map[string]any{"rating": float64(0)}).Rating; got != 1 {
		t.Errorf("rating 0 clamped to %d, want 1", got)
	}
	if got := TestimonialFrom(map[string]any{"rating": float64(8)}).Rating; got != 5 {
		t.Errorf("rating 8 clamped to %d, want 5", got)
	}
	if got := TestimonialFrom(map[string]any{}).Rating; got != 5 {
		t.Errorf("default rating = %d, want 5", got)
	}
}

func TestFormFromDecodesFields(t *testing.T) {
	cfg := FormFrom(map[string]any{
		"fields": []any{
			map[string]any{"id": "email", "type": "email", "label": "Email", "required": true},
			map[string]any{"id": "topic", "type": "select", "options": []any{"Sales", "Support"}},
			"not-an-object",
		},
	})
	if len(cfg.Fields) != 2 {
		t.Fatalf("fields = %d, want 2 (malformed entries skipped)", len(cfg.Fields))
	}
	if cfg.Fields[0].ID != "email" || !cfg.Fields[0].Required {
		t.Errorf("first field: %+v", cfg.Fields[0])
	}
	if len(cfg.Fields[1].Options) != 2 || cfg.Fields[1].Options[1] != "Support" {
		t.Errorf("options: %v", cfg.Fields[1].Options)
	}
}

func TestFormFromMissingFields(t *testing.T) {
	cfg := FormFrom(map[string]any{})
	if cfg.Fields != nil {
		t.Errorf("fields = %v, want nil", cfg.Fields)
	}
	if cfg.SubmitText != "Submit" {
		t.Errorf("SubmitText = %q", cfg.SubmitText)
	}
}
