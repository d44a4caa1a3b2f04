package pageforge

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Launch Page", "launch-page"},
		{"  Hello,   World!  ", "hello-world"},
		{"Already-slugged", "already-slugged"},
		{"Ends with punctuation?!", "ends-with-punctuation"},
		{"2024 Pricing", "2024-pricing"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", []string{"p", "launch"}, "https://example.com/p/launch/"},
		{"https://example.com/", []string{"p", "launch"}, "https://example.com/p/launch/"},
		{"https://example.com/sub", []string{"p", "launch"}, "https://example.com/sub/p/launch/"},
		{"https://example.com", nil, "https://example.com"},
	}
	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}
