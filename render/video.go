package render

import (
	"net/url"
	"strings"
)

// VideoID extracts the provider-specific video id from a pasted URL.
// YouTube accepts watch?v=, youtu.be/ and /embed/ shapes; Vimeo accepts a
// numeric path segment. ok is false when no id can be extracted.
func VideoID(provider, rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	switch provider {
	case "youtube":
		return youtubeID(u)
	case "vimeo":
		return vimeoID(u)
	default:
		return "", false
	}
}

func youtubeID(u *url.URL) (string, bool) {
	if strings.Contains(u.Host, "youtu.be") {
		if id := firstSegment(u.Path); id != "" {
			return id, true
		}
		return "", false
	}
	if i := strings.Index(u.Path, "/embed/"); i >= 0 {
		if id := firstSegment(u.Path[i+len("/embed/")-1:]); id != "" {
			return id, true
		}
		return "", false
	}
	if id := u.Query().Get("v"); id != "" {
		return id, true
	}
	return "", false
}

func vimeoID(u *url.URL) (string, bool) {
	for _, seg := range strings.Split(u.Path, "/") {
		if seg != "" && isDigits(seg) {
			return seg, true
		}
	}
	return "", false
}

func firstSegment(p string) string {
	for _, seg := range strings.Split(p, "/") {
		if seg != "" {
			return seg
		}
	}
	return ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// EmbedURL resolves the iframe src for an embeddable provider, passing
// autoplay and mute through as query parameters.
func EmbedURL(provider, rawURL string, autoplay, muted bool) (string, bool) {
	id, ok := VideoID(provider, rawURL)
	if !ok {
		return "", false
	}
	var base string
	params := url.Values{}
	switch provider {
	case "youtube":
		base = "https://www.youtube.com/embed/" + id
		if autoplay {
			params.Set("autoplay", "1")
		}
		if muted {
			params.Set("mute", "1")
		}
	case "vimeo":
		base = "https://player.vimeo.com/video/" + id
		if autoplay {
			params.Set("autoplay", "1")
		}
		if muted {
			params.Set("muted", "1")
		}
	default:
		return "", false
	}
	if len(params) > 0 {
		return base + "?" + params.Encode(), true
	}
	return base, true
}
