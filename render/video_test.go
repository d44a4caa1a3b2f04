package render

import "testing"

func TestVideoIDYouTubeShapes(t *testing.T) {
	tests := []struct {
		url  string
		want string
		ok   bool
	}{
		{"https://www.youtube.com/watch?v=abc123", "abc123", true},
		{"https://youtu.be/abc123", "abc123", true},
		{"https://www.youtube.com/embed/abc123", "abc123", true},
		{"https://youtube.com/watch?v=dQw4w9WgXcQ&t=10", "dQw4w9WgXcQ", true},
		{"https://www.youtube.com/watch?list=PLx", "", false},
		{"https://youtu.be/", "", false},
		{"://bad url", "", false},
	}
	for _, tc := range tests {
		got, ok := VideoID("youtube", tc.url)
		if got != tc.want || ok != tc.ok {
			t.Errorf("VideoID(youtube, %q) = %q, %v; want %q, %v", tc.url, got, ok, tc.want, tc.ok)
		}
	}
}

func TestVideoIDVimeo(t *testing.T) {
	tests := []struct {
		url  string
		want string
		ok   bool
	}{
		{"https://vimeo.com/123456789", "123456789", true},
		{"https://vimeo.com/channels/staff/123456789", "123456789", true},
		{"https://vimeo.com/about", "", false},
	}
	for _, tc := range tests {
		got, ok := VideoID("vimeo", tc.url)
		if got != tc.want || ok != tc.ok {
			t.Errorf("VideoID(vimeo, %q) = %q, %v; want %q, %v", tc.url, got, ok, tc.want, tc.ok)
		}
	}
}

func TestEmbedURLPassesAutoplayAndMute(t *testing.T) {
	got, ok := EmbedURL("youtube", "https://youtu.be/abc123", true, true)
	if !ok {
		t.Fatal("expected ok")
	}
	want := "https://www.youtube.com/embed/abc123?autoplay=1&mute=1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got, ok = EmbedURL("vimeo", "https://vimeo.com/42", false, true)
	if !ok {
		t.Fatal("expected ok")
	}
	want = "https://player.vimeo.com/video/42?muted=1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmbedURLPlainWhenNoFlags(t *testing.T) {
	got, ok := EmbedURL("youtube", "https://www.youtube.com/watch?v=abc123", false, false)
	if !ok || got != "https://www.youtube.com/embed/abc123" {
		t.Errorf("got %q, %v", got, ok)
	}
}
