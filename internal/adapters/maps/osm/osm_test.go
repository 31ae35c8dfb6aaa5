package osm

import (
	"strings"
	"testing"
)

func TestEmbedURL_ContainsMarkerAndBBox(t *testing.T) {
	b := NewLinkBuilder()

	url := b.EmbedURL(50.0411, 21.9991, 16)
	if !strings.HasPrefix(url, "https://www.openstreetmap.org/export/embed.html?bbox=") {
		t.Fatalf("unexpected URL: %s", url)
	}
	if !strings.Contains(url, "marker=50.041100%2C21.999100") {
		t.Fatalf("marker missing: %s", url)
	}
	if !strings.Contains(url, "layer=mapnik") {
		t.Fatalf("layer missing: %s", url)
	}
}

func TestEmbedURL_HigherZoomShrinksBBox(t *testing.T) {
	b := NewLinkBuilder()

	wide := b.EmbedURL(50, 21, 13)
	tight := b.EmbedURL(50, 21, 17)
	if wide == tight {
		t.Fatal("bbox should depend on zoom")
	}
}

func TestTelURL_StripsSeparators(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+48 17 123 45 67", "tel:+48171234567"},
		{"(17) 123-45-67", "tel:171234567"},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := TelURL(tc.in); got != tc.want {
			t.Fatalf("TelURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
