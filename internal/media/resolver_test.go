package media

import "testing"

func TestResolverURL(t *testing.T) {
	r := NewResolver("http://localhost:8000", "/media/")

	got := r.URL("uploads/properties/foo.jpg")
	want := "http://localhost:8000/media/uploads/properties/foo.jpg"
	if got != want {
		t.Fatalf("url mismatch: got %q want %q", got, want)
	}
}

func TestResolverURLNoDoubleSlashes(t *testing.T) {
	cases := []struct {
		base, prefix, rel string
	}{
		{"http://localhost:8000/", "/media/", "/uploads/properties/foo.jpg"},
		{"http://localhost:8000", "media", "uploads/properties/foo.jpg"},
		{"http://localhost:8000/", "media/", "uploads/properties/foo.jpg"},
	}
	want := "http://localhost:8000/media/uploads/properties/foo.jpg"
	for _, c := range cases {
		r := NewResolver(c.base, c.prefix)
		if got := r.URL(c.rel); got != want {
			t.Fatalf("base=%q prefix=%q rel=%q: got %q want %q", c.base, c.prefix, c.rel, got, want)
		}
	}
}

func TestResolverURLEmptyPath(t *testing.T) {
	r := NewResolver("http://localhost:8000", "/media/")
	if got := r.URL(""); got != "" {
		t.Fatalf("expected empty string for unset path, got %q", got)
	}
}
