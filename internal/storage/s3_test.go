package storage

import "testing"

func TestNewUnconfigured(t *testing.T) {
	c, err := New("", "eu-central", "", "", "bucket", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != nil {
		t.Error("missing endpoint and credentials should yield a nil client")
	}
}

func TestFileURL(t *testing.T) {
	c, err := New("https://s3.test.local/", "eu-central", "key", "secret", "camstore-media", "")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := c.FileURL("products/2026/a.jpg"); got != "https://s3.test.local/camstore-media/products/2026/a.jpg" {
		t.Errorf("path-style url: got %q", got)
	}

	cdn, err := New("https://s3.test.local", "eu-central", "key", "secret", "camstore-media", "https://cdn.camstore.local/")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if got := cdn.FileURL("products/2026/a.jpg"); got != "https://cdn.camstore.local/products/2026/a.jpg" {
		t.Errorf("cdn url: got %q", got)
	}
}

func TestExtractKey(t *testing.T) {
	c, err := New("https://s3.test.local", "eu-central", "key", "secret", "camstore-media", "https://cdn.camstore.local")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	tests := []struct {
		name    string
		url     string
		wantKey string
		wantOK  bool
	}{
		{"cdn url", "https://cdn.camstore.local/products/2026/a.jpg", "products/2026/a.jpg", true},
		{"path-style url", "https://s3.test.local/camstore-media/products/2026/a.jpg", "products/2026/a.jpg", true},
		{"foreign url", "https://elsewhere.example.com/a.jpg", "", false},
		{"other bucket", "https://s3.test.local/other-bucket/a.jpg", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := c.ExtractKey(tt.url)
			if ok != tt.wantOK || key != tt.wantKey {
				t.Errorf("got (%q, %v), want (%q, %v)", key, ok, tt.wantKey, tt.wantOK)
			}
		})
	}
}

func TestExtractKeyRoundtrip(t *testing.T) {
	c, err := New("https://s3.test.local", "eu-central", "key", "secret", "camstore-media", "")
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	key := "products/2026/b.png"
	got, ok := c.ExtractKey(c.FileURL(key))
	if !ok || got != key {
		t.Errorf("roundtrip: got (%q, %v), want (%q, true)", got, ok, key)
	}
}
