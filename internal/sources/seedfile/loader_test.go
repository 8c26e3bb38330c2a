package seedfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempSeed(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seeds.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp seed file: %v", err)
	}
	return path
}

func TestLoadValidFile(t *testing.T) {
	path := writeTempSeed(t, `
links:
  - title: Docs
    url: https://docs.example.com
    description: manuals
    type: internal
    icon: Box
  - title: Blog
    url: https://blog.example.com
`)

	f, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(f.Links) != 2 {
		t.Fatalf("Load() parsed %d links, want 2", len(f.Links))
	}
	if f.Links[0].Title != "Docs" || f.Links[0].Type != "internal" {
		t.Errorf("Load() first link = %+v", f.Links[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader("/nonexistent/seeds.yaml").Load()
	if err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTempSeed(t, "links: [unclosed")

	_, err := NewLoader(path).Load()
	if err == nil {
		t.Error("Load() should fail for invalid yaml")
	}
}
