package seedfile

import (
	"testing"

	"github.com/pmlaogao/portal/internal/domain"
)

func TestMapLinks(t *testing.T) {
	f := File{Links: []LinkProps{
		{Title: "Docs", URL: "https://docs.example.com", Description: "manuals", Type: "internal", Icon: "Box"},
		{Title: "", URL: "https://skipped.example.com"},
		{Title: "skipped too", URL: ""},
		{Title: "Blog", URL: "https://blog.example.com"},
	}}

	links, err := NewMapper().MapLinks(f)
	if err != nil {
		t.Fatalf("MapLinks() error = %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("MapLinks() returned %d links, want 2", len(links))
	}
	if links[0].Type != domain.LinkTypeInternal {
		t.Errorf("MapLinks() first type = %v, want internal", links[0].Type)
	}
	if links[1].Type != domain.LinkTypeExternal {
		t.Errorf("MapLinks() should default type to external, got %v", links[1].Type)
	}
}

func TestMapLinksEmptyFile(t *testing.T) {
	if _, err := NewMapper().MapLinks(File{}); err == nil {
		t.Error("MapLinks() should fail when no valid links exist")
	}
}
