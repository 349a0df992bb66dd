package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/eringen/flatblog"
)

func renderDoc(t *testing.T, render func(*bytes.Buffer) error) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return doc
}

func entry(path string, meta map[string]any, body string) flatblog.Entry {
	return flatblog.Entry{
		Post: flatblog.Post{Path: path, Meta: flatblog.NewMeta(meta), Body: body},
		URL:  "/blog/" + path + "/",
	}
}

func TestPostEscapesMetadata(t *testing.T) {
	cfg := flatblog.SiteConfig{Name: "Blog", URL: "https://example.com"}
	e := entry("x", map[string]any{"title": `<img src=x onerror="alert(1)">`, "date": "2024-01-01"}, "body")
	doc := renderDoc(t, func(buf *bytes.Buffer) error {
		return Post(cfg, e).Render(context.Background(), buf)
	})
	if doc.Find("article h1 img").Length() != 0 {
		t.Error("title markup should be escaped, found an img element")
	}
	if got := doc.Find("article h1").Text(); got != `<img src=x onerror="alert(1)">` {
		t.Errorf("h1 text = %q", got)
	}
}

func TestPostListFallsBackToPath(t *testing.T) {
	cfg := flatblog.SiteConfig{Name: "Blog", URL: "https://example.com"}
	doc := renderDoc(t, func(buf *bytes.Buffer) error {
		return Blog(cfg, []flatblog.Entry{entry("untitled", map[string]any{"date": "2024-01-01"}, "")}).Render(context.Background(), buf)
	})
	if got := doc.Find("li.post > a").Text(); got != "untitled" {
		t.Errorf("link text = %q, want untitled", got)
	}
}

func TestEmptyListings(t *testing.T) {
	cfg := flatblog.SiteConfig{Name: "Blog"}
	doc := renderDoc(t, func(buf *bytes.Buffer) error {
		return Home(cfg, nil).Render(context.Background(), buf)
	})
	if !strings.Contains(doc.Find("p.empty").Text(), "No posts yet.") {
		t.Error("expected empty-state message")
	}
}

func TestPageTitle(t *testing.T) {
	tests := []struct{ title, site, want string }{
		{"", "Blog", "Blog"},
		{"Blog", "Blog", "Blog"},
		{"Hello", "Blog", "Hello | Blog"},
	}
	for _, tt := range tests {
		if got := pageTitle(tt.title, tt.site); got != tt.want {
			t.Errorf("pageTitle(%q, %q) = %q, want %q", tt.title, tt.site, got, tt.want)
		}
	}
}
