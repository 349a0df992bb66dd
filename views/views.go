// Package views provides the default templ components for a flatblog site.
// Sites that want their own markup can replace any field of the returned
// flatblog.ViewFuncs.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/flatblog"
	"github.com/eringen/flatblog/markdown"
)

// New returns the default views for cfg.
func New(cfg flatblog.SiteConfig) flatblog.ViewFuncs {
	return flatblog.ViewFuncs{
		Home:        func(entries []flatblog.Entry) templ.Component { return Home(cfg, entries) },
		Blog:        func(entries []flatblog.Entry) templ.Component { return Blog(cfg, entries) },
		Post:        func(entry flatblog.Entry) templ.Component { return Post(cfg, entry) },
		Search:      func(query string, entries []flatblog.Entry) templ.Component { return Search(cfg, query, entries) },
		NotFound:    func() templ.Component { return NotFound(cfg) },
		ServerError: func() templ.Component { return ServerError(cfg) },
	}
}

// Home lists the most recent posts.
func Home(cfg flatblog.SiteConfig, entries []flatblog.Entry) templ.Component {
	meta := PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		URL:         flatblog.BuildURL(cfg.URL),
		OGType:      "website",
		JSONLD:      flatblog.WebsiteJsonLD(cfg),
	}
	return layout(cfg, meta, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<section class="intro"><h1>`)
		p.text(cfg.Name)
		p.raw(`</h1>`)
		if cfg.Description != "" {
			p.raw(`<p class="muted">`)
			p.text(cfg.Description)
			p.raw(`</p>`)
		}
		p.raw(`</section><h2>Recent posts</h2>`)
		postList(p, entries, "No posts yet.")
		p.raw(`<p><a href="/blog/">All posts &rarr;</a></p>`)
		return p.err
	}))
}

// Blog lists every dated post, newest first.
func Blog(cfg flatblog.SiteConfig, entries []flatblog.Entry) templ.Component {
	meta := PageMeta{
		Title:  "Blog",
		URL:    flatblog.BuildURL(cfg.URL, "blog"),
		OGType: "website",
	}
	return layout(cfg, meta, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<h1>Blog</h1>`)
		postList(p, entries, "No posts yet.")
		return p.err
	}))
}

// Post renders a single post with its markdown body.
func Post(cfg flatblog.SiteConfig, entry flatblog.Entry) templ.Component {
	meta := PageMeta{
		Title:       entry.Title(),
		Description: entry.Description(),
		URL:         flatblog.AbsURL(cfg.URL, entry.URL),
		OGType:      "article",
		JSONLD:      flatblog.BlogPostingJsonLD(entry, cfg),
	}
	return layout(cfg, meta, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<article><header><h1>`)
		p.text(entry.Title())
		p.raw(`</h1>`)
		if d := entry.DateString(); d != "" {
			p.raw(`<time`)
			p.attr("datetime", d)
			p.raw(`>`)
			p.text(d)
			p.raw(`</time>`)
		}
		p.raw(`</header><div class="content">`)
		if p.err != nil {
			return p.err
		}
		if err := markdown.Markdown(entry.Body).Render(ctx, w); err != nil {
			return err
		}
		p.raw(`</div></article>`)
		return p.err
	}))
}

// Search renders the search form and, for a non-empty query, its results.
func Search(cfg flatblog.SiteConfig, query string, entries []flatblog.Entry) templ.Component {
	meta := PageMeta{
		Title:  "Search",
		URL:    flatblog.AbsURL(cfg.URL, "/search"),
		OGType: "website",
	}
	return layout(cfg, meta, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<h1>Search</h1><form class="search" action="/search" method="get"><input type="search" name="q"`)
		p.attr("value", query)
		p.raw(` placeholder="Search posts" autofocus></form>`)
		if query != "" {
			p.raw(`<p class="muted results-summary">Results for &ldquo;`)
			p.text(query)
			p.raw(`&rdquo;</p>`)
			postList(p, entries, "Nothing matched.")
		}
		return p.err
	}))
}

// NotFound renders the 404 page.
func NotFound(cfg flatblog.SiteConfig) templ.Component {
	return errorPage(cfg, "Not found", "The page you were looking for does not exist.")
}

// ServerError renders the 500 page.
func ServerError(cfg flatblog.SiteConfig) templ.Component {
	return errorPage(cfg, "Something went wrong", "Please try again later.")
}

func errorPage(cfg flatblog.SiteConfig, title, message string) templ.Component {
	return layout(cfg, PageMeta{Title: title, OGType: "website"}, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<h1>`)
		p.text(title)
		p.raw(`</h1><p>`)
		p.text(message)
		p.raw(`</p><p><a href="/">Back home</a></p>`)
		return p.err
	}))
}

func postList(p *printer, entries []flatblog.Entry, empty string) {
	if len(entries) == 0 {
		p.raw(`<p class="muted empty">`)
		p.text(empty)
		p.raw(`</p>`)
		return
	}
	p.raw(`<ul class="posts">`)
	for _, e := range entries {
		p.raw(`<li class="post"><a`)
		p.attr("href", e.URL)
		p.raw(`>`)
		title := e.Title()
		if title == "" {
			title = e.Path
		}
		p.text(title)
		p.raw(`</a>`)
		if d := e.DateString(); d != "" {
			p.raw(` <time`)
			p.attr("datetime", d)
			p.raw(`>`)
			p.text(d)
			p.raw(`</time>`)
		}
		if desc := e.Description(); desc != "" {
			p.raw(`<p class="description">`)
			p.text(desc)
			p.raw(`</p>`)
		}
		p.raw(`</li>`)
	}
	p.raw(`</ul>`)
}

func layout(cfg flatblog.SiteConfig, meta PageMeta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		p.text(pageTitle(meta.Title, cfg.Name))
		p.raw(`</title>`)
		if meta.Description != "" {
			p.raw(`<meta name="description"`)
			p.attr("content", meta.Description)
			p.raw(`><meta property="og:description"`)
			p.attr("content", meta.Description)
			p.raw(`>`)
		}
		p.raw(`<meta property="og:title"`)
		p.attr("content", pageTitle(meta.Title, cfg.Name))
		p.raw(`><meta property="og:type"`)
		p.attr("content", meta.OGType)
		p.raw(`>`)
		if meta.URL != "" {
			p.raw(`<link rel="canonical"`)
			p.attr("href", meta.URL)
			p.raw(`><meta property="og:url"`)
			p.attr("content", meta.URL)
			p.raw(`>`)
		}
		p.raw(`<link rel="alternate" type="application/rss+xml"`)
		p.attr("title", cfg.Name)
		p.raw(` href="/feed.xml"><link rel="stylesheet" href="/public/style.css">`)
		if meta.JSONLD != "" {
			// JSON-LD is produced by json.Marshal, which escapes <, > and &.
			p.raw(`<script type="application/ld+json">`, meta.JSONLD, `</script>`)
		}
		p.raw(`</head><body><header class="site"><a href="/"><strong>`)
		p.text(cfg.Name)
		p.raw(`</strong></a><nav><a href="/blog/">Blog</a><a href="/search">Search</a><a href="/feed.xml">RSS</a></nav></header><main>`)
		if p.err != nil {
			return p.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		p.raw(`</main><footer><p>`)
		if cfg.Author != "" {
			p.text(cfg.Author)
			p.raw(` &middot; `)
		}
		p.raw(`<a href="/feed.xml">Feed</a> &middot; <a href="/api/posts">JSON</a></p></footer></body></html>`)
		return p.err
	})
}
