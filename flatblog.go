// Package flatblog is a small blog server over a directory of markdown
// files, built with Go, Echo, and templ.
//
// Posts are loaded into memory with their front matter and served as a
// homepage, a dated listing, single post pages, a naive text search, an
// RSS feed, a sitemap, and a JSON export. Users may provide their own templ
// templates via the ViewFuncs struct; the views package ships defaults.
package flatblog

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// postRoute is the route name used to resolve post URLs.
const postRoute = "post"

// Entry pairs a post with the URL it is served at.
type Entry struct {
	Post
	URL string
}

// ViewFuncs holds the templ components the framework calls when rendering
// pages. Users can replace any of them to own the markup.
type ViewFuncs struct {
	Home        func(entries []Entry) templ.Component
	Blog        func(entries []Entry) templ.Component
	Post        func(entry Entry) templ.Component
	Search      func(query string, entries []Entry) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central flatblog application. It wires together the post
// library, handlers, middleware, and user-provided templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Library *Library
	Views   ViewFuncs

	limiter      *RateLimiter
	source       PostSource
	customRoutes []func(*App)
	staticDir    string
}

// New creates a flatblog App with the given configuration and views and
// registers its middleware and routes.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.source == nil {
		a.source = NewStore(cfg.PostsDir, cfg.PostsExtension)
	}
	a.Library = NewLibrary(a.source, cfg.StaticContent)
	a.limiter = NewRateLimiter(cfg.RateLimit, cfg.RateWindow)

	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(parseLogLevel(cfg.LogLevel))
	a.Echo.JSONSerializer = jsonSerializer{}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	return a
}

// Start loads the posts once to surface content errors early and starts
// the server.
func (a *App) Start() error {
	posts, err := a.Library.Reload(context.Background())
	if err != nil {
		return fmt.Errorf("flatblog: initial load: %w", err)
	}
	a.Echo.Logger.Infof("loaded %d posts from %s", len(posts), a.Config.PostsDir)

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests until ctx is done.
func (a *App) Shutdown(ctx context.Context) error {
	a.limiter.Stop()
	return a.Echo.Shutdown(ctx)
}

// PostURL resolves the URL of the post at path.
func (a *App) PostURL(path string) string {
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return a.Echo.Reverse(postRoute, strings.Join(segs, "/")) + "/"
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/style.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/*", a.handlePost).Name = postRoute
	e.GET("/search", a.handleSearch)
	e.GET("/api/posts", a.handleAPIPosts)
}

func parseLogLevel(s string) log.Lvl {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
