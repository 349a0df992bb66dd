package flatblog

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Library.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(a.entries(Recent(posts, a.Config.RecentCount))))
}

func (a *App) handleBlog(c echo.Context) error {
	posts, err := a.Library.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, a.Views.Blog(a.entries(DatedPostsSorted(posts))))
}

func (a *App) handlePost(c echo.Context) error {
	// Echo has already decoded the wildcard from the request path.
	path := strings.TrimSuffix(c.Param("*"), "/")
	post, err := a.Library.Get(c.Request().Context(), path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	return Render(c, a.Views.Post(Entry{Post: post, URL: a.PostURL(post.Path)}))
}

func (a *App) handleSearch(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return Render(c, a.Views.Search("", nil))
	}
	posts, err := a.Library.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, a.Views.Search(query, a.entries(Search(posts, query))))
}

func (a *App) handleAPIPosts(c echo.Context) error {
	posts, err := a.Library.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Project(posts, a.PostURL))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Library.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderSitemap(c, a.entries(DatedPostsSorted(posts)))
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Library.Posts(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderRSS(c, a.entries(DatedPostsSorted(posts)))
}

// handleRobots generates robots.txt pointing at the sitemap.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", strings.TrimRight(a.Config.URL, "/"))
	return c.String(http.StatusOK, body)
}

func (a *App) entries(posts []Post) []Entry {
	out := make([]Entry, len(posts))
	for i, p := range posts {
		out[i] = Entry{Post: p, URL: a.PostURL(p.Path)}
	}
	return out
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
