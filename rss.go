package flatblog

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate,omitempty"`
	GUID        string `xml:"guid"`
}

func (a *App) renderRSS(c echo.Context, entries []Entry) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(entries))
	for _, e := range entries {
		pubDate := ""
		if t, ok := postTime(e.Post); ok {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := AbsURL(base, e.URL)
		items = append(items, rssItem{
			Title:       e.Title(),
			Link:        postURL,
			Description: e.Description(),
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        base,
			Description: a.Config.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}

// postTime returns the post's date as a time when it is a date value or a
// string starting with YYYY-MM-DD.
func postTime(p Post) (time.Time, bool) {
	v, ok := p.Meta.Date()
	if !ok {
		return time.Time{}, false
	}
	if t, ok := v.Time(); ok {
		return t, true
	}
	s := v.String()
	if len(s) < len("2006-01-02") {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s[:len("2006-01-02")])
	return t, err == nil
}
