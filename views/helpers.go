package views

import (
	"io"

	"github.com/a-h/templ"
)

// printer writes HTML fragments and remembers the first write error so
// components can emit markup without checking every call.
type printer struct {
	w   io.Writer
	err error
}

// raw writes trusted markup.
func (p *printer) raw(parts ...string) {
	for _, s := range parts {
		if p.err != nil {
			return
		}
		_, p.err = io.WriteString(p.w, s)
	}
}

// text writes s escaped for element content and attribute values.
func (p *printer) text(s string) {
	p.raw(templ.EscapeString(s))
}

func (p *printer) attr(name, value string) {
	p.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func pageTitle(title, site string) string {
	if title == "" || title == site {
		return site
	}
	return title + " | " + site
}
