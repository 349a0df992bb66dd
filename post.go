package flatblog

import (
	"fmt"
	"time"
)

// Recognized front-matter keys.
const (
	KeyTitle       = "title"
	KeyDescription = "description"
	KeyDate        = "date"
)

// ValueKind classifies a front-matter value.
type ValueKind int

const (
	KindOpaque ValueKind = iota
	KindString
	KindDate
)

// Value is a single front-matter value. Strings and dates are understood;
// everything else is kept as an opaque payload.
type Value struct {
	kind ValueKind
	str  string
	t    time.Time
	raw  any
	key  string
}

// NewValue classifies raw as decoded from front matter.
func NewValue(raw any) Value {
	v := Value{raw: raw}
	switch x := raw.(type) {
	case string:
		v.kind = KindString
		v.str = x
		v.key = x
	case time.Time:
		v.kind = KindDate
		v.t = x
		v.key = dateKey(x)
	case *time.Time:
		if x != nil {
			v.kind = KindDate
			v.t = *x
			v.key = dateKey(*x)
		}
	case nil:
	default:
		v.key = fmt.Sprint(x)
	}
	return v
}

func dateKey(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04:05")
}

// Kind reports which kind of value v holds.
func (v Value) Kind() ValueKind { return v.kind }

// Raw returns the value as it was decoded.
func (v Value) Raw() any { return v.raw }

// String returns the text of a string value, or "" for any other kind.
func (v Value) String() string { return v.str }

// Time returns the date of a date value.
func (v Value) Time() (time.Time, bool) {
	return v.t, v.kind == KindDate
}

// SortKey is the comparison form used to order posts by date. It is
// computed once when the value is built so ordering never inspects types.
func (v Value) SortKey() string { return v.key }

// FormatDate renders v the way the JSON API exposes dates: strings verbatim,
// dates as YYYY-MM-DD and anything else as "".
func (v Value) FormatDate() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindDate:
		return v.t.Format("2006-01-02")
	default:
		return ""
	}
}

// Meta holds a post's front matter. Keys other than title, description and
// date are preserved but not interpreted.
type Meta map[string]Value

// NewMeta converts decoded front matter into Meta.
func NewMeta(raw map[string]any) Meta {
	m := make(Meta, len(raw))
	for k, v := range raw {
		m[k] = NewValue(v)
	}
	return m
}

// Has reports whether key is present, regardless of its value.
func (m Meta) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Title returns the title or "".
func (m Meta) Title() string { return m[KeyTitle].String() }

// Description returns the description or "".
func (m Meta) Description() string { return m[KeyDescription].String() }

// Date returns the date value and whether the key is present.
func (m Meta) Date() (Value, bool) {
	v, ok := m[KeyDate]
	return v, ok
}

// Post is one blog entry loaded from a markdown file.
type Post struct {
	Path string // slash separated, relative to the posts root, no extension
	Meta Meta
	Body string // markdown source after the front matter
}

// Title returns the post's title or "".
func (p Post) Title() string { return p.Meta.Title() }

// Description returns the post's description or "".
func (p Post) Description() string { return p.Meta.Description() }

// Dated reports whether the post carries a date key.
func (p Post) Dated() bool { return p.Meta.Has(KeyDate) }

// DateString returns the post's date formatted for display, or "".
func (p Post) DateString() string {
	v, _ := p.Meta.Date()
	return v.FormatDate()
}
