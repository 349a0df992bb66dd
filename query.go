package flatblog

import (
	"slices"
	"strings"
)

// URLResolver maps a post path to the URL that serves it.
type URLResolver func(path string) string

// PostRecord is the JSON form of a dated post served by /api/posts.
type PostRecord struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Body        string `json:"body"`
}

// DatedPostsSorted returns the posts that carry a date, most recent first.
// Posts with equal dates keep their input order.
func DatedPostsSorted(posts []Post) []Post {
	dated := datedPosts(posts)
	slices.SortStableFunc(dated, func(a, b Post) int {
		return strings.Compare(b.Meta[KeyDate].SortKey(), a.Meta[KeyDate].SortKey())
	})
	return dated
}

// Recent returns at most n posts from DatedPostsSorted.
func Recent(posts []Post, n int) []Post {
	sorted := DatedPostsSorted(posts)
	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Search returns posts whose title, description or body contains query,
// ignoring case, in input order. An empty query matches nothing.
func Search(posts []Post, query string) []Post {
	results := []Post{}
	if query == "" {
		return results
	}
	q := strings.ToLower(query)
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title()), q) ||
			strings.Contains(strings.ToLower(p.Description()), q) ||
			strings.Contains(strings.ToLower(p.Body), q) {
			results = append(results, p)
		}
	}
	return results
}

// Project builds API records for the dated posts in input order. Unlike the
// listings it does not sort.
func Project(posts []Post, resolve URLResolver) []PostRecord {
	records := []PostRecord{}
	for _, p := range posts {
		if !p.Dated() {
			continue
		}
		records = append(records, p.Record(resolve))
	}
	return records
}

// Record returns the API form of p.
func (p Post) Record(resolve URLResolver) PostRecord {
	return PostRecord{
		Title:       p.Title(),
		URL:         resolve(p.Path),
		Date:        p.DateString(),
		Description: p.Description(),
		Body:        p.Body,
	}
}

func datedPosts(posts []Post) []Post {
	dated := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.Dated() {
			dated = append(dated, p)
		}
	}
	return dated
}
