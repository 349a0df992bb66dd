package flatblog

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func post(path string, meta map[string]any, body string) Post {
	return Post{Path: path, Meta: NewMeta(meta), Body: body}
}

func paths(posts []Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Path
	}
	return out
}

func resolve(path string) string { return "/blog/" + path + "/" }

func sampleCollection() []Post {
	return []Post{
		post("a", map[string]any{"date": "2024-01-01", "title": "Hello World"}, "content"),
		post("b", map[string]any{"title": "No Date"}, "x"),
		post("c", map[string]any{"date": "2024-05-10", "title": "Later", "description": "Spring notes"}, "more content"),
		post("d", map[string]any{"date": time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "title": "Typed"}, ""),
		post("e", map[string]any{"date": "2023-11-30"}, "Old WORLD news"),
	}
}

func TestDatedPostsSorted(t *testing.T) {
	got := paths(DatedPostsSorted(sampleCollection()))
	want := []string{"c", "d", "a", "e"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DatedPostsSorted = %v, want %v", got, want)
	}
}

func TestDatedPostsSortedScenario(t *testing.T) {
	c := []Post{
		post("a", map[string]any{"date": "2024-01-01", "title": "Hello World"}, "content"),
		post("b", map[string]any{"title": "No Date"}, "x"),
	}
	if got := paths(DatedPostsSorted(c)); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("DatedPostsSorted = %v, want [a]", got)
	}
}

func TestDatedPostsSortedStableTies(t *testing.T) {
	c := []Post{
		post("x", map[string]any{"date": "2024-03-01"}, ""),
		post("old", map[string]any{"date": "2020-01-01"}, ""),
		post("y", map[string]any{"date": "2024-03-01"}, ""),
		post("z", map[string]any{"date": time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}, ""),
	}
	want := []string{"x", "y", "z", "old"}
	if got := paths(DatedPostsSorted(c)); !reflect.DeepEqual(got, want) {
		t.Errorf("DatedPostsSorted = %v, want %v", got, want)
	}
}

func TestDatedPostsSortedMixedKindsDoNotFail(t *testing.T) {
	c := []Post{
		post("nil", map[string]any{"date": nil}, ""),
		post("num", map[string]any{"date": 7}, ""),
		post("str", map[string]any{"date": "2024-01-01"}, ""),
		post("dt", map[string]any{"date": time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}, ""),
	}
	got := paths(DatedPostsSorted(c))
	// Keys compare as text: "7" > "2024-01-01 12:00:00" > "2024-01-01" > "".
	want := []string{"num", "dt", "str", "nil"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DatedPostsSorted = %v, want %v", got, want)
	}
}

func TestDatedPostsSortedEmpty(t *testing.T) {
	if got := DatedPostsSorted(nil); len(got) != 0 {
		t.Errorf("DatedPostsSorted(nil) = %v, want empty", got)
	}
}

func TestDatedPostsSortedDoesNotMutateInput(t *testing.T) {
	c := sampleCollection()
	before := paths(c)
	DatedPostsSorted(c)
	if after := paths(c); !reflect.DeepEqual(before, after) {
		t.Errorf("input reordered: %v -> %v", before, after)
	}
}

func TestRecent(t *testing.T) {
	c := sampleCollection()
	sorted := DatedPostsSorted(c)
	for _, n := range []int{-1, 0, 1, 2, 4, 5, 100} {
		got := Recent(c, n)
		want := n
		if want < 0 {
			want = 0
		}
		if want > len(sorted) {
			want = len(sorted)
		}
		if len(got) != want {
			t.Errorf("len(Recent(c, %d)) = %d, want %d", n, len(got), want)
			continue
		}
		if !reflect.DeepEqual(paths(got), paths(sorted[:want])) {
			t.Errorf("Recent(c, %d) = %v, not a prefix of %v", n, paths(got), paths(sorted))
		}
	}
}

func TestSearch(t *testing.T) {
	c := sampleCollection()
	tests := []struct {
		query string
		want  []string
	}{
		{"WORLD", []string{"a", "e"}},
		{"world", []string{"a", "e"}},
		{"spring", []string{"c"}},
		{"content", []string{"a", "c"}},
		{"no date", []string{"b"}},
		{"absent", []string{}},
	}
	for _, tt := range tests {
		got := paths(Search(c, tt.query))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	got := Search(sampleCollection(), "")
	if got == nil || len(got) != 0 {
		t.Errorf("Search(\"\") = %v, want empty non-nil slice", got)
	}
}

func TestSearchMatchesExactlyTheQualifyingPosts(t *testing.T) {
	c := sampleCollection()
	q := "O"
	got := Search(c, q)
	var want []string
	for _, p := range c {
		fields := strings.ToLower(p.Title() + "\x00" + p.Description() + "\x00" + p.Body)
		if strings.Contains(fields, strings.ToLower(q)) {
			want = append(want, p.Path)
		}
	}
	if !reflect.DeepEqual(paths(got), want) {
		t.Errorf("Search(%q) = %v, want %v", q, paths(got), want)
	}
}

func TestProjectScenario(t *testing.T) {
	c := []Post{
		post("a", map[string]any{"date": "2024-01-01", "title": "Hello World"}, "content"),
		post("b", map[string]any{"title": "No Date"}, "x"),
	}
	got := Project(c, resolve)
	want := []PostRecord{{
		Title:       "Hello World",
		URL:         "/blog/a/",
		Date:        "2024-01-01",
		Description: "",
		Body:        "content",
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Project = %+v, want %+v", got, want)
	}
}

func TestProjectKeepsInputOrder(t *testing.T) {
	c := sampleCollection()
	got := Project(c, resolve)
	var order []string
	for _, r := range got {
		order = append(order, strings.Trim(strings.TrimPrefix(r.URL, "/blog/"), "/"))
	}
	want := []string{"a", "c", "d", "e"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("Project order = %v, want %v", order, want)
	}
	if got[2].Date != "2024-03-01" {
		t.Errorf("typed date formatted as %q, want 2024-03-01", got[2].Date)
	}
}

func TestProjectMalformedDates(t *testing.T) {
	c := []Post{
		post("nil", map[string]any{"date": nil}, ""),
		post("num", map[string]any{"date": 12}, ""),
		post("text", map[string]any{"date": "sometime"}, ""),
	}
	got := Project(c, resolve)
	if len(got) != 3 {
		t.Fatalf("len(Project) = %d, want 3", len(got))
	}
	for i, want := range []string{"", "", "sometime"} {
		if got[i].Date != want {
			t.Errorf("record %d date = %q, want %q", i, got[i].Date, want)
		}
	}
}

func TestProjectEmpty(t *testing.T) {
	got := Project(nil, resolve)
	if got == nil || len(got) != 0 {
		t.Errorf("Project(nil) = %v, want empty non-nil slice", got)
	}
}

func TestQueriesAreIdempotent(t *testing.T) {
	c := sampleCollection()
	if !reflect.DeepEqual(DatedPostsSorted(c), DatedPostsSorted(c)) {
		t.Error("DatedPostsSorted not idempotent")
	}
	if !reflect.DeepEqual(Search(c, "o"), Search(c, "o")) {
		t.Error("Search not idempotent")
	}
	if !reflect.DeepEqual(Project(c, resolve), Project(c, resolve)) {
		t.Error("Project not idempotent")
	}
}
