package flatblog

import (
	"testing"
	"time"
)

func TestNewValueKinds(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	stamp := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	tests := []struct {
		name    string
		raw     any
		kind    ValueKind
		key     string
		display string
	}{
		{"string", "2024-01-01", KindString, "2024-01-01", "2024-01-01"},
		{"free text string", "last spring", KindString, "last spring", "last spring"},
		{"date", day, KindDate, "2024-03-01", "2024-03-01"},
		{"datetime", stamp, KindDate, "2024-03-01 09:30:00", "2024-03-01"},
		{"date pointer", &day, KindDate, "2024-03-01", "2024-03-01"},
		{"nil date pointer", (*time.Time)(nil), KindOpaque, "", ""},
		{"nil", nil, KindOpaque, "", ""},
		{"number", 2024, KindOpaque, "2024", ""},
	}
	for _, tt := range tests {
		v := NewValue(tt.raw)
		if v.Kind() != tt.kind {
			t.Errorf("%s: Kind() = %v, want %v", tt.name, v.Kind(), tt.kind)
		}
		if v.SortKey() != tt.key {
			t.Errorf("%s: SortKey() = %q, want %q", tt.name, v.SortKey(), tt.key)
		}
		if v.FormatDate() != tt.display {
			t.Errorf("%s: FormatDate() = %q, want %q", tt.name, v.FormatDate(), tt.display)
		}
	}
}

func TestValueTime(t *testing.T) {
	day := time.Date(2023, 12, 24, 0, 0, 0, 0, time.UTC)
	if got, ok := NewValue(day).Time(); !ok || !got.Equal(day) {
		t.Errorf("Time() = %v, %v, want %v, true", got, ok, day)
	}
	if _, ok := NewValue("2023-12-24").Time(); ok {
		t.Error("string value should not report a time")
	}
}

func TestMetaDefaults(t *testing.T) {
	m := NewMeta(map[string]any{"tags": []any{"go"}, "title": 42})
	if m.Title() != "" {
		t.Errorf("non-string title should read as empty, got %q", m.Title())
	}
	if m.Description() != "" {
		t.Errorf("missing description should read as empty, got %q", m.Description())
	}
	if _, ok := m.Date(); ok {
		t.Error("Date() should report a missing key")
	}
	if !m.Has("tags") {
		t.Error("unknown keys should be preserved")
	}
}

func TestPostDated(t *testing.T) {
	withNil := Post{Path: "a", Meta: NewMeta(map[string]any{"date": nil})}
	if !withNil.Dated() {
		t.Error("a date key with a nil value still counts as dated")
	}
	if withNil.DateString() != "" {
		t.Errorf("DateString() = %q, want empty", withNil.DateString())
	}
	if (Post{Path: "b", Meta: Meta{}}).Dated() {
		t.Error("post without date key should not be dated")
	}
}

func TestNewMetaNil(t *testing.T) {
	m := NewMeta(nil)
	if m == nil || len(m) != 0 {
		t.Errorf("NewMeta(nil) = %v, want empty map", m)
	}
}
