package flatblog

import (
	"context"
	"sync"
)

// PostSource loads the full post collection.
type PostSource interface {
	Load(ctx context.Context) ([]Post, error)
}

// Library holds the current snapshot of the post collection. Readers get a
// slice that is never mutated after it is published, so query functions
// can run on it concurrently without locking.
//
// A non-static Library reloads from its source on every read so edits on
// disk show up on the next request. A static Library loads once and only
// reloads on Reload.
type Library struct {
	mu     sync.RWMutex
	posts  []Post
	index  map[string]int
	loaded bool
	static bool
	source PostSource
}

// NewLibrary creates a Library backed by source.
func NewLibrary(source PostSource, static bool) *Library {
	return &Library{source: source, static: static}
}

// Reload reads the collection from the source and publishes it.
func (l *Library) Reload(ctx context.Context) ([]Post, error) {
	posts, err := l.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(posts))
	for i, p := range posts {
		index[p.Path] = i
	}
	l.mu.Lock()
	l.posts = posts
	l.index = index
	l.loaded = true
	l.mu.Unlock()
	return posts, nil
}

// snapshot returns the published posts and index after making sure they
// are current.
func (l *Library) snapshot(ctx context.Context) ([]Post, map[string]int, error) {
	if l.static {
		l.mu.RLock()
		if l.loaded {
			posts, index := l.posts, l.index
			l.mu.RUnlock()
			return posts, index, nil
		}
		l.mu.RUnlock()
	}
	if _, err := l.Reload(ctx); err != nil {
		return nil, nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.posts, l.index, nil
}

// Posts returns every post in the collection.
func (l *Library) Posts(ctx context.Context) ([]Post, error) {
	posts, _, err := l.snapshot(ctx)
	return posts, err
}

// Get returns the post at path or ErrNotFound.
func (l *Library) Get(ctx context.Context, path string) (Post, error) {
	posts, index, err := l.snapshot(ctx)
	if err != nil {
		return Post{}, err
	}
	i, ok := index[path]
	if !ok {
		return Post{}, ErrNotFound
	}
	return posts[i], nil
}
