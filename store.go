package flatblog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("flatblog: post not found")

// Store reads markdown posts with front matter from a directory tree.
type Store struct {
	fsys fs.FS
	ext  string
}

// NewStore opens the posts directory at root. Files ending in ext (default
// ".md") are posts.
func NewStore(root, ext string) *Store {
	return NewStoreFS(os.DirFS(root), ext)
}

// NewStoreFS creates a Store over an arbitrary filesystem, e.g. an embed.FS
// or an fstest.MapFS.
func NewStoreFS(fsys fs.FS, ext string) *Store {
	if ext == "" {
		ext = ".md"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Store{fsys: fsys, ext: ext}
}

// Load reads every post under the root in lexical path order.
func (s *Store) Load(ctx context.Context) ([]Post, error) {
	var posts []Post
	err := fs.WalkDir(s.fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if name != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(name, s.ext) {
			return nil
		}
		p, err := s.read(name)
		if err != nil {
			return err
		}
		posts = append(posts, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("flatblog: load posts: %w", err)
	}
	return posts, nil
}

// Get reads the single post at path. Unknown or invalid paths return
// ErrNotFound.
func (s *Store) Get(ctx context.Context, p string) (Post, error) {
	if err := ctx.Err(); err != nil {
		return Post{}, err
	}
	name := p + s.ext
	if p == "" || !fs.ValidPath(name) || hasHiddenSegment(name) {
		return Post{}, ErrNotFound
	}
	post, err := s.read(name)
	if errors.Is(err, fs.ErrNotExist) {
		return Post{}, ErrNotFound
	}
	return post, err
}

func (s *Store) read(name string) (Post, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return Post{}, err
	}
	post, err := ParsePost(strings.TrimSuffix(name, s.ext), data)
	if err != nil {
		return Post{}, fmt.Errorf("%s: %w", name, err)
	}
	return post, nil
}

// ParsePost splits source into front matter and body. YAML (---), TOML (+++)
// and JSON (;;;) front matter are understood; a file without front matter
// yields an empty Meta.
func ParsePost(p string, source []byte) (Post, error) {
	var raw map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(source), &raw)
	if err != nil {
		return Post{}, fmt.Errorf("parse front matter: %w", err)
	}
	return Post{
		Path: path.Clean(p),
		Meta: NewMeta(raw),
		Body: strings.TrimLeft(string(body), "\r\n"),
	}, nil
}

func hasHiddenSegment(name string) bool {
	for _, seg := range strings.Split(name, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
