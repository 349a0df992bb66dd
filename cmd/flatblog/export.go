package main

import (
	"context"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/eringen/flatblog"
)

// runExport prints the same records /api/posts serves.
func runExport(w io.Writer, configPath string) error {
	cfg, err := flatblog.LoadConfig(configPath)
	if err != nil {
		return err
	}
	app := flatblog.New(cfg, flatblog.ViewFuncs{})
	defer app.Shutdown(context.Background())

	posts, err := app.Library.Posts(context.Background())
	if err != nil {
		return err
	}
	return writeJSON(w, flatblog.Project(posts, app.PostURL))
}

// runShow prints one post from the posts directory.
func runShow(w io.Writer, path, configPath string) error {
	cfg, err := flatblog.LoadConfig(configPath)
	if err != nil {
		return err
	}
	app := flatblog.New(cfg, flatblog.ViewFuncs{})
	defer app.Shutdown(context.Background())

	post, err := app.Library.Get(context.Background(), path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return writeJSON(w, post.Record(app.PostURL))
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
