package flatblog

import "embed"

// EmbeddedAssets contains static assets shipped with the framework:
// style.css
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
