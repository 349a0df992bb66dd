package flatblog

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// SiteConfig holds all configuration for a flatblog site.
type SiteConfig struct {
	Name        string `yaml:"name"`        // Site name (default "Blog")
	URL         string `yaml:"url"`         // Canonical URL (default "http://localhost:5001")
	Description string `yaml:"description"` // Site description for RSS and meta tags
	Author      string `yaml:"author"`      // Author name for JSON-LD

	Addr           string `yaml:"addr"`            // Listen address (default ":5001")
	PostsDir       string `yaml:"posts_dir"`       // Posts root (default "posts")
	PostsExtension string `yaml:"posts_extension"` // Post file extension (default ".md")

	// RecentCount is the number of posts on the homepage. Zero selects the
	// default of 5; a negative value shows none.
	RecentCount int `yaml:"recent_count"`

	// StaticContent loads posts once at startup instead of on every request.
	StaticContent bool `yaml:"static_content"`

	LogLevel string `yaml:"log_level"` // debug, info, warn, error (default "info")

	RateLimit  int           `yaml:"rate_limit"`  // Requests per window on /search and /api/ (default 60)
	RateWindow time.Duration `yaml:"rate_window"` // (default 1m)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:5001"
	}
	if c.Addr == "" {
		c.Addr = ":5001"
	}
	if c.PostsDir == "" {
		c.PostsDir = "posts"
	}
	if c.PostsExtension == "" {
		c.PostsExtension = ".md"
	}
	if c.RecentCount == 0 {
		c.RecentCount = 5
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.RateLimit <= 0 {
		c.RateLimit = 60
	}
	if c.RateWindow <= 0 {
		c.RateWindow = time.Minute
	}
}

// LoadConfig reads the YAML file at path, applies environment overrides and
// fills defaults. An empty path skips the file.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return SiteConfig{}, fmt.Errorf("flatblog: read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return SiteConfig{}, fmt.Errorf("flatblog: parse config: %w", err)
		}
	}
	if err := cfg.mergeEnv(); err != nil {
		return SiteConfig{}, err
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *SiteConfig) mergeEnv() error {
	strs := map[string]*string{
		"SITE_NAME":        &c.Name,
		"SITE_URL":         &c.URL,
		"SITE_DESCRIPTION": &c.Description,
		"SITE_AUTHOR":      &c.Author,
		"ADDR":             &c.Addr,
		"POSTS_DIR":        &c.PostsDir,
		"POSTS_EXTENSION":  &c.PostsExtension,
		"LOG_LEVEL":        &c.LogLevel,
	}
	for key, dst := range strs {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	if v := os.Getenv("RECENT_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("flatblog: RECENT_COUNT: %w", err)
		}
		c.RecentCount = n
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("flatblog: RATE_LIMIT: %w", err)
		}
		c.RateLimit = n
	}
	if v := os.Getenv("STATIC_CONTENT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("flatblog: STATIC_CONTENT: %w", err)
		}
		c.StaticContent = b
	}
	return nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithSource replaces the posts directory with another post source.
func WithSource(src PostSource) Option {
	return func(a *App) {
		a.source = src
	}
}
