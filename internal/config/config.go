// Package config loads and validates the YAML site configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/pipeline"
	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field and value limits.
const (
	MaxPathLength = 4096 // Directory and file paths
	MaxNameLength = 64   // Style and engine names
	MaxAddrLength = 256  // host:port
	MaxExcludes   = 256  // Exclude patterns
	MaxWorkers    = 8    // Matches the converter pool ceiling
)

// Defaults applied by DefaultConfig.
const (
	DefaultAddr    = ":8080"
	DefaultMetrics = ":2112"
	DefaultContent = "content"
	DefaultStatic  = "static"
	DefaultOutput  = "public"
)

const userConfigSubdir = "go-md2site"

// Config holds all configuration for site generation.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Render RenderConfig `yaml:"render"`
	Build  BuildConfig  `yaml:"build"`
	Serve  ServeConfig  `yaml:"serve"`
}

// SiteConfig defines the source and destination trees.
type SiteConfig struct {
	Content  string `yaml:"content"`  // Markdown tree
	Static   string `yaml:"static"`   // Copied verbatim
	Output   string `yaml:"output"`   // Wiped on every build
	Template string `yaml:"template"` // Template file; empty = embedded "page"
}

// RenderConfig defines page conversion options.
type RenderConfig struct {
	Engine       string `yaml:"engine"`       // "native" or "goldmark"
	RewriteLinks bool   `yaml:"rewriteLinks"` // .md -> .html in local hrefs
	Sanitize     bool   `yaml:"sanitize"`     // bluemonday UGC policy on content
	Minify       bool   `yaml:"minify"`       // Minify output pages
	Style        string `yaml:"style"`        // Style injected as <style>; empty = none
	AssetPath    string `yaml:"assetPath"`    // Custom asset directory
}

// BuildConfig defines batch options.
type BuildConfig struct {
	Workers int      `yaml:"workers"` // 0 = auto
	Exclude []string `yaml:"exclude"` // Doublestar globs, relative to content and static
}

// ServeConfig defines the preview server.
type ServeConfig struct {
	Addr        string `yaml:"addr"`
	MetricsAddr string `yaml:"metricsAddr"` // Empty disables metrics
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Content: DefaultContent,
			Static:  DefaultStatic,
			Output:  DefaultOutput,
		},
		Render: RenderConfig{Engine: pipeline.EngineNative},
		Serve: ServeConfig{
			Addr:        DefaultAddr,
			MetricsAddr: DefaultMetrics,
		},
	}
}

// Validate checks enumerations, bounds, glob syntax and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"site.content", c.Site.Content, MaxPathLength},
		{"site.static", c.Site.Static, MaxPathLength},
		{"site.output", c.Site.Output, MaxPathLength},
		{"site.template", c.Site.Template, MaxPathLength},
		{"render.engine", c.Render.Engine, MaxNameLength},
		{"render.style", c.Render.Style, MaxNameLength},
		{"render.assetPath", c.Render.AssetPath, MaxPathLength},
		{"serve.addr", c.Serve.Addr, MaxAddrLength},
		{"serve.metricsAddr", c.Serve.MetricsAddr, MaxAddrLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Render.Engine != "" && !slices.Contains(pipeline.Engines, c.Render.Engine) {
		return fmt.Errorf("%w: render.engine: %q (want one of %s)",
			ErrInvalidConfig, c.Render.Engine, strings.Join(pipeline.Engines, ", "))
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers: must be between 0 and %d, got %d",
			ErrInvalidConfig, MaxWorkers, c.Build.Workers)
	}

	if len(c.Build.Exclude) > MaxExcludes {
		return fmt.Errorf("%w: build.exclude: %d patterns (max %d)", ErrInvalidConfig, len(c.Build.Exclude), MaxExcludes)
	}
	for i, pattern := range c.Build.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: build.exclude[%d]: bad pattern %q", ErrInvalidConfig, i, pattern)
		}
	}

	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads a configuration by name or path.
// A value containing a path separator is read as is. A bare name is searched
// as ./<name>.yaml, ./<name>.yml, then in <UserConfigDir>/go-md2site/.
// Fields missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFile(configPath, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %s", ErrConfigParse, yamlutil.FormatError(err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigSubdir, name+ext))
		}
	}

	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
