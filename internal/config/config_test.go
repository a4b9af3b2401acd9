package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Notes:
// - Name resolution tests change the working directory with t.Chdir and
//   cannot run in parallel.

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ---------------------------------------------------------------------------
// TestDefaultConfig
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	assert.Equal(t, "content", cfg.Site.Content)
	assert.Equal(t, "static", cfg.Site.Static)
	assert.Equal(t, "public", cfg.Site.Output)
	assert.Empty(t, cfg.Site.Template)
	assert.Equal(t, "native", cfg.Render.Engine)
	assert.False(t, cfg.Render.RewriteLinks)
	assert.Zero(t, cfg.Build.Workers)
	assert.Equal(t, ":8080", cfg.Serve.Addr)
	assert.Equal(t, ":2112", cfg.Serve.MetricsAddr)
	assert.NoError(t, cfg.Validate())
}

// ---------------------------------------------------------------------------
// TestConfig_Validate
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		wantMsg string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "goldmark engine", mutate: func(c *Config) { c.Render.Engine = "goldmark" }},
		{name: "empty engine", mutate: func(c *Config) { c.Render.Engine = "" }},
		{
			name:    "unknown engine",
			mutate:  func(c *Config) { c.Render.Engine = "pandoc" },
			wantErr: ErrInvalidConfig,
			wantMsg: "render.engine",
		},
		{name: "max workers", mutate: func(c *Config) { c.Build.Workers = MaxWorkers }},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Build.Workers = -1 },
			wantErr: ErrInvalidConfig,
			wantMsg: "build.workers",
		},
		{
			name:    "too many workers",
			mutate:  func(c *Config) { c.Build.Workers = MaxWorkers + 1 },
			wantErr: ErrInvalidConfig,
			wantMsg: "build.workers",
		},
		{name: "valid globs", mutate: func(c *Config) { c.Build.Exclude = []string{"drafts/**", "**/*.tmp", "{a,b}.md"} }},
		{
			name:    "bad glob",
			mutate:  func(c *Config) { c.Build.Exclude = []string{"ok/**", "[unclosed"} },
			wantErr: ErrInvalidConfig,
			wantMsg: "build.exclude[1]",
		},
		{
			name:    "too many globs",
			mutate:  func(c *Config) { c.Build.Exclude = make([]string, MaxExcludes+1) },
			wantErr: ErrInvalidConfig,
			wantMsg: "build.exclude",
		},
		{
			name:    "style too long",
			mutate:  func(c *Config) { c.Render.Style = strings.Repeat("s", MaxNameLength+1) },
			wantErr: ErrFieldTooLong,
			wantMsg: "render.style",
		},
		{
			name:    "output path too long",
			mutate:  func(c *Config) { c.Site.Output = strings.Repeat("o", MaxPathLength+1) },
			wantErr: ErrFieldTooLong,
			wantMsg: "site.output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("")
		assert.ErrorIs(t, err, ErrEmptyConfigName)
	})

	t.Run("full file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "site.yaml", `site:
  content: docs
  static: assets
  output: dist
  template: layout.html
render:
  engine: goldmark
  rewriteLinks: true
  sanitize: true
  minify: true
  style: minimal
build:
  workers: 4
  exclude:
    - "drafts/**"
serve:
  addr: "127.0.0.1:9000"
  metricsAddr: ""
`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, SiteConfig{Content: "docs", Static: "assets", Output: "dist", Template: "layout.html"}, cfg.Site)
		assert.Equal(t, RenderConfig{Engine: "goldmark", RewriteLinks: true, Sanitize: true, Minify: true, Style: "minimal"}, cfg.Render)
		assert.Equal(t, BuildConfig{Workers: 4, Exclude: []string{"drafts/**"}}, cfg.Build)
		assert.Equal(t, "127.0.0.1:9000", cfg.Serve.Addr)
		assert.Empty(t, cfg.Serve.MetricsAddr)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "site.yaml", "render:\n  rewriteLinks: true\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.True(t, cfg.Render.RewriteLinks)
		assert.Equal(t, "native", cfg.Render.Engine)
		assert.Equal(t, "content", cfg.Site.Content)
		assert.Equal(t, ":8080", cfg.Serve.Addr)
	})

	t.Run("missing file path", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "bad.yaml", "site: [unclosed")
		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, ErrConfigParse)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "bad.yaml", "site:\n  contnet: docs\n")
		_, err := LoadConfig(path)
		require.ErrorIs(t, err, ErrConfigParse)
		assert.Contains(t, err.Error(), "contnet")
	})

	t.Run("validation runs after parsing", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "bad.yaml", "build:\n  workers: 99\n")
		_, err := LoadConfig(path)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeConfig(t, dir, "blog.yml", "site:\n  output: out\n")

	cfg, err := LoadConfig("blog")
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.Site.Output)

	_, err = LoadConfig("nothing-here")
	require.ErrorIs(t, err, ErrConfigNotFound)
	assert.Contains(t, err.Error(), "nothing-here.yaml")
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("site")
	require.GreaterOrEqual(t, len(paths), 2)
	assert.Equal(t, []string{"site.yaml", "site.yml"}, paths[:2])
	for _, p := range paths[2:] {
		assert.Contains(t, p, userConfigSubdir)
	}
}
