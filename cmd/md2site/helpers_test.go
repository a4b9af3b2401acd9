package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and site fixtures
// ---------------------------------------------------------------------------

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// newTestEnv returns an Environment writing to buffers, reading env vars
// from vars and carrying a fresh metrics registry.
func newTestEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: stdout,
		Stderr: stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			kv := make([]string, 0, len(vars))
			for k, v := range vars {
				kv = append(kv, k+"="+v)
			}
			return kv
		},
		Registry: prometheus.NewRegistry(),
	}, stdout, stderr
}

// writeFile creates path and its parents with content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// readFile returns the content of path.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// testSite holds the directories of a generated fixture site.
type testSite struct {
	content string
	static  string
	output  string
}

// args returns the directory flags pointing at the fixture.
func (s testSite) args() []string {
	return []string{"--content", s.content, "--static", s.static, "-o", s.output}
}

// newTestSite writes a small site: two pages, one nested, and static files.
func newTestSite(t *testing.T) testSite {
	t.Helper()
	root := t.TempDir()
	s := testSite{
		content: filepath.Join(root, "content"),
		static:  filepath.Join(root, "static"),
		output:  filepath.Join(root, "public"),
	}

	writeFile(t, filepath.Join(s.content, "index.md"),
		"# Home\n\nWelcome to **md2site**.\n\n- [Intro](docs/intro.md)\n- [Site](https://example.com)\n")
	writeFile(t, filepath.Join(s.content, "docs", "intro.md"),
		"# Intro\n\nSome _italic_ text and `code`.\n\n> a quote\n")
	writeFile(t, filepath.Join(s.static, "css", "site.css"), "body { margin: 0; }\n")
	writeFile(t, filepath.Join(s.static, "robots.txt"), "User-agent: *\n")

	return s
}
