package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	md2site "github.com/alnah/go-md2site"
)

// ---------------------------------------------------------------------------
// TestRunPage - Single page generation
// ---------------------------------------------------------------------------

func TestRunPage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	from := filepath.Join(dir, "post.md")
	tmpl := filepath.Join(dir, "template.html")
	dest := filepath.Join(dir, "out", "post.html")
	writeFile(t, from, "# My Post\n\nHello **world**")
	writeFile(t, tmpl, "<title>{{ Title }}</title>{{ Content }}")

	env, stdout, stderr := newTestEnv(nil)
	require.NoError(t, runPage(context.Background(), []string{from, tmpl, dest}, env), stderr.String())

	assert.Equal(t, "<title>My Post</title><div><h1>My Post</h1><p>Hello <b>world</b></p></div>", readFile(t, dest))
	assert.Equal(t, "Created "+dest+"\n", stdout.String())
}

func TestRunPage_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.md")
	untitled := filepath.Join(dir, "untitled.md")
	tmpl := filepath.Join(dir, "template.html")
	badTmpl := filepath.Join(dir, "bad.html")
	writeFile(t, good, "# Title\n\ntext")
	writeFile(t, untitled, "text")
	writeFile(t, tmpl, "{{ Title }}{{ Content }}")
	writeFile(t, badTmpl, "<html>{{ Title }}</html>")
	dest := filepath.Join(dir, "out.html")

	tests := []struct {
		name     string
		args     []string
		wantErr  error
		wantCode int
		wantMsg  string
	}{
		{name: "wrong arg count", args: []string{good, tmpl}, wantErr: ErrUsage, wantCode: ExitUsage},
		{name: "missing markdown", args: []string{filepath.Join(dir, "nope.md"), tmpl, dest}, wantErr: ErrReadMarkdown, wantCode: ExitIO},
		{name: "missing template", args: []string{good, filepath.Join(dir, "nope.html"), dest}, wantErr: ErrReadTemplate, wantCode: ExitIO},
		{name: "template without content", args: []string{good, badTmpl, dest}, wantErr: md2site.ErrTemplatePlaceholder, wantCode: ExitUsage},
		{name: "markdown without title", args: []string{untitled, tmpl, dest}, wantErr: md2site.ErrNoTitle, wantCode: ExitUsage, wantMsg: untitled},
		{name: "unknown engine", args: []string{good, tmpl, dest, "--engine", "pandoc"}, wantCode: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := newTestEnv(nil)
			err := runPage(context.Background(), tt.args, env)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, tt.wantCode, exitCodeFor(err))
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRunPage_Goldmark(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	from := filepath.Join(dir, "post.md")
	tmpl := filepath.Join(dir, "template.html")
	dest := filepath.Join(dir, "post.html")
	writeFile(t, from, "# Post\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	writeFile(t, tmpl, "{{ Title }}{{ Content }}")

	env, _, stderr := newTestEnv(nil)
	require.NoError(t, runPage(context.Background(), []string{from, tmpl, dest, "--engine", "goldmark", "-q"}, env), stderr.String())

	assert.Contains(t, readFile(t, dest), "<table>")
}
