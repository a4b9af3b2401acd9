package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	md2site "github.com/alnah/go-md2site"
)

// ErrInvalidWorkerCount reports a --workers value out of bounds.
var ErrInvalidWorkerCount = errors.New("invalid worker count")

// PageToGenerate represents a single markdown file to process.
type PageToGenerate struct {
	InputPath  string
	OutputPath string
}

// discoverPages walks contentDir for markdown files and maps each one to
// its page in outputDir, keeping the relative layout. Entries for which
// skip returns true are ignored; skip receives slash-separated paths
// relative to contentDir.
func discoverPages(contentDir, outputDir string, skip func(rel string) bool) ([]PageToGenerate, error) {
	var pages []PageToGenerate
	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if skip != nil && skip(filepath.ToSlash(rel)) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isMarkdown(path) {
			return nil
		}

		pages = append(pages, PageToGenerate{
			InputPath:  path,
			OutputPath: resolveOutputPath(rel, outputDir),
		})
		return nil
	})
	return pages, err
}

// resolveOutputPath replaces the markdown extension of rel with .html
// under outputDir.
func resolveOutputPath(rel, outputDir string) string {
	base := strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.Join(outputDir, base+".html")
}

// isMarkdown checks for a .md or .markdown extension, ignoring case.
func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// newExcludeMatcher returns a skip function matching slash-separated
// relative paths against doublestar patterns. Patterns must have been
// validated. Returns nil when there is nothing to exclude.
func newExcludeMatcher(patterns []string) func(rel string) bool {
	if len(patterns) == 0 {
		return nil
	}
	return func(rel string) bool {
		for _, p := range patterns {
			if doublestar.MatchUnvalidated(p, rel) {
				return true
			}
		}
		return false
	}
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2site.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2site.MaxPoolSize)
	}
	return nil
}
