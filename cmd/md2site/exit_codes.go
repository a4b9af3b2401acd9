package main

import (
	"errors"
	"os"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// Exit codes for md2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, template or markdown
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadTemplate) ||
		errors.Is(err, ErrWritePage) ||
		errors.Is(err, fileutil.ErrNotDirectory) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, fileutil.ErrOverlap) ||
		errors.Is(err, md2site.ErrEmptyMarkdown) ||
		errors.Is(err, md2site.ErrNoTitle) ||
		errors.Is(err, md2site.ErrMalformedInline) ||
		errors.Is(err, md2site.ErrUnsupportedSpanKind) ||
		errors.Is(err, md2site.ErrStructural) ||
		errors.Is(err, md2site.ErrUnknownEngine) ||
		errors.Is(err, md2site.ErrTemplatePlaceholder) ||
		errors.Is(err, md2site.ErrInvalidAssetPath) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrPathTraversal) {
		return ExitUsage
	}

	return ExitGeneral
}
