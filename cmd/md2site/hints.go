package main

import (
	"errors"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/assets"
	"github.com/alnah/go-md2site/internal/hints"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// hintFor returns an actionable hint for err, or "" when none applies.
func hintFor(err error) string {
	switch {
	case errors.Is(err, md2site.ErrMalformedInline):
		return hints.ForMalformedInline()
	case errors.Is(err, md2site.ErrNoTitle):
		return hints.ForNoTitle()
	case errors.Is(err, md2site.ErrTemplatePlaceholder):
		return hints.ForTemplatePlaceholder()
	case errors.Is(err, md2site.ErrUnknownEngine):
		return hints.ForUnknownEngine(pipeline.Engines)
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.NewEmbeddedLoader().Styles())
	case errors.Is(err, assets.ErrTemplateNotFound):
		return hints.ForTemplateNotFound(assets.NewEmbeddedLoader().Templates())
	case errors.Is(err, ErrWritePage):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
