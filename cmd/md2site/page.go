package main

import (
	"context"
	"fmt"
	"os"
	"time"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/fileutil"
)

// runPage implements "md2site page <from> <template> <dest>": one
// markdown file rendered through one template file.
func runPage(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePageFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 3 {
		return fmt.Errorf("%w: page needs <from> <template> <dest>, got %d arguments", ErrUsage, len(positional))
	}
	from, templatePath, dest := positional[0], positional[1], positional[2]

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	cfg, err := loadConfig(flags.common.config, env, logger)
	if err != nil {
		return err
	}
	mergeRenderFlags(&flags.render, &cfg.Render)
	if err := cfg.Validate(); err != nil {
		return err
	}

	start := time.Now()

	tmpl, err := os.ReadFile(templatePath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadTemplate, err)
	}

	opts, err := converterOptions(cfg.Render, "")
	if err != nil {
		return err
	}
	conv, err := md2site.NewConverter(append(opts, md2site.WithTemplate(string(tmpl)))...)
	if err != nil {
		return err
	}

	markdown, err := os.ReadFile(from) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}

	page, err := conv.Generate(ctx, md2site.Input{
		Markdown:   string(markdown),
		SourcePath: from,
	})
	if err != nil {
		return err
	}

	if err := fileutil.WriteFile(dest, page.HTML); err != nil {
		return fmt.Errorf("%w: %w", ErrWritePage, err)
	}

	logger.Debug("generated page", "from", from, "template", templatePath, "title", page.Title,
		"duration", time.Since(start).Round(time.Millisecond))
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", dest)
	}
	return nil
}
