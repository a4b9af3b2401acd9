package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/metrics"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage        = errors.New("invalid usage")
	ErrReadTemplate = errors.New("failed to read template file")
	ErrPagesFailed  = errors.New("some pages failed")
)

// buildReport summarizes one site build.
type buildReport struct {
	Results  []PageResult
	Static   int
	Failed   int
	Bytes    int
	Duration time.Duration
}

// runBuild implements "md2site build".
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: build takes no arguments, got %q", ErrUsage, positional)
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	cfg, err := resolveBuildConfig(flags, env, logger)
	if err != nil {
		return err
	}

	rec, err := metrics.NewRecorder(env.Registry)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	_, err = buildSite(ctx, cfg, env, logger, rec, flags.common)
	return err
}

// resolveBuildConfig loads the config, applies flags and validates the result.
func resolveBuildConfig(flags *buildFlags, env *Environment, logger *slog.Logger) (*config.Config, error) {
	if err := validateWorkers(flags.workers); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(flags.common.config, env, logger)
	if err != nil {
		return nil, err
	}

	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies CLI flag values over config.
// Non-empty flags win; boolean flags can only enable a feature.
func mergeFlags(flags *buildFlags, cfg *config.Config) {
	if flags.site.content != "" {
		cfg.Site.Content = flags.site.content
	}
	if flags.site.static != "" {
		cfg.Site.Static = flags.site.static
	}
	if flags.site.output != "" {
		cfg.Site.Output = flags.site.output
	}
	if flags.site.template != "" {
		cfg.Site.Template = flags.site.template
	}

	mergeRenderFlags(&flags.render, &cfg.Render)

	if flags.workers > 0 {
		cfg.Build.Workers = flags.workers
	}
	if len(flags.exclude) > 0 {
		cfg.Build.Exclude = append(cfg.Build.Exclude, flags.exclude...)
	}
}

// mergeRenderFlags applies conversion flags over config.
func mergeRenderFlags(flags *renderFlags, cfg *config.RenderConfig) {
	if flags.engine != "" {
		cfg.Engine = flags.engine
	}
	if flags.style != "" {
		cfg.Style = flags.style
	}
	if flags.assetPath != "" {
		cfg.AssetPath = flags.assetPath
	}
	if flags.rewriteLinks {
		cfg.RewriteLinks = true
	}
	if flags.sanitize {
		cfg.Sanitize = true
	}
	if flags.minify {
		cfg.Minify = true
	}
}

// converterOptions translates render settings and the template reference
// into converter options. A template containing a path separator or an
// .html extension is read from disk; anything else is an asset name.
func converterOptions(render config.RenderConfig, template string) ([]md2site.Option, error) {
	opts := []md2site.Option{
		md2site.WithEngine(render.Engine),
		md2site.WithRewriteLinks(render.RewriteLinks),
		md2site.WithSanitize(render.Sanitize),
		md2site.WithMinify(render.Minify),
	}
	if render.Style != "" {
		opts = append(opts, md2site.WithStyle(render.Style))
	}
	if render.AssetPath != "" {
		opts = append(opts, md2site.WithAssetPath(render.AssetPath))
	}

	switch {
	case template == "":
	case fileutil.IsFilePath(template) || strings.HasSuffix(template, ".html"):
		content, err := os.ReadFile(template) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadTemplate, err)
		}
		opts = append(opts, md2site.WithTemplate(string(content)))
	default:
		opts = append(opts, md2site.WithTemplateName(template))
	}

	return opts, nil
}

// buildSite regenerates the output tree: the output directory is reset,
// static files are mirrored, then every markdown page is generated.
// Page failures are reported per file and do not stop the batch.
func buildSite(ctx context.Context, cfg *config.Config, env *Environment, logger *slog.Logger, rec *metrics.Recorder, common commonFlags) (*buildReport, error) {
	start := env.Now()

	opts, err := converterOptions(cfg.Render, cfg.Site.Template)
	if err != nil {
		return nil, err
	}
	conv, err := md2site.NewConverter(opts...)
	if err != nil {
		return nil, err
	}

	if !fileutil.DirExists(cfg.Site.Content) {
		return nil, fmt.Errorf("content directory %s: %w", cfg.Site.Content, os.ErrNotExist)
	}

	skip := newExcludeMatcher(cfg.Build.Exclude)

	if err := fileutil.ResetDir(cfg.Site.Output, cfg.Site.Content, cfg.Site.Static); err != nil {
		return nil, fmt.Errorf("preparing output: %w", err)
	}

	report := &buildReport{}
	if fileutil.DirExists(cfg.Site.Static) {
		report.Static, err = fileutil.MirrorDir(cfg.Site.Static, cfg.Site.Output, skip)
		if err != nil {
			return nil, fmt.Errorf("copying static files: %w", err)
		}
		rec.AddStaticFiles(report.Static)
		logger.Info("copied static files", "dir", cfg.Site.Static, "count", report.Static)
	} else {
		logger.Debug("no static directory", "dir", cfg.Site.Static)
	}

	pages, err := discoverPages(cfg.Site.Content, cfg.Site.Output, skip)
	if err != nil {
		return nil, err
	}

	workers := md2site.ResolvePoolSize(cfg.Build.Workers)
	logger.Debug("generating pages", "count", len(pages), "workers", workers, "engine", conv.Engine())

	report.Results = generateBatch(ctx, conv, pages, batchParams{
		workers:  workers,
		recorder: rec,
		engine:   conv.Engine(),
	})
	report.Failed = printResults(report.Results, common.quiet, common.verbose, env)
	report.Duration = env.Now().Sub(start)
	for _, r := range report.Results {
		report.Bytes += r.Bytes
	}

	rec.ObserveBuild(env.Now(), report.Failed)

	if !common.quiet {
		fmt.Fprintf(env.Stdout, "Built %d pages (%s) and copied %d static files to %s in %v\n",
			len(report.Results)-report.Failed, humanize.Bytes(uint64(report.Bytes)), // #nosec G115 -- sum of slice lengths
			report.Static, cfg.Site.Output, report.Duration.Round(time.Millisecond))
	}

	if report.Failed > 0 {
		return report, fmt.Errorf("%w: %d of %d: %w", ErrPagesFailed, report.Failed, len(report.Results), firstError(report.Results))
	}
	return report, nil
}

// firstError returns the first page error in discovery order, prefixed
// with its source file.
func firstError(results []PageResult) error {
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("%s: %w", r.InputPath, r.Err)
		}
	}
	return nil
}
