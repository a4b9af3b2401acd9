package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds source and destination directory flags.
type siteFlags struct {
	content  string
	static   string
	output   string
	template string
}

// renderFlags holds page conversion flags.
type renderFlags struct {
	engine       string
	style        string
	assetPath    string
	rewriteLinks bool
	sanitize     bool
	minify       bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	site    siteFlags
	render  renderFlags
	workers int
	exclude []string
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	build       buildFlags
	addr        string
	metricsAddr string
	noMetrics   bool
}

// pageFlags holds flags for the single page command.
type pageFlags struct {
	common commonFlags
	render renderFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addSiteFlags adds directory flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.content, "content", "", "markdown source directory")
	fs.StringVar(&f.static, "static", "", "static files directory")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (wiped on build)")
	fs.StringVar(&f.template, "template", "", "page template name or file path")
}

// addRenderFlags adds conversion flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.engine, "engine", "", "markdown engine: native, goldmark")
	fs.StringVar(&f.style, "style", "", "CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.rewriteLinks, "rewrite-links", false, "rewrite local .md links to .html")
	fs.BoolVar(&f.sanitize, "sanitize", false, "sanitize generated HTML")
	fs.BoolVar(&f.minify, "minify", false, "minify generated pages")
}

// addBuildFlags adds batch flags to a FlagSet.
func addBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	addRenderFlags(fs, &f.render)
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringArrayVar(&f.exclude, "exclude", nil, "glob of paths to skip (repeatable)")
}

// addServeFlags adds preview server flags to a FlagSet.
func addServeFlags(fs *flag.FlagSet, f *serveFlags) {
	addBuildFlags(fs, &f.build)
	fs.StringVar(&f.addr, "addr", "", "listen address (default \":8080\")")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "metrics listen address (default \":2112\")")
	fs.BoolVar(&f.noMetrics, "no-metrics", false, "disable the metrics endpoint")
}

// newFlagSet returns a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, usage func(io.Writer), w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseError wraps flag errors as usage errors, except for help requests.
func parseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newFlagSet("build", printBuildUsage, w)
	addBuildFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string, w io.Writer) (*serveFlags, []string, error) {
	f := &serveFlags{}
	fs := newFlagSet("serve", printServeUsage, w)
	addServeFlags(fs, f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parsePageFlags parses page command flags and returns positional args.
func parsePageFlags(args []string, w io.Writer) (*pageFlags, []string, error) {
	f := &pageFlags{}
	fs := newFlagSet("page", printPageUsage, w)
	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}
