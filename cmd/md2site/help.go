package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build       Build the site into the output directory")
	fmt.Fprintln(w, "  serve       Build the site and serve it locally")
	fmt.Fprintln(w, "  page        Generate a single page from a markdown file")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2site help <command>' for details on a specific command.")
}

func printSiteFlags(w io.Writer) {
	fmt.Fprintln(w, "Site:")
	fmt.Fprintln(w, "      --content <dir>       Markdown source directory (default \"content\")")
	fmt.Fprintln(w, "      --static <dir>        Static files directory (default \"static\")")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory, wiped on build (default \"public\")")
	fmt.Fprintln(w, "      --template <s>        Page template name or file path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --exclude <glob>      Skip matching content paths (repeatable)")
	fmt.Fprintln(w)
}

func printRenderFlags(w io.Writer) {
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --engine <s>          Markdown engine: native, goldmark")
	fmt.Fprintln(w, "      --style <s>           CSS style name or file path")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "      --rewrite-links       Rewrite local .md links to .html")
	fmt.Fprintln(w, "      --sanitize            Sanitize generated HTML")
	fmt.Fprintln(w, "      --minify              Minify generated pages")
	fmt.Fprintln(w)
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Wipe the output directory, copy static files into it and generate")
	fmt.Fprintln(w, "one HTML page per markdown file of the content directory.")
	fmt.Fprintln(w)
	printSiteFlags(w)
	printRenderFlags(w)
	printCommonFlags(w)
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the site, then serve the output directory until interrupted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "      --addr <host:port>    Listen address (default \":8080\")")
	fmt.Fprintln(w, "      --metrics-addr <a>    Metrics listen address (default \":2112\")")
	fmt.Fprintln(w, "      --no-metrics          Disable the metrics endpoint")
	fmt.Fprintln(w)
	printSiteFlags(w)
	printRenderFlags(w)
	printCommonFlags(w)
}

// printPageUsage prints usage for the page command.
func printPageUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site page <markdown> <template> <output> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a single HTML page from a markdown file and a template file.")
	fmt.Fprintln(w, "The template must contain {{ Content }} and may contain {{ Title }}.")
	fmt.Fprintln(w)
	printRenderFlags(w)
	printCommonFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 || !isCommand(args[0]) {
		if len(args) > 0 {
			fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
			printUsage(env.Stderr)
			return
		}
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "page":
		printPageUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2site version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2site help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	}
}
