package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	logger := newLogger(env.Stderr, false, isVerbose(os.Args))
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))

	os.Exit(runMain(os.Args, env))
}

// runMain dispatches the command in args[1] and returns the exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]

	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "page":
		err = runPage(ctx, rest, env)
	case "serve":
		err = runServe(ctx, rest, env)
	case "completion":
		err = runCompletion(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "go-md2site %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}

// isCommand reports whether s names a command.
func isCommand(s string) bool {
	return slices.Contains([]string{"build", "page", "serve", "completion", "version", "help"}, s)
}

// isVerbose scans raw args for the verbose flag before any parsing,
// so startup logging follows it.
func isVerbose(args []string) bool {
	return slices.ContainsFunc(args, func(a string) bool {
		return a == "-v" || a == "--verbose"
	})
}

// notifyContext returns a context canceled on the first shutdown signal.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
