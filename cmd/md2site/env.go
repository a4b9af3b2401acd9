package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now      func() time.Time
	Stdout   io.Writer
	Stderr   io.Writer
	Getenv   func(string) string
	Environ  func() []string
	Registry *prometheus.Registry // Build metrics, exposed by serve
}

// DefaultEnv returns the production environment. Its registry also
// carries the Go runtime and process collectors.
func DefaultEnv() *Environment {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Environment{
		Now:      time.Now,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Getenv:   os.Getenv,
		Environ:  os.Environ,
		Registry: reg,
	}
}

// newLogger returns a text logger on w. Quiet keeps errors only and
// verbose enables debug output; quiet wins when both are set.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
