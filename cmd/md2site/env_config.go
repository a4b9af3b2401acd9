package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alnah/go-md2site/internal/config"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/hints"
)

// defaultConfigName is looked up when neither --config nor
// MD2SITE_CONFIG is given. A missing file is not an error.
const defaultConfigName = "md2site"

// envPrefix starts every recognized environment variable.
const envPrefix = "MD2SITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2SITE_CONFIG: config file name or path
	ContentDir string // MD2SITE_CONTENT_DIR: markdown source directory
	StaticDir  string // MD2SITE_STATIC_DIR: static files directory
	OutputDir  string // MD2SITE_OUTPUT_DIR: output directory
	Engine     string // MD2SITE_ENGINE: native or goldmark
	Style      string // MD2SITE_STYLE: CSS style name or path
	Addr       string // MD2SITE_ADDR: serve listen address
	Workers    int    // MD2SITE_WORKERS: parallel workers
}

// knownEnvVars lists valid MD2SITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2SITE_CONFIG":      true,
	"MD2SITE_CONTENT_DIR": true,
	"MD2SITE_STATIC_DIR":  true,
	"MD2SITE_OUTPUT_DIR":  true,
	"MD2SITE_ENGINE":      true,
	"MD2SITE_STYLE":       true,
	"MD2SITE_ADDR":        true,
	"MD2SITE_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2SITE_CONFIG"),
		ContentDir: getenv("MD2SITE_CONTENT_DIR"),
		StaticDir:  getenv("MD2SITE_STATIC_DIR"),
		OutputDir:  getenv("MD2SITE_OUTPUT_DIR"),
		Engine:     getenv("MD2SITE_ENGINE"),
		Style:      getenv("MD2SITE_STYLE"),
		Addr:       getenv("MD2SITE_ADDR"),
	}

	if workers := getenv("MD2SITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2SITE_* variables.
func warnUnknownEnvVars(logger *slog.Logger, environ []string) {
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.Site.Content = env.ContentDir
	}
	if env.StaticDir != "" {
		cfg.Site.Static = env.StaticDir
	}
	if env.OutputDir != "" {
		cfg.Site.Output = env.OutputDir
	}
	if env.Engine != "" {
		cfg.Render.Engine = env.Engine
	}
	if env.Style != "" {
		cfg.Render.Style = env.Style
	}
	if env.Addr != "" {
		cfg.Serve.Addr = env.Addr
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}

// loadConfig resolves the config file (flag, then MD2SITE_CONFIG, then an
// optional md2site.yaml) and layers environment overrides on top.
func loadConfig(name string, env *Environment, logger *slog.Logger) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(logger, env.Environ())

	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		name = findDefaultConfig()
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, err
		}
		logger.Debug("loaded config", "name", name)
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// findDefaultConfig returns the default config name when one of its
// search paths exists, or "".
func findDefaultConfig() string {
	for _, p := range config.SearchPaths(defaultConfigName) {
		if fileutil.FileExists(p) {
			return defaultConfigName
		}
	}
	return ""
}
