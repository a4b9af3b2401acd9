// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-md2site/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config directory when it was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/site.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), "go-md2site/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the available styles.
func ForStyleNotFound(available []string) string {
	return forAvailable(available)
}

// ForTemplateNotFound lists the available page templates.
func ForTemplateNotFound(available []string) string {
	return forAvailable(available)
}

// ForTemplatePlaceholder explains the required template placeholders.
func ForTemplatePlaceholder() string {
	return format("the template must contain {{ Content }}; {{ Title }} is optional")
}

// ForMalformedInline explains the inline delimiter rule.
func ForMalformedInline() string {
	return format("every **, _ and ` must be closed on the same block")
}

// ForNoTitle explains where the page title comes from.
func ForNoTitle() string {
	return format("start the document with a level 1 heading, e.g. \"# My Page\"")
}

// ForUnknownEngine lists the supported engines.
func ForUnknownEngine(engines []string) string {
	return format("use --engine " + strings.Join(engines, " or "))
}

// ForListenAddress returns a hint when a loopback address is used inside a
// container, where it cannot be reached from the host.
func ForListenAddress(addr string) string {
	if !IsInContainer() {
		return ""
	}
	if strings.HasPrefix(addr, "127.0.0.1:") || strings.HasPrefix(addr, "localhost:") {
		return format("inside a container, listen on all interfaces, e.g. --addr :8080")
	}
	return ""
}

func forAvailable(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

func filepathSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
