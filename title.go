package md2site

import (
	"fmt"
	"regexp"
	"strings"
)

var titlePattern = regexp.MustCompile(`^# (.+)`)

// ExtractTitle returns the text of the level-1 heading that opens the
// document. Leading blank lines are ignored.
func ExtractTitle(markdown string) (string, error) {
	doc := strings.TrimSpace(markdown)
	first, _, _ := strings.Cut(doc, "\n")
	m := titlePattern.FindStringSubmatch(strings.TrimSpace(first))
	if m == nil {
		return "", fmt.Errorf("%w: first line is %q", ErrNoTitle, truncate(first, 40))
	}
	return strings.TrimSpace(m[1]), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
