package block

import "strings"

// Split cuts doc on blank lines (lines holding only whitespace). Every
// remaining line is trimmed and lines are rejoined with a single newline.
// Blocks left empty are discarded.
func Split(doc string) []string {
	var (
		blocks  []string
		current []string
	)

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, "\n"))
			current = current[:0]
		}
	}

	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return blocks
}

// Parse splits doc and classifies every block, in document order.
func Parse(doc string) []Block {
	texts := Split(doc)
	blocks := make([]Block, 0, len(texts))
	for _, text := range texts {
		blocks = append(blocks, Classify(text))
	}
	return blocks
}
