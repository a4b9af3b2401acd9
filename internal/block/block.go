// Package block segments a markdown document into blank-line separated
// blocks and classifies each one.
//
// Classification walks an ordered rule table; the first rule that matches
// wins and a block that matches none is a paragraph. A single line that
// breaks a quote or list rule demotes the whole block to a paragraph.
package block

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind is the structural type of a block.
type Kind int

// Block kinds.
const (
	Paragraph Kind = iota
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

var kindNames = [...]string{
	Paragraph:     "paragraph",
	Heading:       "heading",
	Code:          "code",
	Quote:         "quote",
	UnorderedList: "unordered_list",
	OrderedList:   "ordered_list",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Fence delimits a code block.
const Fence = "```"

// Block is one classified chunk of the source document.
// Level is 1..6 for headings and 0 for every other kind.
type Block struct {
	Text  string
	Kind  Kind
	Level int
}

// Lines returns the block's lines.
func (b Block) Lines() []string {
	return strings.Split(b.Text, "\n")
}

var headingPattern = regexp.MustCompile(`^(#{1,6}) .+`)

// rule classifies a block when match returns true.
type rule struct {
	kind  Kind
	match func(text string, lines []string) bool
}

// rules is evaluated top to bottom. Order is significant.
var rules = []rule{
	{kind: Heading, match: isHeading},
	{kind: Code, match: isCode},
	{kind: Quote, match: isQuote},
	{kind: UnorderedList, match: isUnorderedList},
	{kind: OrderedList, match: isOrderedList},
}

// Precedence returns the kinds in the order rules are tried,
// followed by the Paragraph fallback.
func Precedence() []Kind {
	kinds := make([]Kind, 0, len(rules)+1)
	for _, r := range rules {
		kinds = append(kinds, r.kind)
	}
	return append(kinds, Paragraph)
}

// Classify assigns a kind to a segmented block.
func Classify(text string) Block {
	lines := strings.Split(text, "\n")
	for _, r := range rules {
		if !r.match(text, lines) {
			continue
		}
		b := Block{Text: text, Kind: r.kind}
		if r.kind == Heading {
			b.Level = HeadingLevel(text)
		}
		return b
	}
	return Block{Text: text, Kind: Paragraph}
}

// HeadingLevel returns the number of leading '#' of a heading block,
// or 0 when text is not a heading.
func HeadingLevel(text string) int {
	m := headingPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	return len(m[1])
}

func isHeading(text string, _ []string) bool {
	return headingPattern.MatchString(text)
}

func isCode(text string, _ []string) bool {
	return len(text) >= 2*len(Fence) &&
		strings.HasPrefix(text, Fence) &&
		strings.HasSuffix(text, Fence)
}

func isQuote(_ string, lines []string) bool {
	return allLines(lines, func(_ int, line string) bool {
		return strings.HasPrefix(line, ">")
	})
}

func isUnorderedList(_ string, lines []string) bool {
	return allLines(lines, func(_ int, line string) bool {
		return strings.HasPrefix(line, "- ")
	})
}

func isOrderedList(_ string, lines []string) bool {
	return allLines(lines, func(i int, line string) bool {
		return strings.HasPrefix(line, OrderedPrefix(i))
	})
}

// OrderedPrefix returns the marker expected on line i of an ordered list.
func OrderedPrefix(i int) string {
	return strconv.Itoa(i+1) + ". "
}

func allLines(lines []string, pred func(int, string) bool) bool {
	for i, line := range lines {
		if !pred(i, line) {
			return false
		}
	}
	return true
}
