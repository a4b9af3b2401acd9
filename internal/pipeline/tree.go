package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-md2site/internal/block"
	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/inline"
)

// RootTag is the tag of the element wrapping every converted document.
const RootTag = "div"

// BuildTree converts a markdown document into a node tree rooted at a div.
// Each block becomes one direct child of the root, in document order.
func BuildTree(doc string) (*htmlnode.Parent, error) {
	return BuildBlocks(block.Parse(doc))
}

// BuildBlocks converts already classified blocks into a node tree.
func BuildBlocks(blocks []block.Block) (*htmlnode.Parent, error) {
	root := htmlnode.NewParent(RootTag, make([]htmlnode.Node, 0, len(blocks)))
	for i, b := range blocks {
		n, err := blockToNode(b)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i, b.Kind, err)
		}
		root.Append(n)
	}
	return root, nil
}

func blockToNode(b block.Block) (htmlnode.Node, error) {
	switch b.Kind {
	case block.Paragraph:
		return inlineParent("p", strings.Join(b.Lines(), " "))
	case block.Heading:
		return inlineParent("h"+strconv.Itoa(b.Level), b.Text[b.Level+1:])
	case block.Code:
		return htmlnode.NewParent("pre", []htmlnode.Node{
			htmlnode.NewLeaf("code", codeContent(b.Text)),
		}), nil
	case block.Quote:
		return quoteNode(b)
	case block.UnorderedList:
		return listNode("ul", b, func(int) string { return "- " })
	case block.OrderedList:
		return listNode("ol", b, block.OrderedPrefix)
	default:
		return nil, fmt.Errorf("%w: unknown block kind %d", htmlnode.ErrStructural, b.Kind)
	}
}

// codeContent strips both fences and the opening fence line, which may
// carry an info string. The remaining text is kept verbatim.
func codeContent(text string) string {
	inner := text[len(block.Fence) : len(text)-len(block.Fence)]
	if i := strings.IndexByte(inner, '\n'); i >= 0 {
		return inner[i+1:]
	}
	return inner
}

func quoteNode(b block.Block) (htmlnode.Node, error) {
	lines := b.Lines()
	for i, line := range lines {
		line = strings.TrimPrefix(line, ">")
		lines[i] = strings.TrimPrefix(line, " ")
	}
	return inlineParent("blockquote", strings.Join(lines, " "))
}

func listNode(tag string, b block.Block, prefix func(int) string) (htmlnode.Node, error) {
	lines := b.Lines()
	list := htmlnode.NewParent(tag, make([]htmlnode.Node, 0, len(lines)))
	for i, line := range lines {
		item, err := inlineParent("li", strings.TrimPrefix(line, prefix(i)))
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		list.Append(item)
	}
	return list, nil
}

// inlineParent tokenizes text into the children of a new tag element.
func inlineParent(tag, text string) (*htmlnode.Parent, error) {
	children, err := InlineNodes(text)
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: <%s> has no inline content", htmlnode.ErrStructural, tag)
	}
	return htmlnode.NewParent(tag, children), nil
}

// InlineNodes tokenizes text and maps every span to a leaf.
func InlineNodes(text string) ([]htmlnode.Node, error) {
	spans, err := inline.Tokenize(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		leaf, err := SpanToLeaf(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, leaf)
	}
	return nodes, nil
}

// SpanToLeaf maps a single inline span to its leaf element.
// Plain text produces a tagless leaf and images an empty-valued img.
func SpanToLeaf(s inline.Span) (*htmlnode.Leaf, error) {
	switch s.Kind {
	case inline.Plain:
		return htmlnode.Text(s.Text), nil
	case inline.Bold:
		return htmlnode.NewLeaf("b", s.Text), nil
	case inline.Italic:
		return htmlnode.NewLeaf("i", s.Text), nil
	case inline.Code:
		return htmlnode.NewLeaf("code", s.Text), nil
	case inline.Link:
		return htmlnode.NewLeaf("a", s.Text, htmlnode.Attr("href", s.Target)), nil
	case inline.Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr("src", s.Target),
			htmlnode.Attr("alt", s.Text),
		), nil
	default:
		return nil, fmt.Errorf("%w: %s", inline.ErrUnsupportedSpanKind, s.Kind)
	}
}
