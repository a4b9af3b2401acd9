package md2site

import (
	"github.com/alnah/go-md2site/internal/htmlnode"
	"github.com/alnah/go-md2site/internal/pipeline"
)

// Node model, re-exported so callers can build and inspect trees.
type (
	Node       = htmlnode.Node
	Leaf       = htmlnode.Leaf
	Parent     = htmlnode.Parent
	Attribute  = htmlnode.Attribute
	Attributes = htmlnode.Attributes
)

// Convert parses markdown into a tree rooted at a div. Each block of the
// document becomes one child of the root, in order.
func Convert(markdown string) (*Parent, error) {
	return pipeline.BuildTree(markdown)
}

// Render serializes n to HTML.
func Render(n Node) (string, error) {
	return htmlnode.Render(n)
}

// ToHTML converts markdown and renders the resulting tree.
func ToHTML(markdown string) (string, error) {
	root, err := Convert(markdown)
	if err != nil {
		return "", err
	}
	return Render(root)
}
