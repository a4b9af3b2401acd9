package pipeline

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// markdownExts are the link target extensions rewritten to .html.
var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
}

// RewriteLinks changes the href of every anchor leaf in the tree that points
// at a local markdown file so it targets the generated page instead.
// Returns the number of rewritten links.
func RewriteLinks(root htmlnode.Node) int {
	count := 0
	_ = htmlnode.Walk(root, func(n htmlnode.Node) error {
		leaf, ok := n.(*htmlnode.Leaf)
		if !ok || leaf == nil || leaf.Tag != "a" {
			return nil
		}
		href, ok := leaf.Attrs.Get("href")
		if !ok {
			return nil
		}
		if rewritten, changed := MarkdownToHTMLPath(href); changed {
			leaf.Attrs.Set("href", rewritten)
			count++
		}
		return nil
	})
	return count
}

// RewriteHTMLLinks applies the same rewrite as RewriteLinks to rendered HTML.
// Used by engines that do not expose a node tree.
//
// Rewrites a[href] only. Absolute URLs, anchors and non-markdown targets
// are left unchanged.
func RewriteHTMLLinks(htmlContent string) (string, error) {
	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc)

	return renderHTML(doc, isFragment)
}

// MarkdownToHTMLPath returns href with its markdown extension replaced by
// .html. The boolean reports whether href was a local markdown link.
// Query strings and fragments are preserved.
func MarkdownToHTMLPath(href string) (string, bool) {
	if !isLocalLink(href) {
		return href, false
	}

	u, err := url.Parse(href)
	if err != nil {
		return href, false
	}

	ext := path.Ext(u.Path)
	if !markdownExts[strings.ToLower(ext)] {
		return href, false
	}

	u.Path = strings.TrimSuffix(u.Path, ext) + ".html"
	return u.String(), true
}

// isLocalLink reports whether href points inside the site.
func isLocalLink(href string) bool {
	if href == "" {
		return false
	}

	// Skip URLs (any scheme, protocol-relative)
	if strings.HasPrefix(href, "//") || strings.Contains(href, "://") ||
		strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "data:") {
		return false
	}

	// Skip anchors
	return !strings.HasPrefix(href, "#")
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only the children are rendered.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key != "href" {
				continue
			}
			if rewritten, changed := MarkdownToHTMLPath(attr.Val); changed {
				n.Attr[i].Val = rewritten
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c)
	}
}
