package htmlnode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alnah/go-md2site/internal/htmlnode"
)

// ---------------------------------------------------------------------------
// TestRender - Leaf rendering
// ---------------------------------------------------------------------------

func TestRender_Leaf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *htmlnode.Leaf
		want string
	}{
		{
			name: "tagged leaf",
			node: htmlnode.NewLeaf("p", "Hello, world!"),
			want: "<p>Hello, world!</p>",
		},
		{
			name: "raw text is not escaped",
			node: htmlnode.Text("a < b & <c>"),
			want: "a < b & <c>",
		},
		{
			name: "anchor with href",
			node: htmlnode.NewLeaf("a", "Click me!", htmlnode.Attr("href", "https://www.google.com")),
			want: `<a href="https://www.google.com">Click me!</a>`,
		},
		{
			name: "image with empty value",
			node: htmlnode.NewLeaf("img", "", htmlnode.Attr("src", "u.png"), htmlnode.Attr("alt", "alt")),
			want: `<img src="u.png" alt="alt"></img>`,
		},
		{
			name: "empty raw text",
			node: htmlnode.Text(""),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := htmlnode.Render(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_LeafWithoutValue(t *testing.T) {
	t.Parallel()

	_, err := htmlnode.Render(&htmlnode.Leaf{Tag: "p"})
	assert.ErrorIs(t, err, htmlnode.ErrStructural)
}

// ---------------------------------------------------------------------------
// TestRender - Parent rendering
// ---------------------------------------------------------------------------

func TestRender_Parent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *htmlnode.Parent
		want string
	}{
		{
			name: "single child",
			node: htmlnode.NewParent("div", []htmlnode.Node{htmlnode.NewLeaf("span", "child")}),
			want: "<div><span>child</span></div>",
		},
		{
			name: "grandchildren",
			node: htmlnode.NewParent("div", []htmlnode.Node{
				htmlnode.NewParent("span", []htmlnode.Node{htmlnode.NewLeaf("b", "grandchild")}),
			}),
			want: "<div><span><b>grandchild</b></span></div>",
		},
		{
			name: "mixed children keep order",
			node: htmlnode.NewParent("p", []htmlnode.Node{
				htmlnode.NewLeaf("b", "Bold text"),
				htmlnode.Text("Normal text"),
				htmlnode.NewLeaf("i", "italic text"),
				htmlnode.Text("Normal text"),
			}),
			want: "<p><b>Bold text</b>Normal text<i>italic text</i>Normal text</p>",
		},
		{
			name: "attributes on parent",
			node: htmlnode.NewParent("div", []htmlnode.Node{htmlnode.Text("x")},
				htmlnode.Attr("class", "note"), htmlnode.Attr("id", "n1")),
			want: `<div class="note" id="n1">x</div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := htmlnode.Render(tt.node)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_InvalidParent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node htmlnode.Node
	}{
		{
			name: "no children",
			node: htmlnode.NewParent("div", nil),
		},
		{
			name: "empty children",
			node: htmlnode.NewParent("div", []htmlnode.Node{}),
		},
		{
			name: "no tag",
			node: htmlnode.NewParent("", []htmlnode.Node{htmlnode.Text("x")}),
		},
		{
			name: "invalid grandchild",
			node: htmlnode.NewParent("div", []htmlnode.Node{
				htmlnode.NewParent("ul", []htmlnode.Node{&htmlnode.Leaf{Tag: "li"}}),
			}),
		},
		{
			name: "nil child",
			node: htmlnode.NewParent("div", []htmlnode.Node{nil}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := htmlnode.Render(tt.node)
			assert.ErrorIs(t, err, htmlnode.ErrStructural)
			assert.ErrorIs(t, htmlnode.Validate(tt.node), htmlnode.ErrStructural)
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderAttributes
// ---------------------------------------------------------------------------

func TestRenderAttributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attrs htmlnode.Attributes
		want  string
	}{
		{
			name:  "nil",
			attrs: nil,
			want:  "",
		},
		{
			name:  "empty",
			attrs: htmlnode.Attributes{},
			want:  "",
		},
		{
			name:  "insertion order",
			attrs: htmlnode.Attributes{htmlnode.Attr("href", "https://www.google.com"), htmlnode.Attr("target", "_blank")},
			want:  ` href="https://www.google.com" target="_blank"`,
		},
		{
			name:  "quotes are not escaped",
			attrs: htmlnode.Attributes{htmlnode.Attr("title", `say "hi"`)},
			want:  ` title="say "hi""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, htmlnode.RenderAttributes(tt.attrs))
		})
	}
}

func TestAttributes_Set(t *testing.T) {
	t.Parallel()

	var attrs htmlnode.Attributes
	attrs.Set("src", "a.png")
	attrs.Set("alt", "a")
	attrs.Set("src", "b.png")

	assert.Equal(t, ` src="b.png" alt="a"`, htmlnode.RenderAttributes(attrs))

	v, ok := attrs.Get("alt")
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = attrs.Get("href")
	assert.False(t, ok)
}

// ---------------------------------------------------------------------------
// TestWalk
// ---------------------------------------------------------------------------

func TestWalk_VisitsDepthFirst(t *testing.T) {
	t.Parallel()

	root := htmlnode.NewParent("div", []htmlnode.Node{
		htmlnode.NewParent("p", []htmlnode.Node{htmlnode.NewLeaf("b", "x")}),
		htmlnode.NewLeaf("code", "y"),
	})

	var tags []string
	err := htmlnode.Walk(root, func(n htmlnode.Node) error {
		switch n := n.(type) {
		case *htmlnode.Parent:
			tags = append(tags, n.Tag)
		case *htmlnode.Leaf:
			tags = append(tags, n.Tag)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"div", "p", "b", "code"}, tags)
}
