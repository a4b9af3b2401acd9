package block_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alnah/go-md2site/internal/block"
)

// ---------------------------------------------------------------------------
// TestSplit - Blank-line segmentation
// ---------------------------------------------------------------------------

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "indented document",
			doc: `
    This is **bolded** paragraph

    This is another paragraph with _italic_ text and ` + "`code`" + ` here
    This is the same paragraph on a new line

    - This is a list
    - with items

    `,
			want: []string{
				"This is **bolded** paragraph",
				"This is another paragraph with _italic_ text and `code` here\nThis is the same paragraph on a new line",
				"- This is a list\n- with items",
			},
		},
		{
			name: "whitespace-only line separates blocks",
			doc:  "first\n   \t \nsecond",
			want: []string{"first", "second"},
		},
		{
			name: "many blank lines collapse",
			doc:  "a\n\n\n\n\nb",
			want: []string{"a", "b"},
		},
		{
			name: "crlf line endings",
			doc:  "a\r\nb\r\n\r\nc",
			want: []string{"a\nb", "c"},
		},
		{
			name: "empty document",
			doc:  "",
			want: nil,
		},
		{
			name: "blank document",
			doc:  "\n  \n\t\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, block.Split(tt.doc))
		})
	}
}

// ---------------------------------------------------------------------------
// TestClassify - Rule precedence and demotion
// ---------------------------------------------------------------------------

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		wantKind  block.Kind
		wantLevel int
	}{
		{name: "paragraph", text: "This is **bolded** text", wantKind: block.Paragraph},
		{name: "h1", text: "# Title", wantKind: block.Heading, wantLevel: 1},
		{name: "h3", text: "### This is a heading", wantKind: block.Heading, wantLevel: 3},
		{name: "h6", text: "###### This is a heading", wantKind: block.Heading, wantLevel: 6},
		{name: "seven hashes", text: "####### This is a paragraph", wantKind: block.Paragraph},
		{name: "hash without space", text: "#This is a paragraph", wantKind: block.Paragraph},
		{name: "hash without content", text: "#", wantKind: block.Paragraph},
		{name: "code", text: "```python\nprint('Hello, World!')\n```", wantKind: block.Code},
		{name: "code without closing fence", text: "```python\nprint('Hello, World!')", wantKind: block.Paragraph},
		{name: "code without opening fence", text: "python\nprint('Hello, World!')\n```", wantKind: block.Paragraph},
		{name: "lone fence", text: "```", wantKind: block.Paragraph},
		{name: "quote without space", text: ">This is a Quote", wantKind: block.Quote},
		{name: "quote multi-line", text: ">This is a Quote\n>Quote", wantKind: block.Quote},
		{name: "quote with one plain line", text: ">This is not a Quote\nQuote", wantKind: block.Paragraph},
		{name: "unordered list", text: "- This is a list\n- with multiple lines", wantKind: block.UnorderedList},
		{name: "dash without space", text: "-This is a Paragraph", wantKind: block.Paragraph},
		{name: "unordered list broken", text: "- This is not a List\n-List", wantKind: block.Paragraph},
		{name: "ordered list single", text: "1. This is a List", wantKind: block.OrderedList},
		{name: "ordered list", text: "1. a\n2. b", wantKind: block.OrderedList},
		{name: "ordered list repeated number", text: "1. a\n1. b", wantKind: block.Paragraph},
		{name: "ordered list missing space", text: "1. This is not a List\n2.List", wantKind: block.Paragraph},
		{name: "ordered list starting at two", text: "2. a\n3. b", wantKind: block.Paragraph},
		{name: "ordered list past nine", text: "1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g\n8. h\n9. i\n10. j", wantKind: block.OrderedList},
		{name: "heading wins over list-looking lines", text: "# Title\n- item", wantKind: block.Heading, wantLevel: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := block.Classify(tt.text)
			assert.Equal(t, tt.wantKind, got.Kind, "kind of %q", tt.text)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.text, got.Text)
		})
	}
}

func TestPrecedence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []block.Kind{
		block.Heading,
		block.Code,
		block.Quote,
		block.UnorderedList,
		block.OrderedList,
		block.Paragraph,
	}, block.Precedence())
}

func TestParse(t *testing.T) {
	t.Parallel()

	doc := "# Title\n\nSome text\n\n> quoted\n\n1. one\n2. two"
	got := block.Parse(doc)

	assert.Equal(t, []block.Block{
		{Text: "# Title", Kind: block.Heading, Level: 1},
		{Text: "Some text", Kind: block.Paragraph},
		{Text: "> quoted", Kind: block.Quote},
		{Text: "1. one\n2. two", Kind: block.OrderedList},
	}, got)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unordered_list", block.UnorderedList.String())
	assert.Equal(t, "unknown", block.Kind(-1).String())
}

func TestOrderedPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1. ", block.OrderedPrefix(0))
	assert.Equal(t, "12. ", block.OrderedPrefix(11))
}
