// Package md2site converts a small markdown subset to HTML and generates
// complete pages from it.
//
// # Core Conversion
//
// Convert parses a document into a node tree rooted at a div and Render
// serializes any node. ToHTML chains both:
//
//	out, err := md2site.ToHTML("This is **bold** and _italic_")
//	// <div><p>This is <b>bold</b> and <i>italic</i></p></div>
//
// The supported subset is headings (one to six '#'), fenced code, quotes,
// unordered lists, ordered lists and paragraphs. Inside text blocks,
// **bold**, _italic_, `code`, [links](url) and ![images](url) are
// recognized. Anything else is literal text. Conversion never touches the
// filesystem.
//
// # Page Generation
//
// A Converter wraps the conversion in a page template:
//
//	conv, err := md2site.NewConverter(
//	    md2site.WithStyle("default"),
//	    md2site.WithRewriteLinks(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := conv.Generate(ctx, md2site.Input{
//	    Markdown:   "# Hello\n\nWorld",
//	    SourcePath: "content/index.md",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("public/index.html", page.HTML, 0o644)
//
// The page title is the text of the level-1 heading on the first line of
// the document. Templates must contain the {{ Content }} placeholder and
// may contain {{ Title }}.
//
// # Engines
//
// The native engine implements the subset above. The goldmark engine
// (WithEngine("goldmark")) renders full CommonMark with GFM extensions and
// syntax highlighting, for sites that outgrow the subset.
//
// # Error Handling
//
// Errors wrap sentinel values and can be checked with errors.Is:
//
//	page, err := conv.Generate(ctx, input)
//	if errors.Is(err, md2site.ErrMalformedInline) {
//	    // unbalanced delimiter in the source
//	}
//	if errors.Is(err, md2site.ErrNoTitle) {
//	    // first line is not a "# " heading
//	}
//
// # Parallel Processing
//
// A Converter holds no per-call state and may be shared by goroutines.
// ResolvePoolSize picks a worker count for batch builds.
package md2site
