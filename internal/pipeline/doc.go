// Package pipeline implements the markdown to HTML page pipeline.
//
// Stages, in the order a page goes through them:
//   - Markdown preprocessing (BOM removal, line ending normalization)
//   - Conversion to an HTML fragment, either through the native block and
//     inline parsers (BuildTree) or through goldmark
//   - Optional rewriting of local .md links to .html
//   - Page template substitution and CSS injection
//   - Optional sanitization and minification
//
// Every stage is a pure function of its input, so pages can be generated
// concurrently.
package pipeline
