//go:build bench

package md2site

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func benchDocument(sections int) string {
	var sb strings.Builder
	sb.WriteString("# Benchmark\n\n")
	for i := range sections {
		fmt.Fprintf(&sb, "## Section %d\n\nSome **bold** and _italic_ text with `code` and a [link](page%d.md).\n\n", i, i)
		sb.WriteString("- one\n- two\n- three\n\n")
		sb.WriteString("```\nfor i := range n {}\n```\n\n")
	}
	return sb.String()
}

// BenchmarkGenerate benchmarks the full page pipeline per option set.
func BenchmarkGenerate(b *testing.B) {
	ctx := context.Background()
	doc := benchDocument(50)

	configs := []struct {
		name string
		opts []Option
	}{
		{"native", nil},
		{"native_all", []Option{WithStyle("default"), WithRewriteLinks(true), WithSanitize(true), WithMinify(true)}},
		{"goldmark", []Option{WithEngine("goldmark")}},
	}

	for _, cfg := range configs {
		conv, err := NewConverter(cfg.opts...)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(cfg.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := conv.Generate(ctx, Input{Markdown: doc}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
