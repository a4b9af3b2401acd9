package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/fileutil"
	"github.com/alnah/go-md2site/internal/metrics"
)

// Sentinel errors for batch operations.
var (
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWritePage    = errors.New("failed to write page")
)

// PageGenerator is the interface for the page generation service.
type PageGenerator interface {
	Generate(ctx context.Context, input md2site.Input) (*md2site.Page, error)
}

// Compile-time interface implementation check.
var _ PageGenerator = (*md2site.Converter)(nil)

// PageResult holds the outcome of a single page generation.
type PageResult struct {
	InputPath  string
	OutputPath string
	Title      string
	Bytes      int
	Err        error
	Duration   time.Duration
}

// batchParams groups parameters shared across batch generation.
type batchParams struct {
	workers  int
	recorder *metrics.Recorder
	engine   string
}

// generateBatch processes pages concurrently with a fixed worker pool.
// Results keep the order of pages.
func generateBatch(ctx context.Context, gen PageGenerator, pages []PageToGenerate, params batchParams) []PageResult {
	if len(pages) == 0 {
		return nil
	}

	concurrency := max(min(params.workers, len(pages)), 1)

	results := make([]PageResult, len(pages))
	var wg sync.WaitGroup
	jobs := make(chan int, len(pages))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = PageResult{
						InputPath: pages[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = generatePage(ctx, gen, pages[idx])
				params.recorder.ObservePage(params.engine, results[idx].Duration, results[idx].Err)
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// generatePage processes a single file and returns the result.
func generatePage(ctx context.Context, gen PageGenerator, p PageToGenerate) PageResult {
	start := time.Now()
	result := PageResult{
		InputPath:  p.InputPath,
		OutputPath: p.OutputPath,
	}

	content, err := os.ReadFile(p.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	// SourcePath stays empty: printResults already names the file.
	page, err := gen.Generate(ctx, md2site.Input{Markdown: string(content)})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFile(p.OutputPath, page.HTML); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Title = page.Title
	result.Bytes = len(page.HTML)
	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed generations.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed generations.
func countResults(results []PageResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs generation results and returns the failure count.
func printResults(results []PageResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%s, %v)\n", r.InputPath, r.OutputPath,
				humanize.Bytes(uint64(r.Bytes)), r.Duration.Round(time.Millisecond)) // #nosec G115 -- length is non-negative
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
