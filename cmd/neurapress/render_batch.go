package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/yuin/goldmark/util"

	neurapress "github.com/tianyaxiang/neurapress-sub000"
	"github.com/tianyaxiang/neurapress-sub000/internal/fileutil"
)

// RenderResult holds the outcome of a single render.
type RenderResult struct {
	InputPath  string
	OutputPath string
	Template   string
	Err        error
	Duration   time.Duration
}

// renderBatch processes files concurrently. With a pool, each worker holds
// one rasterizer and its own diagram pass for the whole batch.
func renderBatch(ctx context.Context, renderer Renderer, pool Pool, files []FileToRender, params *renderParams, workers int) []RenderResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := max(1, min(workers, len(files)))
	if pool != nil {
		concurrency = min(concurrency, pool.Size())
	}

	results := make([]RenderResult, len(files))
	jobs := make(chan int, len(files))
	for i := range files {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for range concurrency {
		wg.Go(func() {
			var pass *neurapress.DiagramPass
			if pool != nil {
				r := pool.Acquire()
				if r == nil {
					// Rasterizer creation failed, mark remaining jobs as failed
					for idx := range jobs {
						results[idx] = RenderResult{InputPath: files[idx].InputPath, Err: ErrRasterizerInit}
					}
					return
				}
				defer pool.Release(r)
				pass = neurapress.NewDiagramPass(r, params.logger)
			}

			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = RenderResult{InputPath: files[idx].InputPath, Err: err}
					continue
				}
				results[idx] = renderFile(ctx, renderer, pass, files[idx], params)
			}
		})
	}

	wg.Wait()
	return results
}

// renderFile processes a single file and returns the result.
func renderFile(ctx context.Context, renderer Renderer, pass *neurapress.DiagramPass, f FileToRender, params *renderParams) RenderResult {
	start := time.Now()
	result := RenderResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) RenderResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	markdown, err := readMarkdown(f.InputPath)
	if err != nil {
		return fail(err)
	}

	input := neurapress.Input{
		Markdown:   markdown,
		Template:   params.template,
		Overrides:  params.overrides,
		UnsafeHTML: params.unsafeHTML,
	}
	if params.resolveAssets {
		input.AssetDir = assetDir(f.InputPath)
	}

	res, err := renderer.Render(ctx, input)
	if err != nil {
		return fail(err)
	}
	result.Template = res.Template

	html := res.HTML
	if pass != nil {
		html, err = pass.Run(ctx, pass.Next(), html)
		if err != nil {
			return fail(fmt.Errorf("rendering diagrams: %w", err))
		}
	}

	if params.standalone {
		html = standaloneDocument(titleFor(f.InputPath), html)
	}

	if err := fileutil.WriteOutput(f.OutputPath, []byte(html)); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteHTML, err))
	}

	result.Duration = time.Since(start)
	return result
}

// standaloneDocument wraps a fragment in a minimal UTF-8 HTML page.
func standaloneDocument(title, fragment string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<title>")
	b.Write(util.EscapeHTML([]byte(title)))
	b.WriteString("</title>\n</head>\n<body>\n")
	b.WriteString(fragment)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

// titleFor derives a page title from the input file name.
func titleFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ResultSummary holds the count of succeeded and failed renders.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed renders.
func countResults(results []RenderResult) ResultSummary {
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

// printResults outputs render results and returns the summary.
// A single failed file is left to the caller's error report.
func printResults(results []RenderResult, quiet, verbose bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s [%s] (%v)\n", r.InputPath, r.OutputPath, r.Template, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary
}

// summarize turns failed results into the command's error. The first
// failure is wrapped so its exit code and hint survive.
func summarize(results []RenderResult, summary ResultSummary) error {
	if summary.Failed == 0 {
		return nil
	}
	var first error
	for _, r := range results {
		if r.Err != nil {
			first = r.Err
			break
		}
	}
	if len(results) == 1 {
		return fmt.Errorf("%s: %w", results[0].InputPath, first)
	}
	return fmt.Errorf("%d of %d render(s) failed: %w", summary.Failed, len(results), first)
}
