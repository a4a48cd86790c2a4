package main

import (
	"fmt"

	"github.com/fwojciec/arcdoc"
	"github.com/fwojciec/arcdoc/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	profile := deps.Profile

	seeds := c.Seeds
	if len(seeds) == 0 {
		seeds = profile.SeedURLs()
	}

	if c.FromSitemap {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, profile.BaseURL, nil)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", arcdoc.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Discovered %d sitemap URLs\n", len(urls))
		seeds = append(seeds, urls...)
	}

	// Archive the run; the crawl proceeds without it on failure.
	run := &arcdoc.CrawlRun{Profile: profile.Name, Seeds: seeds}
	if deps.Runs != nil {
		if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: run archive failed: %s\n", arcdoc.ErrorMessage(err))
		} else {
			deps.Crawler.RunID = run.ID
		}
	}

	pageCap := deps.Crawler.MaxPages
	deps.Crawler.Progress = func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressFetched, crawl.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", event.Counted, pageCap, crawl.TruncateURL(event.URL, 60))
		}
	}

	var counted, saved, failed, totalBytes int
	var discovered uint
	var crawlErr error
	for _, seed := range seeds {
		result, err := deps.Crawler.Crawl(deps.Ctx, seed)
		if result != nil {
			counted += result.Counted
			saved += result.Saved
			failed += result.Failed
			totalBytes += result.Bytes
			discovered = result.Discovered
		}
		if err != nil {
			crawlErr = err
			break
		}
	}
	fmt.Fprintln(deps.Stdout)

	// The index covers everything captured so far, interrupted runs
	// included.
	if deps.Index != nil {
		if err := deps.Index.WriteIndex(deps.Ctx, arcdoc.BuildIndex(deps.Crawler.Pages())); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing index: %s\n", arcdoc.ErrorMessage(err))
			if crawlErr == nil {
				crawlErr = err
			}
		}
	}

	if deps.Runs != nil && deps.Crawler.RunID != "" {
		run.PagesSaved = saved
		run.PagesFailed = failed
		if err := deps.Runs.FinishRun(deps.Ctx, run); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: run archive failed: %s\n", arcdoc.ErrorMessage(err))
		}
	}

	if crawlErr != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", arcdoc.ErrorMessage(crawlErr))
		return crawlErr
	}

	fmt.Fprintf(deps.Stdout, "Saved %d pages to %s (%d visited, %d failed, %s, ~%d URLs seen)\n",
		saved, profile.OutputDir, counted, failed, crawl.FormatBytes(totalBytes), discovered)
	return nil
}
