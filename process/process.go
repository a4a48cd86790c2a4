// Package process turns captured crawl output into derived artifacts:
// category listings, a link graph, a browsable static HTML site, a
// markdown crawl report, and an extracted knowledge base.
package process

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/arcdoc"
)

// DefaultRenderConcurrency bounds the number of pages rendered at once.
const DefaultRenderConcurrency = 4

// Processor reads captured pages and writes every derived artifact into
// the output directory. Steps are independent: a failed step is logged
// and the remaining steps still run.
type Processor struct {
	// Store is the crawl output being processed, read-only.
	Store arcdoc.PageStore

	// OutputDir receives the derived artifacts. The HTML site goes in
	// an html/ subdirectory.
	OutputDir string

	// SiteTitle labels the generated HTML site and report. Defaults to
	// "Documentation".
	SiteTitle string

	// Services are the service names the knowledge base looks for.
	// Defaults to arcdoc.DefaultServices.
	Services []string

	// RenderConcurrency bounds concurrent page rendering.
	RenderConcurrency int

	// FlowchartLimit caps the report's link-graph flowchart node count.
	// Zero means DefaultFlowchartLimit.
	FlowchartLimit int

	// SkipReport and SkipKnowledgeBase drop the corresponding steps.
	SkipReport        bool
	SkipKnowledgeBase bool

	Logger *slog.Logger
}

// Run executes the full pipeline. Loading pages is fatal; every later
// step is attempted regardless of earlier failures and the first step
// error is returned.
func (p *Processor) Run(ctx context.Context) error {
	pages, err := p.Store.LoadPages(ctx)
	if err != nil {
		return err
	}
	p.logger().Info("loaded pages", "count", len(pages))

	categories := Categorize(pages)
	graph := BuildLinkGraph(pages)

	var firstErr error
	fail := func(step string, err error) {
		p.logger().Error("processing step failed", "step", step, "err", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	if err := p.writeJSON("categories.json", categories); err != nil {
		fail("categories", err)
	}
	if err := p.writeJSON("link_graph.json", graph); err != nil {
		fail("link graph", err)
	}
	if err := p.renderSite(ctx, pages, categories); err != nil {
		fail("static site", err)
	}
	if !p.SkipReport {
		if err := p.writeReport(pages, time.Now()); err != nil {
			fail("report", err)
		}
	}
	if !p.SkipKnowledgeBase {
		kb := ExtractKnowledgeBase(pages, p.services())
		if err := p.writeJSON("knowledge_base.json", kb); err != nil {
			fail("knowledge base", err)
		}
	}

	return firstErr
}

func (p *Processor) writeJSON(name string, v any) error {
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(p.OutputDir, name), data, 0644)
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func (p *Processor) services() []string {
	if len(p.Services) > 0 {
		return p.Services
	}
	return arcdoc.DefaultServices
}

func (p *Processor) siteTitle() string {
	if p.SiteTitle != "" {
		return p.SiteTitle
	}
	return "Documentation"
}

func (p *Processor) renderConcurrency() int {
	if p.RenderConcurrency > 0 {
		return p.RenderConcurrency
	}
	return DefaultRenderConcurrency
}
