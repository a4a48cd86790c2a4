// Package crawl provides the breadth-first traversal engine. It
// coordinates scope classification, fetching, extraction, page storage,
// and checkpoint persistence for a documentation crawl.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/fwojciec/arcdoc"
	"github.com/fwojciec/arcdoc/bloom"
)

// DefaultCheckpointEvery is the counted-visit cadence for periodic
// checkpoints.
const DefaultCheckpointEvery = 10

// Crawler is the breadth-first traversal engine. It exclusively owns the
// visited set, the page map, and the link map for its lifetime. Crawl
// may be invoked once per seed; every invocation runs a fresh FIFO
// frontier from its own seed while sharing the accumulated state, so a
// URL visited under one seed is never fetched again under another.
//
// The engine is single-threaded: one URL is fetched at a time, with a
// blocking interval wait before each fetch. The mutex only makes the
// accessors safe to call while a crawl is running.
//
// Set the exported fields before the first Crawl call. Scope, Fetcher,
// Extractor, Links, and Store are required; the rest are optional.
type Crawler struct {
	Scope       *arcdoc.Scope
	Fetcher     arcdoc.Fetcher
	Extractor   arcdoc.Extractor
	Links       arcdoc.LinkExtractor
	Store       arcdoc.PageStore
	Checkpoints arcdoc.CheckpointWriter
	Limiter     *Limiter
	Logger      *slog.Logger

	// Converter and Mirror together enable the markdown mirror: each
	// successful page's content region is converted and written beside
	// the JSON records.
	Converter arcdoc.Converter
	Mirror    arcdoc.MirrorWriter

	// Runs and RunID enable archiving: each stored page and its raw
	// link targets are recorded under the run.
	Runs  arcdoc.RunService
	RunID string

	// MaxPages caps the visited set size; failed fetches count. Zero
	// means arcdoc.DefaultMaxPages.
	MaxPages int

	// CheckpointEvery is the counted-visit cadence for periodic
	// checkpoints. Zero means DefaultCheckpointEvery.
	CheckpointEvery int

	// Progress, when set, receives an event per visit and transition.
	Progress ProgressFunc

	// Discovered, when set, accumulates every raw link target for the
	// approximate distinct-URL count reported in the result.
	Discovered *bloom.Filter

	mu      sync.Mutex
	state   arcdoc.CrawlState
	visited map[string]bool
	pages   map[string]*arcdoc.Page
	order   []string
	linkMap map[string][]string
}

// Result summarizes one Crawl invocation.
type Result struct {
	Seed    string
	Counted int // dequeued visits, failures included
	Saved   int
	Failed  int
	Bytes   int

	// Discovered approximates the distinct raw link targets seen across
	// all invocations so far. Zero unless the crawler tracks discovery.
	Discovered uint
}

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type    ProgressType
	Counted int
	URL     string
	Error   error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressFetched
	ProgressFailed
	ProgressCheckpoint
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl runs a breadth-first traversal from seed until the frontier
// empties or the page cap is reached. It returns the context error when
// canceled mid-run, after flushing a final checkpoint; every other exit
// also flushes one.
func (c *Crawler) Crawl(ctx context.Context, seed string) (*Result, error) {
	c.init()

	if seed == "" {
		return nil, arcdoc.Errorf(arcdoc.EINVALID, "seed URL required")
	}
	if _, err := url.Parse(seed); err != nil {
		return nil, arcdoc.Errorf(arcdoc.EINVALID, "invalid seed URL %q: %v", seed, err)
	}

	c.setState(arcdoc.StateRunning)

	frontier := NewFrontier()
	frontier.Push(seed)

	result := &Result{Seed: seed}
	c.emit(ProgressEvent{Type: ProgressStarted, URL: seed})

	for {
		if ctx.Err() != nil {
			return c.finish(ctx, result, arcdoc.StateTerminated, ctx.Err())
		}
		if c.visitedCount() >= c.maxPages() {
			if frontier.Len() > 0 {
				// Cap reached with URLs still queued; the remainder is
				// discarded, not processed.
				return c.finish(ctx, result, arcdoc.StateDraining, nil)
			}
			return c.finish(ctx, result, arcdoc.StateCompleted, nil)
		}

		current, ok := frontier.Pop()
		if !ok {
			return c.finish(ctx, result, arcdoc.StateCompleted, nil)
		}

		// A URL can reach the queue under one seed and be visited under
		// another; skip without counting against the cap.
		if c.isVisited(current) {
			continue
		}
		c.markVisited(current)
		result.Counted++

		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				return c.finish(ctx, result, arcdoc.StateTerminated, err)
			}
		}

		html, err := c.Fetcher.Fetch(ctx, current)
		if err != nil {
			// Recoverable: the URL stays visited and is never retried
			// this run.
			result.Failed++
			c.logger().Error("fetch failed", "url", current, "err", err)
			c.emit(ProgressEvent{Type: ProgressFailed, Counted: result.Counted, URL: current, Error: err})
		} else {
			c.processPage(ctx, current, html, frontier, result)
		}

		if result.Counted%c.checkpointEvery() == 0 {
			c.writeCheckpoint(ctx, result.Counted)
		}
	}
}

// processPage builds the page record from fetched HTML, persists it, and
// feeds the link map and frontier.
func (c *Crawler) processPage(ctx context.Context, pageURL, html string, frontier *Frontier, result *Result) {
	extracted, err := c.Extractor.Extract(html)
	if err != nil {
		result.Failed++
		c.logger().Error("extract failed", "url", pageURL, "err", err)
		c.emit(ProgressEvent{Type: ProgressFailed, Counted: result.Counted, URL: pageURL, Error: err})
		return
	}

	rawLinks, err := c.Links.ExtractLinks(html, pageURL)
	if err != nil {
		c.logger().Debug("link extraction failed", "url", pageURL, "err", err)
		rawLinks = nil
	}

	// Links starts empty, not nil, so the stored record's links field
	// marshals as an array even when nothing passes scope.
	page := &arcdoc.Page{
		URL:     pageURL,
		Title:   extracted.Title,
		Content: extracted.Text,
		Links:   []arcdoc.Link{},
	}
	for _, link := range rawLinks {
		if c.Scope.InScope(link.URL) {
			page.Links = append(page.Links, link)
		}
	}

	c.storePage(page)

	if err := c.Store.SavePage(ctx, page); err != nil {
		// The record stays in memory and in the index; only its
		// durability is lost.
		c.logger().Error("page write failed", "url", pageURL, "err", err)
	}

	c.archivePage(ctx, page, rawLinks)
	c.mirrorPage(ctx, page, extracted.ContentHTML)

	// The link map records every raw target, in-scope or not; only
	// scope-passing targets are eligible for the frontier.
	for _, link := range rawLinks {
		c.appendLink(pageURL, link.URL)
		if c.Discovered != nil {
			c.Discovered.Add(link.URL)
		}
		if c.Scope.InScope(link.URL) && !c.isVisited(link.URL) {
			frontier.Push(link.URL)
		}
	}

	result.Saved++
	result.Bytes += len(page.Content)
	c.emit(ProgressEvent{Type: ProgressFetched, Counted: result.Counted, URL: pageURL})
}

// archivePage records the page and its raw links under the configured
// run. Best effort: failures are logged and the crawl proceeds.
func (c *Crawler) archivePage(ctx context.Context, page *arcdoc.Page, rawLinks []arcdoc.Link) {
	if c.Runs == nil || c.RunID == "" {
		return
	}

	rp := &arcdoc.RunPage{
		RunID:         c.RunID,
		URL:           page.URL,
		Title:         page.Title,
		ContentHash:   ComputeHash(page.Content),
		OutgoingLinks: len(page.Links),
		Position:      c.pageCount() - 1,
		FetchedAt:     time.Now(),
	}
	if err := c.Runs.AddPage(ctx, rp); err != nil {
		c.logger().Error("archive page failed", "url", page.URL, "err", err)
		return
	}

	targets := make([]string, 0, len(rawLinks))
	for _, link := range rawLinks {
		targets = append(targets, link.URL)
	}
	if err := c.Runs.AddLinks(ctx, c.RunID, page.URL, targets); err != nil {
		c.logger().Error("archive links failed", "url", page.URL, "err", err)
	}
}

// mirrorPage converts the content region to markdown and writes it
// beside the JSON records. Best effort.
func (c *Crawler) mirrorPage(ctx context.Context, page *arcdoc.Page, contentHTML string) {
	if c.Converter == nil || c.Mirror == nil || contentHTML == "" {
		return
	}

	markdown, err := c.Converter.Convert(contentHTML)
	if err != nil {
		c.logger().Error("markdown conversion failed", "url", page.URL, "err", err)
		return
	}
	if err := c.Mirror.WriteMirror(ctx, page, markdown); err != nil {
		c.logger().Error("mirror write failed", "url", page.URL, "err", err)
	}
}

// finish flushes the final checkpoint, settles the state machine, and
// emits the finished event. The checkpoint is written even when the run
// was canceled, so the flush uses a context that outlives ctx.
func (c *Crawler) finish(ctx context.Context, result *Result, exit arcdoc.CrawlState, err error) (*Result, error) {
	c.setState(exit)
	c.writeCheckpoint(context.WithoutCancel(ctx), result.Counted)
	c.setState(arcdoc.StateTerminated)

	if c.Discovered != nil {
		result.Discovered = c.Discovered.EstimatedCount()
	}
	c.emit(ProgressEvent{Type: ProgressFinished, Counted: result.Counted, Error: err})
	c.logger().Info("crawl finished",
		"seed", result.Seed,
		"counted", result.Counted,
		"saved", result.Saved,
		"failed", result.Failed,
		"visited", c.visitedCount(),
	)
	return result, err
}

// writeCheckpoint persists a snapshot, retrying once before giving up.
func (c *Crawler) writeCheckpoint(ctx context.Context, counted int) {
	if c.Checkpoints == nil {
		return
	}

	cp := c.Snapshot()
	err := c.Checkpoints.WriteCheckpoint(ctx, cp)
	if err != nil {
		err = c.Checkpoints.WriteCheckpoint(ctx, cp)
	}
	if err != nil {
		c.logger().Error("checkpoint write failed", "visited", len(cp.Visited), "err", err)
		return
	}
	c.emit(ProgressEvent{Type: ProgressCheckpoint, Counted: counted})
	c.logger().Debug("checkpoint written", "visited", len(cp.Visited))
}

// Reset restores the crawler to an idle, empty state.
func (c *Crawler) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visited = make(map[string]bool)
	c.pages = make(map[string]*arcdoc.Page)
	c.order = nil
	c.linkMap = make(map[string][]string)
	c.state = arcdoc.StateIdle
}

// State returns the crawler's lifecycle state.
func (c *Crawler) State() arcdoc.CrawlState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == "" {
		return arcdoc.StateIdle
	}
	return c.state
}

// Pages returns the stored pages in crawl order.
func (c *Crawler) Pages() []*arcdoc.Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	pages := make([]*arcdoc.Page, 0, len(c.order))
	for _, u := range c.order {
		pages = append(pages, c.pages[u])
	}
	return pages
}

// Visited returns the visited URLs in sorted order.
func (c *Crawler) Visited() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visitedSnapshotLocked()
}

// LinkMap returns a copy of the raw link map.
func (c *Crawler) LinkMap() map[string][]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.linkMapSnapshotLocked()
}

// Snapshot captures the current checkpoint payload.
func (c *Crawler) Snapshot() *arcdoc.Checkpoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &arcdoc.Checkpoint{
		Visited: c.visitedSnapshotLocked(),
		Links:   c.linkMapSnapshotLocked(),
	}
}

func (c *Crawler) visitedSnapshotLocked() []string {
	visited := make([]string, 0, len(c.visited))
	for u := range c.visited {
		visited = append(visited, u)
	}
	sort.Strings(visited)
	return visited
}

func (c *Crawler) linkMapSnapshotLocked() map[string][]string {
	links := make(map[string][]string, len(c.linkMap))
	for source, targets := range c.linkMap {
		links[source] = append([]string(nil), targets...)
	}
	return links
}

func (c *Crawler) init() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.visited == nil {
		c.visited = make(map[string]bool)
	}
	if c.pages == nil {
		c.pages = make(map[string]*arcdoc.Page)
	}
	if c.linkMap == nil {
		c.linkMap = make(map[string][]string)
	}
	if c.state == "" {
		c.state = arcdoc.StateIdle
	}
}

func (c *Crawler) setState(state arcdoc.CrawlState) {
	c.mu.Lock()
	prev := c.state
	c.state = state
	c.mu.Unlock()
	if prev != state {
		c.logger().Debug("state change", "from", prev, "to", state)
	}
}

func (c *Crawler) isVisited(url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visited[url]
}

func (c *Crawler) markVisited(url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visited[url] = true
}

func (c *Crawler) visitedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.visited)
}

func (c *Crawler) storePage(page *arcdoc.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[page.URL] = page
	c.order = append(c.order, page.URL)
}

func (c *Crawler) pageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

func (c *Crawler) appendLink(source, target string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.linkMap[source] = append(c.linkMap[source], target)
}

func (c *Crawler) maxPages() int {
	if c.MaxPages > 0 {
		return c.MaxPages
	}
	return arcdoc.DefaultMaxPages
}

func (c *Crawler) checkpointEvery() int {
	if c.CheckpointEvery > 0 {
		return c.CheckpointEvery
	}
	return DefaultCheckpointEvery
}

func (c *Crawler) emit(event ProgressEvent) {
	if c.Progress != nil {
		c.Progress(event)
	}
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
