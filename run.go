package arcdoc

import (
	"context"
	"time"
)

// CrawlRun records one crawl invocation in the archive.
type CrawlRun struct {
	ID          string    `json:"id"`
	Profile     string    `json:"profile"`
	Seeds       []string  `json:"seeds"`
	StartedAt   time.Time `json:"startedAt"`
	FinishedAt  time.Time `json:"finishedAt"`
	PagesSaved  int       `json:"pagesSaved"`
	PagesFailed int       `json:"pagesFailed"`
}

// Validate returns an error if the run contains invalid fields.
func (r *CrawlRun) Validate() error {
	if r.Profile == "" {
		return Errorf(EINVALID, "run profile required")
	}
	if len(r.Seeds) == 0 {
		return Errorf(EINVALID, "run seeds required")
	}
	return nil
}

// RunPage is one archived page row within a run.
type RunPage struct {
	RunID         string    `json:"runId"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	ContentHash   string    `json:"contentHash"`
	OutgoingLinks int       `json:"outgoingLinks"`
	Position      int       `json:"position"`
	FetchedAt     time.Time `json:"fetchedAt"`
}

// RunService archives crawl runs, their pages, and their raw link edges.
// Archiving is best effort: the crawl proceeds even when it fails.
type RunService interface {
	// CreateRun inserts a new run and assigns its ID.
	CreateRun(ctx context.Context, run *CrawlRun) error

	// AddPage records a crawled page under a run.
	AddPage(ctx context.Context, page *RunPage) error

	// AddLinks records the raw link targets observed on a source page.
	AddLinks(ctx context.Context, runID, source string, targets []string) error

	// FinishRun stores the final counts and finish time.
	// Returns ENOTFOUND if the run does not exist.
	FinishRun(ctx context.Context, run *CrawlRun) error

	// FindRunByID retrieves a run.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*CrawlRun, error)

	// FindRuns retrieves all runs, most recent first.
	FindRuns(ctx context.Context) ([]*CrawlRun, error)
}
