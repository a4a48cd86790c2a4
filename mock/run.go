package mock

import (
	"context"

	"github.com/fwojciec/arcdoc"
)

var _ arcdoc.RunService = (*RunService)(nil)

// RunService is a mock implementation of arcdoc.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *arcdoc.CrawlRun) error
	AddPageFn     func(ctx context.Context, page *arcdoc.RunPage) error
	AddLinksFn    func(ctx context.Context, runID, source string, targets []string) error
	FinishRunFn   func(ctx context.Context, run *arcdoc.CrawlRun) error
	FindRunByIDFn func(ctx context.Context, id string) (*arcdoc.CrawlRun, error)
	FindRunsFn    func(ctx context.Context) ([]*arcdoc.CrawlRun, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *arcdoc.CrawlRun) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) AddPage(ctx context.Context, page *arcdoc.RunPage) error {
	return s.AddPageFn(ctx, page)
}

func (s *RunService) AddLinks(ctx context.Context, runID, source string, targets []string) error {
	return s.AddLinksFn(ctx, runID, source, targets)
}

func (s *RunService) FinishRun(ctx context.Context, run *arcdoc.CrawlRun) error {
	return s.FinishRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*arcdoc.CrawlRun, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context) ([]*arcdoc.CrawlRun, error) {
	return s.FindRunsFn(ctx)
}
