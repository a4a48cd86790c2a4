package mock

import (
	"context"

	"github.com/fwojciec/arcdoc"
)

var _ arcdoc.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of arcdoc.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *arcdoc.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *arcdoc.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
