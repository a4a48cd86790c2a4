// Package http provides HTTP-backed implementations of arcdoc.Fetcher
// and arcdoc.SitemapService.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/arcdoc"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// browserHeaders mimics a desktop Chrome request. Some documentation
// hosts refuse or downgrade responses for default Go client headers.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
	"Cache-Control":             "max-age=0",
}

// Ensure Fetcher implements arcdoc.Fetcher at compile time.
var _ arcdoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content over HTTP. One GET per Fetch, no
// retries; pacing between requests belongs to the caller.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher. The underlying client is
// shared across fetches so connections are reused.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Non-2xx responses and transport failures return EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", arcdoc.Errorf(arcdoc.EINVALID, "invalid request for %s: %v", url, err)
	}
	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", arcdoc.Errorf(arcdoc.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", arcdoc.Errorf(arcdoc.EUNAVAILABLE, "HTTP %d fetching %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", arcdoc.Errorf(arcdoc.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(body), nil
}
