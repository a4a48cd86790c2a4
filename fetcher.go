package arcdoc

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response body.
	// Transport errors and non-2xx statuses are reported as EUNAVAILABLE
	// errors carrying the URL and underlying cause. The context controls
	// timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
