package arcdoc

import "context"

// Fallback literals used when a page or anchor carries no usable text.
// They are persisted verbatim, so changing them changes the file format.
const (
	NoTitle    = "No Title"
	NoLinkText = "No Link Text"
)

// Link is a directed edge candidate from the page that owns it to a
// target URL.
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// Page is the canonical extracted representation of one fetched page.
// Content holds the main region's text as newline-separated trimmed
// blocks. Links holds only in-scope targets; the raw pre-filter link set
// is recorded separately in the crawl's link map. A Page is created once,
// when a fetch succeeds, and never mutated.
type Page struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Links   []Link `json:"links"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.Title == "" {
		return Errorf(EINVALID, "page title required")
	}
	return nil
}

// PageStore persists pages durably, one record per page, as they are
// crawled.
type PageStore interface {
	// SavePage writes a single page record.
	SavePage(ctx context.Context, page *Page) error

	// LoadPages reads back every stored page record.
	LoadPages(ctx context.Context) ([]*Page, error)
}
