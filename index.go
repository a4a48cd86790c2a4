package arcdoc

import "context"

// Index summarizes a completed crawl: the page count and, per page, its
// URL, title, and outgoing in-scope link count.
type Index struct {
	TotalPages int          `json:"total_pages"`
	Pages      []IndexEntry `json:"pages"`
}

// IndexEntry is one page's row in the index.
type IndexEntry struct {
	URL           string `json:"url"`
	Title         string `json:"title"`
	OutgoingLinks int    `json:"outgoing_links"`
}

// BuildIndex aggregates pages into an index, preserving the given order.
// It is a pure function; callers pass pages in crawl order.
func BuildIndex(pages []*Page) *Index {
	idx := &Index{
		TotalPages: len(pages),
		Pages:      make([]IndexEntry, 0, len(pages)),
	}
	for _, p := range pages {
		idx.Pages = append(idx.Pages, IndexEntry{
			URL:           p.URL,
			Title:         p.Title,
			OutgoingLinks: len(p.Links),
		})
	}
	return idx
}

// IndexWriter persists a crawl index.
type IndexWriter interface {
	WriteIndex(ctx context.Context, index *Index) error
}
