package arcdoc

// ExtractResult holds the content pulled from one fetched page.
type ExtractResult struct {
	// Title is the trimmed <title> text, or NoTitle when absent.
	Title string

	// Text is the main content region's text: each block trimmed, blank
	// blocks dropped, blocks joined by newline. Empty when the region is
	// absent; that is empty data, not an error.
	Text string

	// ContentHTML is the main content region's HTML, kept for markdown
	// export.
	ContentHTML string
}

// Extractor pulls title and main-region content from HTML.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// LinkExtractor resolves every anchor inside the main content region.
type LinkExtractor interface {
	// ExtractLinks returns each a[href] in the content region as an
	// absolute Link in document order, resolved against sourceURL with
	// fragments stripped. Anchor text is trimmed, falling back to
	// NoLinkText. The result is raw and unfiltered; scope decisions
	// belong to the caller.
	ExtractLinks(html string, sourceURL string) ([]Link, error)
}
