package arcdoc

import "context"

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., a page's content region).
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}

// MirrorWriter persists a markdown rendition of a page beside its JSON
// record.
type MirrorWriter interface {
	WriteMirror(ctx context.Context, page *Page, markdown string) error
}
