// Package trafilatura provides article-mode content extraction for
// pages without the fixed content region.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/arcdoc"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements arcdoc.Extractor at compile time.
var _ arcdoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull the main content out of HTML
// heuristically. Unlike the selector-based extractor it strips
// navigation and footer boilerplate itself, so it works on pages whose
// layout is unknown. It extracts content only; links always come from
// the structural extractor.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*arcdoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, arcdoc.Errorf(arcdoc.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = arcdoc.NoTitle
	}

	return &arcdoc.ExtractResult{
		Title:       title,
		Text:        strings.TrimSpace(result.ContentText),
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
