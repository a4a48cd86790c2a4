package mock

import "github.com/fwojciec/arcdoc"

var _ arcdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of arcdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*arcdoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*arcdoc.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ arcdoc.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of arcdoc.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, sourceURL string) ([]arcdoc.Link, error)
}

func (e *LinkExtractor) ExtractLinks(html string, sourceURL string) ([]arcdoc.Link, error) {
	return e.ExtractLinksFn(html, sourceURL)
}
