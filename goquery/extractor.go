// Package goquery extracts page titles, content text, and links from
// fetched HTML using CSS selectors.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/arcdoc"
	"golang.org/x/net/html"
)

// Ensure Extractor implements both extraction interfaces at compile time.
var (
	_ arcdoc.Extractor     = (*Extractor)(nil)
	_ arcdoc.LinkExtractor = (*Extractor)(nil)
)

// Extractor pulls the title, the content region's text, and the content
// region's links out of a page. The region is addressed by a CSS
// selector; when a page lacks the region, extraction yields empty
// content rather than an error.
type Extractor struct {
	selector string
}

// NewExtractor creates an Extractor for the given content selector.
// An empty selector uses arcdoc.DefaultSelector. The selector
// arcdoc.SelectorAuto defers the choice to DetectSelector, re-run on
// each document.
func NewExtractor(selector string) *Extractor {
	if selector == "" {
		selector = arcdoc.DefaultSelector
	}
	return &Extractor{selector: selector}
}

// Selector returns the content selector in use.
func (e *Extractor) Selector() string {
	return e.selector
}

// Extract returns the page title and the content region's text and
// inner HTML.
func (e *Extractor) Extract(rawHTML string) (*arcdoc.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, arcdoc.Errorf(arcdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &arcdoc.ExtractResult{Title: arcdoc.NoTitle}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		result.Title = title
	}

	region := doc.Find(e.regionSelector(doc)).First()
	if region.Length() == 0 {
		return result, nil
	}

	result.Text = blockText(region)

	contentHTML, err := region.Html()
	if err != nil {
		return nil, arcdoc.Errorf(arcdoc.EINTERNAL, "failed to render content region: %v", err)
	}
	result.ContentHTML = strings.TrimSpace(contentHTML)

	return result, nil
}

// ExtractLinks returns every anchor inside the content region as an
// absolute Link in document order, duplicates preserved. Targets are
// resolved against sourceURL with fragments stripped. The result is
// unfiltered: cross-host targets stay in; only unparseable, non-HTTP,
// and self-referential hrefs are dropped.
func (e *Extractor) ExtractLinks(rawHTML string, sourceURL string) ([]arcdoc.Link, error) {
	base, err := url.Parse(sourceURL)
	if err != nil {
		return nil, arcdoc.Errorf(arcdoc.EINVALID, "invalid source URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, arcdoc.Errorf(arcdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	var links []arcdoc.Link
	doc.Find(e.regionSelector(doc)).First().Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		text := strings.TrimSpace(sel.Text())
		if text == "" {
			text = arcdoc.NoLinkText
		}

		links = append(links, arcdoc.Link{URL: resolved, Text: text})
	})

	return links, nil
}

// contentSelectors is the fallback chain tried when no profile fixes a
// content selector.
var contentSelectors = []string{arcdoc.DefaultSelector, "main", "article", "body"}

// DetectSelector returns the first selector in the fallback chain that
// matches the document. Parsed HTML always carries a body, so the chain
// cannot come up empty.
func DetectSelector(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "body"
	}
	return detectSelector(doc)
}

func detectSelector(doc *goquery.Document) string {
	for _, selector := range contentSelectors {
		if doc.Find(selector).Length() > 0 {
			return selector
		}
	}
	return "body"
}

// regionSelector resolves the content selector for one parsed document,
// running detection when the extractor is in auto mode.
func (e *Extractor) regionSelector(doc *goquery.Document) string {
	if e.selector == arcdoc.SelectorAuto {
		return detectSelector(doc)
	}
	return e.selector
}

// blockText gathers the selection's text the way a text dump reads:
// each text node trimmed, blank nodes dropped, the rest joined with
// newlines. Script and style bodies are excluded.
func blockText(sel *goquery.Selection) string {
	var blocks []string
	for _, node := range sel.Nodes {
		collectText(node, &blocks)
	}
	return strings.Join(blocks, "\n")
}

func collectText(n *html.Node, blocks *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*blocks = append(*blocks, text)
		}
		return
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, blocks)
	}
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved URL
// is self-referential (same as base URL after stripping fragment).
// Fragments are stripped from the resolved URL for deduplication purposes.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
