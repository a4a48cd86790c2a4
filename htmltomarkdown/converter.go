// Package htmltomarkdown converts extracted content HTML into Markdown
// for the mirror output.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/arcdoc"
)

// Ensure Converter implements arcdoc.Converter at compile time.
var _ arcdoc.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert content HTML to Markdown.
// Safe for concurrent use.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter with commonmark and table
// support.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", arcdoc.Errorf(arcdoc.EINVALID, "empty HTML input")
	}

	return c.conv.ConvertString(html)
}
