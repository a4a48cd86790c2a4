package mock

import (
	"context"

	"github.com/fwojciec/arcdoc"
)

var _ arcdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of arcdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ arcdoc.MirrorWriter = (*MirrorWriter)(nil)

// MirrorWriter is a mock implementation of arcdoc.MirrorWriter.
type MirrorWriter struct {
	WriteMirrorFn func(ctx context.Context, page *arcdoc.Page, markdown string) error
}

func (w *MirrorWriter) WriteMirror(ctx context.Context, page *arcdoc.Page, markdown string) error {
	return w.WriteMirrorFn(ctx, page, markdown)
}
