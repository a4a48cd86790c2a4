package mock

import (
	"context"

	"github.com/fwojciec/arcdoc"
)

var _ arcdoc.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of arcdoc.PageStore.
type PageStore struct {
	SavePageFn  func(ctx context.Context, page *arcdoc.Page) error
	LoadPagesFn func(ctx context.Context) ([]*arcdoc.Page, error)
}

func (s *PageStore) SavePage(ctx context.Context, page *arcdoc.Page) error {
	return s.SavePageFn(ctx, page)
}

func (s *PageStore) LoadPages(ctx context.Context) ([]*arcdoc.Page, error) {
	return s.LoadPagesFn(ctx)
}

var _ arcdoc.CheckpointWriter = (*CheckpointWriter)(nil)

// CheckpointWriter is a mock implementation of arcdoc.CheckpointWriter.
type CheckpointWriter struct {
	WriteCheckpointFn func(ctx context.Context, cp *arcdoc.Checkpoint) error
}

func (w *CheckpointWriter) WriteCheckpoint(ctx context.Context, cp *arcdoc.Checkpoint) error {
	return w.WriteCheckpointFn(ctx, cp)
}

var _ arcdoc.IndexWriter = (*IndexWriter)(nil)

// IndexWriter is a mock implementation of arcdoc.IndexWriter.
type IndexWriter struct {
	WriteIndexFn func(ctx context.Context, index *arcdoc.Index) error
}

func (w *IndexWriter) WriteIndex(ctx context.Context, index *arcdoc.Index) error {
	return w.WriteIndexFn(ctx, index)
}
