package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/arcdoc"
)

// Ensure type implements interface.
var _ arcdoc.IndexWriter = (*IndexWriter)(nil)

// IndexWriter persists the crawl index as index.json in the output
// directory.
type IndexWriter struct {
	dir string
}

// NewIndexWriter returns an index writer rooted at dir.
func NewIndexWriter(dir string) *IndexWriter {
	return &IndexWriter{dir: dir}
}

// WriteIndex writes the index atomically, replacing any previous one.
func (w *IndexWriter) WriteIndex(ctx context.Context, index *arcdoc.Index) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(w.dir, indexFile), data)
}
