package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/arcdoc"
)

// Ensure type implements interface.
var _ arcdoc.CheckpointWriter = (*CheckpointWriter)(nil)

// CheckpointWriter persists crawl checkpoints as two JSON files in the
// output directory: the raw link map and the visited URL list. Each
// write replaces the previous snapshot.
type CheckpointWriter struct {
	dir string
}

// NewCheckpointWriter returns a checkpoint writer rooted at dir.
func NewCheckpointWriter(dir string) *CheckpointWriter {
	return &CheckpointWriter{dir: dir}
}

// WriteCheckpoint writes the link map and visited list. Both files are
// written atomically, so a failed write leaves the prior checkpoint
// intact.
func (w *CheckpointWriter) WriteCheckpoint(ctx context.Context, cp *arcdoc.Checkpoint) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	links := cp.Links
	if links == nil {
		links = map[string][]string{}
	}
	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(w.dir, linkMapFile), data); err != nil {
		return err
	}

	visited := cp.Visited
	if visited == nil {
		visited = []string{}
	}
	data, err = json.MarshalIndent(visited, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(w.dir, visitedFile), data)
}
