package arcdoc

import "context"

// Checkpoint is a wholesale snapshot of crawl progress: the visited URL
// set and the raw link map. Each write overwrites the prior checkpoint;
// it is progress visibility, not an append log, and the crawler never
// resumes from one.
type Checkpoint struct {
	Visited []string
	Links   map[string][]string
}

// CheckpointWriter persists checkpoints durably. Writes must not corrupt
// the previous checkpoint when they fail partway.
type CheckpointWriter interface {
	WriteCheckpoint(ctx context.Context, cp *Checkpoint) error
}
