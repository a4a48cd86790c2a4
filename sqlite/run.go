package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/arcdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ arcdoc.RunService = (*RunService)(nil)

// RunService implements arcdoc.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun inserts a new run with a generated ID and start time.
func (s *RunService) CreateRun(ctx context.Context, run *arcdoc.CrawlRun) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.StartedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, profile, seeds, started_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.Profile, joinSeeds(run.Seeds), run.StartedAt.Format(time.RFC3339))

	return err
}

// AddPage records a crawled page under a run.
func (s *RunService) AddPage(ctx context.Context, page *arcdoc.RunPage) error {
	if page.RunID == "" {
		return arcdoc.Errorf(arcdoc.EINVALID, "run ID required")
	}
	if page.URL == "" {
		return arcdoc.Errorf(arcdoc.EINVALID, "page URL required")
	}

	fetchedAt := page.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO run_pages (run_id, url, title, content_hash, outgoing_links, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, page.RunID, page.URL, page.Title, page.ContentHash, page.OutgoingLinks, page.Position,
		fetchedAt.Format(time.RFC3339))

	return err
}

// AddLinks records the raw link targets observed on a source page, in
// observation order. Inserts are batched into a single statement.
func (s *RunService) AddLinks(ctx context.Context, runID, source string, targets []string) error {
	if runID == "" {
		return arcdoc.Errorf(arcdoc.EINVALID, "run ID required")
	}
	if len(targets) == 0 {
		return nil
	}

	var query strings.Builder
	query.WriteString("INSERT INTO run_links (run_id, source, target, position) VALUES ")
	args := make([]any, 0, len(targets)*4)
	for i, target := range targets {
		if i > 0 {
			query.WriteString(", ")
		}
		query.WriteString("(?, ?, ?, ?)")
		args = append(args, runID, source, target, i)
	}

	_, err := s.db.ExecContext(ctx, query.String(), args...)
	return err
}

// FinishRun stores the final counts and finish time.
func (s *RunService) FinishRun(ctx context.Context, run *arcdoc.CrawlRun) error {
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET finished_at = ?, pages_saved = ?, pages_failed = ?
		WHERE id = ?
	`, run.FinishedAt.Format(time.RFC3339), run.PagesSaved, run.PagesFailed, run.ID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return arcdoc.Errorf(arcdoc.ENOTFOUND, "run not found")
	}

	return nil
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*arcdoc.CrawlRun, error) {
	var run arcdoc.CrawlRun
	var seeds, startedAt, finishedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, profile, seeds, started_at, finished_at, pages_saved, pages_failed
		FROM runs
		WHERE id = ?
	`, id).Scan(&run.ID, &run.Profile, &seeds, &startedAt, &finishedAt,
		&run.PagesSaved, &run.PagesFailed)

	if err == sql.ErrNoRows {
		return nil, arcdoc.Errorf(arcdoc.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	run.Seeds = splitSeeds(seeds)
	run.StartedAt, err = parseRFC3339(startedAt, "started_at")
	if err != nil {
		return nil, err
	}
	if finishedAt != "" {
		run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at")
		if err != nil {
			return nil, err
		}
	}

	return &run, nil
}

// FindRuns retrieves all runs, most recent first.
func (s *RunService) FindRuns(ctx context.Context) ([]*arcdoc.CrawlRun, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, profile, seeds, started_at, finished_at, pages_saved, pages_failed
		FROM runs
		ORDER BY started_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*arcdoc.CrawlRun
	for rows.Next() {
		var run arcdoc.CrawlRun
		var seeds, startedAt, finishedAt string

		if err := rows.Scan(&run.ID, &run.Profile, &seeds, &startedAt, &finishedAt,
			&run.PagesSaved, &run.PagesFailed); err != nil {
			return nil, err
		}

		run.Seeds = splitSeeds(seeds)
		run.StartedAt, err = parseRFC3339(startedAt, "started_at")
		if err != nil {
			return nil, err
		}
		if finishedAt != "" {
			run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at")
			if err != nil {
				return nil, err
			}
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
