package fs

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/arcdoc"
)

// Ensure type implements interface.
var _ arcdoc.PageStore = (*Store)(nil)

// Store persists pages as individual JSON files in a flat output
// directory, one file per page, named after the page URL.
type Store struct {
	dir string

	// Logger receives a warning for each record skipped during a load.
	Logger *slog.Logger
}

// NewStore returns a store rooted at dir. The directory is created on
// first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// SavePage writes one page as an indented JSON file. The write goes
// through a temporary file so a crash cannot leave a partial record.
func (s *Store) SavePage(ctx context.Context, page *arcdoc.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	name, err := URLToFilename(page.URL, ".json")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return err
	}

	return writeFileAtomic(filepath.Join(s.dir, name), data)
}

// LoadPages reads every page record in the output directory, sorted by
// filename. Crawl metadata files and non-JSON files are skipped, and a
// record that cannot be read or parsed is logged and skipped rather
// than failing the load.
func (s *Store) LoadPages(ctx context.Context) ([]*arcdoc.Page, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, arcdoc.Errorf(arcdoc.ENOTFOUND, "output directory not found: %s", s.dir)
		}
		return nil, err
	}

	var pages []*arcdoc.Page
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") || isReserved(name) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			s.logger().Warn("skipping unreadable page record", "file", name, "err", err)
			continue
		}

		var page arcdoc.Page
		if err := json.Unmarshal(data, &page); err != nil {
			s.logger().Warn("skipping corrupt page record", "file", name, "err", err)
			continue
		}
		pages = append(pages, &page)
	}
	return pages, nil
}

func (s *Store) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// isReserved reports whether name is a crawl metadata file rather than
// a page record.
func isReserved(name string) bool {
	switch name {
	case indexFile, linkMapFile, visitedFile:
		return true
	}
	return false
}
