package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/arcdoc"
)

// Ensure type implements interface.
var _ arcdoc.MirrorWriter = (*MirrorWriter)(nil)

// MirrorWriter persists a Markdown rendition of each page beside its
// JSON record, with a frontmatter block recording provenance.
type MirrorWriter struct {
	dir string
}

// NewMirrorWriter returns a mirror writer rooted at dir.
func NewMirrorWriter(dir string) *MirrorWriter {
	return &MirrorWriter{dir: dir}
}

// WriteMirror writes the page's Markdown rendition to a file named
// after its URL with a .md extension.
func (w *MirrorWriter) WriteMirror(ctx context.Context, page *arcdoc.Page, markdown string) error {
	name, err := URLToFilename(page.URL, ".md")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	content := FormatMirror(page, markdown, time.Now())
	return writeFileAtomic(filepath.Join(w.dir, name), []byte(content))
}

// FormatMirror renders a page as Markdown with YAML frontmatter
// containing the source URL, title, and crawl date.
func FormatMirror(page *arcdoc.Page, markdown string, crawled time.Time) string {
	var sb strings.Builder

	sb.WriteString("---\n")
	sb.WriteString(fmt.Sprintf("source: %s\n", page.URL))
	sb.WriteString(fmt.Sprintf("title: %s\n", page.Title))
	sb.WriteString(fmt.Sprintf("crawled: %s\n", crawled.Format("2006-01-02")))
	sb.WriteString("---\n\n")
	sb.WriteString(markdown)

	return sb.String()
}
