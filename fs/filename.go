// Package fs persists crawl output as files on disk: one JSON record
// per page, checkpoint and index files, and an optional Markdown
// mirror of the page content.
package fs

import (
	"net/url"
	"os"
	"regexp"

	"github.com/fwojciec/arcdoc"
)

// Reserved filenames in the output directory. LoadPages skips them so
// crawl metadata never round-trips as page records.
const (
	indexFile   = "index.json"
	linkMapFile = "link_map.json"
	visitedFile = "visited_urls.json"
)

var unsafeChars = regexp.MustCompile(`[^\w\-.]`)

// URLToFilename converts a page URL to a flat filename with the given
// extension. The path becomes the base name with slashes replaced by
// underscores and remaining unsafe characters sanitized; an empty or
// root path maps to "index". A query string is appended after an
// underscore, sanitized the same way. Fragments are ignored.
func URLToFilename(rawURL, ext string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", arcdoc.Errorf(arcdoc.EINVALID, "invalid URL: %s", rawURL)
	}

	p := u.EscapedPath()
	name := "index"
	if p != "" && p != "/" {
		name = unsafeChars.ReplaceAllString(p, "_")
	}
	if u.RawQuery != "" {
		name += "_" + unsafeChars.ReplaceAllString(u.RawQuery, "_")
	}
	return name + ext, nil
}

// writeFileAtomic writes data to path via a temporary file in the same
// directory followed by a rename, so readers never observe a partially
// written file.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
