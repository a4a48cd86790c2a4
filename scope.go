package arcdoc

import (
	"net/url"
	"strings"
)

// DefaultSkipExtensions lists path extensions that are never fetched.
var DefaultSkipExtensions = []string{"pdf", "doc", "docx", "jpg", "png", "gif"}

// Scope decides whether a discovered URL belongs to the crawl. The host
// must equal the configured documentation host or be a subdomain of it;
// paths ending in a skipped extension are rejected case-insensitively.
// The zero value admits nothing; use NewScope.
type Scope struct {
	host string
	exts []string
}

// NewScope returns a Scope for the given documentation host. A nil
// skipExts uses DefaultSkipExtensions; extensions may be given with or
// without the leading dot.
func NewScope(host string, skipExts []string) *Scope {
	if skipExts == nil {
		skipExts = DefaultSkipExtensions
	}
	exts := make([]string, 0, len(skipExts))
	for _, ext := range skipExts {
		exts = append(exts, "."+strings.ToLower(strings.TrimPrefix(ext, ".")))
	}
	return &Scope{
		host: strings.ToLower(host),
		exts: exts,
	}
}

// Host returns the documentation host this scope admits.
func (s *Scope) Host() string {
	return s.host
}

// InScope reports whether rawURL targets the documentation host in a
// fetchable format. It is a pure predicate with no side effects.
// Schemes without a host (mailto:, javascript:, tel:) fail the host rule.
func (s *Scope) InScope(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	if host != s.host && !strings.HasSuffix(host, "."+s.host) {
		return false
	}

	path := strings.ToLower(u.Path)
	for _, ext := range s.exts {
		if strings.HasSuffix(path, ext) {
			return false
		}
	}
	return true
}
