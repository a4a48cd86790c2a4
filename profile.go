package arcdoc

import (
	"net/url"
	"time"
)

// Defaults describing the UMich Advanced Research Computing documentation
// site, the target this tool was built around. Profiles loaded from YAML
// override them field by field.
const (
	DefaultBaseURL   = "https://documentation.its.umich.edu/advanced-research-computing"
	DefaultSelector  = "div.region-content"
	DefaultOutputDir = "umich_arc_docs"
	DefaultDelay     = time.Second
	DefaultMaxPages  = 1000
)

// SelectorAuto is the content-selector value that turns on per-page
// detection instead of a fixed CSS selector.
const SelectorAuto = "auto"

// DefaultServices are the service names the knowledge-base extractor
// looks for on the ARC site.
var DefaultServices = []string{
	"Great Lakes", "Armis2", "Lighthouse",
	"Turbo", "Locker", "Data Den",
}

// SiteProfile describes one documentation site: where to start, what to
// fetch, and how the captured pages are processed.
type SiteProfile struct {
	Name            string        `json:"name"`
	BaseURL         string        `json:"baseUrl"`
	Seeds           []string      `json:"seeds"`
	ContentSelector string        `json:"contentSelector"`
	SkipExtensions  []string      `json:"skipExtensions"`
	Delay           time.Duration `json:"delay"`
	MaxPages        int           `json:"maxPages"`
	OutputDir       string        `json:"outputDir"`
	Services        []string      `json:"services"`
}

// DefaultProfile returns the profile for the ARC documentation site.
func DefaultProfile() *SiteProfile {
	return &SiteProfile{
		Name:            "umich-arc",
		BaseURL:         DefaultBaseURL,
		ContentSelector: DefaultSelector,
		SkipExtensions:  DefaultSkipExtensions,
		Delay:           DefaultDelay,
		MaxPages:        DefaultMaxPages,
		OutputDir:       DefaultOutputDir,
		Services:        DefaultServices,
	}
}

// Validate returns an error if the profile contains invalid fields.
func (p *SiteProfile) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "profile name required")
	}
	if p.BaseURL == "" {
		return Errorf(EINVALID, "profile base URL required")
	}
	u, err := url.Parse(p.BaseURL)
	if err != nil || u.Hostname() == "" {
		return Errorf(EINVALID, "invalid base URL %q", p.BaseURL)
	}
	if p.Delay < 0 {
		return Errorf(EINVALID, "delay must not be negative")
	}
	if p.MaxPages <= 0 {
		return Errorf(EINVALID, "page cap must be positive")
	}
	if p.OutputDir == "" {
		return Errorf(EINVALID, "profile output directory required")
	}
	return nil
}

// SeedURLs returns the configured seeds, defaulting to the base URL
// followed by its first pagination continuation.
func (p *SiteProfile) SeedURLs() []string {
	if len(p.Seeds) > 0 {
		return p.Seeds
	}
	return []string{p.BaseURL, p.BaseURL + "?page=1"}
}

// Scope returns the URL scope for the profile's host.
func (p *SiteProfile) Scope() (*Scope, error) {
	u, err := url.Parse(p.BaseURL)
	if err != nil || u.Hostname() == "" {
		return nil, Errorf(EINVALID, "invalid base URL %q", p.BaseURL)
	}
	return NewScope(u.Hostname(), p.SkipExtensions), nil
}
