package process

import (
	"net/url"
	"strings"

	"github.com/fwojciec/arcdoc"
)

// RootCategory groups pages whose URL path has no leading segment.
const RootCategory = "root"

// Categorize groups page URLs by the first segment of their URL path.
// Pages at the site root fall under RootCategory. URLs within a
// category keep the order the pages were loaded in.
func Categorize(pages []*arcdoc.Page) map[string][]string {
	categories := make(map[string][]string)
	for _, page := range pages {
		categories[categoryOf(page.URL)] = append(categories[categoryOf(page.URL)], page.URL)
	}
	return categories
}

func categoryOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return RootCategory
	}
	p := strings.Trim(u.Path, "/")
	if p == "" {
		return RootCategory
	}
	return strings.SplitN(p, "/", 2)[0]
}
