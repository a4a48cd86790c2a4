package process

import (
	"regexp"
	"strings"

	"github.com/fwojciec/arcdoc"
)

// ServiceInfo describes one named service found in the captured
// content. Mentions records the page URL of every match, so a page
// that defines the service twice appears twice.
type ServiceInfo struct {
	Description string   `json:"description"`
	Mentions    []string `json:"mentions"`
}

// FAQItem is a question block paired with the block that follows it.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Source   string `json:"source"`
}

// KnowledgeBase is the extracted knowledge_base.json shape. Topics and
// Resources are reserved keys kept for format compatibility.
type KnowledgeBase struct {
	Topics    map[string]string       `json:"topics"`
	Services  map[string]*ServiceInfo `json:"services"`
	Resources map[string]string       `json:"resources"`
	FAQ       []FAQItem               `json:"faq"`
}

// ExtractKnowledgeBase scans captured pages for service definitions and
// FAQ pairs. A service definition is "<name> is <text up to the next
// period>"; the first definition wins and every match records a
// mention. A FAQ pair is a content block ending in "?" (under 200
// characters) followed by its answer block.
func ExtractKnowledgeBase(pages []*arcdoc.Page, services []string) *KnowledgeBase {
	kb := &KnowledgeBase{
		Topics:    map[string]string{},
		Services:  map[string]*ServiceInfo{},
		Resources: map[string]string{},
		FAQ:       []FAQItem{},
	}

	var pattern *regexp.Regexp
	if len(services) > 0 {
		pattern = servicePattern(services)
	}

	for _, page := range pages {
		if pattern != nil {
			for _, m := range pattern.FindAllStringSubmatch(page.Content, -1) {
				name := m[1]
				desc := strings.TrimSpace(m[2])
				if info, ok := kb.Services[name]; ok {
					info.Mentions = append(info.Mentions, page.URL)
					continue
				}
				kb.Services[name] = &ServiceInfo{
					Description: desc,
					Mentions:    []string{page.URL},
				}
			}
		}
		kb.FAQ = append(kb.FAQ, extractFAQ(page)...)
	}

	return kb
}

func servicePattern(services []string) *regexp.Regexp {
	quoted := make([]string, len(services))
	for i, s := range services {
		quoted[i] = regexp.QuoteMeta(s)
	}
	return regexp.MustCompile(`(` + strings.Join(quoted, "|") + `)\s+is\s+([^.]+)`)
}

func extractFAQ(page *arcdoc.Page) []FAQItem {
	if !strings.Contains(page.Content, "?") {
		return nil
	}

	blocks := strings.Split(page.Content, "\n")
	var items []FAQItem
	for i := 0; i < len(blocks)-1; i++ {
		q := strings.TrimSpace(blocks[i])
		if !strings.HasSuffix(q, "?") || len(q) >= 200 {
			continue
		}
		items = append(items, FAQItem{
			Question: q,
			Answer:   strings.TrimSpace(blocks[i+1]),
			Source:   page.URL,
		})
	}
	return items
}
