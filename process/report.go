package process

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/fwojciec/arcdoc"
	"github.com/fwojciec/arcdoc/crawl"
)

// DefaultFlowchartLimit caps the rendered link-graph flowchart. Mermaid
// diagrams beyond this size are unreadable, so the report notes the
// skip instead.
const DefaultFlowchartLimit = 100

func (p *Processor) writeReport(pages []*arcdoc.Page, generated time.Time) error {
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := WriteReport(&buf, p.siteTitle(), pages, p.FlowchartLimit, generated); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(p.OutputDir, "crawl_report.md"), buf.Bytes(), 0644)
}

// WriteReport renders a markdown crawl report: capture statistics,
// category breakdown, most-linked pages, duplicate content groups, and
// mermaid charts of the category distribution and link graph. A
// non-positive flowchartLimit means DefaultFlowchartLimit.
func WriteReport(w io.Writer, siteTitle string, pages []*arcdoc.Page, flowchartLimit int, generated time.Time) error {
	categories := Categorize(pages)
	graph := BuildLinkGraph(pages)

	md := markdown.NewMarkdown(w)

	md.H1(siteTitle + " Crawl Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Pages captured", strconv.Itoa(len(pages))},
			{"Categories", strconv.Itoa(len(categories))},
			{"Internal links", strconv.Itoa(len(graph.Edges))},
			{"Generated", generated.Format("2006-01-02")},
		},
	})
	md.PlainText("")

	if flowchartLimit <= 0 {
		flowchartLimit = DefaultFlowchartLimit
	}

	writeCategories(md, categories)
	writeTopLinked(md, pages, graph)
	writeDuplicates(md, pages)
	writeCategoryChart(md, categories)
	writeFlowchart(md, graph, flowchartLimit)

	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated from %s*", siteTitle)

	return md.Build()
}

func sortedCategoryNames(categories map[string][]string) []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func writeCategories(md *markdown.Markdown, categories map[string][]string) {
	md.H2("Categories")
	md.PlainText("")

	rows := make([][]string, 0, len(categories))
	for _, name := range sortedCategoryNames(categories) {
		rows = append(rows, []string{name, strconv.Itoa(len(categories[name]))})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Category", "Pages"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeTopLinked(md *markdown.Markdown, pages []*arcdoc.Page, graph *LinkGraph) {
	md.H2("Top Linked Pages")
	md.PlainText("")

	inbound := make(map[string]int)
	for _, edge := range graph.Edges {
		inbound[edge.Target]++
	}
	if len(inbound) == 0 {
		md.PlainText("No internal links recorded.")
		md.PlainText("")
		return
	}

	titles := make(map[string]string, len(pages))
	for _, page := range pages {
		titles[page.URL] = page.Title
	}

	type linkCount struct {
		url   string
		count int
	}
	counts := make([]linkCount, 0, len(inbound))
	for u, n := range inbound {
		counts = append(counts, linkCount{url: u, count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].url < counts[j].url
	})
	if len(counts) > 10 {
		counts = counts[:10]
	}

	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{titles[c.url], c.url, strconv.Itoa(c.count)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Title", "URL", "Linked From"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeDuplicates(md *markdown.Markdown, pages []*arcdoc.Page) {
	md.H2("Duplicate Content")
	md.PlainText("")

	byHash := make(map[string][]*arcdoc.Page)
	var order []string
	for _, page := range pages {
		h := crawl.ComputeHash(page.Content)
		if len(byHash[h]) == 0 {
			order = append(order, h)
		}
		byHash[h] = append(byHash[h], page)
	}

	var found bool
	group := 0
	for _, h := range order {
		dupes := byHash[h]
		if len(dupes) < 2 {
			continue
		}
		found = true
		group++
		urls := make([]string, len(dupes))
		for i, page := range dupes {
			urls[i] = page.URL
		}
		md.PlainTextf("Group %d (%d pages share identical content):", group, len(dupes))
		md.PlainText("")
		md.BulletList(urls...)
		md.PlainText("")
	}
	if !found {
		md.PlainText("No duplicate content detected.")
		md.PlainText("")
	}
}

func writeCategoryChart(md *markdown.Markdown, categories map[string][]string) {
	if len(categories) == 0 {
		return
	}

	md.H2("Category Distribution")

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Pages per Category"),
		piechart.WithShowData(true),
	)
	for _, name := range sortedCategoryNames(categories) {
		chart.LabelAndIntValue(name, uint64(len(categories[name])))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func writeFlowchart(md *markdown.Markdown, graph *LinkGraph, limit int) {
	md.H2("Link Graph")
	md.PlainText("")

	if len(graph.Nodes) > limit {
		md.PlainTextf("Flowchart skipped: %d pages exceeds the %d node limit.", len(graph.Nodes), limit)
		md.PlainText("")
		return
	}
	if len(graph.Nodes) == 0 {
		md.PlainText("No pages captured.")
		md.PlainText("")
		return
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, flowchart(graph))
	md.PlainText("")
}

func flowchart(graph *LinkGraph) string {
	ids := make(map[string]string, len(graph.Nodes))
	var b strings.Builder
	b.WriteString("flowchart TD")
	for i, node := range graph.Nodes {
		id := fmt.Sprintf("n%d", i)
		ids[node.ID] = id
		// Double quotes break mermaid labels.
		label := strings.ReplaceAll(node.Title, `"`, "'")
		fmt.Fprintf(&b, "\n    %s[\"%s\"]", id, label)
	}
	for _, edge := range graph.Edges {
		fmt.Fprintf(&b, "\n    %s --> %s", ids[edge.Source], ids[edge.Target])
	}
	return b.String()
}
