package process

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/arcdoc"
	"github.com/fwojciec/arcdoc/fs"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            margin: 0 auto;
            padding: 20px;
            max-width: 1200px;
        }
        header {
            background-color: #00274c;
            color: white;
            padding: 10px 20px;
            margin-bottom: 20px;
        }
        h1 { margin-top: 0; }
        .content { padding: 0 20px; }
        .links {
            margin-top: 30px;
            border-top: 1px solid #ccc;
            padding-top: 20px;
        }
        .links h2 { color: #00274c; }
        .links ul { padding-left: 20px; }
        footer {
            margin-top: 30px;
            border-top: 1px solid #ccc;
            padding-top: 10px;
            color: #666;
            font-size: 0.8em;
        }
    </style>
</head>
<body>
    <header>
        <h1>{{.Title}}</h1>
    </header>
    <div class="content">
{{range .Blocks}}        <p>{{.}}</p>
{{end}}
        <div class="links">
            <h2>Related Pages</h2>
            <ul>
{{range .Related}}                <li><a href="{{.Href}}">{{.Text}}</a></li>
{{end}}            </ul>
        </div>
    </div>
    <footer>
        <p>Source: <a href="{{.URL}}">{{.URL}}</a></p>
        <p>Generated from {{.SiteTitle}}</p>
    </footer>
</body>
</html>
`

const indexTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.SiteTitle}} Index</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            margin: 0 auto;
            padding: 20px;
            max-width: 1200px;
        }
        header {
            background-color: #00274c;
            color: white;
            padding: 10px 20px;
            margin-bottom: 20px;
        }
        h1 { margin-top: 0; }
        h2 { color: #00274c; }
        .content { padding: 0 20px; }
        ul { padding-left: 20px; }
        footer {
            margin-top: 30px;
            border-top: 1px solid #ccc;
            padding-top: 10px;
            color: #666;
            font-size: 0.8em;
        }
    </style>
</head>
<body>
    <header>
        <h1>{{.SiteTitle}} Index</h1>
    </header>
    <div class="content">
        <p>This is an index of all captured pages from {{.SiteTitle}}.</p>
{{range .Categories}}        <h2>{{.Name}}</h2>
        <ul>
{{range .Pages}}            <li><a href="{{.Href}}">{{.Text}}</a></li>
{{end}}        </ul>
{{end}}    </div>
    <footer>
        <p>Generated from {{.SiteTitle}}</p>
    </footer>
</body>
</html>
`

var (
	pageTmpl  = template.Must(template.New("page").Parse(pageTemplate))
	indexTmpl = template.Must(template.New("index").Parse(indexTemplate))
)

type relatedLink struct {
	Href string
	Text string
}

type pageData struct {
	Title     string
	Blocks    []string
	Related   []relatedLink
	URL       string
	SiteTitle string
}

type indexCategory struct {
	Name  string
	Pages []relatedLink
}

type indexData struct {
	SiteTitle  string
	Categories []indexCategory
}

// renderSite writes one HTML file per page plus an index.html into the
// html/ subdirectory of the output directory. A page that fails to
// render is logged and skipped.
func (p *Processor) renderSite(ctx context.Context, pages []*arcdoc.Page, categories map[string][]string) error {
	htmlDir := filepath.Join(p.OutputDir, "html")
	if err := os.MkdirAll(htmlDir, 0755); err != nil {
		return err
	}

	byURL := make(map[string]*arcdoc.Page, len(pages))
	for _, page := range pages {
		byURL[page.URL] = page
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.renderConcurrency())
	for _, page := range pages {
		page := page
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := renderPage(htmlDir, page, byURL, p.siteTitle()); err != nil {
				p.logger().Error("page render failed", "url", page.URL, "err", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return renderIndex(htmlDir, byURL, categories, p.siteTitle())
}

func renderPage(dir string, page *arcdoc.Page, byURL map[string]*arcdoc.Page, siteTitle string) error {
	name, err := fs.URLToFilename(page.URL, ".html")
	if err != nil {
		return err
	}

	data := pageData{
		Title:     page.Title,
		URL:       page.URL,
		SiteTitle: siteTitle,
	}
	for _, block := range strings.Split(page.Content, "\n") {
		if block = strings.TrimSpace(block); block != "" {
			data.Blocks = append(data.Blocks, block)
		}
	}
	// Related links point only at pages in the captured set, as sibling
	// files so the site browses offline.
	for _, link := range page.Links {
		if _, ok := byURL[link.URL]; !ok {
			continue
		}
		href, err := fs.URLToFilename(link.URL, ".html")
		if err != nil {
			continue
		}
		data.Related = append(data.Related, relatedLink{Href: href, Text: link.Text})
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0644)
}

func renderIndex(dir string, byURL map[string]*arcdoc.Page, categories map[string][]string, siteTitle string) error {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)

	data := indexData{SiteTitle: siteTitle}
	for _, name := range names {
		cat := indexCategory{Name: capitalize(name)}
		for _, u := range categories[name] {
			page, ok := byURL[u]
			if !ok {
				continue
			}
			href, err := fs.URLToFilename(u, ".html")
			if err != nil {
				continue
			}
			cat.Pages = append(cat.Pages, relatedLink{Href: href, Text: page.Title})
		}
		if len(cat.Pages) > 0 {
			data.Categories = append(data.Categories, cat)
		}
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "index.html"), buf.Bytes(), 0644)
}

// capitalize upper-cases the first rune and lower-cases the rest, so
// "great-lakes" renders as "Great-lakes" in section headings.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
}
