package process_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/arcdoc"
	"github.com/fwojciec/arcdoc/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	t.Parallel()

	generated := time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)

	t.Run("writes stats and category tables", func(t *testing.T) {
		t.Parallel()

		pages := []*arcdoc.Page{
			{
				URL:     "https://docs.example.com/great-lakes/overview",
				Title:   "Great Lakes Overview",
				Content: "Cluster overview.",
				Links: []arcdoc.Link{
					{URL: "https://docs.example.com/storage", Text: "Storage"},
				},
			},
			{
				URL:     "https://docs.example.com/storage",
				Title:   "Storage Services",
				Content: "Turbo and Locker.",
			},
		}

		var buf bytes.Buffer
		err := process.WriteReport(&buf, "ARC Docs", pages, 0, generated)
		require.NoError(t, err)

		report := buf.String()
		assert.Contains(t, report, "# ARC Docs Crawl Report")
		assert.Contains(t, report, "Pages captured")
		assert.Contains(t, report, "2026-08-22")
		assert.Contains(t, report, "## Categories")
		assert.Contains(t, report, "great-lakes")
		assert.Contains(t, report, "storage")
		assert.Contains(t, report, "*Generated from ARC Docs*")
	})

	t.Run("ranks pages by inbound links", func(t *testing.T) {
		t.Parallel()

		pages := []*arcdoc.Page{
			{
				URL:     "https://docs.example.com/a",
				Title:   "A",
				Content: "a",
				Links:   []arcdoc.Link{{URL: "https://docs.example.com/popular", Text: "popular"}},
			},
			{
				URL:     "https://docs.example.com/b",
				Title:   "B",
				Content: "b",
				Links:   []arcdoc.Link{{URL: "https://docs.example.com/popular", Text: "popular"}},
			},
			{URL: "https://docs.example.com/popular", Title: "Popular Page", Content: "p"},
		}

		var buf bytes.Buffer
		err := process.WriteReport(&buf, "ARC Docs", pages, 0, generated)
		require.NoError(t, err)

		report := buf.String()
		assert.Contains(t, report, "## Top Linked Pages")
		assert.Contains(t, report, "Popular Page")
	})

	t.Run("reports when no internal links exist", func(t *testing.T) {
		t.Parallel()

		pages := []*arcdoc.Page{
			{URL: "https://docs.example.com/a", Title: "A", Content: "a"},
		}

		var buf bytes.Buffer
		err := process.WriteReport(&buf, "ARC Docs", pages, 0, generated)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "No internal links recorded.")
	})

	t.Run("groups pages with identical content", func(t *testing.T) {
		t.Parallel()

		pages := []*arcdoc.Page{
			{URL: "https://docs.example.com/a", Title: "A", Content: "Same text."},
			{URL: "https://docs.example.com/b", Title: "B", Content: "Different text."},
			{URL: "https://docs.example.com/c", Title: "C", Content: "Same text."},
		}

		var buf bytes.Buffer
		err := process.WriteReport(&buf, "ARC Docs", pages, 0, generated)
		require.NoError(t, err)

		report := buf.String()
		assert.Contains(t, report, "share identical content")
		assert.Contains(t, report, "https://docs.example.com/a")
		assert.Contains(t, report, "https://docs.example.com/c")
	})

	t.Run("reports when content is unique", func(t *testing.T) {
		t.Parallel()

		pages := []*arcdoc.Page{
			{URL: "https://docs.example.com/a", Title: "A", Content: "One."},
			{URL: "https://docs.example.com/b", Title: "B", Content: "Two."},
		}

		var buf bytes.Buffer
		err := process.WriteReport(&buf, "ARC Docs", pages, 0, generated)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "No duplicate content detected.")
	})

	t.Run("renders mermaid charts", func(t *testing.T) {
		t.Parallel()

		pages := []*arcdoc.Page{
			{
				URL:     "https://docs.example.com/great-lakes/overview",
				Title:   "Great Lakes Overview",
				Content: "Cluster overview.",
				Links: []arcdoc.Link{
					{URL: "https://docs.example.com/storage", Text: "Storage"},
				},
			},
			{URL: "https://docs.example.com/storage", Title: "Storage Services", Content: "Turbo."},
		}

		var buf bytes.Buffer
		err := process.WriteReport(&buf, "ARC Docs", pages, 0, generated)
		require.NoError(t, err)

		report := buf.String()
		assert.Contains(t, report, "```mermaid")
		assert.Contains(t, report, "pie")
		assert.Contains(t, report, "flowchart TD")
		assert.Contains(t, report, `n0["Great Lakes Overview"]`)
		assert.Contains(t, report, "n0 --> n1")
	})

	t.Run("escapes double quotes in flowchart labels", func(t *testing.T) {
		t.Parallel()

		pages := []*arcdoc.Page{
			{URL: "https://docs.example.com/a", Title: `The "Great" Cluster`, Content: "a"},
		}

		var buf bytes.Buffer
		err := process.WriteReport(&buf, "ARC Docs", pages, 0, generated)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), `n0["The 'Great' Cluster"]`)
	})

	t.Run("skips the flowchart above the node limit", func(t *testing.T) {
		t.Parallel()

		pages := make([]*arcdoc.Page, 101)
		for i := range pages {
			pages[i] = &arcdoc.Page{
				URL:     fmt.Sprintf("https://docs.example.com/page-%d", i),
				Title:   fmt.Sprintf("Page %d", i),
				Content: fmt.Sprintf("Content %d.", i),
			}
		}

		var buf bytes.Buffer
		err := process.WriteReport(&buf, "ARC Docs", pages, 0, generated)
		require.NoError(t, err)

		report := buf.String()
		assert.Contains(t, report, "Flowchart skipped: 101 pages")
		assert.NotContains(t, report, "flowchart TD")
	})

	t.Run("honors a custom node limit", func(t *testing.T) {
		t.Parallel()

		pages := []*arcdoc.Page{
			{URL: "https://docs.example.com/a", Title: "A", Content: "a"},
			{URL: "https://docs.example.com/b", Title: "B", Content: "b"},
			{URL: "https://docs.example.com/c", Title: "C", Content: "c"},
		}

		var buf bytes.Buffer
		err := process.WriteReport(&buf, "ARC Docs", pages, 2, generated)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "Flowchart skipped: 3 pages exceeds the 2 node limit.")
	})
}
