package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/arcdoc"
	"github.com/fwojciec/arcdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexWriter_WriteIndex(t *testing.T) {
	t.Parallel()

	t.Run("writes index.json", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writer := fs.NewIndexWriter(dir)

		index := arcdoc.BuildIndex([]*arcdoc.Page{
			{
				URL:   "https://docs.example.com/",
				Title: "Home",
				Links: []arcdoc.Link{
					{URL: "https://docs.example.com/guide", Text: "Guide"},
					{URL: "https://docs.example.com/api", Text: "API"},
				},
			},
			{URL: "https://docs.example.com/guide", Title: "Guide"},
		})
		err := writer.WriteIndex(context.Background(), index)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "index.json"))
		require.NoError(t, err)

		var got arcdoc.Index
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, 2, got.TotalPages)
		require.Len(t, got.Pages, 2)
		assert.Equal(t, "https://docs.example.com/", got.Pages[0].URL)
		assert.Equal(t, "Home", got.Pages[0].Title)
		assert.Equal(t, 2, got.Pages[0].OutgoingLinks)
		assert.Equal(t, 0, got.Pages[1].OutgoingLinks)

		assert.Contains(t, string(data), `"total_pages": 2`)
		assert.Contains(t, string(data), `"outgoing_links": 2`)
	})

	t.Run("overwrites previous index", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writer := fs.NewIndexWriter(dir)
		ctx := context.Background()

		first := arcdoc.BuildIndex([]*arcdoc.Page{
			{URL: "https://docs.example.com/a", Title: "A"},
		})
		require.NoError(t, writer.WriteIndex(ctx, first))

		second := arcdoc.BuildIndex([]*arcdoc.Page{
			{URL: "https://docs.example.com/a", Title: "A"},
			{URL: "https://docs.example.com/b", Title: "B"},
		})
		require.NoError(t, writer.WriteIndex(ctx, second))

		data, err := os.ReadFile(filepath.Join(dir, "index.json"))
		require.NoError(t, err)

		var got arcdoc.Index
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, 2, got.TotalPages)
	})
}
