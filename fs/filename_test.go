package fs_test

import (
	"testing"

	"github.com/fwojciec/arcdoc"
	"github.com/fwojciec/arcdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		ext  string
		want string
	}{
		{
			name: "simple path",
			url:  "https://docs.example.com/about",
			ext:  ".json",
			want: "_about.json",
		},
		{
			name: "nested path",
			url:  "https://docs.example.com/advanced-research-computing/great-lakes",
			ext:  ".json",
			want: "_advanced-research-computing_great-lakes.json",
		},
		{
			name: "root path",
			url:  "https://docs.example.com/",
			ext:  ".json",
			want: "index.json",
		},
		{
			name: "empty path",
			url:  "https://docs.example.com",
			ext:  ".json",
			want: "index.json",
		},
		{
			name: "query string appended",
			url:  "https://docs.example.com/path/a?x=1",
			ext:  ".json",
			want: "_path_a_x_1.json",
		},
		{
			name: "query with multiple parameters",
			url:  "https://docs.example.com/search?q=slurm&page=2",
			ext:  ".json",
			want: "_search_q_slurm_page_2.json",
		},
		{
			name: "fragment ignored",
			url:  "https://docs.example.com/guide#install",
			ext:  ".json",
			want: "_guide.json",
		},
		{
			name: "markdown extension",
			url:  "https://docs.example.com/guide",
			ext:  ".md",
			want: "_guide.md",
		},
		{
			name: "dots and hyphens preserved",
			url:  "https://docs.example.com/v1.2/api-reference",
			ext:  ".json",
			want: "_v1.2_api-reference.json",
		},
		{
			name: "percent encoding sanitized",
			url:  "https://docs.example.com/docs/slurm%20jobs",
			ext:  ".json",
			want: "_docs_slurm_20jobs.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToFilename(tt.url, tt.ext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("distinct pages get distinct filenames", func(t *testing.T) {
		t.Parallel()

		a, err := fs.URLToFilename("https://docs.example.com/path/a", ".json")
		require.NoError(t, err)
		b, err := fs.URLToFilename("https://docs.example.com/path/a?x=1", ".json")
		require.NoError(t, err)
		c, err := fs.URLToFilename("https://docs.example.com/path/b", ".json")
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
		assert.NotEqual(t, a, c)
		assert.NotEqual(t, b, c)
	})

	t.Run("invalid URL", func(t *testing.T) {
		t.Parallel()

		_, err := fs.URLToFilename("http://docs.example.com/%zz", ".json")
		require.Error(t, err)
		assert.Equal(t, arcdoc.EINVALID, arcdoc.ErrorCode(err))
	})
}
