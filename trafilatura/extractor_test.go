package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/arcdoc"
	"github.com/fwojciec/arcdoc/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Great Lakes Cluster - ARC Documentation</title>
<meta property="og:title" content="Great Lakes Cluster">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Great Lakes Cluster</h1>
<p>Great Lakes is the university's flagship high performance computing cluster.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
		assert.Contains(t, result.ContentHTML, "flagship high performance computing")
	})

	t.Run("populates text from content blocks", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Slurm Guide</title></head>
<body>
<article>
<h1>Submitting Jobs</h1>
<p>Jobs are submitted to the scheduler with the sbatch command.</p>
<p>Interactive sessions use salloc instead of sbatch.</p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "sbatch command")
		assert.Contains(t, result.Text, "salloc instead")
		assert.NotContains(t, result.Text, "<p>")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Storage</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/storage">Storage</a></li>
<li><a href="/compute">Compute</a></li>
</ul>
</nav>
<main>
<h1>Storage Services</h1>
<p>This paragraph describes the storage services researchers can request.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "storage services researchers can request")
		assert.NotContains(t, result.ContentHTML, "main-nav")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Accounts</title></head>
<body>
<article>
<h1>Research Accounts</h1>
<p>Account requests go through the unit's resource administrator for approval.</p>
</article>
<footer>
<p>Copyright 2026 Example University</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "resource administrator for approval")
		assert.NotContains(t, result.ContentHTML, "Copyright 2026 Example University")
	})

	t.Run("preserves code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Batch Scripts</title></head>
<body>
<article>
<h1>Batch Scripts</h1>
<p>Here is a minimal batch script:</p>
<pre><code class="language-bash">#!/bin/bash
#SBATCH --job-name=example
#SBATCH --time=00:10:00

srun hostname
</code></pre>
<p>Submit it with: <code>sbatch example.sh</code></p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "srun hostname")
		assert.Contains(t, result.ContentHTML, "job-name=example")
	})

	t.Run("falls back to No Title", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Content without any title metadata.</p></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, arcdoc.NoTitle, result.Title)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, arcdoc.EINVALID, arcdoc.ErrorCode(err))
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Simple content</p></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}
