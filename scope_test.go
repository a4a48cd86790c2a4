package arcdoc_test

import (
	"testing"

	"github.com/fwojciec/arcdoc"
	"github.com/stretchr/testify/assert"
)

func TestScope_InScope(t *testing.T) {
	t.Parallel()

	scope := arcdoc.NewScope("documentation.its.umich.edu", nil)

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{
			name: "exact host",
			url:  "https://documentation.its.umich.edu/advanced-research-computing",
			want: true,
		},
		{
			name: "subdomain",
			url:  "https://mirror.documentation.its.umich.edu/page",
			want: true,
		},
		{
			name: "host case insensitive",
			url:  "https://Documentation.ITS.umich.edu/page",
			want: true,
		},
		{
			name: "unrelated host",
			url:  "https://example.com/docs",
			want: false,
		},
		{
			name: "host sharing a substring is not admitted",
			url:  "https://documentation.its.umich.edu.attacker.com/page",
			want: false,
		},
		{
			name: "prefixed host is not a subdomain",
			url:  "https://evildocumentation.its.umich.edu/page",
			want: false,
		},
		{
			name: "pdf rejected",
			url:  "https://documentation.its.umich.edu/files/guide.pdf",
			want: false,
		},
		{
			name: "extension case insensitive",
			url:  "https://documentation.its.umich.edu/files/guide.PDF",
			want: false,
		},
		{
			name: "docx rejected",
			url:  "https://documentation.its.umich.edu/files/form.docx",
			want: false,
		},
		{
			name: "png rejected",
			url:  "https://documentation.its.umich.edu/images/logo.png",
			want: false,
		},
		{
			name: "extension in query does not reject",
			url:  "https://documentation.its.umich.edu/download?file=guide.pdf",
			want: true,
		},
		{
			name: "mailto has no host",
			url:  "mailto:help@umich.edu",
			want: false,
		},
		{
			name: "javascript has no host",
			url:  "javascript:void(0)",
			want: false,
		},
		{
			name: "relative path has no host",
			url:  "/advanced-research-computing/storage",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scope.InScope(tt.url))
		})
	}
}

func TestScope_InScope_IsPure(t *testing.T) {
	t.Parallel()

	scope := arcdoc.NewScope("doc.example", nil)
	url := "https://doc.example/arc"

	first := scope.InScope(url)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scope.InScope(url))
	}
}

func TestScope_CustomExtensions(t *testing.T) {
	t.Parallel()

	scope := arcdoc.NewScope("doc.example", []string{".zip", "tar"})

	assert.False(t, scope.InScope("https://doc.example/bundle.zip"))
	assert.False(t, scope.InScope("https://doc.example/bundle.tar"))
	assert.True(t, scope.InScope("https://doc.example/bundle.pdf"))
}
