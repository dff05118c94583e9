package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized_RendersBasicMarkdown(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("**bold** and _italic_")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "<em>italic</em>")
}

func TestToHTMLSanitized_StripsScript(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("hello <script>alert('x')</script> world")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert")
	assert.Contains(t, out, "hello")
}

func TestSanitize_KeepsCodeBlocks(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("```go\nfmt.Println(\"hi\")\n```")
	require.NoError(t, err)
	assert.Contains(t, out, "<pre>")
	assert.Contains(t, out, "<code")
}
