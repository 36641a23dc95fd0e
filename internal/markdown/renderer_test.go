package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Basics(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"heading", "# Title", "<h1>Title</h1>\n"},
		{"paragraph", "hello world", "<p>hello world</p>\n"},
		{"empty", "", ""},
		{"emphasis", "*hi*", "<p><em>hi</em></p>\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderer_FencedCode(t *testing.T) {
	r := NewRenderer()

	got, err := r.Render([]byte("```\nfmt.Println(1)\n```\n"))
	require.NoError(t, err)
	assert.Contains(t, got, "<pre><code>")
	assert.Contains(t, got, "fmt.Println(1)")
}

func TestRenderer_Table(t *testing.T) {
	r := NewRenderer()

	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	got, err := r.Render([]byte(src))
	require.NoError(t, err)
	assert.Contains(t, got, "<table>")
	assert.Contains(t, got, "<td>1</td>")
}

func TestRenderer_Deterministic(t *testing.T) {
	r := NewRenderer()

	src := []byte("# A\n\nsome *text* with a [link](https://example.com)\n")
	first, err := r.Render(src)
	require.NoError(t, err)
	second, err := r.Render(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
