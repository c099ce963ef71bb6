package test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htmldown/htmldown"
)

const articlePage = `<html lang="en">
<head>
	<title>Release Notes</title>
	<meta name="author" content="Jo Doe">
	<meta name="description" content="What changed in 2.0">
</head>
<body>
	<h1>Release Notes</h1>
	<p>Version <strong>2.0</strong> ships <em>today</em>.</p>
	<h2>Changes</h2>
	<ul>
		<li>Faster parsing</li>
		<li>New <code>Convert</code> API</li>
	</ul>
	<blockquote>Upgrade early, upgrade often.</blockquote>
	<table>
		<tr><th>Platform</th><th>Status</th></tr>
		<tr><td>linux</td><td>stable</td></tr>
	</table>
	<pre><code class="language-go">fmt.Println("hi")</code></pre>
</body>
</html>`

func TestConvertFullDocument(t *testing.T) {
	markdown, err := htmldown.Convert(articlePage)
	require.NoError(t, err)

	// Head metadata lands in the leading comment.
	assert.True(t, strings.HasPrefix(markdown, "<!--\n"), "missing metadata comment: %q", markdown)
	assert.Contains(t, markdown, "title: Release Notes")
	assert.Contains(t, markdown, "meta-author: Jo Doe")

	assert.Contains(t, markdown, "# Release Notes")
	assert.Contains(t, markdown, "## Changes")
	assert.Contains(t, markdown, "Version **2.0** ships *today*.")
	assert.Contains(t, markdown, "* Faster parsing")
	assert.Contains(t, markdown, "* New `Convert` API")
	assert.Contains(t, markdown, "> Upgrade early, upgrade often.")
	assert.Contains(t, markdown, "| Platform | Status |")
	assert.Contains(t, markdown, "| --- | --- |")
	assert.Contains(t, markdown, "| linux | stable |")
	assert.Contains(t, markdown, "```go\nfmt.Println(\"hi\")\n```")
}

func TestConvertWithoutMetadataComment(t *testing.T) {
	markdown, err := htmldown.Convert(articlePage, htmldown.WithExtractMetadata(false))
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(markdown, "<!--"), "unexpected comment: %q", markdown)
	assert.True(t, strings.HasPrefix(markdown, "# Release Notes"), "got %q", markdown)
}

func TestConvertDeterministic(t *testing.T) {
	first, err := htmldown.Convert(articlePage)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := htmldown.Convert(articlePage)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestConvertStyleOptions(t *testing.T) {
	input := "<h2>Section</h2><p><strong>bold</strong></p><ul><li>a<ul><li>b</li></ul></li></ul>"

	markdown, err := htmldown.Convert(input,
		htmldown.WithHeadingStyle(htmldown.HeadingATXClosed),
		htmldown.WithStrongEmSymbol('_'),
		htmldown.WithBullets("-"),
		htmldown.WithListIndent(htmldown.ListIndentSpaces, 2),
	)
	require.NoError(t, err)

	assert.Contains(t, markdown, "## Section ##")
	assert.Contains(t, markdown, "__bold__")
	assert.Contains(t, markdown, "- a\n  - b\n")
}

func TestConvertPreservesUnicode(t *testing.T) {
	markdown, err := htmldown.Convert("<p>naïve café 日本語</p>")
	require.NoError(t, err)
	assert.Equal(t, "naïve café 日本語\n", markdown)

	escaped, err := htmldown.Convert("<p>café</p>", htmldown.WithEscapeNonASCII(true))
	require.NoError(t, err)
	assert.Equal(t, "caf&#233;\n", escaped)
}

func TestConvertReaderMatchesString(t *testing.T) {
	conv := htmldown.New()
	fromString, err := conv.ConvertString(articlePage)
	require.NoError(t, err)
	fromReader, err := conv.ConvertReader(strings.NewReader(articlePage))
	require.NoError(t, err)
	assert.Equal(t, fromString, fromReader)
}
