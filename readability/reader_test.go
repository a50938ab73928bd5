package readability_test

import (
	"testing"

	"github.com/ranjeethpt/openowl"
	"github.com/ranjeethpt/openowl/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	r := readability.NewReader()
	_, err := r.ReadArticle("")

	require.Error(t, err)
	assert.Equal(t, openowl.EINVALID, openowl.ErrorCode(err))
}

func TestReader_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body><article><p>Content</p></article></body>
</html>`

	r := readability.NewReader()
	article, err := r.ReadArticle(html)

	require.NoError(t, err)
	assert.Equal(t, "Page Title", article.Title)
}

func TestReader_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article><p>This is the main article content that should be preserved in the output.</p></article>
</body>
</html>`

	r := readability.NewReader()
	article, err := r.ReadArticle(html)

	require.NoError(t, err)
	assert.NotContains(t, article.ContentHTML, "Home Nav Link")
	assert.NotContains(t, article.ContentHTML, "About Nav Link")
}

func TestReader_RemovesFooter(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article><p>This is the main article content that should be preserved in the output.</p></article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

	r := readability.NewReader()
	article, err := r.ReadArticle(html)

	require.NoError(t, err)
	assert.NotContains(t, article.ContentHTML, "Footer copyright text")
}

func TestReader_RemovesSidebar(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<aside class="sidebar"><p>Sidebar navigation content</p></aside>
<article><p>This is the main article content that should be preserved in the output.</p></article>
</body>
</html>`

	r := readability.NewReader()
	article, err := r.ReadArticle(html)

	require.NoError(t, err)
	assert.NotContains(t, article.ContentHTML, "Sidebar navigation content")
}

func TestReader_KeepsMainArticleContent(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home</a></nav>
<article><p>This is the important article paragraph text that must be kept.</p></article>
<footer><p>Footer</p></footer>
</body>
</html>`

	r := readability.NewReader()
	article, err := r.ReadArticle(html)

	require.NoError(t, err)
	assert.Contains(t, article.ContentHTML, "important article paragraph text")
}

func TestReader_PreservesHeadings(t *testing.T) {
	t.Parallel()

	// Note: go-readability may demote h1 to h2, but heading text is preserved
	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Main Heading</h1>
<p>Some intro text here.</p>
<h2>Subheading Level Two</h2>
<p>More content under the subheading.</p>
</article>
</body>
</html>`

	r := readability.NewReader()
	article, err := r.ReadArticle(html)

	require.NoError(t, err)
	assert.Contains(t, article.ContentHTML, "Main Heading")
	assert.Contains(t, article.ContentHTML, "Subheading Level Two")
	assert.Contains(t, article.ContentHTML, "<h2")
}

func TestReader_PreservesListsAndTables(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<p>Here is a list:</p>
<ul>
<li>First item</li>
<li>Second item</li>
</ul>
<p>And a data table:</p>
<table>
<tr><th>Name</th><th>Value</th></tr>
<tr><td>Foo</td><td>123</td></tr>
</table>
</article>
</body>
</html>`

	r := readability.NewReader()
	article, err := r.ReadArticle(html)

	require.NoError(t, err)
	assert.Contains(t, article.ContentHTML, "<ul")
	assert.Contains(t, article.ContentHTML, "<li")
	assert.Contains(t, article.ContentHTML, "<table")
}

func TestReader_PreservesCodeBlocks(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<p>Here is a code example:</p>
<pre><code>npm install my-package</code></pre>
<p>Use the <code>myVariable</code> to store the value.</p>
</article>
</body>
</html>`

	r := readability.NewReader()
	article, err := r.ReadArticle(html)

	require.NoError(t, err)
	assert.Contains(t, article.ContentHTML, "<pre")
	assert.Contains(t, article.ContentHTML, "npm install my-package")
	assert.Contains(t, article.ContentHTML, "<code")
}
