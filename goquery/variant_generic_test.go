package goquery_test

import (
	"strings"
	"testing"

	"github.com/ranjeethpt/openowl"
	"github.com/ranjeethpt/openowl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericExtractor(t *testing.T) {
	t.Parallel()

	e := goquery.NewGenericExtractor()

	t.Run("never matches by domain", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, e.Domains())
		assert.False(t, openowl.MatchesDomain(e.Domains(), "https://example.com"))
	})

	t.Run("layer 1 wins when a semantic container has enough text", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("semantic content here ", 8) // >100 chars
		page := &openowl.Page{
			URL:  "https://example.com/post",
			HTML: "<html><body><nav>chrome</nav><main>" + text + "</main></body></html>",
		}

		res := e.Extract(page)

		require.NoError(t, res.Validate())
		assert.Equal(t, "1", res.Meta("layer"))
		assert.Equal(t, openowl.MethodGeneric, res.ExtractionMethod)
		assert.NotContains(t, res.Content, "chrome")
	})

	t.Run("layer 1 skips semantic containers below the threshold", func(t *testing.T) {
		t.Parallel()

		body := strings.Repeat("body words ", 10) // >50 chars of plain body text
		page := &openowl.Page{
			URL:  "https://example.com/post",
			HTML: "<html><body><main>tiny</main><p>" + body + "</p></body></html>",
		}

		res := e.Extract(page)

		assert.Equal(t, "2", res.Meta("layer"))
	})

	t.Run("layer 2 strips noise elements from the body", func(t *testing.T) {
		t.Parallel()

		body := strings.Repeat("real article text ", 6)
		page := &openowl.Page{
			URL: "https://example.com/post",
			HTML: `<html><body>
				<nav>site nav</nav>
				<div class="cookie-banner">Accept cookies</div>
				<div class="modal-overlay">subscribe now</div>
				<p>` + body + `</p>
				<footer>copyright</footer>
			</body></html>`,
		}

		res := e.Extract(page)

		assert.Equal(t, "2", res.Meta("layer"))
		assert.Contains(t, res.Content, "real article text")
		assert.NotContains(t, res.Content, "Accept cookies")
		assert.NotContains(t, res.Content, "subscribe now")
		assert.NotContains(t, res.Content, "site nav")
		assert.NotContains(t, res.Content, "copyright")
	})

	t.Run("layer 3 falls back to the title for an empty body", func(t *testing.T) {
		t.Parallel()

		page := &openowl.Page{
			URL:  "https://example.com/empty",
			HTML: "<html><head><title>Just a title</title></head><body></body></html>",
		}

		res := e.Extract(page)

		assert.Equal(t, "3", res.Meta("layer"))
		assert.Equal(t, "Just a title", res.Content)
		assert.Equal(t, openowl.MethodGeneric, res.ExtractionMethod)
	})

	t.Run("page with nothing at all yields the placeholder title", func(t *testing.T) {
		t.Parallel()

		page := &openowl.Page{URL: "https://example.com/blank", HTML: ""}

		res := e.Extract(page)

		require.NoError(t, res.Validate())
		assert.Equal(t, openowl.DefaultTitle, res.Title)
		assert.Equal(t, openowl.DefaultTitle, res.Content)
	})
}
