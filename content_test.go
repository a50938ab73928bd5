package openowl_test

import (
	"strings"
	"testing"
	"time"

	"github.com/ranjeethpt/openowl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractedContent_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *openowl.ExtractedContent {
		return &openowl.ExtractedContent{
			URL:              "https://example.com/a",
			Title:            "A",
			Domain:           "example.com",
			Content:          "text",
			Type:             "generic",
			ExtractionMethod: openowl.MethodGeneric,
			Timestamp:        time.Now(),
		}
	}

	t.Run("accepts a fully populated record", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, valid().Validate())
	})

	t.Run("rejects missing URL", func(t *testing.T) {
		t.Parallel()

		c := valid()
		c.URL = ""

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, openowl.EINVALID, openowl.ErrorCode(err))
	})

	t.Run("rejects oversized content", func(t *testing.T) {
		t.Parallel()

		c := valid()
		c.Content = strings.Repeat("x", openowl.MaxContentLength+1)

		assert.Error(t, c.Validate())
	})

	t.Run("rejects an unknown extraction method", func(t *testing.T) {
		t.Parallel()

		c := valid()
		c.ExtractionMethod = "guesswork"

		assert.Error(t, c.Validate())
	})
}

func TestIsInternalURL(t *testing.T) {
	t.Parallel()

	internal := []string{
		"chrome://settings",
		"chrome-extension://abc/popup.html",
		"about:blank",
		"edge://flags",
		"moz-extension://xyz",
		"view-source:https://example.com",
		"file:///etc/hosts",
		"  CHROME://newtab",
	}
	for _, u := range internal {
		assert.True(t, openowl.IsInternalURL(u), u)
	}

	external := []string{
		"https://example.com",
		"http://chrome.example.com",
		"https://aboutus.example.com/about",
	}
	for _, u := range external {
		assert.False(t, openowl.IsInternalURL(u), u)
	}
}
