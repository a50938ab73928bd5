// Package trafilatura provides an openowl.Reader backed by go-trafilatura.
// Compared to readability it is more aggressive about boilerplate, which
// suits template-heavy sites.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/ranjeethpt/openowl"
	"golang.org/x/net/html"
)

// Ensure Reader implements openowl.Reader at compile time.
var _ openowl.Reader = (*Reader)(nil)

// Reader extracts full article content from HTML using go-trafilatura.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadArticle processes raw HTML and returns the main content.
func (r *Reader) ReadArticle(rawHTML string) (*openowl.Article, error) {
	if rawHTML == "" {
		return nil, openowl.Errorf(openowl.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &openowl.Article{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
