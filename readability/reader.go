// Package readability provides an openowl.Reader backed by go-readability,
// a port of Mozilla's reader-mode algorithm.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/ranjeethpt/openowl"
)

// Ensure Reader implements openowl.Reader at compile time.
var _ openowl.Reader = (*Reader)(nil)

// Reader extracts full article content from HTML using go-readability.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &openowl.Article{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
