package mock

import "github.com/ranjeethpt/openowl"

var _ openowl.Reader = (*Reader)(nil)

// Reader is a mock implementation of openowl.Reader.
type Reader struct {
	ReadArticleFn func(html string) (*openowl.Article, error)
}

func (r *Reader) ReadArticle(html string) (*openowl.Article, error) {
	return r.ReadArticleFn(html)
}
