package mock

import "github.com/ranjeethpt/openowl"

var _ openowl.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of openowl.Extractor.
type Extractor struct {
	NameFn    func() string
	DomainsFn func() []string
	ExtractFn func(page *openowl.Page) *openowl.ExtractedContent
}

func (e *Extractor) Name() string {
	return e.NameFn()
}

func (e *Extractor) Domains() []string {
	return e.DomainsFn()
}

func (e *Extractor) Extract(page *openowl.Page) *openowl.ExtractedContent {
	return e.ExtractFn(page)
}
