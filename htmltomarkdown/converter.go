// Package htmltomarkdown renders reader-mode article HTML as Markdown
// for history export and question-answering context.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/ranjeethpt/openowl"
)

var _ openowl.Converter = (*Converter)(nil)

// Converter produces CommonMark with table support, which keeps exported
// history files readable in any Markdown viewer.
type Converter struct {
	md *converter.Converter
}

func NewConverter() *Converter {
	return &Converter{
		md: converter.NewConverter(converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		)),
	}
}

// Convert renders html as Markdown. Blank input is rejected rather than
// converted to an empty document.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", openowl.Errorf(openowl.EINVALID, "empty HTML input")
	}

	return c.md.ConvertString(html)
}
