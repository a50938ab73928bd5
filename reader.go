package openowl

// Article holds the full readable content of a page, beyond the capped
// extraction record. Used when a question needs a whole page as context.
type Article struct {
	// Title is the article title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Reader extracts full article content from raw HTML, removing boilerplate.
type Reader interface {
	// ReadArticle processes raw HTML and returns the main content.
	ReadArticle(html string) (*Article, error)
}
