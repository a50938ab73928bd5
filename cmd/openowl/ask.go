package main

import (
	"fmt"
	"time"

	"github.com/ranjeethpt/openowl"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	visits, err := deps.Visits.FindVisits(deps.Ctx, visitFilter(c.Day, c.Domain, "", c.Limit, 0))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
		return err
	}

	selected, err := openowl.SelectContext(deps.Ctx, visits, deps.Tokens, c.MaxTokens)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
		return err
	}

	if c.Page != "" {
		article, err := c.readPage(deps)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
			return err
		}
		selected = append(selected, article)
	}

	if len(selected) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no visit history to answer from. Run 'openowl watch' first.")
		return openowl.Errorf(openowl.ENOTFOUND, "no visit history to answer from")
	}

	answer, err := deps.Asker.Ask(deps.Ctx, c.Question, selected)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}

// readPage fetches a URL and turns its main article into a context visit,
// bypassing the capped extraction record when the question needs the whole
// page.
func (c *AskCmd) readPage(deps *Dependencies) (*openowl.Visit, error) {
	if openowl.IsInternalURL(c.Page) {
		return nil, openowl.Errorf(openowl.EINVALID, "internal URL %q is not extracted", c.Page)
	}

	page, err := deps.Fetcher.Fetch(deps.Ctx, c.Page)
	if err != nil {
		return nil, err
	}

	article, err := deps.Reader.ReadArticle(page.HTML)
	if err != nil {
		return nil, err
	}

	markdown, err := deps.Converter.Convert(article.ContentHTML)
	if err != nil {
		return nil, err
	}

	return &openowl.Visit{
		URL:       c.Page,
		Title:     article.Title,
		Content:   markdown,
		VisitedAt: time.Now(),
	}, nil
}
