package goquery_test

import (
	"testing"

	"github.com/ranjeethpt/openowl"
	"github.com/ranjeethpt/openowl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearExtractor(t *testing.T) {
	t.Parallel()

	e := goquery.NewLinearExtractor()

	t.Run("extracts an issue detail view", func(t *testing.T) {
		t.Parallel()

		page := &openowl.Page{
			URL: "https://linear.app/acme/issue/ENG-214/slow-search",
			HTML: `<html><body>
				<h1 data-testid="issue-title">Search is slow on large workspaces</h1>
				<span data-testid="issue-status">In Progress</span>
				<span data-testid="issue-priority">Urgent</span>
				<span data-testid="issue-assignee">Priya</span>
				<div data-testid="issue-description">Queries over 10k documents take seconds. Add an index.</div>
			</body></html>`,
		}

		res := e.Extract(page)

		require.NoError(t, res.Validate())
		assert.Equal(t, "linear_issue", res.Type)
		assert.Equal(t, "ENG-214", res.Meta("id"))
		assert.Equal(t, "In Progress", res.Meta("status"))
		assert.Equal(t, "Urgent", res.Meta("priority"))
		assert.Equal(t, "Priya", res.Meta("assignee"))
		assert.Contains(t, res.Content, "Add an index")
	})

	t.Run("board view lists up to ten cards", func(t *testing.T) {
		t.Parallel()

		html := "<html><body>"
		for i := 0; i < 12; i++ {
			html += `<div data-board-item>ENG card</div>`
		}
		html += "</body></html>"
		page := &openowl.Page{URL: "https://linear.app/acme/team/ENG/board", HTML: html}

		res := e.Extract(page)

		assert.Equal(t, "linear_board", res.Type)
		assert.Equal(t, "10", res.Meta("count"))
	})
}
