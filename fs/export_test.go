package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ranjeethpt/openowl"
	"github.com/ranjeethpt/openowl/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVisit() *openowl.Visit {
	return &openowl.Visit{
		ID:               "1a2b3c4d-0000-0000-0000-000000000000",
		URL:              "https://github.com/owner/repo/pull/42",
		Title:            "Fix flaky test",
		Domain:           "github.com",
		Content:          "PR: Fix flaky test. Status: open.",
		Type:             "github_pr",
		ExtractionMethod: openowl.MethodSiteSpecific,
		Day:              "2026-08-31",
		VisitedAt:        time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC),
	}
}

func TestVisitPath(t *testing.T) {
	t.Parallel()

	t.Run("builds day directory and URL slug", func(t *testing.T) {
		t.Parallel()

		path, err := fs.VisitPath(testVisit())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("2026-08-31", "github.com-owner-repo-pull-42-1a2b3c4d.md"), path)
	})

	t.Run("falls back to visited date when day is empty", func(t *testing.T) {
		t.Parallel()

		visit := testVisit()
		visit.Day = ""
		path, err := fs.VisitPath(visit)
		require.NoError(t, err)
		assert.Equal(t, "2026-08-31", filepath.Dir(path))
	})

	t.Run("collapses unsafe characters into dashes", func(t *testing.T) {
		t.Parallel()

		visit := testVisit()
		visit.URL = "https://example.com/docs/api%20v2/Users&Groups"
		path, err := fs.VisitPath(visit)
		require.NoError(t, err)
		assert.Equal(t, "example.com-docs-api-v2-users-groups-1a2b3c4d.md", filepath.Base(path))
	})

	t.Run("caps very long URLs", func(t *testing.T) {
		t.Parallel()

		visit := testVisit()
		visit.URL = "https://example.com/a" + strings.Repeat("/very-long-path-segment", 10)
		path, err := fs.VisitPath(visit)
		require.NoError(t, err)
		assert.Less(t, len(filepath.Base(path)), 100)
	})
}

func TestFormatVisit(t *testing.T) {
	t.Parallel()

	t.Run("includes frontmatter and content", func(t *testing.T) {
		t.Parallel()

		out := fs.FormatVisit(testVisit())

		assert.Contains(t, out, "source: https://github.com/owner/repo/pull/42\n")
		assert.Contains(t, out, "title: Fix flaky test\n")
		assert.Contains(t, out, "domain: github.com\n")
		assert.Contains(t, out, "type: github_pr\n")
		assert.Contains(t, out, "method: site_specific\n")
		assert.Contains(t, out, "visited: 2026-08-31 14:30\n")
		assert.Contains(t, out, "# Fix flaky test\n")
		assert.Contains(t, out, "PR: Fix flaky test. Status: open.")
	})
}

func TestExporter(t *testing.T) {
	t.Parallel()

	t.Run("exports visits as markdown files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		exporter := fs.NewExporter(dir, "history")

		n, err := exporter.Export(context.Background(), []*openowl.Visit{testVisit()})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		data, err := os.ReadFile(filepath.Join(dir, "history", "2026-08-31", "github.com-owner-repo-pull-42-1a2b3c4d.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "Fix flaky test")
	})

	t.Run("commit removes the temporary directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		exporter := fs.NewExporter(dir, "history")

		_, err := exporter.Export(context.Background(), []*openowl.Visit{testVisit()})
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "history.tmp"))
		assert.True(t, os.IsNotExist(err), "temp dir should be gone after commit")
	})

	t.Run("export replaces a previous export", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		first := testVisit()
		_, err := fs.NewExporter(dir, "history").Export(context.Background(), []*openowl.Visit{first})
		require.NoError(t, err)

		second := testVisit()
		second.ID = "99999999-0000-0000-0000-000000000000"
		second.URL = "https://example.com/changed"
		_, err = fs.NewExporter(dir, "history").Export(context.Background(), []*openowl.Visit{second})
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "history", "2026-08-31", "github.com-owner-repo-pull-42-1a2b3c4d.md"))
		assert.True(t, os.IsNotExist(err), "old export should be replaced")

		_, err = os.Stat(filepath.Join(dir, "history", "2026-08-31", "example.com-changed-99999999.md"))
		assert.NoError(t, err)
	})

	t.Run("invalid visit aborts without committing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		exporter := fs.NewExporter(dir, "history")

		invalid := testVisit()
		invalid.URL = ""
		_, err := exporter.Export(context.Background(), []*openowl.Visit{invalid})
		require.Error(t, err)
		assert.Equal(t, openowl.EINVALID, openowl.ErrorCode(err))

		_, err = os.Stat(filepath.Join(dir, "history"))
		assert.True(t, os.IsNotExist(err), "failed export should not commit")
		_, err = os.Stat(filepath.Join(dir, "history.tmp"))
		assert.True(t, os.IsNotExist(err), "failed export should clean up temp dir")
	})

	t.Run("exports an empty visit set as an empty directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		exporter := fs.NewExporter(dir, "history")

		n, err := exporter.Export(context.Background(), nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
