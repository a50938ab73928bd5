// Package fs exports visit history as markdown files on disk.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ranjeethpt/openowl"
)

// maxSlugLength caps the URL-derived part of a file name.
const maxSlugLength = 80

// Exporter writes visits as markdown files with atomic update semantics.
// Files are saved to a temporary directory, then moved atomically on Commit,
// so an interrupted export never leaves a half-written tree behind.
type Exporter struct {
	baseDir string
	name    string
}

// NewExporter creates a new Exporter.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewExporter(baseDir, name string) *Exporter {
	return &Exporter{
		baseDir: baseDir,
		name:    name,
	}
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Exporter) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// Save writes one visit to the temporary export directory.
func (e *Exporter) Save(ctx context.Context, visit *openowl.Visit) error {
	if err := visit.Validate(); err != nil {
		return err
	}

	relPath, err := VisitPath(visit)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(e.tempDir(), relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatVisit(visit)), 0644)
}

// Export saves all visits and commits the result.
// On any save failure the temporary directory is removed and the previous
// export, if any, is left untouched.
func (e *Exporter) Export(ctx context.Context, visits []*openowl.Visit) (int, error) {
	if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
		return 0, err
	}
	for i, visit := range visits {
		if err := e.Save(ctx, visit); err != nil {
			_ = e.Abort()
			return i, err
		}
	}
	if err := e.Commit(); err != nil {
		return 0, err
	}
	return len(visits), nil
}

// Commit atomically replaces the export directory with the temporary one.
func (e *Exporter) Commit() error {
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}
	return os.Rename(e.tempDir(), e.finalDir())
}

// Abort removes the temporary export directory.
func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}

// VisitPath converts a visit to a relative file path inside the export
// tree: one directory per calendar day, one markdown file per visit.
// Example: 2026-08-31/github.com-owner-repo-pull-42-1a2b3c4d.md
func VisitPath(visit *openowl.Visit) (string, error) {
	u, err := url.Parse(visit.URL)
	if err != nil {
		return "", err
	}

	slug := slugify(u.Host + u.Path)
	if slug == "" {
		slug = "visit"
	}
	if id := shortID(visit.ID); id != "" {
		slug += "-" + id
	}

	day := visit.Day
	if day == "" {
		day = visit.VisitedAt.Format(openowl.DayFormat)
	}

	return filepath.Join(day, slug+".md"), nil
}

// FormatVisit formats a visit with YAML frontmatter.
func FormatVisit(visit *openowl.Visit) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(visit.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(visit.Title)
	b.WriteString("\ndomain: ")
	b.WriteString(visit.Domain)
	b.WriteString("\ntype: ")
	b.WriteString(visit.Type)
	b.WriteString("\nmethod: ")
	b.WriteString(string(visit.ExtractionMethod))
	b.WriteString("\nvisited: ")
	b.WriteString(visit.VisitedAt.Format("2006-01-02 15:04"))
	b.WriteString("\n---\n\n")
	b.WriteString("# ")
	b.WriteString(visit.Title)
	b.WriteString("\n\n")
	b.WriteString(visit.Content)
	b.WriteString("\n")
	return b.String()
}

// slugify lowercases s and replaces anything outside [a-z0-9._] with a
// single dash, trimming leading/trailing dashes and capping the length.
func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "-")
	}
	return slug
}

// shortID returns the first 8 characters of a visit ID, enough to keep
// file names unique when two visits share a URL on the same day.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
