package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/ranjeethpt/openowl"
	"github.com/ranjeethpt/openowl/fs"
)

// visitFilter builds a filter from optional day/domain/URL strings.
func visitFilter(day, domain, url string, limit, offset int) openowl.VisitFilter {
	filter := openowl.VisitFilter{Limit: limit, Offset: offset}
	if day != "" {
		filter.Day = &day
	}
	if domain != "" {
		filter.Domain = &domain
	}
	if url != "" {
		filter.URL = &url
	}
	return filter
}

// Run executes the history list command.
func (c *HistoryListCmd) Run(deps *Dependencies) error {
	visits, err := deps.Visits.FindVisits(deps.Ctx, visitFilter(c.Day, c.Domain, c.URL, c.Limit, c.Offset))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
		return err
	}

	if len(visits) == 0 {
		fmt.Fprintln(deps.Stdout, "No visits found. Use 'openowl watch' or 'openowl extract --save' to record some.")
		return nil
	}

	if c.Full {
		fmt.Fprintln(deps.Stdout, openowl.FormatVisits(visits))
		return nil
	}

	for _, v := range visits {
		title := v.Title
		if title == "" {
			title = v.URL
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %-16s %s\n    %s\n",
			shortID(v.ID), v.VisitedAt.Format("2006-01-02 15:04"), v.Type, title, v.URL)
	}
	return nil
}

// Run executes the history show command.
func (c *HistoryShowCmd) Run(deps *Dependencies) error {
	visit, err := deps.Visits.FindVisitByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "ID:      %s\n", visit.ID)
	fmt.Fprintf(deps.Stdout, "Title:   %s\n", visit.Title)
	fmt.Fprintf(deps.Stdout, "URL:     %s\n", visit.URL)
	fmt.Fprintf(deps.Stdout, "Domain:  %s\n", visit.Domain)
	fmt.Fprintf(deps.Stdout, "Type:    %s\n", visit.Type)
	fmt.Fprintf(deps.Stdout, "Method:  %s\n", visit.ExtractionMethod)
	fmt.Fprintf(deps.Stdout, "Visited: %s\n", visit.VisitedAt.Format("2006-01-02 15:04"))
	if len(visit.Metadata) > 0 {
		keys := make([]string, 0, len(visit.Metadata))
		for k := range visit.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(deps.Stdout, "  %s: %s\n", k, visit.Metadata[k])
		}
	}
	fmt.Fprintf(deps.Stdout, "\n%s\n", visit.Content)
	return nil
}

// Run executes the history prune command.
func (c *HistoryPruneCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintln(deps.Stderr, "error: use --force to confirm deletion")
		return openowl.Errorf(openowl.EINVALID, "use --force to confirm deletion")
	}

	n, err := deps.Visits.DeleteVisitsBefore(deps.Ctx, c.Before)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Pruned %d visits before %s\n", n, c.Before)
	return nil
}

// Run executes the history export command.
func (c *HistoryExportCmd) Run(deps *Dependencies) error {
	visits, err := deps.Visits.FindVisits(deps.Ctx, visitFilter(c.Day, c.Domain, "", 0, 0))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
		return err
	}

	exporter := fs.NewExporter(c.Dir, c.Name)
	n, err := exporter.Export(deps.Ctx, visits)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d visits to %s\n", n, filepath.Join(c.Dir, c.Name))
	return nil
}

// shortID abbreviates a visit ID for listing.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
