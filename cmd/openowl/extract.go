package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ranjeethpt/openowl"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if openowl.IsInternalURL(c.URL) {
		fmt.Fprintf(deps.Stderr, "error: %q is a browser-internal URL and is never extracted\n", c.URL)
		return openowl.Errorf(openowl.EINVALID, "internal URL %q is not extracted", c.URL)
	}

	page, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
		return err
	}

	content := deps.Dispatcher.Dispatch(deps.Ctx, page)

	if c.JSON {
		data, err := json.MarshalIndent(content, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
	} else {
		printContent(deps, content)
	}

	if c.Save {
		visit := openowl.NewVisit(content)
		if err := deps.Visits.RecordVisit(deps.Ctx, visit); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "\nRecorded visit %s\n", visit.ID)
	}

	return nil
}

func printContent(deps *Dependencies, content *openowl.ExtractedContent) {
	fmt.Fprintf(deps.Stdout, "Title:  %s\n", content.Title)
	fmt.Fprintf(deps.Stdout, "URL:    %s\n", content.URL)
	fmt.Fprintf(deps.Stdout, "Type:   %s\n", content.Type)
	fmt.Fprintf(deps.Stdout, "Method: %s\n", content.ExtractionMethod)
	if len(content.Metadata) > 0 {
		keys := make([]string, 0, len(content.Metadata))
		for k := range content.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(deps.Stdout, "  %s: %s\n", k, content.Metadata[k])
		}
	}
	fmt.Fprintf(deps.Stdout, "\n%s\n", content.Content)
}
