package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ranjeethpt/openowl"
	"github.com/ranjeethpt/openowl/watch"
)

// Run executes the watch command.
func (c *WatchCmd) Run(deps *Dependencies) error {
	urls := c.URLs
	if c.Site != "" {
		discovered, err := deps.Discoverer.Discover(deps.Ctx, c.Site)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Discovered %d pages on %s\n", len(discovered), c.Site)
		urls = append(urls, discovered...)
	}
	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no URLs to watch. Pass URLs or use --site to discover them.")
		return openowl.Errorf(openowl.EINVALID, "no URLs to watch")
	}

	watcher := watch.NewWatcher(deps.Fetcher, deps.Dispatcher, deps.Visits, watch.NewDomainLimiter(c.RPS))
	watcher.Concurrency = c.Concurrency
	watcher.RetryDelays = deps.RetryDelays

	progress := func(event watch.ProgressEvent) {
		switch event.Type {
		case watch.ProgressCaptured:
			fmt.Fprintf(deps.Stdout, "[%d/%d] captured %s\n", event.Completed, event.Total, watch.TruncateURL(event.URL, 70))
		case watch.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "[%d/%d] skipped  %s\n", event.Completed, event.Total, watch.TruncateURL(event.URL, 70))
		case watch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] failed   %s: %v\n", event.Completed, event.Total, watch.TruncateURL(event.URL, 70), event.Error)
		}
	}

	if c.Interval > 0 {
		fmt.Fprintf(deps.Stdout, "Watching %d URLs every %s. Ctrl-C to stop.\n", len(urls), c.Interval)
		err := watcher.Watch(deps.Ctx, urls, c.Interval, progress)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	result, err := watcher.Run(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", openowl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Captured %d, skipped %d, failed %d\n", result.Captured, result.Skipped, result.Failed)
	return nil
}
