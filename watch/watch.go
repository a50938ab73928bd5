// Package watch provides the capture loop: it fetches pages, runs them
// through extraction, and records the results as visit history. A single
// pass over a URL set is a Run; Watch repeats runs on an interval so a
// changing page shows up as a new visit.
package watch

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ranjeethpt/openowl"
	"github.com/ranjeethpt/openowl/bloom"
	"golang.org/x/sync/errgroup"
)

// Bloom filter sizing for the seen-state cache.
const (
	seenExpectedStates    = 10000
	seenFalsePositiveRate = 0.01
)

// Watcher orchestrates fetching, extraction and visit recording.
type Watcher struct {
	Fetcher     openowl.Fetcher
	Dispatcher  openowl.Dispatcher
	Visits      openowl.VisitService
	Limiter     openowl.DomainLimiter
	Seen        *bloom.Filter
	Concurrency int
	RetryDelays []time.Duration
}

// NewWatcher creates a Watcher with a fresh seen-state filter.
func NewWatcher(fetcher openowl.Fetcher, dispatcher openowl.Dispatcher, visits openowl.VisitService, limiter openowl.DomainLimiter) *Watcher {
	return &Watcher{
		Fetcher:    fetcher,
		Dispatcher: dispatcher,
		Visits:     visits,
		Limiter:    limiter,
		Seen:       bloom.NewFilter(seenExpectedStates, seenFalsePositiveRate),
	}
}

// Result holds the outcome of one watch pass.
type Result struct {
	Captured int
	Skipped  int
	Failed   int
}

// ProgressEvent reports progress during a watch pass.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCaptured
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting watch progress.
type ProgressFunc func(event ProgressEvent)

// captureOutcome holds the outcome of processing a single URL.
type captureOutcome struct {
	url     string
	skipped bool
	err     error
}

// Capture fetches one URL, extracts it and records the visit.
// Internal browser pages and unchanged page states are skipped; a skip
// returns (nil, nil). Extraction itself never fails; a page that can't
// be parsed is recorded as a degraded visit.
func (w *Watcher) Capture(ctx context.Context, url string) (*openowl.Visit, error) {
	if openowl.IsInternalURL(url) {
		return nil, nil
	}

	if w.Limiter != nil {
		domain := domainOf(url)
		if err := w.Limiter.Wait(ctx, domain); err != nil {
			return nil, err
		}
	}

	delays := w.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	page, err := FetchWithRetryDelays(ctx, url, w.Fetcher.Fetch, nil, delays)
	if err != nil {
		return nil, err
	}

	content := w.Dispatcher.Dispatch(ctx, page)

	hash := stateHash(content.Content)
	if w.Seen != nil && w.Seen.Seen(url, hash) {
		return nil, nil
	}

	visit := openowl.NewVisit(content)
	if err := w.Visits.RecordVisit(ctx, visit); err != nil {
		return nil, err
	}
	if w.Seen != nil {
		w.Seen.Mark(url, hash)
	}
	return visit, nil
}

// Run performs one watch pass over the URL set. URLs are processed
// concurrently, bounded by Concurrency (default 10).
func (w *Watcher) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	concurrency := w.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	outcomeCh := make(chan captureOutcome, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, url := range urls {
			url := url
			g.Go(func() error {
				visit, err := w.Capture(gctx, url)
				outcomeCh <- captureOutcome{
					url:     url,
					skipped: err == nil && visit == nil,
					err:     err,
				}
				return nil
			})
		}
		_ = g.Wait()
		close(outcomeCh)
	}()

	var result Result
	for outcome := range outcomeCh {
		completed.Add(1)
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			URL:       outcome.url,
			Error:     outcome.err,
		}
		switch {
		case outcome.err != nil:
			result.Failed++
			event.Type = ProgressFailed
		case outcome.skipped:
			result.Skipped++
			event.Type = ProgressSkipped
		default:
			result.Captured++
			event.Type = ProgressCaptured
		}
		if progress != nil {
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	if err := ctx.Err(); err != nil {
		return &result, err
	}
	return &result, nil
}

// Watch repeats Run on the given interval until the context is canceled.
// The first pass starts immediately. Per-pass failures don't stop the
// loop; the context is the only way out, and its error is returned.
func (w *Watcher) Watch(ctx context.Context, urls []string, interval time.Duration, progress ProgressFunc) error {
	if interval <= 0 {
		return openowl.Errorf(openowl.EINVALID, "watch interval must be positive")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := w.Run(ctx, urls, progress); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
