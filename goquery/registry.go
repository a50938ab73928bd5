package goquery

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/ranjeethpt/openowl"
)

var _ openowl.Dispatcher = (*Registry)(nil)

// DefaultExtractBudget is the default deadline for a single dispatch.
// Extraction is synchronous DOM work that cannot be preempted; the budget
// bounds how long the caller waits for a result, not how long the variant
// runs.
const DefaultExtractBudget = 2 * time.Second

// Registry holds the site variants in a fixed, total priority order plus
// the generic fallback, and dispatches pages to the first variant whose
// domain-match predicate succeeds. Dispatch never returns nil and never
// panics: timeouts and escapes are normalized into error-shaped records.
type Registry struct {
	variants []openowl.Extractor
	fallback openowl.Extractor
	budget   time.Duration
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithVariants replaces the default site variants. Order is priority
// order: when a URL could match several variants' domain sets, the
// earliest-listed variant wins.
func WithVariants(variants ...openowl.Extractor) RegistryOption {
	return func(r *Registry) {
		r.variants = variants
	}
}

// WithFallback replaces the default generic fallback variant.
func WithFallback(fallback openowl.Extractor) RegistryOption {
	return func(r *Registry) {
		r.fallback = fallback
	}
}

// WithExtractBudget sets the dispatch deadline.
// Defaults to DefaultExtractBudget (2s) if not specified.
func WithExtractBudget(d time.Duration) RegistryOption {
	return func(r *Registry) {
		if d > 0 {
			r.budget = d
		}
	}
}

// NewRegistry creates a Registry with the default variants in priority
// order and the generic fallback.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		variants: []openowl.Extractor{
			NewGitHubExtractor(),
			NewAtlassianExtractor(),
			NewGmailExtractor(),
			NewCalendarExtractor(),
			NewNotionExtractor(),
			NewLinearExtractor(),
		},
		fallback: NewGenericExtractor(),
		budget:   DefaultExtractBudget,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Variants returns the registered site variants in priority order.
func (r *Registry) Variants() []openowl.Extractor {
	return r.variants
}

// Match returns the first variant whose domain set matches rawURL, or the
// generic fallback when none do.
func (r *Registry) Match(rawURL string) openowl.Extractor {
	for _, v := range r.variants {
		if openowl.MatchesDomain(v.Domains(), rawURL) {
			return v
		}
	}
	return r.fallback
}

// Dispatch selects a variant for the page and runs its extraction under
// the registry's deadline. If the deadline elapses first, the variant's
// result is abandoned and an error-shaped record is returned; the
// synchronous extraction itself is not interrupted (no preemption exists)
// and any late result is discarded.
func (r *Registry) Dispatch(ctx context.Context, page *openowl.Page) (result *openowl.ExtractedContent) {
	defer func() {
		if p := recover(); p != nil {
			result = errorResult(page, fmt.Sprintf("dispatch panic: %v", p))
		}
	}()

	if page == nil {
		return errorResult(nil, "nil page")
	}
	if _, err := url.Parse(page.URL); err != nil || page.URL == "" {
		return errorResult(page, "unparseable URL")
	}

	variant := r.Match(page.URL)

	// Buffered so an abandoned extraction can still deliver and exit.
	resCh := make(chan *openowl.ExtractedContent, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				resCh <- errorResult(page, fmt.Sprintf("variant panic: %v", p))
			}
		}()
		resCh <- variant.Extract(page)
	}()

	timer := time.NewTimer(r.budget)
	defer timer.Stop()

	select {
	case res := <-resCh:
		if res == nil {
			return errorResult(page, "variant returned no result")
		}
		return res
	case <-timer.C:
		return errorResult(page, "timeout after "+r.budget.String())
	case <-ctx.Done():
		return errorResult(page, "canceled: "+ctx.Err().Error())
	}
}

// errorResult builds the error-shaped record the dispatcher returns for
// timeouts and failures escaping a variant's own boundary.
func errorResult(page *openowl.Page, reason string) *openowl.ExtractedContent {
	res := BuildResult(page, "", openowl.TypeError, openowl.MethodFallback,
		"(timeout or error: "+reason+")",
		map[string]string{"error": reason})
	if page != nil && page.Title != "" {
		res.Title = Truncate(CleanText(page.Title), 300)
	}
	return res
}
