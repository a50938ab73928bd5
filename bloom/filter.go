// Package bloom provides probabilistic visit deduplication using Bloom filters.
//
// The watcher hashes each page's extracted content and checks the pair
// (url, hash) against the filter before recording a visit, so re-capturing
// an unchanged page skips the database write. False positives skip a state
// the filter mistakes for one it has seen; false negatives never happen,
// so no unseen state is silently dropped.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter tracks page states the watcher has already processed. A state is
// the pair (url, content hash); revisiting a page whose content changed
// produces a new state and passes the filter. Safe for concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected page states with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// stateKey joins a URL and content hash into a single filter key.
// The "#" separator cannot appear in a hex hash, so keys are unambiguous.
func stateKey(url, contentHash string) string {
	return url + "#" + contentHash
}

// Mark records that the given page state has been processed.
func (f *Filter) Mark(url, contentHash string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(stateKey(url, contentHash))
}

// Seen returns true if the page state might have been processed already.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(url, contentHash string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestString(stateKey(url, contentHash))
}

// EstimatedCount returns the approximate number of recorded page states.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}
