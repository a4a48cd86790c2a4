// Package bloom provides approximate distinct-URL tracking for crawl
// discovery statistics.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Default sizing for a documentation site crawl. A few hundred pages
// each linking to a few dozen targets stays well under this.
const (
	DefaultCapacity = 100000
	DefaultFPRate   = 0.01
)

// Filter accumulates raw link targets seen during a crawl and reports
// an approximate distinct count. Adds are not goroutine safe.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs with the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// NewDiscoveryFilter creates a filter with the default crawl sizing.
func NewDiscoveryFilter() *Filter {
	return NewFilter(DefaultCapacity, DefaultFPRate)
}

// Add records a URL.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Test returns true if the URL might have been recorded. False
// positives are possible; false negatives are not.
func (f *Filter) Test(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of distinct URLs
// recorded.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
