package crawl

import (
	"strings"
	"sync"
)

// Frontier is an in-memory FIFO crawl queue with exact deduplication.
// A URL can be queued at most once over the frontier's lifetime, and the
// earliest-discovered URL is always popped first, which is what makes
// the traversal breadth-first. It is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  map[string]bool
	queue []string
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{seen: make(map[string]bool)}
}

// Push appends a URL to the queue tail.
// Returns false if the URL has already been queued.
// URL fragments are stripped before deduplication - URLs differing only
// by fragment are considered duplicates.
func (f *Frontier) Push(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url = stripFragment(url)
	if f.seen[url] {
		return false
	}
	f.seen[url] = true
	f.queue = append(f.queue, url)
	return true
}

// Pop removes and returns the queue head.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has ever been queued.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen[stripFragment(url)]
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
