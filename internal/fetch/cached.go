// Package fetch - cached.go provides in-memory caching of fetched pages.
package fetch

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is how long a fetched page stays fresh. Job postings change
// rarely within a session; re-fetching the same URL while the user iterates on
// a resume is wasted traffic.
const DefaultCacheTTL = 1 * time.Hour

// CachedFetcher wraps URL fetching with an in-memory, TTL-bounded cache. It is
// safe for concurrent use.
type CachedFetcher struct {
	options  *Options
	cacheTTL time.Duration

	mu    sync.Mutex
	pages map[string]cachedPage
}

type cachedPage struct {
	result    *Result
	fetchedAt time.Time
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
}

// NewCachedFetcher creates a cached fetcher. A zero ttl uses DefaultCacheTTL.
func NewCachedFetcher(opts *Options, ttl time.Duration) *CachedFetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedFetcher{
		options:  opts,
		cacheTTL: ttl,
		pages:    make(map[string]cachedPage),
	}
}

// Fetch retrieves a URL, returning the cached page when it is still fresh.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	f.mu.Lock()
	if page, ok := f.pages[urlStr]; ok && time.Since(page.fetchedAt) < f.cacheTTL {
		f.mu.Unlock()
		return &CachedResult{Result: page.result, FromCache: true}, nil
	}
	f.mu.Unlock()

	result, err := URL(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.pages[urlStr] = cachedPage{result: result, fetchedAt: time.Now()}
	f.mu.Unlock()

	return &CachedResult{Result: result, FromCache: false}, nil
}

// Invalidate drops a URL from the cache, forcing a re-fetch on next request.
func (f *CachedFetcher) Invalidate(urlStr string) {
	f.mu.Lock()
	delete(f.pages, urlStr)
	f.mu.Unlock()
}
