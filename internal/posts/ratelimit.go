package posts

import (
	"context"
	"sync"
	"time"
)

// RateLimitedFetcher wraps a Fetcher with a token bucket limiter.
type RateLimitedFetcher struct {
	fetcher  Fetcher
	rpm      int
	mu       sync.Mutex
	tokens   int
	lastFill time.Time
}

// NewRateLimitedFetcher wraps the given fetcher so that at most rpm
// requests per minute reach the API. rpm <= 0 returns f unchanged.
func NewRateLimitedFetcher(f Fetcher, rpm int) Fetcher {
	if rpm <= 0 {
		return f
	}
	return &RateLimitedFetcher{
		fetcher:  f,
		rpm:      rpm,
		tokens:   rpm,
		lastFill: time.Now(),
	}
}

func (r *RateLimitedFetcher) FetchPage(ctx context.Context, limit, page int) (*Page, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.fetcher.FetchPage(ctx, limit, page)
}

func (r *RateLimitedFetcher) FetchOne(ctx context.Context, id int) (*Post, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.fetcher.FetchOne(ctx, id)
}

func (r *RateLimitedFetcher) wait(ctx context.Context) error {
	for {
		r.mu.Lock()
		now := time.Now()
		elapsed := now.Sub(r.lastFill)

		// Refill tokens based on elapsed time.
		refill := int(elapsed.Seconds() * float64(r.rpm) / 60.0)
		if refill > 0 {
			r.tokens += refill
			if r.tokens > r.rpm {
				r.tokens = r.rpm
			}
			r.lastFill = now
		}

		if r.tokens > 0 {
			r.tokens--
			r.mu.Unlock()
			return nil
		}
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
}
