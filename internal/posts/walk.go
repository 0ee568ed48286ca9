package posts

import (
	"context"
	"fmt"
)

// PageFunc receives each page visited by Walk, numbered from 1.
type PageFunc func(page int, p *Page) error

// Walk visits the collection page by page with the given page size. It
// stops after a short or empty page, once a known total is exhausted, or
// when fn returns an error.
func Walk(ctx context.Context, f Fetcher, limit int, fn PageFunc) error {
	if limit < 1 {
		return fmt.Errorf("walk: limit must be positive, got %d", limit)
	}
	seen := 0
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, err := f.FetchPage(ctx, limit, page)
		if err != nil {
			return fmt.Errorf("fetching page %d: %w", page, err)
		}
		if len(p.Posts) == 0 {
			return nil
		}
		if err := fn(page, p); err != nil {
			return err
		}
		seen += len(p.Posts)
		if len(p.Posts) < limit {
			return nil
		}
		if p.Total.Known && seen >= p.Total.Count {
			return nil
		}
	}
}
