// Package posts is a client for the read-only posts REST API.
package posts

import "context"

// Post is one entry of the remote collection. It is never mutated locally.
type Post struct {
	ID     int    `json:"id" yaml:"id"`
	UserID int    `json:"userId" yaml:"user_id"`
	Title  string `json:"title" yaml:"title"`
	Body   string `json:"body" yaml:"body"`
}

// Total is the collection size reported out of band by the server.
// Known is false when the server sent no usable count and no fallback
// was configured.
type Total struct {
	Count int
	Known bool
}

// KnownTotal returns a known total of n items.
func KnownTotal(n int) Total { return Total{Count: n, Known: true} }

// Page is one slice of the collection.
type Page struct {
	Posts []Post
	Total Total
}

// Fetcher is the pair of operations the views depend on.
type Fetcher interface {
	FetchPage(ctx context.Context, limit, page int) (*Page, error)
	FetchOne(ctx context.Context, id int) (*Post, error)
}
