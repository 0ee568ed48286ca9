package views

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/ziadkadry99/postboard/internal/paging"
	"github.com/ziadkadry99/postboard/internal/posts"
)

// Phase is the observable state of the list view.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseEmpty
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseEmpty:
		return "ready-empty"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// ListState is everything the list view renders for one (limit, page).
type ListState struct {
	Phase Phase
	Page  paging.State
	Posts []posts.Post
	Total posts.Total
	// Err is the fetch failure that produced an empty list, if any.
	Err error
}

// Failed reports whether the list is empty because the fetch failed.
func (s ListState) Failed() bool { return s.Err != nil }

// TotalPages is zero when the total is unknown.
func (s ListState) TotalPages() int {
	if !s.Total.Known {
		return 0
	}
	return paging.TotalPages(s.Total.Count, s.Page.Limit)
}

// Window returns the numbered page controls. It is empty when the total
// is unknown.
func (s ListState) Window() []paging.Item {
	return paging.Window(s.Page.Page, s.TotalPages())
}

// Controls returns the prev/next button state.
func (s ListState) Controls() paging.Controls {
	if !s.Total.Known {
		return paging.OpenControls(s.Page.Page, s.Page.Limit, len(s.Posts))
	}
	return paging.NewControls(s.Page.Page, s.TotalPages())
}

// ShowPagination reports whether the pagination bar is rendered at all.
func (s ListState) ShowPagination() bool {
	if s.Phase == PhaseLoading {
		return false
	}
	if s.Total.Known {
		return s.TotalPages() > 1
	}
	return s.Page.Page > 1 || len(s.Posts) >= s.Page.Limit
}

// LoadList fetches one page and resolves the list phase. Failures are
// logged and reported as an empty list.
func LoadList(ctx context.Context, f posts.Fetcher, s paging.State) ListState {
	page, err := f.FetchPage(ctx, s.Limit, s.Page)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Printf("list: fetching page %d (limit %d): %v", s.Page, s.Limit, err)
		}
		return ListState{Phase: PhaseEmpty, Page: s, Err: err}
	}

	st := ListState{Phase: PhaseReady, Page: s, Posts: page.Posts, Total: page.Total}
	if len(page.Posts) == 0 {
		st.Phase = PhaseEmpty
	}
	return st
}

// ListLoader runs list loads for a long-lived view. Starting a load
// cancels the one in flight, and only the latest load's result is applied.
type ListLoader struct {
	fetcher posts.Fetcher

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	current ListState
}

// NewListLoader creates a loader in the loading phase.
func NewListLoader(f posts.Fetcher) *ListLoader {
	return &ListLoader{fetcher: f, current: ListState{Phase: PhaseLoading, Page: paging.Default()}}
}

// Load fetches s and returns the resulting state together with whether it
// was applied. A load superseded by a newer one is not applied.
func (l *ListLoader) Load(ctx context.Context, s paging.State) (ListState, bool) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	l.cancel = cancel
	l.current = ListState{Phase: PhaseLoading, Page: s}
	l.mu.Unlock()

	st := LoadList(ctx, l.fetcher, s)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return st, false
	}
	l.current = st
	l.cancel = nil
	return st, true
}

// Current returns the most recently applied state.
func (l *ListLoader) Current() ListState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}
