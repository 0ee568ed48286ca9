package views

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/ziadkadry99/postboard/internal/paging"
	"github.com/ziadkadry99/postboard/internal/posts"
)

// DetailPhase is the observable state of the detail view.
type DetailPhase int

const (
	DetailLoading DetailPhase = iota
	DetailNotFound
	DetailFailed
	DetailReady
)

func (p DetailPhase) String() string {
	switch p {
	case DetailLoading:
		return "loading"
	case DetailNotFound:
		return "not-found"
	case DetailFailed:
		return "failed"
	case DetailReady:
		return "ready"
	default:
		return "unknown"
	}
}

// DetailState is what the detail view renders.
type DetailState struct {
	Phase DetailPhase
	Post  *posts.Post
	// Back is the list page the back link returns to.
	Back paging.State
	Err  error
}

// LoadDetail resolves rawID and fetches the post. A malformed id or a
// missing post is not-found; anything else that fails is DetailFailed.
func LoadDetail(ctx context.Context, f posts.Fetcher, rawID string, back paging.State) DetailState {
	st := DetailState{Phase: DetailNotFound, Back: back}

	id, ok := paging.ParsePositive(rawID)
	if !ok {
		return st
	}

	post, err := f.FetchOne(ctx, id)
	switch {
	case err == nil:
		st.Phase = DetailReady
		st.Post = post
	case posts.IsNotFound(err):
		st.Err = err
	default:
		if !errors.Is(err, context.Canceled) {
			log.Printf("detail: fetching post %d: %v", id, err)
		}
		st.Phase = DetailFailed
		st.Err = err
	}
	return st
}

// BackState recovers the list page a detail request was navigated from.
// The pair travels with the navigation itself (the Referer of a click on
// the list page), never in the detail URL; a direct arrival gets the
// default page.
func BackState(r *http.Request) paging.State {
	ref := r.Referer()
	if ref == "" {
		return paging.Default()
	}
	u, err := url.Parse(ref)
	if err != nil {
		return paging.Default()
	}
	if u.Host != "" && u.Host != r.Host {
		return paging.Default()
	}
	if u.Path != "/" && u.Path != "" {
		return paging.Default()
	}
	return paging.Parse(u.Query())
}
