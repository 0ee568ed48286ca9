// Package poststest provides an in-process fake of the posts API for tests.
package poststest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/postboard/internal/posts"
)

// Server is a fake posts API that pages the same way the public
// fixture API does: _limit and _page select a slice and the full size is
// reported in X-Total-Count.
type Server struct {
	*httptest.Server

	Posts []posts.Post

	mu        sync.Mutex
	omitTotal bool
	failWith  int
	requests  []string
}

// NewServer starts a fake API holding n generated posts with ids 1..n.
// The content is deterministic for a given n.
func NewServer(n int) *Server {
	s := &Server{Posts: GeneratePosts(n, 42)}

	r := chi.NewRouter()
	r.Get("/posts", s.handleList)
	r.Get("/posts/{id}", s.handleOne)
	s.Server = httptest.NewServer(r)
	return s
}

// GeneratePosts returns n fake posts with ids 1..n.
func GeneratePosts(n int, seed int64) []posts.Post {
	f := gofakeit.New(seed)
	out := make([]posts.Post, n)
	for i := range out {
		out[i] = posts.Post{
			ID:     i + 1,
			UserID: i/10 + 1,
			Title:  f.Sentence(5),
			Body:   f.Paragraph(2, 2, 8, "\n\n"),
		}
	}
	return out
}

// OmitTotal stops the server from sending the total-count header.
func (s *Server) OmitTotal(omit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.omitTotal = omit
}

// FailWith makes every request answer with the given status. Zero restores
// normal behaviour.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = status
}

// Requests returns the request URIs received so far.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

func (s *Server) record(r *http.Request) (failWith int, omitTotal bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r.URL.RequestURI())
	return s.failWith, s.omitTotal
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	failWith, omitTotal := s.record(r)
	if failWith != 0 {
		http.Error(w, "upstream failure", failWith)
		return
	}

	items := s.Posts
	q := r.URL.Query()
	limit, limitErr := strconv.Atoi(q.Get("_limit"))
	page, pageErr := strconv.Atoi(q.Get("_page"))
	if limitErr == nil || pageErr == nil {
		if limitErr != nil || limit < 1 {
			limit = 10
		}
		if pageErr != nil || page < 1 {
			page = 1
		}
		start := len(items)
		if page-1 <= len(items)/limit {
			start = (page - 1) * limit
		}
		end := len(items)
		if limit < end-start {
			end = start + limit
		}
		items = items[start:end]
	}

	if !omitTotal {
		w.Header().Set(posts.TotalCountHeader, strconv.Itoa(len(s.Posts)))
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleOne(w http.ResponseWriter, r *http.Request) {
	failWith, _ := s.record(r)
	if failWith != 0 {
		http.Error(w, "upstream failure", failWith)
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 || id > len(s.Posts) {
		writeJSON(w, http.StatusNotFound, map[string]any{})
		return
	}
	writeJSON(w, http.StatusOK, s.Posts[id-1])
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
