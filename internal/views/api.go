package views

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/postboard/internal/paging"
	"github.com/ziadkadry99/postboard/internal/posts"
)

// apiListResponse is the JSON form of the list view.
type apiListResponse struct {
	Posts        []posts.Post    `json:"posts"`
	Page         int             `json:"page"`
	Limit        int             `json:"limit"`
	Total        *int            `json:"total"`
	TotalPages   int             `json:"total_pages"`
	Phase        string          `json:"phase"`
	Window       []apiWindowItem `json:"window"`
	PrevDisabled bool            `json:"prev_disabled"`
	NextDisabled bool            `json:"next_disabled"`
}

type apiWindowItem struct {
	Page     int  `json:"page"`
	Current  bool `json:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

func (v *Views) handleAPIList(w http.ResponseWriter, r *http.Request) {
	st := LoadList(r.Context(), v.fetcher, paging.Parse(r.URL.Query()))
	if st.Failed() {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": st.Err.Error()})
		return
	}

	resp := apiListResponse{
		Posts:      st.Posts,
		Page:       st.Page.Page,
		Limit:      st.Page.Limit,
		TotalPages: st.TotalPages(),
		Phase:      st.Phase.String(),
		Window:     []apiWindowItem{},
	}
	if resp.Posts == nil {
		resp.Posts = []posts.Post{}
	}
	if st.Total.Known {
		n := st.Total.Count
		resp.Total = &n
	}
	c := st.Controls()
	resp.PrevDisabled, resp.NextDisabled = c.PrevDisabled, c.NextDisabled
	for _, it := range st.Window() {
		resp.Window = append(resp.Window, apiWindowItem{Page: it.Page, Current: it.Current, Ellipsis: it.IsEllipsis()})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (v *Views) handleAPIPost(w http.ResponseWriter, r *http.Request) {
	st := LoadDetail(r.Context(), v.fetcher, chi.URLParam(r, "id"), paging.Default())
	switch st.Phase {
	case DetailReady:
		writeJSON(w, http.StatusOK, st.Post)
	case DetailFailed:
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": st.Err.Error()})
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "post not found"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
