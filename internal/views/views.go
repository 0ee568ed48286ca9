// Package views renders the post list and post detail pages.
package views

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"

	"github.com/ziadkadry99/postboard/internal/paging"
	"github.com/ziadkadry99/postboard/internal/posts"
)

// committedParam carries the last committed page size with a page-size
// form submission so invalid input can fall back to it.
const committedParam = "_committed"

// Options holds presentation settings.
type Options struct {
	Title string
	// ImageBaseURL is a picsum-style image service; empty disables images.
	ImageBaseURL string
}

// Views serves the list and detail pages.
type Views struct {
	fetcher posts.Fetcher
	opts    Options
	pages   map[string]*template.Template
	md      goldmark.Markdown
}

// New creates the views and parses their templates.
func New(f posts.Fetcher, opts Options) (*Views, error) {
	pages, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	if opts.Title == "" {
		opts.Title = "Posts"
	}
	opts.ImageBaseURL = strings.TrimRight(opts.ImageBaseURL, "/")
	return &Views{fetcher: f, opts: opts, pages: pages, md: newMarkdown()}, nil
}

// RegisterRoutes mounts the pages, their JSON mirror and the not-found
// fallback onto the given router.
func (v *Views) RegisterRoutes(r chi.Router) {
	r.Get("/", v.handleList)
	r.Get("/post/{id}", v.handleDetail)
	r.Get("/api/posts", v.handleAPIList)
	r.Get("/api/posts/{id}", v.handleAPIPost)
	r.NotFound(v.handleNotFound)
}

type cardModel struct {
	ID    int
	Title string
	Body  string
	Href  string
	Image string
}

type pageLink struct {
	Page     int
	Href     string
	Current  bool
	Ellipsis bool
}

type listModel struct {
	SiteTitle string
	PageTitle string
	Phase     string
	Limit     int
	Page      int

	TotalKnown bool
	TotalCount int
	TotalPages int

	Cards  []cardModel
	Empty  bool
	Failed bool

	ShowPagination bool
	PrevHref       string
	NextHref       string
	PrevDisabled   bool
	NextDisabled   bool
	Links          []pageLink
}

type detailModel struct {
	SiteTitle string
	PageTitle string
	Phase     string
	Post      *posts.Post
	Body      template.HTML
	Image     string
	BackHref  string
	NotFound  bool
	Failed    bool
}

type notFoundModel struct {
	SiteTitle string
	PageTitle string
}

// ListHref is the canonical URL of a list page.
func ListHref(s paging.State) string {
	return "/?" + s.Query()
}

// PostHref is the URL of a detail page.
func PostHref(id int) string {
	return "/post/" + strconv.Itoa(id)
}

func (v *Views) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Has(committedParam) {
		http.Redirect(w, r, ListHref(reconcileLimit(q)), http.StatusSeeOther)
		return
	}

	s := paging.Parse(q)
	if !paging.IsCanonical(q) {
		http.Redirect(w, r, ListHref(s), http.StatusSeeOther)
		return
	}

	st := LoadList(r.Context(), v.fetcher, s)
	viewRenders.WithLabelValues("list", st.Phase.String()).Inc()

	status := http.StatusOK
	if st.Failed() {
		status = http.StatusBadGateway
	}
	v.render(w, status, "list", v.listModel(st))
}

// reconcileLimit applies a page-size form submission: a valid new size
// commits and returns to page 1, anything else keeps the committed state.
func reconcileLimit(q url.Values) paging.State {
	committed, ok := paging.ParsePositive(q.Get(committedParam))
	if !ok {
		committed = paging.DefaultLimit
	}
	cur := paging.State{Limit: committed, Page: paging.Parse(q).Page}

	in := paging.NewLimitInput(committed)
	if in.Change(q.Get(paging.ParamLimit)) {
		if in.Committed != committed {
			return cur.WithLimit(in.Committed)
		}
		return cur
	}
	in.Blur()
	return cur
}

func (v *Views) listModel(st ListState) listModel {
	m := listModel{
		SiteTitle:  v.opts.Title,
		PageTitle:  v.opts.Title,
		Phase:      st.Phase.String(),
		Limit:      st.Page.Limit,
		Page:       st.Page.Page,
		TotalKnown: st.Total.Known,
		TotalCount: st.Total.Count,
		TotalPages: st.TotalPages(),
		Empty:      st.Phase == PhaseEmpty,
		Failed:     st.Failed(),
	}
	if st.Page.Page > 1 {
		m.PageTitle = fmt.Sprintf("%s, page %d", v.opts.Title, st.Page.Page)
	}

	for _, p := range st.Posts {
		m.Cards = append(m.Cards, cardModel{
			ID:    p.ID,
			Title: p.Title,
			Body:  p.Body,
			Href:  PostHref(p.ID),
			Image: v.imageURL(p.ID, 400, 200),
		})
	}

	if !st.ShowPagination() {
		return m
	}
	m.ShowPagination = true
	c := st.Controls()
	m.PrevDisabled, m.NextDisabled = c.PrevDisabled, c.NextDisabled
	if !c.PrevDisabled {
		m.PrevHref = ListHref(st.Page.WithPage(st.Page.Page - 1))
	}
	if !c.NextDisabled {
		m.NextHref = ListHref(st.Page.WithPage(st.Page.Page + 1))
	}
	for _, it := range st.Window() {
		link := pageLink{Page: it.Page, Current: it.Current, Ellipsis: it.IsEllipsis()}
		if !link.Ellipsis {
			link.Href = ListHref(st.Page.WithPage(it.Page))
		}
		m.Links = append(m.Links, link)
	}
	return m
}

func (v *Views) handleDetail(w http.ResponseWriter, r *http.Request) {
	st := LoadDetail(r.Context(), v.fetcher, chi.URLParam(r, "id"), BackState(r))
	viewRenders.WithLabelValues("detail", st.Phase.String()).Inc()

	m := detailModel{
		SiteTitle: v.opts.Title,
		Phase:     st.Phase.String(),
		BackHref:  ListHref(st.Back),
	}

	status := http.StatusOK
	switch st.Phase {
	case DetailReady:
		m.Post = st.Post
		m.PageTitle = st.Post.Title
		m.Body = renderBody(v.md, st.Post.Body)
		m.Image = v.imageURL(st.Post.ID, 800, 400)
	case DetailFailed:
		status = http.StatusBadGateway
		m.Failed = true
		m.PageTitle = "Post unavailable"
	default:
		status = http.StatusNotFound
		m.NotFound = true
		m.PageTitle = "Post not found"
	}
	v.render(w, status, "detail", m)
}

func (v *Views) handleNotFound(w http.ResponseWriter, r *http.Request) {
	viewRenders.WithLabelValues("notfound", "ready").Inc()
	v.render(w, http.StatusNotFound, "notfound", notFoundModel{
		SiteTitle: v.opts.Title,
		PageTitle: "Page not found",
	})
}

func (v *Views) imageURL(id, width, height int) string {
	if v.opts.ImageBaseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/%d/%d?random=%d", v.opts.ImageBaseURL, width, height, id)
}
