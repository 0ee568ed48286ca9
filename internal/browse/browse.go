// Package browse is a terminal version of the post list and detail pages.
package browse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/postboard/internal/paging"
	"github.com/ziadkadry99/postboard/internal/posts"
	"github.com/ziadkadry99/postboard/internal/views"
)

// Prompter asks the user to pick from a menu or type a value.
type Prompter interface {
	Select(label string, items []string) (int, error)
	Input(label, initial string) (string, error)
}

// NavState is handed from the list to the detail screen so that going
// back lands on the same page.
type NavState struct {
	List paging.State
}

const (
	labelPrev     = "← Previous page"
	labelNext     = "→ Next page"
	labelGoto     = "Go to page..."
	labelPageSize = "Change page size"
	labelBack     = "← Back"
	labelQuit     = "Quit"
)

// Browser drives the list and detail screens.
type Browser struct {
	fetcher posts.Fetcher
	loader  *views.ListLoader
	prompt  Prompter
	out     io.Writer
}

// New creates a browser. A nil prompter uses promptui on the terminal.
func New(f posts.Fetcher, p Prompter, out io.Writer) *Browser {
	if p == nil {
		p = terminalPrompter{}
	}
	return &Browser{fetcher: f, loader: views.NewListLoader(f), prompt: p, out: out}
}

// Run shows the list starting at start until the user quits or ctx ends.
func (b *Browser) Run(ctx context.Context, start paging.State) error {
	if !start.Valid() {
		start = paging.Default()
	}
	nav := NavState{List: start}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		id, quit, err := b.listScreen(ctx, &nav)
		if err != nil {
			return quitOn(err)
		}
		if quit {
			return nil
		}
		if id == 0 {
			continue
		}
		quit, err = b.detailScreen(ctx, id, nav)
		if err != nil {
			return quitOn(err)
		}
		if quit {
			return nil
		}
	}
}

// listScreen renders one list page and applies the chosen action to nav.
// It returns the id of a post to open, if one was picked.
func (b *Browser) listScreen(ctx context.Context, nav *NavState) (int, bool, error) {
	fmt.Fprintln(b.out, "Loading...")
	st, ok := b.loader.Load(ctx, nav.List)
	if !ok {
		st = b.loader.Current()
	}
	b.printList(st)

	var items []string
	for _, p := range st.Posts {
		items = append(items, fmt.Sprintf("#%d %s", p.ID, p.Title))
	}
	showPaging := st.ShowPagination()
	c := st.Controls()
	if showPaging && !c.PrevDisabled {
		items = append(items, labelPrev)
	}
	if showPaging && !c.NextDisabled {
		items = append(items, labelNext)
	}
	if st.TotalPages() > 1 {
		items = append(items, labelGoto)
	}
	items = append(items, labelPageSize, labelQuit)

	idx, err := b.prompt.Select("Choose a post or action", items)
	if err != nil {
		return 0, false, err
	}
	if idx < len(st.Posts) {
		return st.Posts[idx].ID, false, nil
	}

	switch items[idx] {
	case labelPrev:
		nav.List = nav.List.WithPage(nav.List.Page - 1)
	case labelNext:
		nav.List = nav.List.WithPage(nav.List.Page + 1)
	case labelGoto:
		text, err := b.prompt.Input("Page (1-"+strconv.Itoa(st.TotalPages())+")", strconv.Itoa(nav.List.Page))
		if err != nil {
			return 0, false, err
		}
		if n, ok := paging.ParsePositive(text); ok && n <= st.TotalPages() {
			nav.List = nav.List.WithPage(n)
		}
	case labelPageSize:
		in := paging.NewLimitInput(nav.List.Limit)
		text, err := b.prompt.Input("Posts per page", in.Text)
		if err != nil {
			return 0, false, err
		}
		nav.List = applyLimit(nav.List, &in, text)
	case labelQuit:
		return 0, true, nil
	}
	return 0, false, nil
}

// applyLimit runs the page-size rules on submitted text: a valid new size
// starts again from page 1, anything invalid leaves the state unchanged.
func applyLimit(s paging.State, in *paging.LimitInput, text string) paging.State {
	if in.Change(strings.TrimSpace(text)) && in.Committed != s.Limit {
		return s.WithLimit(in.Committed)
	}
	in.Blur()
	return s
}

func (b *Browser) detailScreen(ctx context.Context, id int, nav NavState) (bool, error) {
	b.printDetail(views.DetailState{Phase: views.DetailLoading, Back: nav.List})
	st := views.LoadDetail(ctx, b.fetcher, strconv.Itoa(id), nav.List)
	b.printDetail(st)

	idx, err := b.prompt.Select("", []string{labelBack, labelQuit})
	if err != nil {
		return false, err
	}
	return idx == 1, nil
}

func (b *Browser) printList(st views.ListState) {
	fmt.Fprintln(b.out)
	if st.Total.Known {
		fmt.Fprintf(b.out, "Total posts: %d | Page: %d of %d\n", st.Total.Count, st.Page.Page, st.TotalPages())
	} else {
		fmt.Fprintf(b.out, "Page: %d\n", st.Page.Page)
	}

	switch {
	case st.Failed():
		fmt.Fprintln(b.out, "Posts are unavailable right now.")
	case st.Phase == views.PhaseEmpty:
		fmt.Fprintln(b.out, "No posts on this page.")
	}

	if w := windowLine(st.Window()); w != "" {
		fmt.Fprintln(b.out, w)
	}
	fmt.Fprintln(b.out)
}

// windowLine renders the numbered page controls, the current page in
// brackets.
func windowLine(items []paging.Item) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		switch {
		case it.IsEllipsis():
			parts = append(parts, "...")
		case it.Current:
			parts = append(parts, "["+strconv.Itoa(it.Page)+"]")
		default:
			parts = append(parts, strconv.Itoa(it.Page))
		}
	}
	return strings.Join(parts, " ")
}

func (b *Browser) printDetail(st views.DetailState) {
	if st.Phase == views.DetailLoading {
		fmt.Fprintln(b.out, "Loading...")
		return
	}
	fmt.Fprintln(b.out)
	switch st.Phase {
	case views.DetailReady:
		fmt.Fprintln(b.out, st.Post.Title)
		fmt.Fprintf(b.out, "ID: %d | User ID: %d\n\n", st.Post.ID, st.Post.UserID)
		fmt.Fprintln(b.out, st.Post.Body)
	case views.DetailFailed:
		fmt.Fprintln(b.out, "This post could not be loaded right now.")
	default:
		fmt.Fprintln(b.out, "Post not found")
	}
	fmt.Fprintln(b.out)
}

func quitOn(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return nil
	}
	return err
}

// terminalPrompter asks through promptui.
type terminalPrompter struct{}

func (terminalPrompter) Select(label string, items []string) (int, error) {
	s := promptui.Select{Label: label, Items: items, Size: 15, HideSelected: true}
	idx, _, err := s.Run()
	return idx, err
}

func (terminalPrompter) Input(label, initial string) (string, error) {
	p := promptui.Prompt{Label: label, Default: initial}
	return p.Run()
}
