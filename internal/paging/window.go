package paging

import "math"

// ItemKind distinguishes clickable page controls from ellipsis markers.
type ItemKind int

const (
	KindPage ItemKind = iota
	KindEllipsis
)

// Item is one slot of the pagination window.
type Item struct {
	Kind    ItemKind
	Page    int
	Current bool
}

// IsEllipsis is a template helper.
func (i Item) IsEllipsis() bool { return i.Kind == KindEllipsis }

// TotalPages returns ceil(totalCount / limit).
func TotalPages(totalCount, limit int) int {
	if limit <= 0 || totalCount <= 0 {
		return 0
	}
	return (totalCount + limit - 1) / limit
}

// Window lists the controls rendered for the current page: the first and
// last pages plus current±1 as pages, current±2 as ellipsis markers, and
// nothing for the rest.
func Window(current, total int) []Item {
	var items []Item
	for p := 1; p <= total; p++ {
		switch {
		case p == 1 || p == total || abs(p-current) <= 1:
			items = append(items, Item{Kind: KindPage, Page: p, Current: p == current})
		case p == current-2 || p == current+2:
			items = append(items, Item{Kind: KindEllipsis, Page: p})
		}
	}
	return items
}

// Controls describes the previous/next buttons around the window.
type Controls struct {
	PrevDisabled bool
	NextDisabled bool
}

// NewControls computes the prev/next state for a known page count.
func NewControls(current, total int) Controls {
	return Controls{
		PrevDisabled: current == 1,
		NextDisabled: current == total || current == math.MaxInt,
	}
}

// OpenControls computes the prev/next state when the total is unknown:
// a short page is taken as the last one.
func OpenControls(current, limit, got int) Controls {
	return Controls{
		PrevDisabled: current == 1,
		NextDisabled: got < limit || current == math.MaxInt,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
