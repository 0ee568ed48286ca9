// Package paging maps the list view's query string to a typed page state
// and computes the pagination controls rendered for it.
package paging

import (
	"net/url"
	"strconv"
)

// Query parameter names. They double as the upstream API's paging parameters.
const (
	ParamLimit = "_limit"
	ParamPage  = "_page"
)

const (
	DefaultLimit = 10
	DefaultPage  = 1
)

// State is the (limit, page) pair selecting a slice of the remote collection.
type State struct {
	Limit int
	Page  int
}

// Default returns the state used when nothing else is known.
func Default() State {
	return State{Limit: DefaultLimit, Page: DefaultPage}
}

// Parse reads a State from query values. Missing, non-numeric or
// non-positive values fall back to the defaults.
func Parse(v url.Values) State {
	return State{
		Limit: positiveOr(v.Get(ParamLimit), DefaultLimit),
		Page:  positiveOr(v.Get(ParamPage), DefaultPage),
	}
}

// IsCanonical reports whether v already holds exactly the encoding of
// Parse(v) for the paging parameters.
func IsCanonical(v url.Values) bool {
	s := Parse(v)
	return len(v[ParamLimit]) == 1 && v.Get(ParamLimit) == strconv.Itoa(s.Limit) &&
		len(v[ParamPage]) == 1 && v.Get(ParamPage) == strconv.Itoa(s.Page)
}

// Values encodes the state as query values.
func (s State) Values() url.Values {
	v := url.Values{}
	v.Set(ParamPage, strconv.Itoa(s.Page))
	v.Set(ParamLimit, strconv.Itoa(s.Limit))
	return v
}

// Query returns the encoded query string, without the leading '?'.
func (s State) Query() string {
	return s.Values().Encode()
}

// Valid reports whether both fields are in range.
func (s State) Valid() bool {
	return s.Limit > 0 && s.Page > 0
}

// WithLimit changes the page size. The page always resets to 1 because the
// old page index may not exist under the new size.
func (s State) WithLimit(limit int) State {
	return State{Limit: limit, Page: DefaultPage}
}

// WithPage moves to another page, keeping the page size.
func (s State) WithPage(page int) State {
	s.Page = page
	return s
}

// ParsePositive parses s as an integer greater than zero written in plain
// decimal digits: no sign and no leading zero.
func ParsePositive(s string) (int, bool) {
	if s == "" || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func positiveOr(s string, def int) int {
	if n, ok := ParsePositive(s); ok {
		return n
	}
	return def
}
