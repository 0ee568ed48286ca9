package paging

import "strconv"

// LimitInput is the free-text page-size field. Valid text commits as it is
// typed; invalid text is silently replaced by the committed value on blur.
type LimitInput struct {
	Committed int
	Text      string
}

// NewLimitInput returns a field showing the committed limit.
func NewLimitInput(committed int) LimitInput {
	return LimitInput{Committed: committed, Text: strconv.Itoa(committed)}
}

// Change records new text and reports whether it was committed.
func (in *LimitInput) Change(text string) bool {
	in.Text = text
	n, ok := ParsePositive(text)
	if !ok {
		return false
	}
	in.Committed = n
	return true
}

// Blur reverts invalid text to the last committed value.
func (in *LimitInput) Blur() {
	if _, ok := ParsePositive(in.Text); !ok {
		in.Text = strconv.Itoa(in.Committed)
	}
}
