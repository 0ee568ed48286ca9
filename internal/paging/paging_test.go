package paging

import (
	"math"
	"net/url"
	"strconv"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		query string
		want  State
	}{
		{"", State{Limit: 10, Page: 1}},
		{"_limit=20&_page=3", State{Limit: 20, Page: 3}},
		{"_limit=abc&_page=2", State{Limit: 10, Page: 2}},
		{"_limit=0&_page=0", State{Limit: 10, Page: 1}},
		{"_limit=-5&_page=-1", State{Limit: 10, Page: 1}},
		{"_page=7", State{Limit: 10, Page: 7}},
		{"other=1&_limit=5", State{Limit: 5, Page: 1}},
		{"_limit=%2B5&_page=03", State{Limit: 10, Page: 1}},
	}
	for _, tt := range tests {
		v, err := url.ParseQuery(tt.query)
		if err != nil {
			t.Fatalf("ParseQuery(%q): %v", tt.query, err)
		}
		if got := Parse(v); got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.query, got, tt.want)
		}
	}
}

func TestQueryRoundTrip(t *testing.T) {
	states := []State{
		{Limit: 10, Page: 1},
		{Limit: 1, Page: 100},
		{Limit: 37, Page: 4},
	}
	for _, s := range states {
		v, err := url.ParseQuery(s.Query())
		if err != nil {
			t.Fatalf("ParseQuery(%q): %v", s.Query(), err)
		}
		if got := Parse(v); got != s {
			t.Errorf("round trip of %+v gave %+v", s, got)
		}
		if !IsCanonical(v) {
			t.Errorf("encoding of %+v should be canonical", s)
		}
	}
}

func TestIsCanonical(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"_page=1&_limit=10", true},
		{"_limit=10&_page=1&extra=x", true},
		{"", false},
		{"_page=1", false},
		{"_page=01&_limit=10", false},
		{"_page=1&_limit=abc", false},
		{"_page=1&_page=2&_limit=10", false},
	}
	for _, tt := range tests {
		v, _ := url.ParseQuery(tt.query)
		if got := IsCanonical(v); got != tt.want {
			t.Errorf("IsCanonical(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestWithLimitResetsPage(t *testing.T) {
	for _, s := range []State{{Limit: 10, Page: 1}, {Limit: 10, Page: 7}, {Limit: 3, Page: 34}} {
		for _, limit := range []int{1, 10, 25} {
			got := s.WithLimit(limit)
			if got.Page != 1 {
				t.Errorf("%+v.WithLimit(%d).Page = %d, want 1", s, limit, got.Page)
			}
			if got.Limit != limit {
				t.Errorf("%+v.WithLimit(%d).Limit = %d", s, limit, got.Limit)
			}
		}
	}
}

func TestWithPageKeepsLimit(t *testing.T) {
	got := State{Limit: 25, Page: 1}.WithPage(4)
	if got != (State{Limit: 25, Page: 4}) {
		t.Errorf("WithPage(4) = %+v", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{100, 10, 10},
		{100, 30, 4},
		{101, 10, 11},
		{0, 10, 0},
		{5, 0, 0},
		{1, 1, 1},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

// render turns a window into a compact form: page numbers and "..." markers.
func render(items []Item) []string {
	var out []string
	for _, it := range items {
		if it.IsEllipsis() {
			out = append(out, "...")
			continue
		}
		s := strconv.Itoa(it.Page)
		if it.Current {
			s = "[" + s + "]"
		}
		out = append(out, s)
	}
	return out
}

func TestWindow(t *testing.T) {
	tests := []struct {
		current, total int
		want           []string
	}{
		{3, 5, []string{"1", "2", "[3]", "4", "5"}},
		{5, 10, []string{"1", "...", "4", "[5]", "6", "...", "10"}},
		{1, 10, []string{"[1]", "2", "...", "10"}},
		{10, 10, []string{"1", "...", "9", "[10]"}},
		{4, 10, []string{"1", "...", "3", "[4]", "5", "...", "10"}},
		{3, 10, []string{"1", "2", "[3]", "4", "...", "10"}},
		{1, 1, []string{"[1]"}},
		{1, 2, []string{"[1]", "2"}},
		{2, 3, []string{"1", "[2]", "3"}},
	}
	for _, tt := range tests {
		got := render(Window(tt.current, tt.total))
		if len(got) != len(tt.want) {
			t.Errorf("Window(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Window(%d, %d) = %v, want %v", tt.current, tt.total, got, tt.want)
				break
			}
		}
	}
}

func TestWindowNoPages(t *testing.T) {
	if items := Window(1, 0); len(items) != 0 {
		t.Errorf("expected empty window, got %v", items)
	}
}

func TestControls(t *testing.T) {
	tests := []struct {
		current, total int
		prev, next     bool
	}{
		{1, 10, true, false},
		{5, 10, false, false},
		{10, 10, false, true},
		{1, 1, true, true},
	}
	for _, tt := range tests {
		c := NewControls(tt.current, tt.total)
		if c.PrevDisabled != tt.prev || c.NextDisabled != tt.next {
			t.Errorf("NewControls(%d, %d) = %+v", tt.current, tt.total, c)
		}
	}
}

func TestParsePositive(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 1, true},
		{"25", 25, true},
		{"100", 100, true},
		{"+5", 0, false},
		{"05", 0, false},
		{"0", 0, false},
		{"-1", 0, false},
		{"", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParsePositive(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePositive(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestControlsLastRepresentablePage(t *testing.T) {
	if c := NewControls(math.MaxInt, math.MaxInt-1); !c.NextDisabled {
		t.Errorf("next past the largest page should be disabled: %+v", c)
	}
	if c := OpenControls(math.MaxInt, 10, 10); !c.NextDisabled {
		t.Errorf("next past the largest page should be disabled: %+v", c)
	}
}

func TestOpenControls(t *testing.T) {
	c := OpenControls(2, 10, 10)
	if c.PrevDisabled || c.NextDisabled {
		t.Errorf("full middle page: %+v", c)
	}
	c = OpenControls(3, 10, 4)
	if !c.NextDisabled {
		t.Errorf("short page should disable next: %+v", c)
	}
	c = OpenControls(1, 10, 0)
	if !c.PrevDisabled || !c.NextDisabled {
		t.Errorf("empty first page: %+v", c)
	}
}

func TestLimitInputCommitsValidText(t *testing.T) {
	in := NewLimitInput(10)
	if !in.Change("25") {
		t.Fatal("expected 25 to commit")
	}
	if in.Committed != 25 {
		t.Errorf("Committed = %d, want 25", in.Committed)
	}
}

func TestLimitInputBlurRestoresCommitted(t *testing.T) {
	tests := []string{"", "abc", "0", "-3", "1.5", "+5", "05", "007", " 5"}
	for _, text := range tests {
		in := NewLimitInput(20)
		if in.Change(text) {
			t.Errorf("Change(%q) should not commit", text)
		}
		if in.Committed != 20 {
			t.Errorf("Change(%q) altered Committed to %d", text, in.Committed)
		}
		in.Blur()
		if in.Text != "20" {
			t.Errorf("after Blur with %q, Text = %q, want %q", text, in.Text, "20")
		}
	}
}

func TestLimitInputPartialEditKeepsLastCommit(t *testing.T) {
	in := NewLimitInput(10)
	in.Change("3")
	in.Change("")
	in.Blur()
	if in.Committed != 3 || in.Text != "3" {
		t.Errorf("got %+v, want committed 3", in)
	}
}

func TestLimitInputBlurKeepsValidText(t *testing.T) {
	in := NewLimitInput(10)
	in.Change("15")
	in.Blur()
	if in.Text != "15" {
		t.Errorf("Text = %q, want 15", in.Text)
	}
}
