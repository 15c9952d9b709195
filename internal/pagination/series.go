package pagination

import "strconv"

// Token kinds used by the serializable form of a Series.
const (
	KindPage    = "page"
	KindCurrent = "current"
	KindGap     = "gap"
)

// Item is one token of a page series. The set of implementations is closed:
// Page, Current and Gap. Consumers switch on the concrete type.
type Item interface {
	seriesItem()
	String() string
}

// Page is a plain, linkable page number.
type Page int

// Current marks the page being displayed.
type Current int

// Gap stands for a run of elided page numbers.
type Gap struct{}

func (Page) seriesItem()    {}
func (Current) seriesItem() {}
func (Gap) seriesItem()     {}

func (p Page) String() string    { return strconv.Itoa(int(p)) }
func (c Current) String() string { return "[" + strconv.Itoa(int(c)) + "]" }
func (Gap) String() string       { return "…" }

// Series is the ordered list of tokens shown in a navigation control.
type Series []Item

// Token is the serializable form of an Item.
type Token struct {
	Kind string `json:"kind"           yaml:"kind"`
	Page int    `json:"page,omitempty" yaml:"page,omitempty"`
}

// Tokens converts the series into its serializable form.
func (s Series) Tokens() []Token {
	tokens := make([]Token, 0, len(s))
	for _, item := range s {
		switch it := item.(type) {
		case Page:
			tokens = append(tokens, Token{Kind: KindPage, Page: int(it)})
		case Current:
			tokens = append(tokens, Token{Kind: KindCurrent, Page: int(it)})
		case Gap:
			tokens = append(tokens, Token{Kind: KindGap})
		}
	}
	return tokens
}

// Pages returns the page number behind every non-gap token, in order.
func (s Series) Pages() []int {
	pages := make([]int, 0, len(s))
	for _, item := range s {
		switch it := item.(type) {
		case Page:
			pages = append(pages, int(it))
		case Current:
			pages = append(pages, int(it))
		}
	}
	return pages
}

// buildSeries lays out the page window for current inside totalPages pages.
// Callers guarantee totalPages >= 1 and width >= 1. A zero slot is a gap.
func buildSeries(totalPages, current, width int) Series {
	var slots []int

	if totalPages <= width {
		slots = make([]int, totalPages)
		for i := range slots {
			slots[i] = i + 1
		}
		return markCurrent(slots, current)
	}

	half := (width - 1) / 2
	var start int
	switch {
	case current <= half:
		start = 1
	case current > totalPages-width+half:
		start = totalPages - width + 1
	default:
		start = current - half
	}

	slots = make([]int, width)
	for i := range slots {
		slots[i] = start + i
	}

	if width >= MinGapWidth {
		last := width - 1
		// Gap checks read the raw window before the edges are forced.
		if slots[1] != 2 {
			slots[1] = 0
		}
		if slots[last-1] != totalPages-1 {
			slots[last-1] = 0
		}
		slots[0] = 1
		slots[last] = totalPages
	}

	return markCurrent(slots, current)
}

func markCurrent(slots []int, current int) Series {
	series := make(Series, len(slots))
	marked := false
	for i, n := range slots {
		switch {
		case n == 0:
			series[i] = Gap{}
		case n == current && !marked:
			series[i] = Current(n)
			marked = true
		default:
			series[i] = Page(n)
		}
	}
	return series
}
