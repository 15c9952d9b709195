package pagination

import (
	"errors"
	"fmt"
)

// ErrInconsistent is returned by Verify when a result breaks one of the
// pagination invariants.
var ErrInconsistent = errors.New("inconsistent pagination result")

// Verify checks r against the invariants every computed result holds for the
// given series width. It is used to audit results read back from storage or
// another process.
func (r Result) Verify(width int) error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: page %d: %s", ErrInconsistent, r.CurrentPage, fmt.Sprintf(format, args...))
	}

	if r.PageSize > 0 && r.TotalPages != totalPages(r.TotalCount, r.PageSize) {
		return fail("total pages %d, want %d", r.TotalPages, totalPages(r.TotalCount, r.PageSize))
	}
	if r.TotalPages == 0 {
		if len(r.Series) != 0 || r.PreviousPage != nil || r.NextPage != nil {
			return fail("empty listing has navigation")
		}
		return nil
	}

	if want := min(r.TotalPages, width); len(r.Series) != want {
		return fail("series has %d slots, want %d", len(r.Series), want)
	}
	if width >= MinGapWidth && r.TotalPages > 1 {
		pages := r.Series.Pages()
		if len(pages) == 0 || pages[0] != 1 || pages[len(pages)-1] != r.TotalPages {
			return fail("series does not span 1..%d", r.TotalPages)
		}
		if _, ok := r.Series[0].(Gap); ok {
			return fail("series starts with a gap")
		}
	}

	currents := 0
	prev := 0
	for _, item := range r.Series {
		var n int
		switch it := item.(type) {
		case Page:
			n = int(it)
		case Current:
			currents++
			n = int(it)
			if n != r.CurrentPage {
				return fail("current marker on page %d", n)
			}
		case Gap:
			continue
		}
		if n <= prev {
			return fail("page %d follows page %d", n, prev)
		}
		prev = n
	}
	switch {
	case currents > 1:
		return fail("%d current markers", currents)
	case currents == 0 && !r.OutOfRange():
		return fail("current page is not marked")
	}

	if (r.PreviousPage == nil) != (r.CurrentPage <= 1) {
		return fail("previous page presence does not match")
	}
	if (r.NextPage == nil) != (r.CurrentPage >= r.TotalPages) {
		return fail("next page presence does not match")
	}
	return nil
}
