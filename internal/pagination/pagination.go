package pagination

// Series layout constants.
const (
	// DefaultSeriesWidth is the number of tokens shown when the caller has no preference.
	DefaultSeriesWidth = 7
	// MinGapWidth is the narrowest series that pins the first and last page and
	// collapses distant ranges into gaps. Narrower series show a plain window.
	MinGapWidth = 7
)

// Request bundles the inputs of a pagination computation.
type Request struct {
	TotalCount  int
	PageSize    int
	Page        int
	SeriesWidth int
}

// Compute runs Compute with the request's fields. A zero SeriesWidth selects
// DefaultSeriesWidth.
func (r Request) Compute() (Result, error) {
	width := r.SeriesWidth
	if width == 0 {
		width = DefaultSeriesWidth
	}
	return Compute(r.TotalCount, r.PageSize, r.Page, width)
}

// Result describes one page of a paginated listing.
type Result struct {
	TotalCount  int
	PageSize    int
	TotalPages  int
	CurrentPage int
	// PreviousPage is nil on the first page.
	PreviousPage *int
	// NextPage is nil on the last page and beyond it.
	NextPage *int
	Series   Series
}

// ComputeDefault is Compute with DefaultSeriesWidth.
func ComputeDefault(totalCount, pageSize, currentPage int) (Result, error) {
	return Compute(totalCount, pageSize, currentPage, DefaultSeriesWidth)
}

// Compute returns the page window for currentPage in a listing of totalCount
// items split into pages of pageSize.
//
// pageSize and seriesWidth must be positive, otherwise a *ConfigurationError is
// returned. Everything else is normalized: a negative totalCount counts as zero
// and a currentPage below 1 is treated as 1. A currentPage past the last page
// is kept as is; the series then marks no page and NextPage is nil. Whether to
// redirect such requests is up to the caller (see OutOfRange).
func Compute(totalCount, pageSize, currentPage, seriesWidth int) (Result, error) {
	if pageSize <= 0 {
		return Result{}, &ConfigurationError{Field: "page_size", Value: pageSize}
	}
	if seriesWidth <= 0 {
		return Result{}, &ConfigurationError{Field: "series_width", Value: seriesWidth}
	}
	if totalCount < 0 {
		totalCount = 0
	}
	if currentPage < 1 {
		currentPage = 1
	}

	r := Result{
		TotalCount:  totalCount,
		PageSize:    pageSize,
		TotalPages:  totalPages(totalCount, pageSize),
		CurrentPage: currentPage,
		Series:      Series{},
	}
	if r.TotalPages == 0 {
		return r, nil
	}

	if currentPage > 1 {
		prev := currentPage - 1
		r.PreviousPage = &prev
	}
	if currentPage < r.TotalPages {
		next := currentPage + 1
		r.NextPage = &next
	}
	r.Series = buildSeries(r.TotalPages, currentPage, seriesWidth)

	return r, nil
}

// totalPages is ceil(totalCount/pageSize) without overflowing near MaxInt.
func totalPages(totalCount, pageSize int) int {
	if totalCount <= 0 {
		return 0
	}
	n := totalCount / pageSize
	if totalCount%pageSize != 0 {
		n++
	}
	return n
}

// HasPrevious reports whether a previous page exists.
func (r Result) HasPrevious() bool { return r.PreviousPage != nil }

// HasNext reports whether a next page exists.
func (r Result) HasNext() bool { return r.NextPage != nil }

// IsCurrent reports whether page is the page being displayed.
func (r Result) IsCurrent(page int) bool { return page == r.CurrentPage }

// OutOfRange reports whether the requested page lies past the last page, as
// happens with stale links after items were removed. Empty listings are never
// out of range.
func (r Result) OutOfRange() bool {
	return r.TotalPages > 0 && r.CurrentPage > r.TotalPages
}

// LastPage is the highest valid page number, or 1 for an empty listing.
func (r Result) LastPage() int {
	if r.TotalPages == 0 {
		return 1
	}
	return r.TotalPages
}

// Offset is the number of items preceding the current page. Past the last
// page it saturates at TotalCount.
func (r Result) Offset() int {
	if r.CurrentPage > r.TotalPages {
		return r.TotalCount
	}
	return (r.CurrentPage - 1) * r.PageSize
}

// Limit is the maximum number of items on a page.
func (r Result) Limit() int {
	return r.PageSize
}

// From is the 1-based position of the first item on the current page, or 0
// when the page holds no items.
func (r Result) From() int {
	if r.TotalCount == 0 || r.OutOfRange() {
		return 0
	}
	return r.Offset() + 1
}

// To is the 1-based position of the last item on the current page, or 0 when
// the page holds no items.
func (r Result) To() int {
	if r.From() == 0 {
		return 0
	}
	offset := r.Offset()
	return offset + min(r.PageSize, r.TotalCount-offset)
}
