package pagination

import (
	"errors"
	"strconv"
	"strings"
)

// Validation limits for user-facing pagination parameters.
const (
	DefaultPage     = 1
	MinPage         = 1
	DefaultPageSize = 8
	MinPageSize     = 1
	MaxPageSize     = 1000
	MaxSeriesWidth  = 99
)

// Common validation errors.
var (
	ErrInvalidPageSize    = errors.New("page-size must be between 1 and 1000")
	ErrInvalidSeriesWidth = errors.New("width must be between 1 and 99")
)

// Params holds the pagination settings a caller collects from flags or
// configuration. Page is deliberately lenient: it comes from untrusted input
// and is normalized rather than rejected.
type Params struct {
	// Page is the 1-based page number. Values below 1 mean the first page.
	Page int

	// PageSize is the number of items per page.
	PageSize int

	// SeriesWidth is the number of tokens in the navigation series.
	SeriesWidth int
}

// NewParams creates Params with default values.
func NewParams() Params {
	return Params{
		Page:        DefaultPage,
		PageSize:    DefaultPageSize,
		SeriesWidth: DefaultSeriesWidth,
	}
}

// Validate checks the settings that must come from trusted configuration.
func (p Params) Validate() error {
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return ErrInvalidPageSize
	}
	if p.SeriesWidth < 1 || p.SeriesWidth > MaxSeriesWidth {
		return ErrInvalidSeriesWidth
	}
	return nil
}

// Request pairs the parameters with a total item count.
func (p Params) Request(totalCount int) Request {
	return Request{
		TotalCount:  totalCount,
		PageSize:    p.PageSize,
		Page:        p.Page,
		SeriesWidth: p.SeriesWidth,
	}
}

// ParsePage turns a raw query value into a page number. It never fails:
// empty, non-numeric and non-positive values all select the first page.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < MinPage {
		return MinPage
	}
	return n
}
