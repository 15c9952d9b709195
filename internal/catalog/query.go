package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/rshade/pagenav/internal/pagination"
)

// DefaultPageSize is the number of products on a catalog page.
const DefaultPageSize = 8

// Sort selects the order of a listing.
type Sort string

// Supported sort orders.
const (
	SortNewest       Sort = "newest"
	SortPriceLowHigh Sort = "price_low_high"
	SortPriceHighLow Sort = "price_high_low"
)

// Sorts returns every sort order in cycling order.
func Sorts() []Sort {
	return []Sort{SortNewest, SortPriceLowHigh, SortPriceHighLow}
}

// ParseSort maps a raw sort key to a Sort. Unknown and empty keys select
// SortNewest.
func ParseSort(raw string) Sort {
	switch s := Sort(strings.ToLower(strings.TrimSpace(raw))); s {
	case SortPriceLowHigh, SortPriceHighLow:
		return s
	default:
		return SortNewest
	}
}

// Label returns a human readable name of the sort order.
func (s Sort) Label() string {
	switch ParseSort(string(s)) {
	case SortPriceLowHigh:
		return "price: low to high"
	case SortPriceHighLow:
		return "price: high to low"
	default:
		return "newest first"
	}
}

// Next returns the sort order following s.
func (s Sort) Next() Sort {
	all := Sorts()
	i := slices.Index(all, ParseSort(string(s)))
	return all[(i+1)%len(all)]
}

// Query selects one page of a catalog listing. Zero PageSize and SeriesWidth
// select the defaults.
type Query struct {
	Search      string
	Sort        Sort
	Page        int
	PageSize    int
	SeriesWidth int
}

// Listing is one page of products together with its pagination.
type Listing struct {
	Items  []Product
	Result pagination.Result
}

// List filters, sorts and paginates the catalog. Search matches a
// case-insensitive substring of the name or description.
func (c *Catalog) List(q Query) (Listing, error) {
	matched := c.filter(q.Search)
	sortProducts(matched, ParseSort(string(q.Sort)))

	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	r, err := pagination.Request{
		TotalCount:  len(matched),
		PageSize:    pageSize,
		Page:        q.Page,
		SeriesWidth: q.SeriesWidth,
	}.Compute()
	if err != nil {
		return Listing{}, err
	}

	return Listing{Items: pagination.ApplyToSlice(matched, r), Result: r}, nil
}

// Count returns the number of products matching search.
func (c *Catalog) Count(search string) int {
	return len(c.filter(search))
}

func (c *Catalog) filter(search string) []Product {
	search = strings.TrimSpace(search)
	if search == "" {
		return c.Products()
	}

	fold := cases.Fold()
	needle := fold.String(search)
	var out []Product
	for _, p := range c.products {
		if strings.Contains(fold.String(p.Name), needle) ||
			strings.Contains(fold.String(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

func sortProducts(products []Product, s Sort) {
	switch s {
	case SortPriceLowHigh:
		slices.SortStableFunc(products, func(a, b Product) int {
			return cmp.Compare(a.OpenPrice, b.OpenPrice)
		})
	case SortPriceHighLow:
		slices.SortStableFunc(products, func(a, b Product) int {
			return cmp.Compare(b.OpenPrice, a.OpenPrice)
		})
	default:
		slices.SortStableFunc(products, func(a, b Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
}
