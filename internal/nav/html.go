package nav

import (
	"errors"
	"html/template"
	"io"

	"github.com/rshade/pagenav/internal/pagination"
)

// ErrNoURLFunc is returned when a renderer that emits links has no URLFunc.
var ErrNoURLFunc = errors.New("nav: a URLFunc is required to render links")

const navTemplate = `<nav class="pagy-nav"><ul class="pagy-nav">` +
	`{{if .Prev}}<li class="prev"><a href="{{.Prev}}" rel="prev">&#8592; Previous</a></li>` +
	`{{else}}<li class="prev disabled"><span>&#8592; Previous</span></li>{{end}}` +
	`{{range .Items}}` +
	`{{if .Gap}}<li class="page gap"><span>&hellip;</span></li>` +
	`{{else if .Current}}<li class="page active"><span>{{.Page}}</span></li>` +
	`{{else}}<li class="page"><a href="{{.Href}}">{{.Page}}</a></li>{{end}}` +
	`{{end}}` +
	`{{if .Next}}<li class="next"><a href="{{.Next}}" rel="next">Next &#8594;</a></li>` +
	`{{else}}<li class="next disabled"><span>Next &#8594;</span></li>{{end}}` +
	`</ul></nav>`

//nolint:gochecknoglobals // Parsed once; templates are safe for concurrent use.
var navTmpl = template.Must(template.New("nav").Parse(navTemplate))

type htmlItem struct {
	Page    int
	Href    string
	Current bool
	Gap     bool
}

type htmlNav struct {
	Prev  string
	Next  string
	Items []htmlItem
}

// RenderHTML writes the navigation markup for r. Listings with at most one page
// produce no output. Link targets are escaped for the href attribute.
func RenderHTML(w io.Writer, r pagination.Result, link URLFunc) error {
	if r.TotalPages <= 1 {
		return nil
	}
	if link == nil {
		return ErrNoURLFunc
	}

	view := htmlNav{Items: make([]htmlItem, 0, len(r.Series))}
	if r.PreviousPage != nil {
		view.Prev = link(*r.PreviousPage)
	}
	if r.NextPage != nil {
		view.Next = link(*r.NextPage)
	}

	for _, item := range r.Series {
		switch it := item.(type) {
		case pagination.Page:
			view.Items = append(view.Items, htmlItem{Page: int(it), Href: link(int(it))})
		case pagination.Current:
			view.Items = append(view.Items, htmlItem{Page: int(it), Current: true})
		case pagination.Gap:
			view.Items = append(view.Items, htmlItem{Gap: true})
		}
	}

	return navTmpl.Execute(w, view)
}
