package pagination

// Meta is the serializable description of a Result.
type Meta struct {
	CurrentPage  int     `json:"current_page"  yaml:"current_page"`
	PageSize     int     `json:"page_size"     yaml:"page_size"`
	TotalPages   int     `json:"total_pages"   yaml:"total_pages"`
	TotalItems   int     `json:"total_items"   yaml:"total_items"`
	PreviousPage *int    `json:"previous_page" yaml:"previous_page"`
	NextPage     *int    `json:"next_page"     yaml:"next_page"`
	From         int     `json:"from"          yaml:"from"`
	To           int     `json:"to"            yaml:"to"`
	OutOfRange   bool    `json:"out_of_range"  yaml:"out_of_range"`
	Series       []Token `json:"series"        yaml:"series"`
}

// Meta converts the result into its serializable form.
func (r Result) Meta() Meta {
	return Meta{
		CurrentPage:  r.CurrentPage,
		PageSize:     r.PageSize,
		TotalPages:   r.TotalPages,
		TotalItems:   r.TotalCount,
		PreviousPage: r.PreviousPage,
		NextPage:     r.NextPage,
		From:         r.From(),
		To:           r.To(),
		OutOfRange:   r.OutOfRange(),
		Series:       r.Series.Tokens(),
	}
}
