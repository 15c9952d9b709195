package pagination

// ApplyToSlice returns the items that belong to the result's current page.
// Out-of-range pages yield an empty slice. The returned slice shares its
// backing array with items.
func ApplyToSlice[T any](items []T, r Result) []T {
	if r.TotalPages == 0 || r.OutOfRange() {
		return []T{}
	}
	offset := r.Offset()
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	end := offset + min(r.Limit(), len(items)-offset)
	return items[offset:end]
}
