package utils

import "user_service/internal/model"

// Paginate returns the page of items selected by params.
// Out-of-range pages yield an empty, non-nil slice.
func Paginate[T any](items []T, params model.PaginationParams) []T {
	p := params.Normalize()
	// Compare page counts before multiplying so a huge index cannot overflow.
	pages := (len(items) + p.PageSize - 1) / p.PageSize
	if p.PageIndex-1 >= pages {
		return []T{}
	}
	start := (p.PageIndex - 1) * p.PageSize
	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
