package model

const (
	DefaultPageSize = 10
	MaxPageSize     = 20
)

// PaginationParams selects one page of a list. PageIndex is 1-based.
type PaginationParams struct {
	PageIndex int `form:"page_index"`
	PageSize  int `form:"page_size"`
}

// Normalize returns params with defaults and bounds applied
func (p PaginationParams) Normalize() PaginationParams {
	if p.PageIndex < 1 {
		p.PageIndex = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}
