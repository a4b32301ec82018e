package models

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// PaginatedResponse is the envelope every paginated list endpoint returns.
type PaginatedResponse struct {
	Items       any   `json:"items"`
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"current_page"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

func NewPaginatedResponse(items any, total int64, page, perPage int) PaginatedResponse {
	pages := int(math.Ceil(float64(total) / float64(perPage)))
	return PaginatedResponse{
		Items:       items,
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		HasNext:     page < pages,
		HasPrev:     page > 1,
	}
}

// CatalogFilter narrows a published-item listing.
type CatalogFilter struct {
	CategoryID   *uint
	FeaturedOnly bool
	Page         int
	PerPage      int
}

// Normalize clamps paging values to sane bounds. Out-of-range pages are left
// alone; they yield an empty page rather than an error.
func (f *CatalogFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 || f.PerPage > MaxPageSize {
		f.PerPage = DefaultPageSize
	}
}

func (f *CatalogFilter) Offset() int {
	return (f.Page - 1) * f.PerPage
}
