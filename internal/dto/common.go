package dto

// PaginationInfo is the pagination block of the list envelope; page numbers
// are 1-based at the API boundary.
type PaginationInfo struct {
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

func NewPaginationInfo(page, limit int, total int64) PaginationInfo {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return PaginationInfo{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

type PageResponse[T any] struct {
	Items      []T            `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

func NewPageResponse[T any](items []T, page, limit int, total int64) *PageResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &PageResponse[T]{
		Items:      items,
		Pagination: NewPaginationInfo(page, limit, total),
	}
}

// ListQuery is the common list-request shape bound from query parameters.
type ListQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Search string `form:"search"`
	SortBy string `form:"sort_by"`
	Order  string `form:"order"`
}
