package response

// PaginatedResponse wraps one page of an admin listing.
type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	TotalPages int    `json:"total_pages"`
	HasNext    bool   `json:"has_next"`
	HasPrev    bool   `json:"has_prev"`
	Query      string `json:"q,omitempty"`
}

// NewPaginatedResponse never returns a nil Data slice, so an empty page
// encodes as [] rather than null.
func NewPaginatedResponse[T any](data []T, page, perPage int, total int64, query string) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	if page < 1 {
		page = 1
	}

	totalPages := 0
	if perPage > 0 && total > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}

	return &PaginatedResponse[T]{
		Data: data,
		Pagination: PaginationMeta{
			Total:      total,
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
			Query:      query,
		},
	}
}
