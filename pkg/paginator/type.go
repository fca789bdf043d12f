package paginator

// PaginateQuery is the page requested by a client.
type PaginateQuery struct {
	Page  int `json:"page" form:"page"`
	Limit int `json:"limit" form:"limit"`
}

// Paginator describes one page of an in-memory result.
type Paginator struct {
	Total       int
	Count       int
	PerPage     int
	CurrentPage int
}

// PaginatorResponse is the wire form of Paginator.
type PaginatorResponse struct {
	Total       int  `json:"total"`
	Count       int  `json:"count"`
	PerPage     int  `json:"per_page"`
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}
