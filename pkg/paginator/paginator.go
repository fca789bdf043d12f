package paginator

import "math"

// Adjust normalizes the pagination parameters to valid values.
func (q *PaginateQuery) Adjust() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}

	if q.Limit < 1 {
		q.Limit = DefaultLimit
	} else if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
}

// Offset is the index of the first item of the page. It saturates at math.MaxInt
// instead of overflowing for huge page numbers.
func (q PaginateQuery) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}

// Page returns the slice of items selected by q together with its metadata.
// A page past the end is empty; the items themselves are not copied.
func Page[T any](items []T, q PaginateQuery) ([]T, Paginator) {
	q.Adjust()

	total := len(items)
	start := min(q.Offset(), total)
	end := min(start+q.Limit, total)
	page := items[start:end]

	return page, Paginator{
		Total:       total,
		Count:       len(page),
		PerPage:     q.Limit,
		CurrentPage: q.Page,
	}
}

// TotalPages is ceil(Total / PerPage).
func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

func (p Paginator) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

func (p Paginator) HasPreviousPage() bool {
	return p.CurrentPage > 1
}

// ToResponse adds the derived page counts.
func (p Paginator) ToResponse() PaginatorResponse {
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages(),
		HasNext:     p.HasNextPage(),
		HasPrev:     p.HasPreviousPage(),
	}
}
