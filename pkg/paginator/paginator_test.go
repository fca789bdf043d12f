package paginator

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"
)

func TestAdjust(t *testing.T) {
	tests := []struct {
		name string
		in   PaginateQuery
		want PaginateQuery
	}{
		{name: "defaults", in: PaginateQuery{}, want: PaginateQuery{Page: 1, Limit: DefaultLimit}},
		{name: "caps limit", in: PaginateQuery{Page: 2, Limit: 500}, want: PaginateQuery{Page: 2, Limit: MaxLimit}},
		{name: "keeps valid", in: PaginateQuery{Page: 3, Limit: 5}, want: PaginateQuery{Page: 3, Limit: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.in
			q.Adjust()
			gt.Equal(t, q, tt.want)
		})
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("middle page", func(t *testing.T) {
		page, p := Page(items, PaginateQuery{Page: 2, Limit: 3})
		gt.Equal(t, page, []int{4, 5, 6})
		resp := p.ToResponse()
		gt.Equal(t, resp.Total, 7)
		gt.Equal(t, resp.Count, 3)
		gt.Equal(t, resp.TotalPages, 3)
		gt.True(t, resp.HasNext)
		gt.True(t, resp.HasPrev)
	})

	t.Run("last partial page", func(t *testing.T) {
		page, p := Page(items, PaginateQuery{Page: 3, Limit: 3})
		gt.Equal(t, page, []int{7})
		gt.False(t, p.HasNextPage())
	})

	t.Run("past the end", func(t *testing.T) {
		page, p := Page(items, PaginateQuery{Page: 9, Limit: 3})
		gt.Equal(t, len(page), 0)
		gt.Equal(t, p.Count, 0)
		gt.Equal(t, p.Total, 7)
	})

	t.Run("huge page number", func(t *testing.T) {
		page, p := Page(items, PaginateQuery{Page: 100000000000000000, Limit: 100})
		gt.Equal(t, len(page), 0)
		gt.Equal(t, p.Total, 7)
		gt.Equal(t, p.CurrentPage, 100000000000000000)
		gt.False(t, p.HasNextPage())
	})

	t.Run("offset saturates", func(t *testing.T) {
		gt.Equal(t, PaginateQuery{Page: math.MaxInt, Limit: MaxLimit}.Offset(), math.MaxInt)
		gt.Equal(t, PaginateQuery{Page: 3, Limit: 10}.Offset(), 20)
	})

	t.Run("empty input", func(t *testing.T) {
		page, p := Page([]int{}, PaginateQuery{})
		gt.Equal(t, len(page), 0)
		gt.Equal(t, p.TotalPages(), 0)
		gt.False(t, p.HasPreviousPage())
	})
}
