package viewmodel

import "fmt"

// Pagination contains pagination metadata for list views. Pages are computed from the
// total reported by the API.
type Pagination struct {
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	StartIndex int
	EndIndex   int
	PrevURL    string
	NextURL    string
}

// NewPagination computes page bounds for a list of total items. TotalPages is at least 1
// and Page is clamped into [1, TotalPages].
func NewPagination(page, pageSize, total int) Pagination {
	if pageSize < 1 {
		pageSize = 1
	}
	if total < 0 {
		total = 0
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	p := Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: pages,
		HasPrev:    page > 1,
		HasNext:    page < pages,
	}
	if total > 0 {
		p.StartIndex = (page-1)*pageSize + 1
		p.EndIndex = min(page*pageSize, total)
	}
	return p
}

// Visible reports whether the pager should be drawn at all.
func (p Pagination) Visible() bool {
	return p.TotalCount > 0 && p.TotalPages > 1
}

// Label is the pager caption, e.g. "Page 2 of 5 (93 items)".
func (p Pagination) Label() string {
	return fmt.Sprintf("Page %d of %d (%d items)", p.Page, p.TotalPages, p.TotalCount)
}
