// pagination.go
package main

import "sort"

// defaultPageSize matches the original listing's three entries per page.
// The serve command's --page-size flag overrides it.
const defaultPageSize = 3

// Page is one slice of an entry listing.
type Page struct {
	Items      []Entry `json:"items"`
	Number     int     `json:"page"`
	Size       int     `json:"pageSize"`
	TotalCount int     `json:"totalCount"`
	TotalPages int     `json:"totalPages"`
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a further page exists.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// PrevPage returns the previous page number.
func (p Page) PrevPage() int { return p.Number - 1 }

// NextPage returns the next page number.
func (p Page) NextPage() int { return p.Number + 1 }

// paginate sorts entries newest-first and slices out the requested page.
// The page number defaults to 1 and is clamped to at least 1; a page beyond
// the last returns an empty items slice rather than erroring. Sorting before
// slicing keeps the ordering deterministic across pages.
func paginate(entries []Entry, pageNumber, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageNumber < 1 {
		pageNumber = 1
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DateCreated.Equal(sorted[j].DateCreated) {
			return sorted[i].ID > sorted[j].ID
		}
		return sorted[i].DateCreated.After(sorted[j].DateCreated)
	})

	total := len(sorted)
	totalPages := (total + pageSize - 1) / pageSize

	page := Page{
		Items:      []Entry{},
		Number:     pageNumber,
		Size:       pageSize,
		TotalCount: total,
		TotalPages: totalPages,
	}

	start := (pageNumber - 1) * pageSize
	if start >= total {
		return page
	}

	end := start + pageSize
	if end > total {
		end = total
	}
	page.Items = sorted[start:end]
	return page
}
