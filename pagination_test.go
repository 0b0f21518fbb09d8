// pagination_test.go
package main

import (
	"testing"
	"time"
)

// makeEntries builds n entries with strictly increasing creation times, so
// entry n-1 is the newest.
func makeEntries(n int) []Entry {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		entries[i] = Entry{
			ID:          i + 1,
			Title:       "entry",
			DateCreated: base.Add(time.Duration(i) * time.Hour),
		}
	}
	return entries
}

// TestPaginateSlicing tests page counts and that concatenating all pages
// reproduces the full newest-first ordering exactly once per entry.
func TestPaginateSlicing(t *testing.T) {
	entries := makeEntries(7)

	first := paginate(entries, 1, 3)
	if first.TotalCount != 7 {
		t.Errorf("Expected total count 7, got %d", first.TotalCount)
	}
	if first.TotalPages != 3 {
		t.Errorf("Expected ceil(7/3) = 3 pages, got %d", first.TotalPages)
	}

	var seen []int
	for page := 1; page <= first.TotalPages; page++ {
		p := paginate(entries, page, 3)
		for _, e := range p.Items {
			seen = append(seen, e.ID)
		}
	}

	if len(seen) != 7 {
		t.Fatalf("Expected 7 items across all pages, got %d", len(seen))
	}
	// Newest first: IDs 7 down to 1
	for i, id := range seen {
		if id != 7-i {
			t.Errorf("Expected ID %d at position %d, got %d", 7-i, i, id)
		}
	}
}

// TestPaginateOutOfRange tests that pages beyond the last return empty items
// without erroring.
func TestPaginateOutOfRange(t *testing.T) {
	entries := makeEntries(7)

	p := paginate(entries, 4, 3)
	if len(p.Items) != 0 {
		t.Errorf("Expected an empty page beyond the range, got %d items", len(p.Items))
	}
	if p.TotalPages != 3 || p.TotalCount != 7 {
		t.Errorf("Expected totals to be reported on empty pages, got pages=%d count=%d",
			p.TotalPages, p.TotalCount)
	}
}

// TestPaginateClamping tests the page-number and page-size defaults.
func TestPaginateClamping(t *testing.T) {
	entries := makeEntries(5)

	p := paginate(entries, 0, 3)
	if p.Number != 1 {
		t.Errorf("Expected page 0 to clamp to 1, got %d", p.Number)
	}

	p = paginate(entries, -3, 3)
	if p.Number != 1 {
		t.Errorf("Expected a negative page to clamp to 1, got %d", p.Number)
	}

	p = paginate(entries, 1, 0)
	if p.Size != defaultPageSize {
		t.Errorf("Expected page size 0 to fall back to %d, got %d", defaultPageSize, p.Size)
	}
	if len(p.Items) != 3 {
		t.Errorf("Expected %d items with the default page size, got %d", defaultPageSize, len(p.Items))
	}
}

// TestPaginateEmpty tests pagination over no entries.
func TestPaginateEmpty(t *testing.T) {
	p := paginate([]Entry{}, 1, 3)
	if len(p.Items) != 0 || p.TotalCount != 0 || p.TotalPages != 0 {
		t.Errorf("Expected an empty page over no entries, got %+v", p)
	}
}

// TestPaginateSortsBeforeSlicing tests that unsorted input is ordered
// newest-first prior to slicing.
func TestPaginateSortsBeforeSlicing(t *testing.T) {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		{ID: 1, DateCreated: base.Add(2 * time.Hour)},
		{ID: 2, DateCreated: base.Add(5 * time.Hour)},
		{ID: 3, DateCreated: base.Add(1 * time.Hour)},
	}

	p := paginate(entries, 1, 2)
	if len(p.Items) != 2 || p.Items[0].ID != 2 || p.Items[1].ID != 1 {
		t.Errorf("Expected newest-first ordering [2, 1], got %v", p.Items)
	}
}

// TestPaginateNavigation tests the template helper methods.
func TestPaginateNavigation(t *testing.T) {
	entries := makeEntries(7)

	middle := paginate(entries, 2, 3)
	if !middle.HasPrev() || !middle.HasNext() {
		t.Error("Expected a middle page to have both neighbours")
	}
	if middle.PrevPage() != 1 || middle.NextPage() != 3 {
		t.Errorf("Expected neighbours 1 and 3, got %d and %d", middle.PrevPage(), middle.NextPage())
	}

	last := paginate(entries, 3, 3)
	if last.HasNext() {
		t.Error("Expected the last page to have no next page")
	}
	if !last.HasPrev() {
		t.Error("Expected the last page to have a previous page")
	}
}
