package domain

import "strings"

// Fields the posts search can sort by.
const (
	SortByID     = "id"
	SortByUserID = "userId"
	SortByTitle  = "title"
)

// Sort orders accepted by the posts search.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// SearchCriteria carries the filter, pagination, and sort inputs for a
// post search. Nil pointer fields mean the caller did not provide them.
// A criteria value is built once per request, validated before use, and
// discarded afterwards.
type SearchCriteria struct {
	UserID        *int64
	TitleContains string
	Page          *int
	Size          *int
	Sort          string
	Order         string
}

// TitleFilter returns the trimmed title filter, or "" when absent.
func (c SearchCriteria) TitleFilter() string {
	return strings.TrimSpace(c.TitleContains)
}

// HasPagination reports whether both page and size were provided.
func (c SearchCriteria) HasPagination() bool {
	return c.Page != nil && c.Size != nil
}
