// Package result provides the success/failure envelopes returned by the API
// layer: Result for single values and PaginatedResult for paged lists, plus
// the RequestParameters paging base parsed from list query strings.
package result

// Result is a success/failure envelope for a single value.
type Result[T any] struct {
	Succeeded bool     `json:"succeeded"`
	Messages  []string `json:"messages,omitempty"`
	Data      T        `json:"data"`
}

// Ok wraps data in a successful result.
func Ok[T any](data T, messages ...string) Result[T] {
	return Result[T]{Succeeded: true, Data: data, Messages: messages}
}

// Fail builds a failed result carrying error messages.
func Fail[T any](messages ...string) Result[T] {
	return Result[T]{Succeeded: false, Messages: messages}
}

// PaginatedResult is a success envelope for a page of values with paging
// metadata. TotalPages is derived from TotalCount and PageSize.
type PaginatedResult[T any] struct {
	Succeeded   bool     `json:"succeeded"`
	Messages    []string `json:"messages,omitempty"`
	Data        []T      `json:"data"`
	CurrentPage int      `json:"current_page"`
	PageSize    int      `json:"page_size"`
	TotalPages  int      `json:"total_pages"`
	TotalCount  int      `json:"total_count"`
}

// Paginate wraps a page of items with its metadata.
func Paginate[T any](items []T, totalCount, page, pageSize int) PaginatedResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	return PaginatedResult[T]{
		Succeeded:   true,
		Data:        items,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
	}
}

// HasPreviousPage reports whether a page precedes the current one.
func (p PaginatedResult[T]) HasPreviousPage() bool { return p.CurrentPage > 1 }

// HasNextPage reports whether a page follows the current one.
func (p PaginatedResult[T]) HasNextPage() bool { return p.CurrentPage < p.TotalPages }

// Paging defaults and bounds shared by every list endpoint.
const (
	DefaultPageSize = 25
	MaxPageSize     = 200
)

// RequestParameters is the paging base carried by list requests. SearchTerm
// and OrderBy are optional; modules add their own filters on top.
type RequestParameters struct {
	PageNumber int    `json:"page_number" query:"page"`
	PageSize   int    `json:"page_size" query:"page_size"`
	SearchTerm string `json:"search_term,omitempty" query:"search"`
	OrderBy    string `json:"order_by,omitempty" query:"order_by"`
}

// Page returns the page number clamped to a minimum of 1.
func (r RequestParameters) Page() int {
	if r.PageNumber < 1 {
		return 1
	}
	return r.PageNumber
}

// Size returns the page size clamped to [1, MaxPageSize], defaulting to
// DefaultPageSize when unset.
func (r RequestParameters) Size() int {
	switch {
	case r.PageSize < 1:
		return DefaultPageSize
	case r.PageSize > MaxPageSize:
		return MaxPageSize
	default:
		return r.PageSize
	}
}

// Offset returns the row offset for the current page.
func (r RequestParameters) Offset() int {
	return (r.Page() - 1) * r.Size()
}
