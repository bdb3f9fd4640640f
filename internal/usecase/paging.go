package usecase

import "strings"

// AccountStatus is the parsed form of the loose status query string.
type AccountStatus int

const (
	StatusActive AccountStatus = iota
	StatusInactive
	StatusAll
)

// ParseAccountStatus maps a status string to its closed tag. Matching is
// case-insensitive and unrecognized values fall back to StatusActive;
// filter input is normalized, never rejected.
func ParseAccountStatus(s string) AccountStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inactive":
		return StatusInactive
	case "all":
		return StatusAll
	default:
		return StatusActive
	}
}

func (s AccountStatus) String() string {
	switch s {
	case StatusInactive:
		return "inactive"
	case StatusAll:
		return "all"
	default:
		return "active"
	}
}

// AccountFilter is the structured filter handed to the repository.
// Search, when present, is a case-insensitive substring match over
// customer name, phone and account number.
type AccountFilter struct {
	Status AccountStatus
	Search *string
}

// NewAccountFilter normalizes the loose status/search strings once at
// the service boundary.
func NewAccountFilter(status, search string) AccountFilter {
	filter := AccountFilter{Status: ParseAccountStatus(status)}

	if s := strings.TrimSpace(search); s != "" {
		filter.Search = &s
	}

	return filter
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// PageRequest is a normalized page/pageSize pair.
type PageRequest struct {
	Page     int
	PageSize int
}

// NormalizePage clamps out-of-range paging values to safe defaults:
// page < 1 becomes 1, pageSize < 1 becomes 10, pageSize > 100 becomes 100.
func NormalizePage(page, pageSize int) PageRequest {
	if page < 1 {
		page = 1
	}

	switch {
	case pageSize < 1:
		pageSize = defaultPageSize
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	}

	return PageRequest{Page: page, PageSize: pageSize}
}

// Offset is the row offset of the requested page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PagedResult is one page of items plus paging metadata.
type PagedResult[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalCount int64
	TotalPages int
}

// NewPagedResult assembles a page and derives TotalPages.
func NewPagedResult[T any](items []T, page PageRequest, totalCount int64) PagedResult[T] {
	totalPages := int((totalCount + int64(page.PageSize) - 1) / int64(page.PageSize))

	return PagedResult[T]{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
