package readmodel

// Page is one slice of a list plus pagination metadata.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// DefaultPageSize applies when a caller passes a page size below 1.
const DefaultPageSize = 10

// Paginate returns the 1-indexed page of items. A page past the end yields an
// empty, non-nil Items slice so clients can render it without a nil check.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	result := Page[T]{
		Items:      []T{},
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: pages,
	}

	// Compared in page units so huge page numbers cannot overflow the offset.
	if page-1 >= pages {
		return result
	}
	start := (page - 1) * pageSize
	end := total
	if pageSize < total-start {
		end = start + pageSize
	}
	result.Items = items[start:end]
	return result
}
