package model

// DefaultPageSize is used when a listing request does not set a limit.
const DefaultPageSize = 12

// Page is one page of a filtered listing. Total counts the filtered set
// before slicing; Pages is ceil(Total/limit).
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Pages int `json:"pages"`
}

// Paginate slices items into the requested 1-indexed page. A page beyond
// the end yields an empty item list, not an error.
func Paginate[T any](items []T, page, limit int) Page[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	total := len(items)
	pages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return Page[T]{
		Items: items[start:end],
		Total: total,
		Page:  page,
		Pages: pages,
	}
}
