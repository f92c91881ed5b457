package shared

const (
	// DefaultPage is the first page served when none is requested.
	DefaultPage = 1
	// DefaultLimit bounds list responses when no limit is requested.
	DefaultLimit = 10
	// MaxLimit caps the page size a client may ask for.
	MaxLimit = 100
)

// ListFilters represents standard list endpoint filters.
type ListFilters struct {
	Page   int
	Limit  int
	Search string
}

// Normalize clamps filters into their allowed ranges.
func (f ListFilters) Normalize() ListFilters {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

// Offset converts page/limit into a SQL offset.
func (f ListFilters) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Pagination describes one page of a list response.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

// NewPagination derives page metadata from a total row count.
func NewPagination(total int, f ListFilters) Pagination {
	pages := (total + f.Limit - 1) / f.Limit
	if pages < 1 {
		pages = 1
	}
	return Pagination{Total: total, Page: f.Page, Limit: f.Limit, TotalPages: pages}
}
