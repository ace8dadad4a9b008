package entity

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// PageQuery selects one page of profiles. Filters are case-sensitive substrings.
type PageQuery struct {
	Page        int
	PageSize    int
	NameFilter  string
	EmailFilter string
}

// Normalize clamps paging: page < 1 becomes 1, pageSize outside (0, 200] becomes 20.
func (q PageQuery) Normalize() PageQuery {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 || q.PageSize > MaxPageSize {
		q.PageSize = DefaultPageSize
	}

	return q
}

func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// Page is one slice of a filtered, ordered result set.
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
}
