// Package pagination provides page/pageSize list paging shared by all list
// endpoints.
package pagination

import (
	"net/url"
	"strconv"
)

const (
	// DefaultPageSize is used when a pageSize is not provided.
	DefaultPageSize = 20
	// MaxPageSize caps how many items any list query can request.
	MaxPageSize = 100
)

// Params holds normalized paging inputs. Page is 1-indexed.
type Params struct {
	Page     int
	PageSize int
}

// FromQuery reads page and pageSize query parameters, falling back to
// defaults for missing or unusable values and capping pageSize.
func FromQuery(q url.Values) Params {
	p := Params{Page: 1, PageSize: DefaultPageSize}
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v >= 1 {
		p.Page = v
	}
	if v, err := strconv.Atoi(q.Get("pageSize")); err == nil && v >= 1 {
		p.PageSize = v
		if p.PageSize > MaxPageSize {
			p.PageSize = MaxPageSize
		}
	}
	return p
}

// Skip returns the zero-based document offset for the page.
func (p Params) Skip() int64 {
	return int64((p.Page - 1) * p.PageSize)
}

// Limit returns the page size as an int64 for driver options.
func (p Params) Limit() int64 {
	return int64(p.PageSize)
}

// Page is the list response envelope.
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	HasMore    bool  `json:"hasMore"`
}

// NewPage assembles the envelope, computing HasMore from the total count.
func NewPage[T any](items []T, total int64, p Params) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		TotalCount: total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		HasMore:    int64(p.Page*p.PageSize) < total,
	}
}
