package api

import (
	"net/url"
	"strconv"
)

// Page is the page-number envelope wrapping every list response.
type Page[T any] struct {
	// Count is the total number of records across all pages.
	Count int `json:"count"`
	// Next is the absolute URL of the following page, nil on the last one.
	Next *string `json:"next"`
	// Previous is the absolute URL of the preceding page, nil on the first one.
	Previous *string `json:"previous"`
	// Results holds the records of the current page.
	Results []T `json:"results"`
}

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool { return p.Next != nil }

// HasPrevious reports whether a preceding page exists.
func (p Page[T]) HasPrevious() bool { return p.Previous != nil }

// ListParams carries the pagination and filter parameters shared by list
// endpoints. The zero value requests the server defaults.
type ListParams struct {
	// Page is the 1-based page number; zero omits the parameter.
	Page int
	// PageSize overrides the server's default page size; zero omits it.
	PageSize int
	// Search is a free-text filter.
	Search string
	// Ordering names the sort field, prefixed with "-" for descending.
	Ordering string
	// Filters holds endpoint-specific query parameters, merged verbatim.
	Filters url.Values
}

// Values encodes the parameters as a query string.
func (p ListParams) Values() url.Values {
	v := url.Values{}
	for key, vals := range p.Filters {
		v[key] = vals
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(p.PageSize))
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Ordering != "" {
		v.Set("ordering", p.Ordering)
	}
	return v
}
