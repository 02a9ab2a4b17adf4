package model

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit inside int for every accepted limit.
	MaxPage = math.MaxInt / MaxLimit
)

type Pagination struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalItems      int64 `json:"totalItems"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

type SearchResult[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPagination derives page metadata from a separately counted total.
func NewPagination(page, limit int, totalItems int64) Pagination {
	totalPages := 0
	if limit > 0 && totalItems > 0 {
		totalPages = int((totalItems + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalItems:      totalItems,
		ItemsPerPage:    limit,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

func NewSearchResult[T any](data []T, page, limit int, totalItems int64) SearchResult[T] {
	if data == nil {
		data = []T{}
	}
	return SearchResult[T]{Data: data, Pagination: NewPagination(page, limit, totalItems)}
}

func ValidatePage(page, limit int) error {
	if page < 1 || page > MaxPage {
		return ErrInvalidPage
	}
	if limit < 1 || limit > MaxLimit {
		return ErrInvalidLimit
	}
	return nil
}

func Offset(page, limit int) int {
	return (page - 1) * limit
}
