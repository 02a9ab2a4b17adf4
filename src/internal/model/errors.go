package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidQuantity   = errors.New("participants must be greater than 0")
	ErrInvalidPagination = errors.New("invalid pagination")
	ErrInvalidPage       = fmt.Errorf("%w: page must be a positive integer", ErrInvalidPagination)
	ErrInvalidLimit      = fmt.Errorf("%w: limit must be between 1 and 100", ErrInvalidPagination)
	ErrInvalidSortField  = errors.New("invalid sortBy. Allowed values: timestamp, title, id")
	ErrInvalidSortOrder  = errors.New("invalid sortOrder. Allowed values: asc, desc")
	ErrInvalidQuery      = errors.New("at least one search term or filter is required")
	ErrMissingReference  = errors.New("referenced entity does not exist")
	ErrNotFound          = errors.New("not found")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrStorage           = errors.New("storage error")
)
