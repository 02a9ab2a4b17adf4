package model

import "time"

const (
	DefaultBlogSortBy    = "timestamp"
	DefaultBlogSortOrder = "desc"
)

// BlogSortColumns maps accepted sortBy values to columns; anything else is rejected.
var BlogSortColumns = map[string]string{
	"timestamp": "timestamp",
	"title":     "title",
	"id":        "id",
}

type ListBlogRequest struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Validate runs in the same order the handler reports errors: page, limit, sortBy, sortOrder.
func (r ListBlogRequest) Validate() error {
	if err := ValidatePage(r.Page, r.Limit); err != nil {
		return err
	}
	if _, ok := BlogSortColumns[r.SortBy]; !ok {
		return ErrInvalidSortField
	}
	if r.SortOrder != "asc" && r.SortOrder != "desc" {
		return ErrInvalidSortOrder
	}
	return nil
}

type GetBlogRequest struct {
	ID int64 `validate:"required,gt=0"`
}

type BlogResponse struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail"`
	UserID    string    `json:"user_id"`
}
