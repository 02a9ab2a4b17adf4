package model

import "time"

type RestaurantFilter struct {
	MainCategoryID  *int64
	FoodCategoryID  *int64
	EventCategoryID *int64
}

func (f RestaurantFilter) HasAny() bool {
	return f.MainCategoryID != nil || f.FoodCategoryID != nil || f.EventCategoryID != nil
}

type SearchRestaurantRequest struct {
	Query  string
	Filter RestaurantFilter
	Page   int
	Limit  int
}

type GetRestaurantRequest struct {
	ID int64 `validate:"required,gt=0"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ImageResponse struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

type RestaurantResponse struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	Description     *string            `json:"description"`
	UserID          string             `json:"user_id"`
	TaxID           *string            `json:"tax_id"`
	SubLocation     *string            `json:"sub_location"`
	Location        *string            `json:"location"`
	CreatedAt       time.Time          `json:"created_at"`
	MainCategories  []CategoryResponse `json:"main_categories"`
	FoodCategories  []CategoryResponse `json:"food_categories"`
	EventCategories []CategoryResponse `json:"event_categories"`
	Images          []ImageResponse    `json:"images"`
	AvgRating       *float64           `json:"avgRating"`
	TotalReview     int                `json:"totalReview"`
}
