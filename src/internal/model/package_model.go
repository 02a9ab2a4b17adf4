package model

import "time"

type GetPackageRequest struct {
	ID int64 `json:"-" validate:"required,gt=0"`
}

type ListPackagesRequest struct {
	CategoryID   *int64
	RestaurantID *int64
}

type PackageDetailResponse struct {
	ID          int64   `json:"id"`
	PackageID   int64   `json:"package_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       Money   `json:"price"`
	OldPrice    *Money  `json:"old_price"`
	HasDiscount bool    `json:"has_discount"`
}

type PackageResponse struct {
	ID                int64                   `json:"id"`
	CategoryID        *int64                  `json:"category_id"`
	RestaurantID      *int64                  `json:"restaurant_id"`
	Name              string                  `json:"name"`
	Description       *string                 `json:"description"`
	Discount          *float64                `json:"discount"`
	StartDiscountDate *time.Time              `json:"start_discount_date"`
	EndDiscountDate   *time.Time              `json:"end_discount_date"`
	DiscountActive    bool                    `json:"discount_active"`
	PackageDetails    []PackageDetailResponse `json:"package_details"`
}

type PromotionResponse struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Description       *string    `json:"description"`
	Discount          float64    `json:"discount"`
	StartDiscountDate *time.Time `json:"start_discount_date"`
	EndDiscountDate   *time.Time `json:"end_discount_date"`
}
