package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	EventDateLayout = "2006-01-02"
	ClockLayout     = "15:04:05"
)

type CreateOrderRequest struct {
	UserID          string  `json:"-" validate:"required"`
	Location        string  `json:"location" validate:"required,max=255"`
	EventDate       string  `json:"event_date" validate:"required"`
	PackageID       *int64  `json:"package_id" validate:"omitempty,gt=0"`
	RestaurantID    int64   `json:"restaurant_id" validate:"required,gt=0"`
	StartTime       string  `json:"start_time" validate:"required"`
	EndTime         string  `json:"end_time" validate:"required"`
	PackageDetailID int64   `json:"package_detail_id" validate:"required,gt=0"`
	Participants    int     `json:"participants"`
	Message         *string `json:"message"`
	Status          string  `json:"status"`
}

// UpdateOrderRequest is a partial update; nil fields are left untouched.
type UpdateOrderRequest struct {
	ID           int64   `json:"-"`
	Location     *string `json:"location" validate:"omitempty,min=1,max=255"`
	EventDate    *string `json:"event_date"`
	RestaurantID *int64  `json:"restaurant_id" validate:"omitempty,gt=0"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Participants *int    `json:"participants"`
	Message      *string `json:"message"`
	Status       *string `json:"status"`
}

func (r *UpdateOrderRequest) IsEmpty() bool {
	return r.Location == nil && r.EventDate == nil && r.RestaurantID == nil &&
		r.StartTime == nil && r.EndTime == nil && r.Participants == nil &&
		r.Message == nil && r.Status == nil
}

type UpdateOrderStatusRequest struct {
	ID     int64  `json:"-"`
	Status string `json:"status"`
}

type GetOrderRequest struct {
	ID int64 `json:"-" validate:"required,gt=0"`
}

type ListMyOrdersRequest struct {
	UserID string `json:"-" validate:"required"`
	Status string `json:"status"`
}

type OrderResponse struct {
	ID              int64     `json:"id"`
	PackageID       *int64    `json:"package_id"`
	PackageDetailID int64     `json:"package_detail_id"`
	RestaurantID    int64     `json:"restaurant_id"`
	UserID          string    `json:"user_id"`
	Location        string    `json:"location"`
	EventDate       string    `json:"event_date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	Participants    int       `json:"participants"`
	Message         *string   `json:"message"`
	UnitPrice       Money     `json:"unit_price"`
	TotalPrice      Money     `json:"total_price"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type DeleteOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ParseEventDate accepts a calendar date or a full RFC3339 instant and keeps the date part.
func ParseEventDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(EventDateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: event_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// NormalizeClock turns "HH:MM" or "HH:MM:SS" into "HH:MM:SS".
func NormalizeClock(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{ClockLayout, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ClockLayout), nil
		}
	}
	return "", fmt.Errorf("%w: %s must be HH:MM or HH:MM:SS", ErrInvalidInput, field)
}
