package model

import (
	"strconv"
	"time"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status-changed"
)

type OrderEvent struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	OrderID        int64     `json:"order_id"`
	UserID         string    `json:"user_id"`
	RestaurantID   int64     `json:"restaurant_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	TotalPrice     Money     `json:"total_price"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// GetId keys events by order so all events of one order land on one partition.
func (e *OrderEvent) GetId() string {
	return strconv.FormatInt(e.OrderID, 10)
}
