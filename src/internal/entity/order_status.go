package entity

import "strings"

type OrderStatus string

const (
	OrderStatusPending           OrderStatus = "pending"
	OrderStatusWaitingForPayment OrderStatus = "waiting for payment"
	OrderStatusCancel            OrderStatus = "cancel"
	OrderStatusPreparing         OrderStatus = "preparing"
	OrderStatusFinished          OrderStatus = "finished"

	// OrderStatusAll is only meaningful as a list filter.
	OrderStatusAll = "all"
)

// OrderStatuses keeps declaration order; it is used in error messages.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusWaitingForPayment,
	OrderStatusCancel,
	OrderStatusPreparing,
	OrderStatusFinished,
}

// IsValidOrderStatus is an exact, case-sensitive membership check. Any status may
// follow any other; there is no transition graph.
func IsValidOrderStatus(s string) bool {
	for _, status := range OrderStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}

// IsTerminal reports the conventional end states. Nothing blocks leaving them.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCancel || s == OrderStatusFinished
}

func AllowedOrderStatuses() string {
	values := make([]string, len(OrderStatuses))
	for i, s := range OrderStatuses {
		values[i] = string(s)
	}
	return strings.Join(values, ", ")
}

func InvalidOrderStatusMessage() string {
	return "Invalid status. Allowed values: " + AllowedOrderStatuses()
}
