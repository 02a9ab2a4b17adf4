package converter

import (
	"time"

	"marketplace-service/src/internal/entity"
	"marketplace-service/src/internal/model"
	"marketplace-service/src/pkg/utils"

	"github.com/google/uuid"
)

func OrderToResponse(order *entity.Order) *model.OrderResponse {
	return &model.OrderResponse{
		ID:              order.ID,
		PackageID:       order.PackageID,
		PackageDetailID: order.PackageDetailID,
		RestaurantID:    order.RestaurantID,
		UserID:          order.UserID,
		Location:        order.Location,
		EventDate:       order.EventDate.Format(model.EventDateLayout),
		StartTime:       order.StartTime,
		EndTime:         order.EndTime,
		Participants:    order.Participants,
		Message:         order.Message,
		UnitPrice:       model.NewMoney(order.UnitPrice),
		TotalPrice:      model.NewMoney(order.TotalPrice),
		Status:          string(order.Status),
		CreatedAt:       utils.InLocation(order.CreatedAt),
		UpdatedAt:       utils.InLocation(order.UpdatedAt),
	}
}

func OrdersToResponse(orders []entity.Order) []model.OrderResponse {
	out := make([]model.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *OrderToResponse(&orders[i]))
	}
	return out
}

func OrderToEvent(order *entity.Order, eventType string, previous entity.OrderStatus) *model.OrderEvent {
	return &model.OrderEvent{
		EventID:        uuid.NewString(),
		EventType:      eventType,
		OrderID:        order.ID,
		UserID:         order.UserID,
		RestaurantID:   order.RestaurantID,
		Status:         string(order.Status),
		PreviousStatus: string(previous),
		TotalPrice:     model.NewMoney(order.TotalPrice),
		OccurredAt:     time.Now().UTC(),
	}
}
