package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"marketplace-service/src/internal/entity"
	"marketplace-service/src/internal/gateway/messaging"
	"marketplace-service/src/internal/model"
	"marketplace-service/src/internal/model/converter"
	"marketplace-service/src/internal/pricing"
	"marketplace-service/src/internal/repository"
	"marketplace-service/src/pkg/log"
	"marketplace-service/src/pkg/qrcode"
	"marketplace-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const (
	orderStatusKey = "ORDER:STATUS:%d"
	orderStatusTTL = 24 * time.Hour
)

type OrderUseCase struct {
	Log             log.Log
	Validate        *validator.Validate
	OrderRepository repository.OrderRepository
	OrderProducer   *messaging.OrderProducer
	Redis           redis.UniversalClient
	Config          *viper.Viper
	Now             func() time.Time
}

func NewOrderUseCase(
	logger log.Log,
	validate *validator.Validate,
	orderRepository repository.OrderRepository,
	orderProducer *messaging.OrderProducer,
	redisClient redis.UniversalClient,
	cfg *viper.Viper,
) *OrderUseCase {
	return &OrderUseCase{
		Log:             logger,
		Validate:        validate,
		OrderRepository: orderRepository,
		OrderProducer:   orderProducer,
		Redis:           redisClient,
		Config:          cfg,
		Now:             time.Now,
	}
}

func (c *OrderUseCase) CreateOrder(ctx context.Context, request *model.CreateOrderRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = badRequest(fmt.Sprintf("validation error: %v", err.Error()), model.ErrInvalidInput)
		c.Log.Error("CreateOrder-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}
	if request.Participants <= 0 {
		result.Error = badRequest(model.ErrInvalidQuantity.Error(), model.ErrInvalidQuantity)
		c.Log.Error("CreateOrder-validation", model.ErrInvalidQuantity.Error(), "request", utils.ConvertString(request))
		return result
	}

	status := entity.OrderStatusPending
	if request.Status != "" {
		if !entity.IsValidOrderStatus(request.Status) {
			result.Error = badRequest(entity.InvalidOrderStatusMessage(), model.ErrInvalidStatus)
			return result
		}
		status = entity.OrderStatus(request.Status)
	}

	eventDate, err := model.ParseEventDate(request.EventDate)
	if err != nil {
		result.Error = toHTTPError(err, "")
		return result
	}
	startTime, err := model.NormalizeClock("start_time", request.StartTime)
	if err != nil {
		result.Error = toHTTPError(err, "")
		return result
	}
	endTime, err := model.NormalizeClock("end_time", request.EndTime)
	if err != nil {
		result.Error = toHTTPError(err, "")
		return result
	}

	order := &entity.Order{
		PackageDetailID: request.PackageDetailID,
		RestaurantID:    request.RestaurantID,
		UserID:          request.UserID,
		Location:        strings.TrimSpace(request.Location),
		EventDate:       eventDate,
		StartTime:       startTime,
		EndTime:         endTime,
		Participants:    request.Participants,
		Message:         request.Message,
		Status:          status,
	}

	asOf := c.Now()
	err = c.OrderRepository.CreatePriced(ctx, order, func(o *entity.Order, detail entity.PackageDetail, pkg entity.Package) error {
		if request.PackageID != nil && *request.PackageID != detail.PackageID {
			return model.ErrMissingReference
		}
		quote := pricing.ComputeUnitPrice(detail, pkg, asOf)
		total, err := pricing.ComputeOrderTotals(quote.Price, o.Participants)
		if err != nil {
			return err
		}
		packageID := detail.PackageID
		o.PackageID = &packageID
		o.UnitPrice = quote.Price
		o.TotalPrice = total
		return nil
	})
	if err != nil {
		c.Log.Error("CreateOrder-CreatePriced", err.Error(), "request", utils.ConvertString(request))
		result.Error = toHTTPError(err, "")
		return result
	}

	c.Log.Info("CreateOrder", "order created", "orderID", fmt.Sprint(order.ID))
	c.publish(ctx, order, model.EventOrderCreated, "")
	result.Data = converter.OrderToResponse(order)
	return result
}

func (c *OrderUseCase) GetOrder(ctx context.Context, request *model.GetOrderRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = badRequest("invalid order id", model.ErrInvalidInput)
		return result
	}
	order, err := c.OrderRepository.FindByID(ctx, request.ID)
	if err != nil {
		c.Log.Error("GetOrder-FindByID", err.Error(), "orderID", fmt.Sprint(request.ID))
		result.Error = toHTTPError(err, "Order not found")
		return result
	}
	result.Data = converter.OrderToResponse(order)
	return result
}

func (c *OrderUseCase) ListOrders(ctx context.Context) utils.Result {
	var result utils.Result

	orders, err := c.OrderRepository.FindAll(ctx)
	if err != nil {
		c.Log.Error("ListOrders-FindAll", err.Error(), "orders", "")
		result.Error = toHTTPError(err, "")
		return result
	}
	result.Data = converter.OrdersToResponse(orders)
	return result
}

// ListMyOrders accepts "all" or an empty status as no filter.
func (c *OrderUseCase) ListMyOrders(ctx context.Context, request *model.ListMyOrdersRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		result.Error = toHTTPError(model.ErrUnauthenticated, "")
		return result
	}

	status := request.Status
	if status == entity.OrderStatusAll {
		status = ""
	}
	if status != "" && !entity.IsValidOrderStatus(status) {
		result.Error = badRequest(entity.InvalidOrderStatusMessage(), model.ErrInvalidStatus)
		return result
	}

	orders, err := c.OrderRepository.FindByUser(ctx, request.UserID, status)
	if err != nil {
		c.Log.Error("ListMyOrders-FindByUser", err.Error(), "request", utils.ConvertString(request))
		result.Error = toHTTPError(err, "")
		return result
	}
	result.Data = converter.OrdersToResponse(orders)
	return result
}

func (c *OrderUseCase) UpdateOrder(ctx context.Context, request *model.UpdateOrderRequest) utils.Result {
	var result utils.Result

	if request.IsEmpty() {
		result.Error = badRequest("no fields to update", model.ErrInvalidInput)
		return result
	}
	if err := c.Validate.Struct(request); err != nil {
		result.Error = badRequest(fmt.Sprintf("validation error: %v", err.Error()), model.ErrInvalidInput)
		c.Log.Error("UpdateOrder-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}
	if request.Status != nil && !entity.IsValidOrderStatus(*request.Status) {
		result.Error = badRequest(entity.InvalidOrderStatusMessage(), model.ErrInvalidStatus)
		return result
	}
	if request.Participants != nil && *request.Participants <= 0 {
		result.Error = badRequest(model.ErrInvalidQuantity.Error(), model.ErrInvalidQuantity)
		return result
	}

	var eventDate time.Time
	var startTime, endTime string
	var err error
	if request.EventDate != nil {
		if eventDate, err = model.ParseEventDate(*request.EventDate); err != nil {
			result.Error = toHTTPError(err, "")
			return result
		}
	}
	if request.StartTime != nil {
		if startTime, err = model.NormalizeClock("start_time", *request.StartTime); err != nil {
			result.Error = toHTTPError(err, "")
			return result
		}
	}
	if request.EndTime != nil {
		if endTime, err = model.NormalizeClock("end_time", *request.EndTime); err != nil {
			result.Error = toHTTPError(err, "")
			return result
		}
	}

	var previous entity.OrderStatus
	order, err := c.OrderRepository.Update(ctx, request.ID, func(o *entity.Order) error {
		previous = o.Status
		if request.Location != nil {
			o.Location = strings.TrimSpace(*request.Location)
		}
		if request.RestaurantID != nil {
			o.RestaurantID = *request.RestaurantID
		}
		if request.EventDate != nil {
			o.EventDate = eventDate
		}
		if request.StartTime != nil {
			o.StartTime = startTime
		}
		if request.EndTime != nil {
			o.EndTime = endTime
		}
		if request.Message != nil {
			o.Message = request.Message
		}
		if request.Status != nil {
			o.Status = entity.OrderStatus(*request.Status)
		}
		if request.Participants != nil {
			// the unit price snapshot is kept; only the total follows the new head count
			total, err := pricing.ComputeOrderTotals(o.UnitPrice, *request.Participants)
			if err != nil {
				return err
			}
			o.Participants = *request.Participants
			o.TotalPrice = total
		}
		return nil
	})
	if err != nil {
		c.Log.Error("UpdateOrder-Update", err.Error(), "request", utils.ConvertString(request))
		result.Error = toHTTPError(err, "Order not found")
		return result
	}

	if order.Status != previous {
		c.publish(ctx, order, model.EventOrderStatusChanged, previous)
	}
	result.Data = converter.OrderToResponse(order)
	return result
}

// UpdateOrderStatus checks membership only; any status may follow any other.
func (c *OrderUseCase) UpdateOrderStatus(ctx context.Context, request *model.UpdateOrderStatusRequest) utils.Result {
	var result utils.Result

	if !entity.IsValidOrderStatus(request.Status) {
		result.Error = badRequest(entity.InvalidOrderStatusMessage(), model.ErrInvalidStatus)
		c.Log.Error("UpdateOrderStatus-validation", "invalid status", "request", utils.ConvertString(request))
		return result
	}

	order, previous, err := c.OrderRepository.UpdateStatus(ctx, request.ID, entity.OrderStatus(request.Status))
	if err != nil {
		c.Log.Error("UpdateOrderStatus-UpdateStatus", err.Error(), "request", utils.ConvertString(request))
		result.Error = toHTTPError(err, "Order not found")
		return result
	}

	c.Log.Info("UpdateOrderStatus", fmt.Sprintf("%s -> %s", previous, order.Status), "orderID", fmt.Sprint(order.ID))
	if previous.IsTerminal() && !order.Status.IsTerminal() {
		c.Log.Warn("UpdateOrderStatus", fmt.Sprintf("order reopened from %s", previous), "orderID", fmt.Sprint(order.ID))
	}
	c.publish(ctx, order, model.EventOrderStatusChanged, previous)
	result.Data = converter.OrderToResponse(order)
	return result
}

func (c *OrderUseCase) DeleteOrder(ctx context.Context, request *model.GetOrderRequest) utils.Result {
	var result utils.Result

	if err := c.OrderRepository.Delete(ctx, request.ID); err != nil {
		c.Log.Error("DeleteOrder-Delete", err.Error(), "orderID", fmt.Sprint(request.ID))
		result.Error = toHTTPError(err, "Order not found")
		return result
	}
	if c.Redis != nil {
		if err := c.Redis.Del(ctx, fmt.Sprintf(orderStatusKey, request.ID)).Err(); err != nil {
			c.Log.Warn("DeleteOrder-redis", err.Error(), "orderID", fmt.Sprint(request.ID))
		}
	}
	result.Data = model.DeleteOrderResponse{Success: true, Message: "Order deleted successfully"}
	return result
}

// GenerateQRCode returns a PNG pointing at the order's public URL.
func (c *OrderUseCase) GenerateQRCode(ctx context.Context, request *model.GetOrderRequest) utils.Result {
	result := c.GetOrder(ctx, request)
	if result.Error != nil {
		return result
	}
	order := result.Data.(*model.OrderResponse)

	baseURL := strings.TrimRight(c.Config.GetString("app.base_url"), "/")
	png, err := qrcode.Generate(fmt.Sprintf("%s/orders/%d", baseURL, order.ID), qrcode.DefaultSize)
	if err != nil {
		c.Log.Error("GenerateQRCode", err.Error(), "orderID", fmt.Sprint(order.ID))
		return utils.Result{Error: toHTTPError(err, "")}
	}
	return utils.Result{Data: png}
}

type orderStatusSnapshot struct {
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// publish emits the order event and refreshes the status snapshot. Both are best effort.
func (c *OrderUseCase) publish(ctx context.Context, order *entity.Order, eventType string, previous entity.OrderStatus) {
	event := converter.OrderToEvent(order, eventType, previous)
	if c.OrderProducer != nil {
		var err error
		if eventType == model.EventOrderCreated {
			err = c.OrderProducer.SendOrderCreated(event)
		} else {
			err = c.OrderProducer.SendStatusChanged(event)
		}
		if err != nil {
			c.Log.Error("order-usecase", fmt.Sprintf("failed publish %s event: %v", eventType, err), "publish", utils.ConvertString(event))
		}
	}

	if c.Redis == nil {
		return
	}
	snapshot, err := json.Marshal(orderStatusSnapshot{Status: string(order.Status), UpdatedAt: order.UpdatedAt})
	if err != nil {
		return
	}
	if err := c.Redis.Set(ctx, fmt.Sprintf(orderStatusKey, order.ID), snapshot, orderStatusTTL).Err(); err != nil {
		c.Log.Warn("order-usecase", fmt.Sprintf("failed saving status snapshot: %v", err), "publish", fmt.Sprint(order.ID))
	}
}
