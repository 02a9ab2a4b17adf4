package http

import (
	"marketplace-service/src/internal/delivery/http/middleware"
	"marketplace-service/src/internal/model"
	"marketplace-service/src/internal/usecase"
	"marketplace-service/src/pkg/log"
	"marketplace-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type OrderController struct {
	Log     log.Log
	UseCase *usecase.OrderUseCase
}

func NewOrderController(useCase *usecase.OrderUseCase, logger log.Log) *OrderController {
	return &OrderController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *OrderController) Create(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CreateOrderRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.Create", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.CreateOrder(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, fiber.StatusCreated, ctx)
}

func (c *OrderController) List(ctx *fiber.Ctx) error {
	result := c.UseCase.ListOrders(ctx.UserContext())
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

func (c *OrderController) ListMine(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)
	request := &model.ListMyOrdersRequest{
		UserID: auth.UserID,
		Status: ctx.Query("status", "all"),
	}
	result := c.UseCase.ListMyOrders(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

func (c *OrderController) Get(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.GetOrder(ctx.UserContext(), &model.GetOrderRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

func (c *OrderController) Update(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	request := new(model.UpdateOrderRequest)
	if err := decodeStrict(ctx.Body(), request); err != nil {
		c.Log.Error("OrderController.Update", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = id

	result := c.UseCase.UpdateOrder(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

func (c *OrderController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	request := new(model.UpdateOrderStatusRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("OrderController.UpdateStatus", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = id

	result := c.UseCase.UpdateOrderStatus(ctx.UserContext(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

func (c *OrderController) Delete(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.DeleteOrder(ctx.UserContext(), &model.GetOrderRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, fiber.StatusOK, ctx)
}

func (c *OrderController) QRCode(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return utils.ResponseError(err, ctx)
	}
	result := c.UseCase.GenerateQRCode(ctx.UserContext(), &model.GetOrderRequest{ID: id})
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	ctx.Set(fiber.HeaderContentType, "image/png")
	return ctx.Status(fiber.StatusOK).Send(result.Data.([]byte))
}
