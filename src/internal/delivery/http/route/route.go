package route

import (
	"marketplace-service/src/internal/delivery/http"
	"marketplace-service/src/internal/delivery/http/middleware"
	"marketplace-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App                  *fiber.App
	Log                  log.Log
	OrderController      *http.OrderController
	RestaurantController *http.RestaurantController
	BlogController       *http.BlogController
	PackageController    *http.PackageController
	AuthMiddleware       fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(middleware.NewLogger(c.Log))
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupGuestRoute()
	c.SetupAuthRoute()
}

func (c *RouteConfig) SetupGuestRoute() {
	c.App.Get("/restaurants/search", c.RestaurantController.Search)
	c.App.Get("/restaurants/:id", c.RestaurantController.Get)

	c.App.Get("/blogs", c.BlogController.List)
	c.App.Get("/blogs/:id", c.BlogController.Get)

	c.App.Get("/packages", c.PackageController.List)
	c.App.Get("/packages/promotions", c.PackageController.Promotions)
	c.App.Get("/packages/:id", c.PackageController.Get)
}

func (c *RouteConfig) SetupAuthRoute() {
	orders := c.App.Group("/orders", c.AuthMiddleware)
	orders.Post("/", c.OrderController.Create)
	orders.Get("/me", c.OrderController.ListMine)
	orders.Get("/", middleware.RequireAdmin(), c.OrderController.List)
	orders.Get("/:id", c.OrderController.Get)
	orders.Get("/:id/qrcode", c.OrderController.QRCode)
	orders.Put("/:id", c.OrderController.Update)
	orders.Put("/:id/status", c.OrderController.UpdateStatus)
	orders.Delete("/:id", c.OrderController.Delete)
}
