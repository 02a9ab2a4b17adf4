package middleware

import (
	"fmt"
	"time"

	"marketplace-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const slowRequest = 2 * time.Second

// NewLogger writes one access line per request and tags it with X-Request-ID.
func NewLogger(logger log.Log) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		requestID := ctx.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Set(fiber.HeaderXRequestID, requestID)

		err := ctx.Next()
		if err != nil {
			if handlerErr := ctx.App().ErrorHandler(ctx, err); handlerErr != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError)
			}
		}

		latency := time.Since(start)
		message := fmt.Sprintf("%s %s %d %s", ctx.Method(), ctx.OriginalURL(), ctx.Response().StatusCode(), latency)
		if latency > slowRequest {
			logger.Slow("http", message, "access", requestID)
		} else {
			logger.Info("http", message, "access", requestID)
		}
		return nil
	}
}
