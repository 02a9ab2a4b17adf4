package utils

import (
	"encoding/json"
	"errors"
	"fmt"

	httpError "marketplace-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result is what every usecase returns; exactly one of Data or Error is meaningful.
type Result struct {
	Data  interface{}
	Error error
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func Response(data interface{}, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(data)
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	var commonErr *httpError.CommonError
	if errors.As(err, &commonErr) {
		return ctx.Status(commonErr.Code).JSON(ErrorResponse{Error: commonErr.Message})
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ctx.Status(fiberErr.Code).JSON(ErrorResponse{Error: fiberErr.Message})
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
}

func ConvertString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case error:
		return val.Error()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
