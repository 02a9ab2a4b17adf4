package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"marketplace-service/src/internal/model"
	httpError "marketplace-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

func paramID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid id"
		return 0, errObj.Wrap(model.ErrInvalidInput)
	}
	return id, nil
}

// queryInt returns fallback when the parameter is absent and an error when it is not an integer.
func queryInt(ctx *fiber.Ctx, key string, fallback int, cause error) (int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("%s must be an integer, got %q", key, raw)
		return 0, errObj.Wrap(cause)
	}
	return v, nil
}

func queryID(ctx *fiber.Ctx, key string) (*int64, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("%s must be a positive integer", key)
		return nil, errObj.Wrap(model.ErrInvalidInput)
	}
	return &v, nil
}

// decodeStrict rejects bodies carrying fields the target struct does not declare.
func decodeStrict(body []byte, v interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("invalid request body: %v", err)
		return errObj.Wrap(model.ErrInvalidInput)
	}
	return nil
}
