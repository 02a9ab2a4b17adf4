package usecase

import (
	"errors"

	"marketplace-service/src/internal/model"
	httpError "marketplace-service/src/pkg/http-error"
)

var badRequestErrors = []error{
	model.ErrInvalidInput,
	model.ErrInvalidStatus,
	model.ErrInvalidQuantity,
	model.ErrInvalidPagination,
	model.ErrInvalidSortField,
	model.ErrInvalidSortOrder,
	model.ErrInvalidQuery,
}

// toHTTPError maps the error taxonomy onto response codes. Storage failures never leak driver text.
func toHTTPError(err error, notFoundMessage string) *httpError.CommonError {
	var commonErr *httpError.CommonError
	if errors.As(err, &commonErr) {
		return commonErr
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		errObj := httpError.NewNotFound()
		errObj.Message = notFoundMessage
		return errObj.Wrap(err)
	case errors.Is(err, model.ErrMissingReference):
		errObj := httpError.NewBadRequest()
		errObj.Message = "package detail not found"
		return errObj.Wrap(err)
	case errors.Is(err, model.ErrUnauthenticated):
		errObj := httpError.NewUnauthorized()
		errObj.Message = err.Error()
		return errObj.Wrap(err)
	case errors.Is(err, model.ErrUnauthorized):
		errObj := httpError.NewForbidden()
		errObj.Message = err.Error()
		return errObj.Wrap(err)
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			errObj := httpError.NewBadRequest()
			errObj.Message = err.Error()
			return errObj.Wrap(err)
		}
	}

	errObj := httpError.NewInternalServerError()
	errObj.Message = "internal server error"
	return errObj.Wrap(err)
}

func badRequest(message string, cause error) *httpError.CommonError {
	errObj := httpError.NewBadRequest()
	errObj.Message = message
	return errObj.Wrap(cause)
}
