package httpError

import "net/http"

// CommonError is returned by usecases and rendered by utils.ResponseError.
type CommonError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func (e *CommonError) Unwrap() error {
	return e.Cause
}

// Wrap attaches the underlying cause so errors.Is keeps working across layers.
func (e *CommonError) Wrap(cause error) *CommonError {
	e.Cause = cause
	return e
}

func newError(code int, message string) *CommonError {
	return &CommonError{Code: code, Message: message}
}

func NewBadRequest() *CommonError {
	return newError(http.StatusBadRequest, "Bad Request")
}

func NewUnauthorized() *CommonError {
	return newError(http.StatusUnauthorized, "Unauthorized")
}

func NewForbidden() *CommonError {
	return newError(http.StatusForbidden, "Forbidden")
}

func NewNotFound() *CommonError {
	return newError(http.StatusNotFound, "Not Found")
}

func NewInternalServerError() *CommonError {
	return newError(http.StatusInternalServerError, "Internal Server Error")
}
