package http

import (
	"errors"
	"net/http"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/cart"
	"booking/internal/core/domain/model/order"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse maps a use case error onto an HTTP status and writes the
// JSON error envelope.
func errorResponse(ctx echo.Context, err error) error {
	status := statusFor(err)
	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

// badRequest writes a 400 with the given message prefix and error detail.
// Used for malformed bodies and invalid request parameters, where the error
// comes from parsing rather than a use case.
func badRequest(ctx echo.Context, message string, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message + ": " + err.Error(),
	})
}

func statusFor(err error) int {
	var notFound *errs.ObjectNotFoundError
	var required *errs.ValueIsRequiredError
	var invalid *errs.ValueIsInvalidError
	var outOfRange *errs.ValueIsOutOfRangeError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidStateTransition):
		return http.StatusConflict
	case errors.Is(err, cart.ErrCartIsExpired):
		return http.StatusConflict
	case errors.Is(err, commands.ErrCartIsNotGuest):
		return http.StatusConflict
	case errors.Is(err, services.ErrCartNotCheckoutable):
		return http.StatusUnprocessableEntity
	case errors.As(err, &required), errors.As(err, &invalid), errors.As(err, &outOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
