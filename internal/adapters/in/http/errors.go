package http

import (
	"context"
	"errors"
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/delivery"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/refund"
	"orderflow/internal/core/domain/model/rider"
	"orderflow/internal/generated/servers"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// retryAfterSeconds is sent with 503 responses caused by lock contention.
const retryAfterSeconds = "1"

// conflicts are refusals caused by the current state of the order.
var conflicts = []error{
	errs.ErrInvalidTransition,
	errs.ErrStaleState,
	order.ErrNotAssignable,
	order.ErrNotRemovable,
	order.ErrOrderNotDeliveryType,
	order.ErrMissingReturnProof,
	order.ErrNotOnDelivery,
	order.ErrNoCancellationRequest,
	order.ErrOrderIsFinal,
	order.ErrOrderIsNotPending,
	delivery.ErrNoDeliveryRecord,
	rider.ErrRiderUnavailable,
	refund.ErrRefundAlreadyResolved,
}

var invalidInput = []error{
	errs.ErrValueIsInvalid,
	errs.ErrValueIsRequired,
	errs.ErrValueIsOutOfRange,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrBusy), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	case isAny(err, conflicts):
		return http.StatusConflict
	case isAny(err, invalidInput):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Refusals that happened after the order was
// read carry the order's current status.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	body := servers.Error{
		Code:    code,
		Message: err.Error(),
	}

	var rejected *commands.RejectedError
	if errors.As(err, &rejected) {
		status := servers.OrderStatus(rejected.Status.String())
		body.CurrentStatus = &status
	}

	switch code {
	case http.StatusServiceUnavailable:
		ctx.Response().Header().Set("Retry-After", retryAfterSeconds)
	case http.StatusInternalServerError:
		s.logger.Errorw("request_failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		body.Message = http.StatusText(code)
	}

	return ctx.JSON(code, body)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
