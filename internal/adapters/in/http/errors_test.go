package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/rider"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestStatusFor(t *testing.T) {
	id := kernel.NewUUID()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("order", id), http.StatusNotFound},
		{"illegal edge", errs.NewInvalidTransitionError("Pending", "Ready", "staff"), http.StatusConflict},
		{"stale", errs.NewStaleStateError("order", id), http.StatusConflict},
		{"not removable", fmt.Errorf("%w: order is OnDelivery", order.ErrNotRemovable), http.StatusConflict},
		{"rider unavailable", rider.ErrRiderUnavailable, http.StatusConflict},
		{"invalid value", errs.NewValueIsInvalidError("payoutNumber"), http.StatusUnprocessableEntity},
		{"missing value", errs.NewValueIsRequiredError("reason"), http.StatusUnprocessableEntity},
		{"busy", errs.NewBusyError("order"), http.StatusServiceUnavailable},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
		{
			"wrapped in rejection",
			&commands.RejectedError{OrderID: id, Status: order.Pending, Err: order.ErrMissingReturnProof},
			http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestFail_BusySetsRetryAfter(t *testing.T) {
	s := NewServer(CommandHandlers{}, QueryHandlers{}, zap.NewNop().Sugar())
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	err := s.fail(ctx, &commands.RejectedError{
		OrderID: kernel.NewUUID(),
		Status:  order.Queueing,
		Err:     errs.NewBusyError("order"),
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, retryAfterSeconds, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), `"currentStatus":"Queueing"`)
}

func TestFail_HidesInternalErrors(t *testing.T) {
	s := NewServer(CommandHandlers{}, QueryHandlers{}, zap.NewNop().Sugar())
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	assert.NoError(t, s.fail(ctx, errors.New("dial tcp 10.0.0.7:5432: connection refused")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "10.0.0.7")
}
