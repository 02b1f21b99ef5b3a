package http

import (
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ReportFailedDelivery handles POST /api/v1/rider/orders/{orderId}/failed-delivery.
func (s *Server) ReportFailedDelivery(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.ReportFailedDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewReportFailedDeliveryCommand(id, body.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.commands.ReportFailedDelivery.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, o, err)
}
