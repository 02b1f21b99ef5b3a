package http

import (
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// respondOrder writes the order as committed by a command.
func (s *Server) respondOrder(ctx echo.Context, o *order.Order, err error) error {
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderState(o))
}

func (s *Server) transition(ctx echo.Context, cmd commands.RequestTransitionCommand, err error) error {
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.commands.RequestTransition.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, o, err)
}

// ListActiveOrders handles GET /api/v1/staff/orders - the kitchen display.
func (s *Server) ListActiveOrders(ctx echo.Context, params servers.ListActiveOrdersParams) error {
	var filter *order.Status
	if params.Status != nil {
		status, err := order.ParseStatus(string(*params.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		filter = &status
	}

	query, err := queries.NewGetActiveOrdersQuery(filter)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.queries.GetActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.ActiveOrder, len(orders))
	for i, o := range orders {
		response[i] = toActiveOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/staff/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	return s.getOrder(ctx, orderId)
}

func (s *Server) getOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderDetails(o))
}

// GetOrderEvents handles GET /api/v1/staff/orders/{orderId}/events.
func (s *Server) GetOrderEvents(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderEventsQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	events, err := s.queries.GetOrderEvents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.OrderEvent, len(events))
	for i, e := range events {
		response[i] = toOrderEvent(e)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPaymentProofStatus handles GET /api/v1/staff/orders/{orderId}/payment.
func (s *Server) GetPaymentProofStatus(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetPaymentProofStatusQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.queries.GetPaymentProofStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.PaymentProofStatus{
		OrderId:        p.OrderID.Bytes(),
		Method:         servers.PaymentMethod(p.Method),
		IsPaid:         p.IsPaid,
		HasProof:       p.HasProof,
		ProofUrl:       p.ProofURL,
		PaidAt:         p.PaidAt,
		HasReturnProof: p.HasReturnProof,
	})
}

// AcceptOrder handles POST /api/v1/staff/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewAcceptOrderCommand(id)
	return s.transition(ctx, cmd, err)
}

// AdvanceStatus handles POST /api/v1/staff/orders/{orderId}/advance.
func (s *Server) AdvanceStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.AdvanceStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	target, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewAdvanceStatusCommand(id, target)
	return s.transition(ctx, cmd, err)
}

// NotifyReadyForPickup handles POST /api/v1/staff/orders/{orderId}/ready-for-pickup.
func (s *Server) NotifyReadyForPickup(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewNotifyReadyForPickupCommand(id)
	return s.transition(ctx, cmd, err)
}

// RejectOrder handles POST /api/v1/staff/orders/{orderId}/reject. The proof
// reference is optional when it was attached beforehand.
func (s *Server) RejectOrder(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.RejectOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	var proofRef string
	if body.ProofRef != nil {
		proofRef = *body.ProofRef
	}
	cmd, err := commands.NewRejectOrderCommand(id, proofRef)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.commands.RejectOrder.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, o, err)
}

// AttachReturnProof handles POST /api/v1/staff/orders/{orderId}/return-proof.
func (s *Server) AttachReturnProof(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.AttachReturnProofJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewAttachReturnProofCommand(id, body.ProofRef)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.commands.AttachReturnProof.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, o, err)
}

// AssignRider handles PUT /api/v1/staff/orders/{orderId}/rider.
func (s *Server) AssignRider(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.AssignRiderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	riderID, err := toKernelUUID(body.RiderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewAssignRiderCommand(id, riderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.commands.AssignRider.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, o, err)
}

// RemoveRider handles DELETE /api/v1/staff/orders/{orderId}/rider.
func (s *Server) RemoveRider(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRemoveRiderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.commands.RemoveRider.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, o, err)
}

// ApproveCancellation handles POST /api/v1/staff/orders/{orderId}/cancellation/approve.
func (s *Server) ApproveCancellation(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewApproveCancellationCommand(id)
	return s.resolveCancellation(ctx, cmd, err)
}

// RejectCancellation handles POST /api/v1/staff/orders/{orderId}/cancellation/reject.
func (s *Server) RejectCancellation(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRejectCancellationCommand(id)
	return s.resolveCancellation(ctx, cmd, err)
}

func (s *Server) resolveCancellation(ctx echo.Context, cmd commands.ResolveCancellationCommand, err error) error {
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.commands.ResolveCancellation.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, o, err)
}

// ApproveRefund handles POST /api/v1/staff/orders/{orderId}/refund/approve.
func (s *Server) ApproveRefund(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewApproveRefundCommand(id)
	return s.resolveRefund(ctx, cmd, err)
}

// RejectRefund handles POST /api/v1/staff/orders/{orderId}/refund/reject.
func (s *Server) RejectRefund(ctx echo.Context, orderId servers.OrderId) error {
	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRejectRefundCommand(id)
	return s.resolveRefund(ctx, cmd, err)
}

func (s *Server) resolveRefund(ctx echo.Context, cmd commands.ResolveRefundCommand, err error) error {
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.commands.ResolveRefund.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, o, err)
}

// ListCancellationRequests handles GET /api/v1/staff/cancellation-requests.
func (s *Server) ListCancellationRequests(ctx echo.Context) error {
	requests, err := s.queries.GetCancellationRequests.Handle(
		ctx.Request().Context(),
		queries.NewGetCancellationRequestsQuery(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.CancellationRequest, len(requests))
	for i, r := range requests {
		response[i] = toCancellationRequest(r)
	}
	return ctx.JSON(http.StatusOK, response)
}
