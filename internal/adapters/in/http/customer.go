package http

import (
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/payment"
	"orderflow/internal/generated/servers"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PlaceOrder handles POST /api/v1/customer/orders - creates a pending order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := placeOrderCommand(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.commands.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toOrderState(o))
}

func placeOrderCommand(body servers.PlaceOrderRequest) (commands.PlaceOrderCommand, error) {
	customerID, err := toKernelUUID(body.CustomerId)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}
	orderType, err := order.ParseType(string(body.Type))
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	lines := make([]commands.LineInput, len(body.Items))
	for i, item := range body.Items {
		price, err := kernel.MoneyFromString(item.UnitPrice)
		if err != nil {
			return commands.PlaceOrderCommand{}, errs.NewValueIsInvalidErrorWithCause("items.unitPrice", err)
		}
		lines[i] = commands.LineInput{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: price,
		}
	}

	var additionalInfo, addressRef string
	if body.AdditionalInfo != nil {
		additionalInfo = *body.AdditionalInfo
	}
	if body.AddressRef != nil {
		addressRef = *body.AddressRef
	}

	return commands.NewPlaceOrderCommand(
		customerID,
		orderType,
		lines,
		additionalInfo,
		body.ScheduledFor,
		addressRef,
		payment.Method(body.PaymentMethod),
	)
}

// GetCustomerOrder handles GET /api/v1/customer/orders/{orderId}.
func (s *Server) GetCustomerOrder(ctx echo.Context, orderId servers.OrderId) error {
	return s.getOrder(ctx, orderId)
}

// RequestCancellation handles POST /api/v1/customer/orders/{orderId}/cancellation.
func (s *Server) RequestCancellation(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.RequestCancellationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRequestCustomerCancellationCommand(id, body.Reason, body.PayoutNumber, body.PayoutNumberConfirm)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.commands.CustomerCancellation.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, o, err)
}

// AttachPaymentProof handles POST /api/v1/customer/orders/{orderId}/payment-proof.
func (s *Server) AttachPaymentProof(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.AttachPaymentProofJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewAttachPaymentProofCommand(id, body.ProofUrl)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.commands.AttachPaymentProof.Handle(ctx.Request().Context(), cmd)
	return s.respondOrder(ctx, o, err)
}
