package order

import "errors"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrNotAssignable         = errors.New("rider cannot be assigned in the current order status")
	ErrNotRemovable          = errors.New("rider cannot be removed in the current order status")
	ErrOrderNotDeliveryType  = errors.New("order is not a delivery order")
	ErrMissingReturnProof    = errors.New("proof of returned payment is required to reject an order")
	ErrNotOnDelivery         = errors.New("order is not out for delivery")
	ErrNoCancellationRequest = errors.New("order has no pending cancellation request")
	ErrOrderIsFinal          = errors.New("order is in a terminal status")
	ErrOrderIsNotPending     = errors.New("order is no longer pending")
)
