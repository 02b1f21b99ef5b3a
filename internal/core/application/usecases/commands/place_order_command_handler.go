package commands

import (
	"context"
	"errors"
	"time"

	"orderflow/internal/core/domain/model/delivery"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/payment"
	"orderflow/internal/pkg/errs"
)

// placeOrderAttempts bounds retries when two checkouts draw the same number.
const placeOrderAttempts = 3

type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	defaultFee kernel.Money
}

func NewPlaceOrderCommandHandler(uowFactory UoWFactory, defaultFee kernel.Money) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		defaultFee: defaultFee,
	}
}

// Handle stores a Pending order with its unpaid payment record and, for a
// delivery order with an address, an unassigned delivery record.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	var err error
	for range placeOrderAttempts {
		var o *order.Order
		o, err = h.place(ctx, command)
		if !errors.Is(err, errs.ErrStaleState) {
			return o, err
		}
	}
	return nil, err
}

func (h PlaceOrderCommandHandler) place(ctx context.Context, command PlaceOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	number, err := uow.OrderRepository().NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	opts := []order.Option{order.WithAdditionalInfo(command.AdditionalInfo())}
	if command.ScheduledFor() != nil {
		opts = append(opts, order.WithSchedule(*command.ScheduledFor()))
	}
	o, err := order.NewOrder(kernel.NewUUID(), number, command.CustomerID(), command.Type(), command.Items(), time.Now(), opts...)
	if err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	p, err := payment.NewPayment(kernel.NewUUID(), o.ID(), command.PaymentMethod())
	if err != nil {
		return nil, err
	}
	if err = uow.PaymentRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if o.Type() == order.Delivery && command.AddressRef() != "" {
		d, dErr := delivery.NewDelivery(kernel.NewUUID(), o.ID(), h.defaultFee, command.AddressRef())
		if dErr != nil {
			return nil, dErr
		}
		if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return o, nil
}
