package commands

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

type ReportFailedDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

func NewReportFailedDeliveryCommandHandler(uowFactory UoWFactory) ReportFailedDeliveryCommandHandler {
	return ReportFailedDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the reason on an OnDelivery order. The status is unchanged
// until staff approve or reject the request.
func (h ReportFailedDeliveryCommandHandler) Handle(ctx context.Context, command ReportFailedDeliveryCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return inOrderTx(ctx, h.uowFactory, command.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		if err := o.ReportFailedDelivery(command.Reason()); err != nil {
			return err
		}
		return uow.OrderRepository().Update(ctx, o)
	})
}
