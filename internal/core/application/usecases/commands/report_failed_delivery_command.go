package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrReportFailedDeliveryCommandIsNotConstructed = errors.New(
	"ReportFailedDeliveryCommand must be created via NewReportFailedDeliveryCommand constructor",
)

// ReportFailedDeliveryCommand is a rider's report that an order could not be
// handed over. The reason is validated by the order.
type ReportFailedDeliveryCommand struct {
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

func NewReportFailedDeliveryCommand(orderID kernel.UUID, reason string) (ReportFailedDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReportFailedDeliveryCommand{}, err
	}

	return ReportFailedDeliveryCommand{
		orderID: orderID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ReportFailedDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ReportFailedDeliveryCommand) Reason() string {
	return c.reason
}

func (c ReportFailedDeliveryCommand) Validate() error {
	return c.guard.Validate(
		ErrReportFailedDeliveryCommandIsNotConstructed,
	)
}
