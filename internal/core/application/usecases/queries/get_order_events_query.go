package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetOrderEventsQueryIsNotConstructed = errors.New(
		"GetOrderEventsQuery must be created via NewGetOrderEventsQuery constructor",
	)
)

// GetOrderEventsQuery returns the audit trail of an order: every status
// change that was committed, whether or not it was relayed yet.
type GetOrderEventsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderEventsQuery(orderID kernel.UUID) (GetOrderEventsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderEventsQuery{}, err
	}
	return GetOrderEventsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderEventsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderEventsQueryIsNotConstructed)
}

// GetOrderEventsQueryResponse is one status change. PublishedAt is nil until
// the relay has handed it to the notification sink.
type GetOrderEventsQueryResponse struct {
	EventID     string
	From        string
	To          string
	Actor       string
	OccurredAt  time.Time
	PublishedAt *time.Time
}
