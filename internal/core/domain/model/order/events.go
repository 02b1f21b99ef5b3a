package order

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
)

// StatusChangedEventName is the routing name under which StatusChanged events
// are stored and published.
const StatusChangedEventName = "order.status_changed"

// StatusChanged records one applied transition. Events are immutable and are
// written to the outbox in the same transaction as the status change.
type StatusChanged struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	OrderNumber int64
	From        Status
	To          Status
	Actor       Actor
	OccurredAt  time.Time
}

func (e StatusChanged) EventName() string {
	return StatusChangedEventName
}
