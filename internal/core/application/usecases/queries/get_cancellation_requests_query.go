package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetCancellationRequestsQueryIsNotConstructed = errors.New(
		"GetCancellationRequestsQuery must be created via NewGetCancellationRequestsQuery constructor",
	)
)

// CancellationKind tells the two review queues apart.
type CancellationKind string

const (
	// CustomerRefund is a customer cancellation waiting for refund approval.
	CustomerRefund CancellationKind = "refund"
	// FailedDelivery is a rider's report waiting for staff to cancel or resume.
	FailedDelivery CancellationKind = "failed_delivery"
)

// GetCancellationRequestsQuery lists everything staff still have to review.
type GetCancellationRequestsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCancellationRequestsQuery() GetCancellationRequestsQuery {
	return GetCancellationRequestsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCancellationRequestsQuery) Validate() error {
	return q.guard.Validate(ErrGetCancellationRequestsQueryIsNotConstructed)
}

// GetCancellationRequestsQueryResponse is one open request. PayoutNumber and
// RequestedAt are only set for customer refunds.
type GetCancellationRequestsQueryResponse struct {
	OrderID      kernel.UUID
	OrderNumber  int64
	OrderStatus  order.Status
	Kind         CancellationKind
	Reason       string
	PayoutNumber string
	RequestedAt  *time.Time
}
