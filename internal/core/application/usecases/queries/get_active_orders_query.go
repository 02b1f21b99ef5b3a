package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery feeds the kitchen display: every order that has not
// reached a terminal status, oldest number first.
//
// Example:
//
//	all, _ := NewGetActiveOrdersQuery(nil)
//
//	cooking := order.Cooking
//	onStove, _ := NewGetActiveOrdersQuery(&cooking)
type GetActiveOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery optionally narrows the result to one status. A
// terminal status is refused because it can never match.
func NewGetActiveOrdersQuery(status *order.Status) (GetActiveOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetActiveOrdersQuery{}, err
		}
		if status.IsTerminal() {
			return GetActiveOrdersQuery{}, errs.NewValueIsInvalidError("status")
		}
	}

	return GetActiveOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetActiveOrdersQuery) Status() *order.Status {
	return q.status
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is one row of the kitchen display.
type GetActiveOrdersQueryResponse struct {
	ID                     kernel.UUID
	Number                 int64
	Type                   order.Type
	Status                 order.Status
	Total                  decimal.Decimal
	AdditionalInfo         string
	ScheduledFor           *time.Time
	StatusUpdatedAt        time.Time
	RiderID                *kernel.UUID
	HasCancellationRequest bool
}
