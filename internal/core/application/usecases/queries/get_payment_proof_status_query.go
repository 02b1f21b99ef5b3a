package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrGetPaymentProofStatusQueryIsNotConstructed = errors.New(
		"GetPaymentProofStatusQuery must be created via NewGetPaymentProofStatusQuery constructor",
	)
)

// GetPaymentProofStatusQuery tells staff whether an order's payment is
// evidenced before they accept it.
type GetPaymentProofStatusQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetPaymentProofStatusQuery(orderID kernel.UUID) (GetPaymentProofStatusQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPaymentProofStatusQuery{}, err
	}
	return GetPaymentProofStatusQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPaymentProofStatusQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetPaymentProofStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentProofStatusQueryIsNotConstructed)
}

type GetPaymentProofStatusQueryResponse struct {
	OrderID        kernel.UUID
	Method         string
	IsPaid         bool
	HasProof       bool
	ProofURL       *string
	PaidAt         *time.Time
	HasReturnProof bool
}
