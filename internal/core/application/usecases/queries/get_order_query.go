package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery reads one order with everything attached to it.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// GetOrderQueryResponse is the full view of an order. Delivery, Payment and
// PendingRefund are nil when the order has no such record.
type GetOrderQueryResponse struct {
	ID                   kernel.UUID
	Number               int64
	CustomerID           kernel.UUID
	Type                 order.Type
	Status               order.Status
	Total                decimal.Decimal
	AdditionalInfo       string
	ScheduledFor         *time.Time
	CreatedAt            time.Time
	StatusUpdatedAt      time.Time
	FailedDeliveryReason *string
	Items                []OrderItemView
	Delivery             *DeliveryView
	Payment              *PaymentView
	PendingRefund        *RefundView
}

type OrderItemView struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

type DeliveryView struct {
	RiderID      *kernel.UUID
	Fee          decimal.Decimal
	AddressRef   string
	DispatchedAt *time.Time
}

type PaymentView struct {
	Method         string
	IsPaid         bool
	ProofURL       *string
	PaidAt         *time.Time
	ReturnProofRef *string
}

type RefundView struct {
	Reason       string
	PayoutNumber string
	PriorStatus  order.Status
	RequestedAt  time.Time
}
