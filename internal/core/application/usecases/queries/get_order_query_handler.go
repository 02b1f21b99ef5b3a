package queries

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/refund"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

type orderRow struct {
	ID                   uuid.UUID
	Number               int64
	CustomerID           uuid.UUID
	Type                 int
	Status               int
	Total                decimal.Decimal
	AdditionalInfo       string
	ScheduledFor         *time.Time
	CreatedAt            time.Time
	StatusUpdatedAt      time.Time
	FailedDeliveryReason *string
}

type itemRow struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

type deliveryRow struct {
	RiderID      *uuid.UUID
	Fee          decimal.Decimal
	AddressRef   string
	DispatchedAt *time.Time
}

type paymentRow struct {
	Method         string
	IsPaid         bool
	ProofURL       *string
	PaidAt         *time.Time
	ReturnProofRef *string
}

type refundRow struct {
	Reason       string
	PayoutNumber string
	PriorStatus  int
	RequestedAt  time.Time
}

// Handle returns errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID().Bytes()

	var rows []orderRow
	if err := db.Raw(`
		SELECT id, number, customer_id, type, status, total, additional_info, scheduled_for,
			created_at, status_updated_at, failed_delivery_reason
		FROM orders
		WHERE id = ?
	`, id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	resp, err := rows[0].toView()
	if err != nil {
		return nil, err
	}

	var items []itemRow
	if err = db.Raw(`
		SELECT name, quantity, unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, id).Scan(&items).Error; err != nil {
		return nil, err
	}
	resp.Items = make([]OrderItemView, 0, len(items))
	for _, item := range items {
		price := item.UnitPrice.Round(2)
		resp.Items = append(resp.Items, OrderItemView{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: price,
			Subtotal:  price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	var deliveries []deliveryRow
	if err = db.Raw(`
		SELECT rider_id, fee, address_ref, dispatched_at
		FROM deliveries
		WHERE order_id = ?
	`, id).Scan(&deliveries).Error; err != nil {
		return nil, err
	}
	if len(deliveries) > 0 {
		if resp.Delivery, err = deliveries[0].toView(); err != nil {
			return nil, err
		}
	}

	var payments []paymentRow
	if err = db.Raw(`
		SELECT method, is_paid, proof_url, paid_at, return_proof_ref
		FROM payments
		WHERE order_id = ?
	`, id).Scan(&payments).Error; err != nil {
		return nil, err
	}
	if len(payments) > 0 {
		p := PaymentView(payments[0])
		resp.Payment = &p
	}

	var refunds []refundRow
	if err = db.Raw(`
		SELECT reason, payout_number, prior_status, requested_at
		FROM refunds
		WHERE order_id = ? AND status = ?
	`, id, int(refund.Pending)).Scan(&refunds).Error; err != nil {
		return nil, err
	}
	if len(refunds) > 0 {
		r := refunds[0]
		resp.PendingRefund = &RefundView{
			Reason:       r.Reason,
			PayoutNumber: r.PayoutNumber,
			PriorStatus:  order.Status(r.PriorStatus),
			RequestedAt:  r.RequestedAt.UTC(),
		}
	}

	return resp, nil
}

func (r orderRow) toView() (*GetOrderQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return &GetOrderQueryResponse{
		ID:                   id,
		Number:               r.Number,
		CustomerID:           customerID,
		Type:                 order.Type(r.Type),
		Status:               order.Status(r.Status),
		Total:                r.Total.Round(2),
		AdditionalInfo:       r.AdditionalInfo,
		ScheduledFor:         r.ScheduledFor,
		CreatedAt:            r.CreatedAt.UTC(),
		StatusUpdatedAt:      r.StatusUpdatedAt.UTC(),
		FailedDeliveryReason: r.FailedDeliveryReason,
	}, nil
}

func (r deliveryRow) toView() (*DeliveryView, error) {
	view := &DeliveryView{
		Fee:          r.Fee.Round(2),
		AddressRef:   r.AddressRef,
		DispatchedAt: r.DispatchedAt,
	}
	if r.RiderID != nil {
		riderID, err := kernel.UUIDFromBytes(r.RiderID[:])
		if err != nil {
			return nil, err
		}
		view.RiderID = &riderID
	}
	return view, nil
}
