package queries

import (
	"context"
	"sort"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/refund"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetCancellationRequestsQueryHandler struct {
	db *gorm.DB
}

func NewGetCancellationRequestsQueryHandler(db *gorm.DB) GetCancellationRequestsQueryHandler {
	return GetCancellationRequestsQueryHandler{db: db}
}

type cancellationRow struct {
	OrderID      uuid.UUID
	OrderNumber  int64
	OrderStatus  int
	Reason       string
	PayoutNumber string
	RequestedAt  *time.Time
}

// Handle returns pending refunds and failed-delivery reports ordered by
// order number.
func (h GetCancellationRequestsQueryHandler) Handle(
	ctx context.Context,
	query GetCancellationRequestsQuery,
) ([]GetCancellationRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var refunds []cancellationRow
	if err := db.Raw(`
		SELECT o.id AS order_id, o.number AS order_number, o.status AS order_status,
			r.reason, r.payout_number, r.requested_at
		FROM refunds AS r
		JOIN orders AS o ON o.id = r.order_id
		WHERE r.status = ?
	`, int(refund.Pending)).Scan(&refunds).Error; err != nil {
		return nil, err
	}

	var reports []cancellationRow
	if err := db.Raw(`
		SELECT id AS order_id, number AS order_number, status AS order_status,
			failed_delivery_reason AS reason
		FROM orders
		WHERE failed_delivery_reason IS NOT NULL AND status = ?
	`, int(order.OnDelivery)).Scan(&reports).Error; err != nil {
		return nil, err
	}

	requests := make([]GetCancellationRequestsQueryResponse, 0, len(refunds)+len(reports))
	for kind, rows := range map[CancellationKind][]cancellationRow{CustomerRefund: refunds, FailedDelivery: reports} {
		for _, row := range rows {
			id, err := kernel.UUIDFromBytes(row.OrderID[:])
			if err != nil {
				return nil, err
			}
			req := GetCancellationRequestsQueryResponse{
				OrderID:      id,
				OrderNumber:  row.OrderNumber,
				OrderStatus:  order.Status(row.OrderStatus),
				Kind:         kind,
				Reason:       row.Reason,
				PayoutNumber: row.PayoutNumber,
			}
			if row.RequestedAt != nil {
				at := row.RequestedAt.UTC()
				req.RequestedAt = &at
			}
			requests = append(requests, req)
		}
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].OrderNumber < requests[j].OrderNumber
	})
	return requests, nil
}
