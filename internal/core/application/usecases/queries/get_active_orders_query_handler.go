package queries

import (
	"context"
	"database/sql"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// terminalStatuses are excluded from every active-order listing.
var terminalStatuses = []int{
	int(order.Completed),
	int(order.Refund),
	int(order.Rejected),
	int(order.Cancelled),
}

type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns the non-terminal orders ordered by number, with the rider of
// the delivery record when one is assigned.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).
		Table("orders AS o").
		Select(`
			o.id,
			o.number,
			o.type,
			o.status,
			o.total,
			o.additional_info,
			o.scheduled_for,
			o.status_updated_at,
			d.rider_id,
			o.failed_delivery_reason IS NOT NULL AS has_cancellation_request
		`).
		Joins("LEFT JOIN deliveries AS d ON d.order_id = o.id").
		Where("o.status NOT IN ?", terminalStatuses)
	if query.Status() != nil {
		stmt = stmt.Where("o.status = ?", int(*query.Status()))
	}

	rows, err := stmt.Order("o.number").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetActiveOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var (
			id             uuid.UUID
			riderID        uuid.NullUUID
			orderType      int
			status         int
			total          decimal.Decimal
			additionalInfo sql.NullString
			scheduledFor   sql.NullTime
			updatedAt      time.Time
		)

		err = rows.Scan(
			&id,
			&resp.Number,
			&orderType,
			&status,
			&total,
			&additionalInfo,
			&scheduledFor,
			&updatedAt,
			&riderID,
			&resp.HasCancellationRequest,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Type = order.Type(orderType)
		resp.Status = order.Status(status)
		resp.Total = total.Round(2)
		resp.AdditionalInfo = additionalInfo.String
		resp.StatusUpdatedAt = updatedAt.UTC()
		if scheduledFor.Valid {
			at := scheduledFor.Time.UTC()
			resp.ScheduledFor = &at
		}
		if riderID.Valid {
			rid, ridErr := kernel.UUIDFromBytes(riderID.UUID[:])
			if ridErr != nil {
				return nil, ridErr
			}
			resp.RiderID = &rid
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
