package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/outbox"

	"gorm.io/gorm"
)

type GetOrderEventsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderEventsQueryHandler(db *gorm.DB) GetOrderEventsQueryHandler {
	return GetOrderEventsQueryHandler{db: db}
}

type eventRow struct {
	Payload     []byte
	PublishedAt *time.Time
}

// Handle returns the events oldest first. An unknown order yields an empty
// list.
func (h GetOrderEventsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderEventsQuery,
) ([]GetOrderEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []eventRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT payload, published_at
		FROM outbox_messages
		WHERE aggregate_id = ? AND name = ?
		ORDER BY occurred_at, id
	`, query.OrderID().Bytes(), order.StatusChangedEventName).Scan(&rows).Error; err != nil {
		return nil, err
	}

	events := make([]GetOrderEventsQueryResponse, 0, len(rows))
	for _, row := range rows {
		var payload outbox.StatusChangedPayload
		if err := json.Unmarshal(row.Payload, &payload); err != nil {
			return nil, fmt.Errorf("decode event payload: %w", err)
		}
		events = append(events, GetOrderEventsQueryResponse{
			EventID:     payload.EventID,
			From:        payload.From,
			To:          payload.To,
			Actor:       payload.Actor,
			OccurredAt:  payload.OccurredAt.UTC(),
			PublishedAt: row.PublishedAt,
		})
	}

	return events, nil
}
