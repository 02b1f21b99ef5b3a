package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAllRidersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllRidersQueryHandler(db *gorm.DB) GetAllRidersQueryHandler {
	return GetAllRidersQueryHandler{db: db}
}

// Handle returns every rider, active ones first, then by name.
func (h GetAllRidersQueryHandler) Handle(
	ctx context.Context,
	query GetAllRidersQuery,
) ([]GetAllRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]GetAllRidersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			active
		FROM riders
		ORDER BY active DESC, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r GetAllRidersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&r.Name,
			&r.Phone,
			&r.Active,
		)
		if err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		r.ID = riderID
		riders = append(riders, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
