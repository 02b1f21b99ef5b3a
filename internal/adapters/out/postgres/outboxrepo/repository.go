package outboxrepo

import (
	"context"
	"time"

	"orderflow/internal/adapters/out/postgres/pgerrs"
	"orderflow/internal/core/domain/model/outbox"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const resource = "outbox"

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, m *outbox.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := fromDomain(m)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, resource, m.ID().String())
	}
	return nil
}

// GetUnpublished locks the oldest unpublished rows with FOR UPDATE SKIP
// LOCKED so that several relays can run side by side.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*outbox.Message, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("published_at IS NULL").
		Order("occurred_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, pgerrs.Translate(err, resource, "unpublished")
	}

	messages := make([]*outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, m *outbox.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if !m.IsPublished() {
		m.MarkPublished(time.Now())
	}

	result := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id = ? AND published_at IS NULL", m.ID().Bytes()).
		Update("published_at", m.PublishedAt())
	if result.Error != nil {
		return pgerrs.Translate(result.Error, resource, m.ID().String())
	}
	return nil
}
