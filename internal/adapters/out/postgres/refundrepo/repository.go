package refundrepo

import (
	"context"
	"errors"

	"orderflow/internal/adapters/out/postgres/pgerrs"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/refund"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

const resource = "refund"

// GormRefundRepository implements ports.RefundRepository using GORM.
type GormRefundRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRefundRepository(db *gorm.DB, tracker aggregateTracker) *GormRefundRepository {
	return &GormRefundRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRefundRepository) Add(ctx context.Context, rf *refund.Refund) error {
	if err := rf.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rf)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, resource, rf.OrderID().String())
	}

	r.tracker.TrackAggregate(rf.ID(), rf)
	return nil
}

// Update resolves a refund. Only a row that is still Pending is written, so
// two staff members adjudicating at once cannot both win.
func (r *GormRefundRepository) Update(ctx context.Context, rf *refund.Refund) error {
	if err := rf.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rf)
	result := r.db.WithContext(ctx).
		Model(&RefundDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(refund.Pending)).
		Updates(map[string]any{
			"status":      dto.Status,
			"resolved_at": dto.ResolvedAt,
		})
	if result.Error != nil {
		return pgerrs.Translate(result.Error, resource, rf.OrderID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewStaleStateError(resource, rf.OrderID().String())
	}

	r.tracker.TrackAggregate(rf.ID(), rf)
	return nil
}

func (r *GormRefundRepository) GetPendingByOrder(ctx context.Context, orderID kernel.UUID) (*refund.Refund, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto RefundDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID.Bytes(), int(refund.Pending)).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("refund", orderID.String())
		}
		return nil, pgerrs.Translate(err, resource, orderID.String())
	}

	return toDomain(dto)
}
