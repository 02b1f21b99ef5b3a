package deliveryrepo

import (
	"context"
	"errors"

	"orderflow/internal/adapters/out/postgres/pgerrs"
	"orderflow/internal/core/domain/model/delivery"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

const resource = "delivery"

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a delivery record. A second record for the same order violates
// the unique index and is reported as errs.StaleStateError.
func (r *GormDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, resource, d.OrderID().String())
	}

	r.tracker.TrackAggregate(d.ID(), d)
	return nil
}

func (r *GormDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"rider_id":      dto.RiderID,
			"fee":           dto.Fee,
			"address_ref":   dto.AddressRef,
			"dispatched_at": dto.DispatchedAt,
			"version":       dto.Version + 1,
		})
	if result.Error != nil {
		return pgerrs.Translate(result.Error, resource, d.OrderID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewStaleStateError(resource, d.OrderID().String())
	}

	d.BumpVersion()
	r.tracker.TrackAggregate(d.ID(), d)
	return nil
}

func (r *GormDeliveryRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("delivery", orderID.String(), delivery.ErrNoDeliveryRecord)
		}
		return nil, pgerrs.Translate(err, resource, orderID.String())
	}

	return toDomain(dto)
}
