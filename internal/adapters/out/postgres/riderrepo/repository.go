package riderrepo

import (
	"context"
	"errors"

	"orderflow/internal/adapters/out/postgres/pgerrs"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/rider"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

const resource = "rider"

// GormRiderRepository implements ports.RiderRepository using GORM.
type GormRiderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRiderRepository(db *gorm.DB, tracker aggregateTracker) *GormRiderRepository {
	return &GormRiderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRiderRepository) Add(ctx context.Context, rd *rider.Rider) error {
	if err := rd.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rd)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, resource, rd.ID().String())
	}

	r.tracker.TrackAggregate(rd.ID(), rd)
	return nil
}

func (r *GormRiderRepository) Update(ctx context.Context, rd *rider.Rider) error {
	if err := rd.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rd)
	result := r.db.WithContext(ctx).
		Model(&RiderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":   dto.Name,
			"phone":  dto.Phone,
			"active": dto.Active,
		})
	if result.Error != nil {
		return pgerrs.Translate(result.Error, resource, rd.ID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rider", rd.ID().String())
	}

	r.tracker.TrackAggregate(rd.ID(), rd)
	return nil
}

func (r *GormRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id.String())
		}
		return nil, pgerrs.Translate(err, resource, id.String())
	}

	return toDomain(dto)
}

func (r *GormRiderRepository) GetAll(ctx context.Context) ([]*rider.Rider, error) {
	var dtos []RiderDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, pgerrs.Translate(err, resource, "all")
	}

	riders := make([]*rider.Rider, 0, len(dtos))
	for _, dto := range dtos {
		rd, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		riders = append(riders, rd)
	}

	return riders, nil
}
