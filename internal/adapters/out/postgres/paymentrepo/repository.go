package paymentrepo

import (
	"context"
	"errors"

	"orderflow/internal/adapters/out/postgres/pgerrs"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/payment"
	"orderflow/internal/pkg/errs"

	"gorm.io/gorm"
)

const resource = "payment"

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPaymentRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentRepository {
	return &GormPaymentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, resource, p.OrderID().String())
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

func (r *GormPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).
		Model(&PaymentDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"is_paid":          dto.IsPaid,
			"proof_url":        dto.ProofURL,
			"paid_at":          dto.PaidAt,
			"return_proof_ref": dto.ReturnProofRef,
			"version":          dto.Version + 1,
		})
	if result.Error != nil {
		return pgerrs.Translate(result.Error, resource, p.OrderID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewStaleStateError(resource, p.OrderID().String())
	}

	p.BumpVersion()
	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

func (r *GormPaymentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", orderID.String())
		}
		return nil, pgerrs.Translate(err, resource, orderID.String())
	}

	return toDomain(dto)
}
