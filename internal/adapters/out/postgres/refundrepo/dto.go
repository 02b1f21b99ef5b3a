// Package refundrepo persists refund requests. A partial unique index allows
// one Pending refund per order while keeping resolved ones as history.
package refundrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/refund"

	"github.com/google/uuid"
)

type RefundDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_refunds_one_pending,where:status = 1"`
	Reason       string    `gorm:"size:500;not null"`
	Status       int       `gorm:"not null"`
	PayoutNumber string    `gorm:"size:11;not null"`
	PriorStatus  int       `gorm:"not null"`
	RequestedAt  time.Time `gorm:"not null"`
	ResolvedAt   *time.Time
}

func (RefundDTO) TableName() string {
	return "refunds"
}

func fromDomain(r *refund.Refund) RefundDTO {
	return RefundDTO{
		ID:           r.ID().Bytes(),
		OrderID:      r.OrderID().Bytes(),
		Reason:       r.Reason(),
		Status:       int(r.Status()),
		PayoutNumber: r.Payout().String(),
		PriorStatus:  int(r.PriorStatus()),
		RequestedAt:  r.RequestedAt(),
		ResolvedAt:   r.ResolvedAt(),
	}
}

func toDomain(dto RefundDTO) (*refund.Refund, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	payout, err := refund.RestorePayoutNumber(dto.PayoutNumber)
	if err != nil {
		return nil, err
	}

	var resolvedAt *time.Time
	if dto.ResolvedAt != nil {
		at := dto.ResolvedAt.UTC()
		resolvedAt = &at
	}

	return refund.RestoreRefund(refund.Record{
		ID:          id,
		OrderID:     orderID,
		Reason:      dto.Reason,
		Status:      refund.Status(dto.Status),
		Payout:      payout,
		PriorStatus: order.Status(dto.PriorStatus),
		RequestedAt: dto.RequestedAt.UTC(),
		ResolvedAt:  resolvedAt,
	})
}
