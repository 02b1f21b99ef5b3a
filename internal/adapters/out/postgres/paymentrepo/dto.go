// Package paymentrepo persists the payment record of each order.
package paymentrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

type PaymentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Method         string    `gorm:"size:32;not null"`
	IsPaid         bool      `gorm:"not null;default:false"`
	ProofURL       *string
	PaidAt         *time.Time
	ReturnProofRef *string
	Version        int64 `gorm:"not null;default:0"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:             p.ID().Bytes(),
		OrderID:        p.OrderID().Bytes(),
		Method:         string(p.Method()),
		IsPaid:         p.IsPaid(),
		ProofURL:       p.ProofURL(),
		PaidAt:         p.PaidAt(),
		ReturnProofRef: p.ReturnProofRef(),
		Version:        p.Version(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var paidAt *time.Time
	if dto.PaidAt != nil {
		at := dto.PaidAt.UTC()
		paidAt = &at
	}

	return payment.RestorePayment(payment.Record{
		ID:             id,
		OrderID:        orderID,
		Method:         payment.Method(dto.Method),
		IsPaid:         dto.IsPaid,
		ProofURL:       dto.ProofURL,
		PaidAt:         paidAt,
		ReturnProofRef: dto.ReturnProofRef,
		Version:        dto.Version,
	})
}
