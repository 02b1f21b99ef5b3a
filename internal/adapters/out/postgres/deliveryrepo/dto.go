// Package deliveryrepo persists delivery records. The unique index on
// order_id enforces one delivery per order.
package deliveryrepo

import (
	"time"

	"orderflow/internal/core/domain/model/delivery"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DeliveryDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	RiderID      *uuid.UUID      `gorm:"type:uuid;index"`
	Fee          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AddressRef   string
	DispatchedAt *time.Time
	Version      int64 `gorm:"not null;default:0"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	var riderID *uuid.UUID
	if id := d.Rider(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	return DeliveryDTO{
		ID:           d.ID().Bytes(),
		OrderID:      d.OrderID().Bytes(),
		RiderID:      riderID,
		Fee:          d.Fee().Decimal(),
		AddressRef:   d.AddressRef(),
		DispatchedAt: d.DispatchedAt(),
		Version:      d.Version(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	fee, err := kernel.NewMoney(dto.Fee)
	if err != nil {
		return nil, err
	}

	var dispatchedAt *time.Time
	if dto.DispatchedAt != nil {
		at := dto.DispatchedAt.UTC()
		dispatchedAt = &at
	}

	return delivery.RestoreDelivery(id, orderID, riderID, fee, dto.AddressRef, dispatchedAt, dto.Version)
}
