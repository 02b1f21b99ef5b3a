// Package riderrepo persists the rider directory.
package riderrepo

import (
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

type RiderDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"not null"`
	Phone  string
	Active bool `gorm:"not null;default:true"`
}

func (RiderDTO) TableName() string {
	return "riders"
}

func fromDomain(r *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:     r.ID().Bytes(),
		Name:   r.Name(),
		Phone:  r.Phone(),
		Active: r.IsActive(),
	}
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return rider.RestoreRider(id, dto.Name, dto.Phone, dto.Active)
}
