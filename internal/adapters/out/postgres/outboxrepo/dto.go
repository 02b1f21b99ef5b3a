// Package outboxrepo persists outbox messages.
package outboxrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"size:128;not null"`
	AggregateID uuid.UUID  `gorm:"type:uuid;index;not null"`
	Payload     []byte     `gorm:"not null"`
	OccurredAt  time.Time  `gorm:"index;not null"`
	PublishedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(m *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID().Bytes(),
		Name:        m.Name(),
		AggregateID: m.AggregateID().Bytes(),
		Payload:     m.Payload(),
		OccurredAt:  m.OccurredAt(),
		PublishedAt: m.PublishedAt(),
	}
}

func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return nil, err
	}
	return outbox.RestoreMessage(id, dto.Name, aggregateID, dto.Payload, dto.OccurredAt.UTC(), dto.PublishedAt)
}
