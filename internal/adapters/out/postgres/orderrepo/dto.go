// Package orderrepo persists the order aggregate: one row in orders and its
// line items in order_items.
package orderrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Version is the optimistic lock token.
type OrderDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number               int64           `gorm:"uniqueIndex;not null"`
	CustomerID           uuid.UUID       `gorm:"type:uuid;index;not null"`
	Type                 int             `gorm:"not null"`
	Total                decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AdditionalInfo       string
	ScheduledFor         *time.Time
	Status               int       `gorm:"index;not null"`
	CreatedAt            time.Time `gorm:"not null"`
	StatusUpdatedAt      time.Time `gorm:"not null"`
	FailedDeliveryReason *string   `gorm:"size:500"`
	Version              int64     `gorm:"not null;default:0"`
	Items                []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one line of an order. Position keeps the checkout order.
type ItemDTO struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	Position  int             `gorm:"not null"`
	Name      string          `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, ItemDTO{
			OrderID:   o.ID().Bytes(),
			Position:  i,
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:                   o.ID().Bytes(),
		Number:               o.Number(),
		CustomerID:           o.CustomerID().Bytes(),
		Type:                 int(o.Type()),
		Total:                o.Total().Decimal(),
		AdditionalInfo:       o.AdditionalInfo(),
		ScheduledFor:         o.ScheduledFor(),
		Status:               int(o.Status()),
		CreatedAt:            o.CreatedAt(),
		StatusUpdatedAt:      o.StatusUpdatedAt(),
		FailedDeliveryReason: o.FailedDeliveryReason(),
		Version:              o.Version(),
		Items:                items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Record{
		ID:                   id,
		Number:               dto.Number,
		CustomerID:           customerID,
		Type:                 order.Type(dto.Type),
		Items:                items,
		Total:                total,
		AdditionalInfo:       dto.AdditionalInfo,
		ScheduledFor:         utcPtr(dto.ScheduledFor),
		Status:               order.Status(dto.Status),
		CreatedAt:            dto.CreatedAt.UTC(),
		StatusUpdatedAt:      dto.StatusUpdatedAt.UTC(),
		FailedDeliveryReason: dto.FailedDeliveryReason,
		Version:              dto.Version,
	})
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
