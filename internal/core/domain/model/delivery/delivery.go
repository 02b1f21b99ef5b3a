// Package delivery models the record that tracks the rider and fee of a
// delivery-type order.
package delivery

import (
	"errors"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var (
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrNoDeliveryRecord is returned when an operation needs the delivery of an
	// order that never had one.
	ErrNoDeliveryRecord = errors.New("order has no delivery record")
)

// Delivery belongs to exactly one order. A nil rider means unassigned. The
// status guard on who may change the rider lives with the order; Delivery
// only holds the binding.
type Delivery struct {
	id           kernel.UUID
	orderID      kernel.UUID
	riderID      *kernel.UUID
	fee          kernel.Money
	addressRef   string
	dispatchedAt *time.Time
	version      int64

	isConstructed bool
}

// NewDelivery creates an unassigned delivery for orderID.
func NewDelivery(id, orderID kernel.UUID, fee kernel.Money, addressRef string) (*Delivery, error) {
	var orderErr error
	if err := orderID.Validate(); err != nil {
		orderErr = errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := errors.Join(id.Validate(), orderErr); err != nil {
		return nil, err
	}

	return &Delivery{
		id:            id,
		orderID:       orderID,
		fee:           fee,
		addressRef:    strings.TrimSpace(addressRef),
		isConstructed: true,
	}, nil
}

// RestoreDelivery rebuilds a delivery from storage.
func RestoreDelivery(
	id, orderID kernel.UUID,
	riderID *kernel.UUID,
	fee kernel.Money,
	addressRef string,
	dispatchedAt *time.Time,
	version int64,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, fee, addressRef)
	if err != nil {
		return nil, err
	}
	d.riderID = riderID
	d.dispatchedAt = dispatchedAt
	d.version = version
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Rider returns the assigned rider, or nil.
func (d *Delivery) Rider() *kernel.UUID {
	return d.riderID
}

func (d *Delivery) Fee() kernel.Money {
	return d.fee
}

func (d *Delivery) AddressRef() string {
	return d.addressRef
}

func (d *Delivery) DispatchedAt() *time.Time {
	return d.dispatchedAt
}

func (d *Delivery) Version() int64 {
	return d.version
}

// BumpVersion records a successful compare-and-swap write.
func (d *Delivery) BumpVersion() {
	d.version++
}

// AssignRider binds riderID, replacing any previous rider.
func (d *Delivery) AssignRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("riderId", err)
	}
	d.riderID = &riderID
	return nil
}

// RemoveRider clears the binding. Removing from an unassigned delivery is a
// no-op.
func (d *Delivery) RemoveRider() {
	d.riderID = nil
}

// MarkDispatched stamps the moment the rider left. Only the first dispatch is
// kept.
func (d *Delivery) MarkDispatched(at time.Time) {
	if d.dispatchedAt != nil {
		return
	}
	stamp := at.UTC()
	d.dispatchedAt = &stamp
}
