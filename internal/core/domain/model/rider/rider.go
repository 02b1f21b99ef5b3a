// Package rider models the rider directory consulted when a rider is
// assigned to a delivery.
package rider

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var (
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")

	// ErrRiderUnavailable is returned when an inactive rider is assigned.
	ErrRiderUnavailable = errors.New("rider is not available")
)

// Rider is a delivery person. Only active riders can take deliveries.
type Rider struct {
	id     kernel.UUID
	name   string
	phone  string
	active bool

	isConstructed bool
}

// NewRider registers an active rider.
func NewRider(id kernel.UUID, name, phone string) (*Rider, error) {
	r := &Rider{active: true, isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
	); err != nil {
		return nil, err
	}
	r.phone = strings.TrimSpace(phone)

	return r, nil
}

func RestoreRider(id kernel.UUID, name, phone string, active bool) (*Rider, error) {
	r, err := NewRider(id, name, phone)
	if err != nil {
		return nil, err
	}
	r.active = active
	return r, nil
}

func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}
	return nil
}

func (r *Rider) ID() kernel.UUID {
	return r.id
}

func (r *Rider) Name() string {
	return r.name
}

func (r *Rider) Phone() string {
	return r.phone
}

func (r *Rider) IsActive() bool {
	return r.active
}

// EnsureAvailable returns ErrRiderUnavailable for inactive riders.
func (r *Rider) EnsureAvailable() error {
	if !r.active {
		return ErrRiderUnavailable
	}
	return nil
}

func (r *Rider) Activate() {
	r.active = true
}

func (r *Rider) Deactivate() {
	r.active = false
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}
