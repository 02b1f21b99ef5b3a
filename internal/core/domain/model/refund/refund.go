// Package refund models customer-initiated refund requests raised when an
// order is cancelled before the kitchen starts on it.
package refund

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

const maxReasonLength = 500

var (
	ErrRefundIsNotConstructed = errors.New("Refund must be created via NewRefund constructor")
	ErrRefundAlreadyResolved  = errors.New("refund is already resolved")
)

// Status is the refund sub-flow state: Pending, then Approved or Rejected.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	Approved
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:  "Pending",
		Approved: "Approved",
		Rejected: "Rejected",
	}
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("refund status", fmt.Errorf("%d is not a valid refund status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Refund is created once per cancellation attempt and never changes after it
// is resolved.
type Refund struct {
	id          kernel.UUID
	orderID     kernel.UUID
	reason      string
	status      Status
	payout      PayoutNumber
	priorStatus order.Status
	requestedAt time.Time
	resolvedAt  *time.Time

	isConstructed bool
}

// NewRefund opens a Pending refund. priorStatus is the order status at the
// time of the request and is where the order returns if staff reject the
// refund.
func NewRefund(
	id, orderID kernel.UUID,
	reason string,
	payout PayoutNumber,
	priorStatus order.Status,
	at time.Time,
) (*Refund, error) {
	r := &Refund{
		id:            id,
		orderID:       orderID,
		status:        Pending,
		payout:        payout,
		priorStatus:   priorStatus,
		requestedAt:   at.UTC(),
		isConstructed: true,
	}

	var orderErr, payoutErr, priorErr error
	if err := orderID.Validate(); err != nil {
		orderErr = errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if payout.IsZero() {
		payoutErr = errs.NewValueIsRequiredError("payoutNumber")
	}
	if priorStatus != order.Pending && priorStatus != order.Queueing {
		priorErr = errs.NewValueIsInvalidErrorWithCause(
			"priorStatus",
			fmt.Errorf("refunds are raised from Pending or Queueing, not %s", priorStatus),
		)
	}
	if err := errors.Join(id.Validate(), orderErr, r.setReason(reason), payoutErr, priorErr); err != nil {
		return nil, err
	}

	return r, nil
}

// Record is the persisted state of a refund.
type Record struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Reason      string
	Status      Status
	Payout      PayoutNumber
	PriorStatus order.Status
	RequestedAt time.Time
	ResolvedAt  *time.Time
}

func RestoreRefund(rec Record) (*Refund, error) {
	r, err := NewRefund(rec.ID, rec.OrderID, rec.Reason, rec.Payout, rec.PriorStatus, rec.RequestedAt)
	if err != nil {
		return nil, err
	}
	if err = rec.Status.Validate(); err != nil {
		return nil, err
	}
	r.status = rec.Status
	r.resolvedAt = rec.ResolvedAt
	return r, nil
}

func (r *Refund) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRefundIsNotConstructed
	}
	return nil
}

func (r *Refund) ID() kernel.UUID {
	return r.id
}

func (r *Refund) OrderID() kernel.UUID {
	return r.orderID
}

func (r *Refund) Reason() string {
	return r.reason
}

func (r *Refund) Status() Status {
	return r.status
}

func (r *Refund) Payout() PayoutNumber {
	return r.payout
}

func (r *Refund) PriorStatus() order.Status {
	return r.priorStatus
}

func (r *Refund) RequestedAt() time.Time {
	return r.requestedAt
}

func (r *Refund) ResolvedAt() *time.Time {
	return r.resolvedAt
}

func (r *Refund) IsResolved() bool {
	return r.status != Pending
}

// Approve resolves the refund in the customer's favour.
func (r *Refund) Approve(at time.Time) error {
	return r.resolve(Approved, at)
}

// Reject turns the refund down.
func (r *Refund) Reject(at time.Time) error {
	return r.resolve(Rejected, at)
}

func (r *Refund) resolve(status Status, at time.Time) error {
	if r.IsResolved() {
		return fmt.Errorf("%w: refund is %s", ErrRefundAlreadyResolved, r.status)
	}
	resolved := at.UTC()
	r.status = status
	r.resolvedAt = &resolved
	return nil
}

func (r *Refund) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if n := len([]rune(reason)); n > maxReasonLength {
		return errs.NewValueIsOutOfRangeError("reason", n, 1, maxReasonLength)
	}
	r.reason = reason
	return nil
}
