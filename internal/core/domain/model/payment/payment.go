// Package payment models the payment record of an order and the evidence
// attached to it: the customer's proof of payment and, when staff turn an order
// down, the proof that the money was returned.
package payment

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Method is how the customer pays, e.g. "gcash" or "cash".
type Method string

const (
	GCash Method = "gcash"
	Cash  Method = "cash"
)

func (m Method) Validate() error {
	if strings.TrimSpace(string(m)) == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	return nil
}

// Payment is owned by exactly one order.
type Payment struct {
	id             kernel.UUID
	orderID        kernel.UUID
	method         Method
	isPaid         bool
	proofURL       *string
	paidAt         *time.Time
	returnProofRef *string
	version        int64

	isConstructed bool
}

// NewPayment creates an unpaid payment record.
func NewPayment(id, orderID kernel.UUID, method Method) (*Payment, error) {
	var orderErr error
	if err := orderID.Validate(); err != nil {
		orderErr = errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := errors.Join(id.Validate(), orderErr, method.Validate()); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		method:        method,
		isConstructed: true,
	}, nil
}

// Record is the persisted state of a payment.
type Record struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	Method         Method
	IsPaid         bool
	ProofURL       *string
	PaidAt         *time.Time
	ReturnProofRef *string
	Version        int64
}

func RestorePayment(r Record) (*Payment, error) {
	p, err := NewPayment(r.ID, r.OrderID, r.Method)
	if err != nil {
		return nil, err
	}
	p.isPaid = r.IsPaid
	p.proofURL = r.ProofURL
	p.paidAt = r.PaidAt
	p.returnProofRef = r.ReturnProofRef
	p.version = r.Version
	return p, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID {
	return p.id
}

func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

func (p *Payment) Method() Method {
	return p.method
}

func (p *Payment) IsPaid() bool {
	return p.isPaid
}

func (p *Payment) ProofURL() *string {
	return p.proofURL
}

func (p *Payment) PaidAt() *time.Time {
	return p.paidAt
}

func (p *Payment) ReturnProofRef() *string {
	return p.returnProofRef
}

func (p *Payment) Version() int64 {
	return p.version
}

// BumpVersion records a successful compare-and-swap write.
func (p *Payment) BumpVersion() {
	p.version++
}

// HasProof reports whether the customer uploaded payment evidence. It is the
// gate for moving an order past Pending.
func (p *Payment) HasProof() bool {
	return p.proofURL != nil
}

// HasReturnProof reports whether staff attached evidence of returned money.
func (p *Payment) HasReturnProof() bool {
	return p.returnProofRef != nil
}

// AttachProof records the customer's payment evidence and marks the payment
// as paid. A later upload replaces the earlier one; the original payment date
// is kept.
func (p *Payment) AttachProof(proofURL string, at time.Time) error {
	normalized, err := validateProofURL(proofURL)
	if err != nil {
		return err
	}

	p.proofURL = &normalized
	p.isPaid = true
	if p.paidAt == nil {
		paid := at.UTC()
		p.paidAt = &paid
	}
	return nil
}

// AttachReturnProof records evidence that the customer's payment was returned.
func (p *Payment) AttachReturnProof(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return errs.NewValueIsRequiredError("proofRef")
	}
	p.returnProofRef = &ref
	return nil
}

func validateProofURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errs.NewValueIsRequiredError("proofUrl")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("proofUrl", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", errs.NewValueIsInvalidErrorWithCause("proofUrl", fmt.Errorf("%q is not an absolute http(s) URL", raw))
	}
	return u.String(), nil
}
