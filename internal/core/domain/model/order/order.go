package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

const maxReasonLength = 500

// Order is the aggregate root of a customer's checkout. It owns the lifecycle
// status and is the only place status, status-updated-at and the failed-delivery
// reason change.
//
// Order follows these invariants:
//   - status is always a valid Status
//   - statusUpdatedAt never decreases
//   - failedDeliveryReason is set only while a rider cancellation request is pending
//   - every applied transition is recorded as a StatusChanged event
//   - can only be created through NewOrder or RestoreOrder
type Order struct {
	id         kernel.UUID
	number     int64
	customerID kernel.UUID
	orderType  Type
	items      []Item
	total      kernel.Money

	additionalInfo string
	scheduledFor   *time.Time

	status               Status
	createdAt            time.Time
	statusUpdatedAt      time.Time
	failedDeliveryReason *string

	// version is the optimistic concurrency token the order was loaded with.
	version int64

	events []StatusChanged

	isConstructed bool
}

// Option customises optional attributes of a new order.
type Option func(*Order)

// WithAdditionalInfo attaches the customer's free-text note.
func WithAdditionalInfo(info string) Option {
	return func(o *Order) {
		o.additionalInfo = strings.TrimSpace(info)
	}
}

// WithSchedule books the order for a later slot.
func WithSchedule(at time.Time) Option {
	return func(o *Order) {
		scheduled := at.UTC()
		o.scheduledFor = &scheduled
	}
}

// NewOrder creates a Pending order. This is the only way to create a new valid
// Order.
//
// Parameters:
//   - id: unique identifier of the order
//   - number: sequential display number, positive
//   - customerID: owning customer
//   - orderType: Pickup or Delivery
//   - items: at least one line item; the total is the sum of their subtotals
//   - at: checkout time, used for createdAt and statusUpdatedAt
//
// Example:
//
//	item, _ := order.NewItem("Adobo", 2, price)
//	o, err := order.NewOrder(kernel.NewUUID(), 17, customerID, order.Delivery, []order.Item{item}, time.Now())
func NewOrder(
	id kernel.UUID,
	number int64,
	customerID kernel.UUID,
	orderType Type,
	items []Item,
	at time.Time,
	opts ...Option,
) (*Order, error) {
	o := &Order{
		status:          Pending,
		createdAt:       at.UTC(),
		statusUpdatedAt: at.UTC(),
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(customerID),
		o.setType(orderType),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// Record is the persisted state of an order, used to rehydrate the aggregate.
type Record struct {
	ID                   kernel.UUID
	Number               int64
	CustomerID           kernel.UUID
	Type                 Type
	Items                []Item
	Total                kernel.Money
	AdditionalInfo       string
	ScheduledFor         *time.Time
	Status               Status
	CreatedAt            time.Time
	StatusUpdatedAt      time.Time
	FailedDeliveryReason *string
	Version              int64
}

// RestoreOrder rebuilds an order from storage. The stored total is kept as is
// because prices may have changed since checkout.
func RestoreOrder(r Record) (*Order, error) {
	o := &Order{
		total:                r.Total,
		additionalInfo:       r.AdditionalInfo,
		scheduledFor:         r.ScheduledFor,
		createdAt:            r.CreatedAt,
		statusUpdatedAt:      r.StatusUpdatedAt,
		failedDeliveryReason: r.FailedDeliveryReason,
		version:              r.Version,
		items:                r.Items,
		isConstructed:        true,
	}

	if err := errors.Join(
		o.setID(r.ID),
		o.setNumber(r.Number),
		o.setCustomer(r.CustomerID),
		o.setType(r.Type),
		r.Status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = r.Status

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() int64 {
	return o.number
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) Type() Type {
	return o.orderType
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) AdditionalInfo() string {
	return o.additionalInfo
}

func (o *Order) ScheduledFor() *time.Time {
	return o.scheduledFor
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) StatusUpdatedAt() time.Time {
	return o.statusUpdatedAt
}

// FailedDeliveryReason returns the rider's report, or nil when no cancellation
// request is pending.
func (o *Order) FailedDeliveryReason() *string {
	return o.failedDeliveryReason
}

// HasCancellationRequest reports whether a rider's failed-delivery report waits
// for staff.
func (o *Order) HasCancellationRequest() bool {
	return o.failedDeliveryReason != nil
}

// Version returns the concurrency token the order was loaded or last saved with.
func (o *Order) Version() int64 {
	return o.version
}

// BumpVersion records a successful compare-and-swap write. Persistence
// adapters call it after the update matched the expected version.
func (o *Order) BumpVersion() {
	o.version++
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []StatusChanged {
	events := make([]StatusChanged, len(o.events))
	copy(events, o.events)
	return events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

// TransitionRequest describes a direct status change.
type TransitionRequest struct {
	Target Status
	Actor  Actor
	At     time.Time

	// ReturnProofAttached tells whether the payment record carries proof that
	// the customer's money was returned. Only Pending -> Rejected consults it.
	ReturnProofAttached bool
}

// Transition applies a direct edge of the transition table.
//
// The rules are checked in this order:
//   - target and actor must be valid values
//   - requesting the current status is a no-op: (false, nil), no event
//   - (current, target) must be a legal edge for the actor
//   - workflow-only edges are refused; use the dedicated methods
//   - edge guards: return proof for Rejected, order type for dispatch
//
// Returns:
//   - (true, nil) when the status changed and an event was recorded
//   - (false, nil) for the idempotent no-op
//   - (false, error) when the request is refused; the order is unchanged
//
// Example:
//
//	changed, err := o.Transition(order.TransitionRequest{Target: order.Queueing, Actor: order.Staff, At: now})
func (o *Order) Transition(req TransitionRequest) (bool, error) {
	if err := errors.Join(req.Target.Validate(), req.Actor.Validate()); err != nil {
		return false, err
	}
	if o.status == req.Target {
		return false, nil
	}

	e, err := o.edgeFor(req.Target, req.Actor, direct)
	if err != nil {
		return false, err
	}

	switch e.guard {
	case requiresReturnProof:
		if !req.ReturnProofAttached {
			return false, ErrMissingReturnProof
		}
	case deliveryOnly:
		if o.orderType != Delivery {
			return false, fmt.Errorf("%w: %s orders are claimed at the counter", ErrOrderNotDeliveryType, o.orderType)
		}
	case pickupOnly:
		if o.orderType != Pickup {
			return false, errs.NewInvalidTransitionErrorWithCause(
				o.status.String(), req.Target.String(), req.Actor.String(),
				fmt.Errorf("%s orders are dispatched with a rider", o.orderType),
			)
		}
	case noGuard:
	}

	o.apply(req.Target, req.Actor, req.At)
	return true, nil
}

// RequestRefund moves a Pending or Queueing order to Refunding on behalf of
// the customer. An order that is already Refunding is left untouched and
// (false, nil) is returned.
func (o *Order) RequestRefund(at time.Time) (bool, error) {
	if o.status == Refunding {
		return false, nil
	}
	if _, err := o.edgeFor(Refunding, Customer, workflowCustomerCancel); err != nil {
		return false, err
	}

	o.apply(Refunding, Customer, at)
	return true, nil
}

// ApproveRefund settles a Refunding order as Refund.
func (o *Order) ApproveRefund(at time.Time) error {
	if _, err := o.edgeFor(Refund, Staff, workflowRefundAdjudication); err != nil {
		return err
	}

	o.apply(Refund, Staff, at)
	return nil
}

// RejectRefund puts a Refunding order back into the status it had when the
// customer asked to cancel.
func (o *Order) RejectRefund(restore Status, at time.Time) error {
	if _, err := o.edgeFor(restore, Staff, workflowRefundAdjudication); err != nil {
		return err
	}

	o.apply(restore, Staff, at)
	return nil
}

// ReportFailedDelivery flags an in-flight delivery for staff review. The
// status does not change. A second report replaces the first reason.
func (o *Order) ReportFailedDelivery(reason string) error {
	reason, err := validateReason("reason", reason)
	if err != nil {
		return err
	}
	if o.status != OnDelivery {
		return fmt.Errorf("%w: order is %s", ErrNotOnDelivery, o.status)
	}

	o.failedDeliveryReason = &reason
	return nil
}

// ApproveCancellation resolves a rider's failed-delivery report by cancelling
// the order. The reason is cleared.
func (o *Order) ApproveCancellation(at time.Time) error {
	if !o.HasCancellationRequest() {
		return ErrNoCancellationRequest
	}
	if _, err := o.edgeFor(Cancelled, Staff, workflowApproveCancel); err != nil {
		return err
	}

	o.apply(Cancelled, Staff, at)
	o.failedDeliveryReason = nil
	return nil
}

// RejectCancellation dismisses a rider's failed-delivery report. The order
// stays in its current status so the delivery can continue.
func (o *Order) RejectCancellation() error {
	if !o.HasCancellationRequest() {
		return ErrNoCancellationRequest
	}

	o.failedDeliveryReason = nil
	return nil
}

// edgeFor looks up the edge to target and checks that actor owns it through
// the given workflow.
func (o *Order) edgeFor(target Status, actor Actor, via workflow) (edge, error) {
	e, ok := lookupEdge(o.status, target)
	if !ok {
		return edge{}, errs.NewInvalidTransitionError(o.status.String(), target.String(), actor.String())
	}
	if e.actor != actor {
		return edge{}, errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), target.String(), actor.String(),
			fmt.Errorf("edge belongs to %s", e.actor),
		)
	}
	if e.workflow != via {
		return edge{}, errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), target.String(), actor.String(),
			fmt.Errorf("edge is reserved for %s", e.workflow),
		)
	}
	return e, nil
}

func (o *Order) apply(target Status, actor Actor, at time.Time) {
	at = at.UTC()
	if at.Before(o.statusUpdatedAt) {
		at = o.statusUpdatedAt
	}

	o.events = append(o.events, StatusChanged{
		ID:          kernel.NewUUID(),
		OrderID:     o.id,
		OrderNumber: o.number,
		From:        o.status,
		To:          target,
		Actor:       actor,
		OccurredAt:  at,
	})
	o.status = target
	o.statusUpdatedAt = at
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number int64) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("number is invalid", fmt.Errorf("%d is not greater than 0", number))
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

// setItems stores the lines and derives the total from them.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	total := kernel.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	o.items = append([]Item(nil), items...)
	o.total = total
	return nil
}

// validateReason trims free text supplied by an actor and bounds its length.
func validateReason(field, reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", errs.NewValueIsRequiredError(field)
	}
	if n := len([]rune(reason)); n > maxReasonLength {
		return "", errs.NewValueIsOutOfRangeError(field, n, 1, maxReasonLength)
	}
	return reason, nil
}
