package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Happy path:
//
//	Pending ──> Queueing ──> Preparing ──> Cooking ──> Ready ──┬──> OnDelivery ──> Completed
//	                                                           └──> ClaimOrder ──> Completed
//
// Side branches:
//
//	Pending/Queueing ──> Refunding ──> Refund
//	                         └──> (back to Pending/Queueing when the refund is rejected)
//	Pending ──> Rejected
//	OnDelivery ──> Cancelled
//
// Completed, Refund, Rejected and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order awaiting staff review.
	Pending

	// Queueing means staff accepted the order and it waits for the kitchen.
	Queueing

	// Preparing means ingredients are being prepared.
	Preparing

	// Cooking means the order is on the stove.
	Cooking

	// Ready means the food is packed and waits for dispatch or pickup.
	Ready

	// OnDelivery means a rider left with the order.
	OnDelivery

	// ClaimOrder means a pickup order waits for the customer at the counter.
	ClaimOrder

	// Completed is the terminal success status.
	Completed

	// Refunding means the customer cancelled and a refund awaits staff review.
	Refunding

	// Refund is the terminal status of an order whose refund was approved.
	Refund

	// Rejected is the terminal status of an order staff declined.
	Rejected

	// Cancelled is the terminal status of a delivery staff called off after a
	// rider reported it as failed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Queueing:   "Queueing",
		Preparing:  "Preparing",
		Cooking:    "Cooking",
		Ready:      "Ready",
		OnDelivery: "OnDelivery",
		ClaimOrder: "ClaimOrder",
		Completed:  "Completed",
		Refunding:  "Refunding",
		Refund:     "Refund",
		Rejected:   "Rejected",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	valid := getStatusStrings()
	delete(valid, Unknown)
	return valid
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{
		Pending, Queueing, Preparing, Cooking, Ready, OnDelivery, ClaimOrder,
		Completed, Refunding, Refund, Rejected, Cancelled,
	}
}

// ParseStatus converts a status name, as produced by String, back to a Status.
//
// Returns:
//   - the matching Status on success
//   - Unknown and a validation error for unrecognised names, including "Unknown"
//
// Example:
//
//	target, err := order.ParseStatus("Ready")
func ParseStatus(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Validate checks if the Status value is valid.
//
// Returns:
//   - nil if the status is one of the defined lifecycle values
//   - error with details if the status is Unknown or out of range
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
//
// Example:
//
//	fmt.Println(o.Status()) // Output: "Queueing"
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions leave this status.
func (s Status) IsTerminal() bool {
	switch s {
	case Completed, Refund, Rejected, Cancelled:
		return true
	default:
		return false
	}
}

// IsAssignable reports whether a rider may be attached to or detached from an
// order in this status.
//
// Assignable statuses:
//   - Pending, Queueing, Preparing, Cooking, Ready
//
// From OnDelivery onwards the rider binding is frozen.
func (s Status) IsAssignable() bool {
	switch s {
	case Pending, Queueing, Preparing, Cooking, Ready:
		return true
	default:
		return false
	}
}

// ValidateAssign checks if the status allows attaching a rider.
//
// Returns:
//   - nil if the status is in the assignable set
//   - an error wrapping ErrNotAssignable otherwise
func (s Status) ValidateAssign() error {
	if !s.IsAssignable() {
		return fmt.Errorf("%w: order is %s", ErrNotAssignable, s)
	}
	return nil
}

// ValidateRemove checks if the status allows detaching a rider.
// It mirrors ValidateAssign but reports ErrNotRemovable so callers can tell
// the two guards apart.
func (s Status) ValidateRemove() error {
	if !s.IsAssignable() {
		return fmt.Errorf("%w: order is %s", ErrNotRemovable, s)
	}
	return nil
}
