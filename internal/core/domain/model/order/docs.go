// Package order provides the Order aggregate and the status state machine that
// governs a restaurant order from checkout to a terminal outcome.
//
// The package includes:
//   - Order: the aggregate root holding identity, type, items, status and the
//     pending failed-delivery reason
//   - Status: the lifecycle enum with terminal and assignable classifications
//   - Actor: the role requesting a change (staff, customer, rider)
//   - the legal-edge table deciding which role may move an order between statuses
//   - StatusChanged: the event recorded for every applied transition
//
// Key business rules:
//   - status is always one of the defined values; Unknown is never persisted
//   - status-updated-at never moves backwards
//   - requesting the status an order already has is a no-op and records no event
//   - workflow-only edges (customer cancellation, cancellation approval, refund
//     adjudication) are reachable only through their dedicated methods
//   - Pending -> Rejected requires proof that any received payment was returned
package order
