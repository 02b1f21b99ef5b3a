// Package kernel provides the shared value objects of the order domain.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Money: non-negative monetary amount backed by github.com/shopspring/decimal
//
// Both types are immutable and safe for concurrent use.
package kernel
