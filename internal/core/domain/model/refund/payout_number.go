package refund

import (
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/pkg/errs"
)

const (
	payoutNumberLength = 11
	payoutTrunkPrefix  = "09"
)

var ErrPayoutNumberMismatch = errors.New("payout number confirmation does not match")

// PayoutNumber is the mobile-wallet (GCash) number a refund is sent to: eleven
// digits starting with the 09 trunk prefix.
type PayoutNumber struct {
	digits string
}

// NewPayoutNumber normalises both entries to digits and checks them.
//
// Validation rules:
//   - every non-digit character (spaces, dashes, parentheses) is dropped
//   - exactly 11 digits remain
//   - the number starts with "09"
//   - the confirmation normalises to the same digits
//
// Failures are field-level validation errors naming payoutNumber or
// payoutNumberConfirm.
//
// Example:
//
//	n, err := refund.NewPayoutNumber("0917 123 4567", "0917-123-4567") // "09171234567"
func NewPayoutNumber(raw, confirm string) (PayoutNumber, error) {
	digits := normalizeDigits(raw)
	if digits == "" {
		return PayoutNumber{}, errs.NewValueIsRequiredError("payoutNumber")
	}
	if len(digits) != payoutNumberLength {
		return PayoutNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"payoutNumber",
			fmt.Errorf("must be exactly %d digits, got %d", payoutNumberLength, len(digits)),
		)
	}
	if !strings.HasPrefix(digits, payoutTrunkPrefix) {
		return PayoutNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"payoutNumber",
			fmt.Errorf("must start with %s", payoutTrunkPrefix),
		)
	}
	if normalizeDigits(confirm) != digits {
		return PayoutNumber{}, errs.NewValueIsInvalidErrorWithCause("payoutNumberConfirm", ErrPayoutNumberMismatch)
	}

	return PayoutNumber{digits: digits}, nil
}

// RestorePayoutNumber rebuilds a number that was validated before it was
// stored.
func RestorePayoutNumber(digits string) (PayoutNumber, error) {
	return NewPayoutNumber(digits, digits)
}

func (n PayoutNumber) String() string {
	return n.digits
}

func (n PayoutNumber) IsZero() bool {
	return n.digits == ""
}

func normalizeDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
