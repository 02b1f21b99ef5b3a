package refund_test

import (
	"testing"

	"orderflow/internal/core/domain/model/refund"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayoutNumber(t *testing.T) {
	tests := []struct {
		name      string
		number    string
		confirm   string
		wantErr   error
		wantField string
	}{
		{name: "accepts matching number", number: "09171234567", confirm: "09171234567"},
		{name: "normalises separators", number: "0917 123-4567", confirm: "(0917) 123 4567"},
		{name: "wrong prefix", number: "08171234567", confirm: "08171234567", wantErr: errs.ErrValueIsInvalid, wantField: "payoutNumber"},
		{name: "ten digits", number: "0917123456", confirm: "0917123456", wantErr: errs.ErrValueIsInvalid, wantField: "payoutNumber"},
		{name: "twelve digits", number: "091712345678", confirm: "091712345678", wantErr: errs.ErrValueIsInvalid, wantField: "payoutNumber"},
		{name: "mismatched confirmation", number: "09171234567", confirm: "09171234568", wantErr: errs.ErrValueIsInvalid, wantField: "payoutNumberConfirm"},
		{name: "empty", number: " - ", confirm: "", wantErr: errs.ErrValueIsRequired, wantField: "payoutNumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := refund.NewPayoutNumber(tt.number, tt.confirm)

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "09171234567", n.String())
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, n.IsZero())
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestNewPayoutNumber_MismatchIsDetectable(t *testing.T) {
	_, err := refund.NewPayoutNumber("09171234567", "09170000000")

	var invalid *errs.ValueIsInvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "payoutNumberConfirm", invalid.ParamName)
	require.ErrorIs(t, invalid.Cause, refund.ErrPayoutNumberMismatch)
}
