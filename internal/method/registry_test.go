package method

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/model"
)

func TestRegistryRules(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	tests := []struct {
		method   string
		min      string
		max      string
		rate     string
		required []string
	}{
		{method: "CASH", min: "0.9", max: "1.0", rate: "0.05"},
		{method: "CASH_ON_DELIVERY", min: "1.0", max: "1.02", rate: "0.05", required: []string{"courier"}},
		{method: "VISA", min: "0.95", max: "1.0", rate: "0.03", required: []string{"last4"}},
		{method: "MASTERCARD", min: "0.95", max: "1.0", rate: "0.03", required: []string{"last4"}},
		{method: "AMEX", min: "0.98", max: "1.01", rate: "0.02", required: []string{"last4"}},
		{method: "JCB", min: "0.95", max: "1.0", rate: "0.05", required: []string{"last4"}},
		{method: "LINE_PAY", min: "1.0", max: "1.0", rate: "0.01"},
		{method: "PAYPAY", min: "1.0", max: "1.0", rate: "0.01"},
		{method: "POINTS", min: "1.0", max: "1.0", rate: "0.0"},
		{method: "GRAB_PAY", min: "1.0", max: "1.0", rate: "0.01"},
		{method: "BANK_TRANSFER", min: "1.0", max: "1.0", rate: "0.0", required: []string{"bank", "accountNumber"}},
		{method: "CHEQUE", min: "0.9", max: "1.0", rate: "0.0", required: []string{"bank", "chequeNumber"}},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			rule, err := reg.Lookup(tt.method)
			require.NoError(t, err)

			assert.Equal(t, model.PaymentMethod(tt.method), rule.Method)
			assert.True(t, rule.ModifierMin.Equal(decimal.RequireFromString(tt.min)),
				"min: want %s, got %s", tt.min, rule.ModifierMin)
			assert.True(t, rule.ModifierMax.Equal(decimal.RequireFromString(tt.max)),
				"max: want %s, got %s", tt.max, rule.ModifierMax)
			assert.True(t, rule.PointsRate.Equal(decimal.RequireFromString(tt.rate)),
				"rate: want %s, got %s", tt.rate, rule.PointsRate)

			assert.True(t, rule.ModifierMin.LessThanOrEqual(rule.ModifierMax))
			assert.True(t, rule.PointsRate.GreaterThanOrEqual(decimal.Zero))
			assert.True(t, rule.PointsRate.LessThanOrEqual(decimal.NewFromInt(1)))

			assert.Equal(t, tt.required, rule.RequiredFields)
			for _, field := range tt.required {
				_, ok := rule.Fields[field]
				assert.True(t, ok, "required field %s has no validator", field)
			}
		})
	}
}

func TestRegistryLookupCaseInsensitive(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	for _, name := range []string{"cash", "Visa", "line_pay"} {
		rule, err := reg.Lookup(name)
		require.NoError(t, err)
		assert.NotEmpty(t, rule.Method)
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	for _, name := range []string{"BITCOIN", "", "CASH "} {
		_, err := reg.Lookup(name)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnknownMethod)
	}
}

func TestFieldValidators(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	t.Run("last4 must be four digits", func(t *testing.T) {
		t.Parallel()

		rule, err := reg.Lookup("VISA")
		require.NoError(t, err)
		last4 := rule.Fields["last4"]

		assert.True(t, last4.Valid("1234"))
		assert.True(t, last4.Valid("0000"))
		assert.False(t, last4.Valid("123"))
		assert.False(t, last4.Valid("12345"))
		assert.False(t, last4.Valid("12a4"))
		assert.False(t, last4.Valid(""))
	})

	t.Run("courier is a closed set", func(t *testing.T) {
		t.Parallel()

		rule, err := reg.Lookup("CASH_ON_DELIVERY")
		require.NoError(t, err)
		courier := rule.Fields["courier"]

		assert.True(t, courier.Valid("YAMATO"))
		assert.True(t, courier.Valid("SAGAWA"))
		assert.False(t, courier.Valid("UPS"))
		assert.False(t, courier.Valid("yamato"))
	})

	t.Run("bank details must not be empty", func(t *testing.T) {
		t.Parallel()

		rule, err := reg.Lookup("BANK_TRANSFER")
		require.NoError(t, err)

		assert.True(t, rule.Fields["bank"].Valid("MUFG"))
		assert.False(t, rule.Fields["bank"].Valid(""))
		assert.True(t, rule.Fields["accountNumber"].Valid("1234567"))
		assert.False(t, rule.Fields["accountNumber"].Valid(""))
	})
}
