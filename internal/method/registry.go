// Package method holds the static per-payment-method rule table. Adding a
// new method means adding a model constant plus one table entry; the
// validation pipeline never changes.
package method

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/model"
)

// FieldValidator is a pure predicate over one additional-field value.
// Hint is embedded in the error message when the predicate fails.
type FieldValidator struct {
	Valid func(value string) bool
	Hint  string
}

// Rule describes how a single payment method is validated and priced.
// ModifierMin and ModifierMax are inclusive; they are equal for methods that
// require an exact modifier. PointsRate is the fraction of the final price
// awarded as loyalty points.
type Rule struct {
	Method         model.PaymentMethod
	ModifierMin    decimal.Decimal
	ModifierMax    decimal.Decimal
	PointsRate     decimal.Decimal
	RequiredFields []string
	Fields         map[string]FieldValidator
}

type Registry struct {
	rules map[model.PaymentMethod]Rule
}

var last4Pattern = regexp.MustCompile(`^[0-9]{4}$`)

func fourDigits() FieldValidator {
	return FieldValidator{
		Valid: func(v string) bool { return last4Pattern.MatchString(v) },
		Hint:  "must be exactly 4 digits",
	}
}

func oneOf(allowed ...string) FieldValidator {
	return FieldValidator{
		Valid: func(v string) bool {
			for _, a := range allowed {
				if v == a {
					return true
				}
			}
			return false
		},
		Hint: fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")),
	}
}

func notEmpty() FieldValidator {
	return FieldValidator{
		Valid: func(v string) bool { return v != "" },
		Hint:  "must not be empty",
	}
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// NewRegistry builds the registry of the twelve supported methods.
// Read-only after construction.
func NewRegistry() *Registry {
	rules := []Rule{
		{
			Method:      model.MethodCash,
			ModifierMin: d("0.9"), ModifierMax: d("1.0"),
			PointsRate: d("0.05"),
		},
		{
			Method:      model.MethodCashOnDelivery,
			ModifierMin: d("1.0"), ModifierMax: d("1.02"),
			PointsRate:     d("0.05"),
			RequiredFields: []string{"courier"},
			Fields: map[string]FieldValidator{
				"courier": oneOf("YAMATO", "SAGAWA"),
			},
		},
		{
			Method:      model.MethodVisa,
			ModifierMin: d("0.95"), ModifierMax: d("1.0"),
			PointsRate:     d("0.03"),
			RequiredFields: []string{"last4"},
			Fields: map[string]FieldValidator{
				"last4": fourDigits(),
			},
		},
		{
			Method:      model.MethodMastercard,
			ModifierMin: d("0.95"), ModifierMax: d("1.0"),
			PointsRate:     d("0.03"),
			RequiredFields: []string{"last4"},
			Fields: map[string]FieldValidator{
				"last4": fourDigits(),
			},
		},
		{
			Method:      model.MethodAmex,
			ModifierMin: d("0.98"), ModifierMax: d("1.01"),
			PointsRate:     d("0.02"),
			RequiredFields: []string{"last4"},
			Fields: map[string]FieldValidator{
				"last4": fourDigits(),
			},
		},
		{
			Method:      model.MethodJCB,
			ModifierMin: d("0.95"), ModifierMax: d("1.0"),
			PointsRate:     d("0.05"),
			RequiredFields: []string{"last4"},
			Fields: map[string]FieldValidator{
				"last4": fourDigits(),
			},
		},
		{
			Method:      model.MethodLinePay,
			ModifierMin: d("1.0"), ModifierMax: d("1.0"),
			PointsRate: d("0.01"),
		},
		{
			Method:      model.MethodPayPay,
			ModifierMin: d("1.0"), ModifierMax: d("1.0"),
			PointsRate: d("0.01"),
		},
		{
			Method:      model.MethodPoints,
			ModifierMin: d("1.0"), ModifierMax: d("1.0"),
			PointsRate: d("0.0"),
		},
		{
			Method:      model.MethodGrabPay,
			ModifierMin: d("1.0"), ModifierMax: d("1.0"),
			PointsRate: d("0.01"),
		},
		{
			Method:      model.MethodBankTransfer,
			ModifierMin: d("1.0"), ModifierMax: d("1.0"),
			PointsRate:     d("0.0"),
			RequiredFields: []string{"bank", "accountNumber"},
			Fields: map[string]FieldValidator{
				"bank":          notEmpty(),
				"accountNumber": notEmpty(),
			},
		},
		{
			Method:      model.MethodCheque,
			ModifierMin: d("0.9"), ModifierMax: d("1.0"),
			PointsRate:     d("0.0"),
			RequiredFields: []string{"bank", "chequeNumber"},
			Fields: map[string]FieldValidator{
				"bank":         notEmpty(),
				"chequeNumber": notEmpty(),
			},
		},
	}

	byMethod := make(map[model.PaymentMethod]Rule, len(rules))
	for _, r := range rules {
		byMethod[r.Method] = r
	}

	return &Registry{rules: byMethod}
}

// Lookup resolves a submitted method name case-insensitively and returns
// its rule. The rule carries the canonical upper-case method name.
func (r *Registry) Lookup(name string) (Rule, error) {
	rule, ok := r.rules[model.PaymentMethod(strings.ToUpper(name))]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %s", model.ErrUnknownMethod, name)
	}
	return rule, nil
}
