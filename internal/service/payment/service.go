package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/logger"
	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/method"
	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/model"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *model.Payment) (uuid.UUID, error)
}

type service struct {
	registry       *method.Registry
	repo           PaymentRepository
	writeDBTimeout time.Duration
}

func NewPaymentService(
	registry *method.Registry,
	repo PaymentRepository,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		registry:       registry,
		repo:           repo,
		writeDBTimeout: writeDBTimeout,
	}
}

// MakePayment validates the submission, computes the final price and loyalty
// points, and persists the record. Validation short-circuits on the first
// failure; nothing is written unless every check passes.
func (svc *service) MakePayment(
	ctx context.Context,
	params model.MakePaymentParams,
) (*model.MakePaymentResult, error) {
	const op = "payment.service.MakePayment"
	log := logger.With(
		logger.String("customer_id", params.CustomerID),
		logger.String("payment_method", params.Method),
	)

	if strings.TrimSpace(params.CustomerID) == "" {
		return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidCustomerID)
	}

	price, err := decimal.NewFromString(params.Price)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %q", op, model.ErrInvalidPrice, params.Price)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%s: %w: must not be negative", op, model.ErrInvalidPrice)
	}

	paidAt, err := time.Parse(time.RFC3339, params.Datetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %q", op, model.ErrInvalidDatetime, params.Datetime)
	}

	rule, err := svc.registry.Lookup(params.Method)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	mod := params.PriceModifier
	if mod.Cmp(rule.ModifierMin) < 0 || mod.Cmp(rule.ModifierMax) > 0 {
		return nil, fmt.Errorf("%s: %w: %s must be between %s and %s for %s",
			op, model.ErrModifierOutOfRange,
			mod, rule.ModifierMin, rule.ModifierMax, rule.Method,
		)
	}

	for _, field := range rule.RequiredFields {
		value, ok := params.AdditionalFields[field]
		if !ok || value == "" {
			return nil, fmt.Errorf("%s: %w: %s", op, model.ErrMissingRequiredField, field)
		}
		if fv, ok := rule.Fields[field]; ok && !fv.Valid(value) {
			return nil, fmt.Errorf("%s: %w: %s %s",
				op, model.ErrInvalidFieldFormat, field, fv.Hint,
			)
		}
	}

	finalPrice := price.Mul(mod)
	points := finalPrice.Mul(rule.PointsRate)

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	paymentID, err := svc.repo.Create(ctx, &model.Payment{
		CustomerID:       params.CustomerID,
		Price:            price,
		PriceModifier:    mod,
		FinalPrice:       finalPrice,
		Points:           points,
		Method:           rule.Method,
		PaidAt:           paidAt,
		AdditionalFields: params.AdditionalFields,
	})
	if err != nil {
		log.Error(ctx, "repository create payment", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, model.ErrStorage)
	}

	return &model.MakePaymentResult{
		ID:         paymentID,
		FinalPrice: finalPrice,
		Points:     points,
	}, nil
}
