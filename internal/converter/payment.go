package converter

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/model"
	paymentv1 "github.com/TheOfficialNikolaStoykov/anymind-pos/pkg/api/payment/v1"
)

func MakePaymentRequestToParams(req *paymentv1.MakePaymentRequest) (model.MakePaymentParams, error) {
	mod, err := decimal.NewFromString(req.PriceModifier.String())
	if err != nil {
		return model.MakePaymentParams{}, fmt.Errorf("invalid priceModifier: %w", err)
	}

	return model.MakePaymentParams{
		CustomerID:       req.CustomerID,
		Price:            req.Price,
		PriceModifier:    mod,
		Method:           req.PaymentMethod,
		Datetime:         req.Datetime,
		AdditionalFields: additionalItemToFields(req.AdditionalItem),
	}, nil
}

func additionalItemToFields(item *paymentv1.AdditionalItem) map[string]string {
	if item == nil {
		return nil
	}

	fields := make(map[string]string)
	for name, value := range map[string]*string{
		"last4":         item.Last4,
		"courier":       item.Courier,
		"bank":          item.Bank,
		"accountNumber": item.AccountNumber,
		"chequeNumber":  item.ChequeNumber,
	} {
		if value != nil {
			fields[name] = *value
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func MakePaymentResultToResponse(res *model.MakePaymentResult) *paymentv1.MakePaymentResponse {
	return &paymentv1.MakePaymentResponse{
		FinalPrice: res.FinalPrice.String(),
		Points:     res.Points.String(),
	}
}

func SalesBucketsToResponse(buckets []model.SalesBucket) *paymentv1.SalesReportResponse {
	entries := make([]paymentv1.SalesEntry, 0, len(buckets))
	for _, b := range buckets {
		entries = append(entries, paymentv1.SalesEntry{
			Datetime: b.BucketStart.UTC().Format(time.RFC3339),
			Sales:    b.TotalSales.String(),
			Points:   b.TotalPoints.String(),
		})
	}

	return &paymentv1.SalesReportResponse{Sales: entries}
}
