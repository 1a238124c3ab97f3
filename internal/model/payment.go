package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	MethodCash           PaymentMethod = "CASH"
	MethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	MethodVisa           PaymentMethod = "VISA"
	MethodMastercard     PaymentMethod = "MASTERCARD"
	MethodAmex           PaymentMethod = "AMEX"
	MethodJCB            PaymentMethod = "JCB"
	MethodLinePay        PaymentMethod = "LINE_PAY"
	MethodPayPay         PaymentMethod = "PAYPAY"
	MethodPoints         PaymentMethod = "POINTS"
	MethodGrabPay        PaymentMethod = "GRAB_PAY"
	MethodBankTransfer   PaymentMethod = "BANK_TRANSFER"
	MethodCheque         PaymentMethod = "CHEQUE"
)

// Payment is the persisted record of one accepted submission. Final price
// and points are computed once at acceptance time and never recomputed.
type Payment struct {
	ID            uuid.UUID
	CustomerID    string
	Price         decimal.Decimal
	PriceModifier decimal.Decimal
	FinalPrice    decimal.Decimal
	Points        decimal.Decimal
	Method        PaymentMethod
	PaidAt        time.Time
	// Method-specific metadata (card last4, courier, bank details).
	AdditionalFields map[string]string
}

// MakePaymentParams carries the raw submission. Price and datetime arrive as
// strings and are parsed inside the validation pipeline; the modifier is
// decoded by the transport.
type MakePaymentParams struct {
	CustomerID       string
	Price            string
	PriceModifier    decimal.Decimal
	Method           string
	Datetime         string
	AdditionalFields map[string]string
}

type MakePaymentResult struct {
	ID         uuid.UUID
	FinalPrice decimal.Decimal
	Points     decimal.Decimal
}

type SalesReportParams struct {
	StartDatetime string
	EndDatetime   string
}

// SalesBucket is one hour of aggregated sales, built fresh per report query.
type SalesBucket struct {
	BucketStart time.Time
	TotalSales  decimal.Decimal
	TotalPoints decimal.Decimal
}
