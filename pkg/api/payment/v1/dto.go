// Package paymentv1 defines the JSON shapes of the payment HTTP API.
package paymentv1

import "encoding/json"

type AdditionalItem struct {
	Last4         *string `json:"last4,omitempty"`
	Courier       *string `json:"courier,omitempty"`
	Bank          *string `json:"bank,omitempty"`
	AccountNumber *string `json:"accountNumber,omitempty"`
	ChequeNumber  *string `json:"chequeNumber,omitempty"`
}

type MakePaymentRequest struct {
	CustomerID     string          `json:"customerId"`
	Price          string          `json:"price"`
	PriceModifier  json.Number     `json:"priceModifier"`
	PaymentMethod  string          `json:"paymentMethod"`
	Datetime       string          `json:"datetime"`
	AdditionalItem *AdditionalItem `json:"additionalItem,omitempty"`
}

type MakePaymentResponse struct {
	FinalPrice string `json:"finalPrice"`
	Points     string `json:"points"`
}

type SalesEntry struct {
	Datetime string `json:"datetime"`
	Sales    string `json:"sales"`
	Points   string `json:"points"`
}

type SalesReportResponse struct {
	Sales []SalesEntry `json:"sales"`
}

type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}
