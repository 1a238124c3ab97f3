package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/converter"
	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/logger"
	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/model"
	paymentv1 "github.com/TheOfficialNikolaStoykov/anymind-pos/pkg/api/payment/v1"
)

type PaymentService interface {
	MakePayment(
		ctx context.Context,
		params model.MakePaymentParams,
	) (*model.MakePaymentResult, error)
}

type ReportService interface {
	SalesReport(
		ctx context.Context,
		params model.SalesReportParams,
	) ([]model.SalesBucket, error)
}

type Handler struct {
	payments PaymentService
	reports  ReportService
}

func NewPaymentHandler(payments PaymentService, reports ReportService) *Handler {
	return &Handler{payments: payments, reports: reports}
}

func (h *Handler) MakePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentv1.MakePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	params, err := converter.MakePaymentRequestToParams(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.payments.MakePayment(r.Context(), params)
	if err != nil {
		writeError(w, statusFromError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, converter.MakePaymentResultToResponse(res))
}

func (h *Handler) SalesReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	buckets, err := h.reports.SalesReport(r.Context(), model.SalesReportParams{
		StartDatetime: q.Get("startDatetime"),
		EndDatetime:   q.Get("endDatetime"),
	})
	if err != nil {
		writeError(w, statusFromError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, converter.SalesBucketsToResponse(buckets))
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidCustomerID),
		errors.Is(err, model.ErrInvalidPrice),
		errors.Is(err, model.ErrInvalidDatetime),
		errors.Is(err, model.ErrUnknownMethod),
		errors.Is(err, model.ErrModifierOutOfRange),
		errors.Is(err, model.ErrMissingRequiredField),
		errors.Is(err, model.ErrInvalidFieldFormat),
		errors.Is(err, model.ErrInvalidRange):
		return http.StatusBadRequest // 400
	case errors.Is(err, model.ErrStorage):
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, &paymentv1.Error{
		Code:    int32(status),
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error(context.Background(), "write response", logger.ErrorF(err))
	}
}
