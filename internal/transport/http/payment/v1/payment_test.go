package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/logger"
	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/model"
	paymentv1 "github.com/TheOfficialNikolaStoykov/anymind-pos/pkg/api/payment/v1"
)

func TestMain(m *testing.M) {
	logger.SetNopLogger()
	m.Run()
}

type stubPaymentService struct {
	gotParams model.MakePaymentParams
	res       *model.MakePaymentResult
	err       error
	calls     int
}

func (s *stubPaymentService) MakePayment(
	_ context.Context,
	params model.MakePaymentParams,
) (*model.MakePaymentResult, error) {
	s.calls++
	s.gotParams = params
	return s.res, s.err
}

type stubReportService struct {
	gotParams model.SalesReportParams
	buckets   []model.SalesBucket
	err       error
	calls     int
}

func (s *stubReportService) SalesReport(
	_ context.Context,
	params model.SalesReportParams,
) ([]model.SalesBucket, error) {
	s.calls++
	s.gotParams = params
	return s.buckets, s.err
}

func TestHandlerMakePayment(t *testing.T) {
	t.Parallel()

	t.Run("returns the computed final price and points", func(t *testing.T) {
		t.Parallel()

		payments := &stubPaymentService{
			res: &model.MakePaymentResult{
				ID:         uuid.New(),
				FinalPrice: decimal.RequireFromString("95.00"),
				Points:     decimal.RequireFromString("4.75"),
			},
		}
		h := NewPaymentHandler(payments, &stubReportService{})

		body := `{
			"customerId": "12345",
			"price": "100.00",
			"priceModifier": 0.95,
			"paymentMethod": "CASH",
			"datetime": "2022-09-01T00:00:00Z"
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.MakePayment(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp paymentv1.MakePaymentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "95", resp.FinalPrice)
		assert.Equal(t, "4.75", resp.Points)

		assert.Equal(t, 1, payments.calls)
		assert.Equal(t, "12345", payments.gotParams.CustomerID)
		assert.Equal(t, "100.00", payments.gotParams.Price)
		assert.Equal(t, "CASH", payments.gotParams.Method)
		assert.True(t, payments.gotParams.PriceModifier.Equal(decimal.RequireFromString("0.95")))
	})

	t.Run("forwards additional item fields", func(t *testing.T) {
		t.Parallel()

		payments := &stubPaymentService{
			res: &model.MakePaymentResult{
				ID:         uuid.New(),
				FinalPrice: decimal.RequireFromString("95.00"),
				Points:     decimal.RequireFromString("2.85"),
			},
		}
		h := NewPaymentHandler(payments, &stubReportService{})

		body := `{
			"customerId": "12345",
			"price": "100.00",
			"priceModifier": 0.95,
			"paymentMethod": "MASTERCARD",
			"datetime": "2022-09-01T00:00:00Z",
			"additionalItem": {"last4": "1234"}
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.MakePayment(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]string{"last4": "1234"}, payments.gotParams.AdditionalFields)
	})

	t.Run("rejects a malformed body without calling the service", func(t *testing.T) {
		t.Parallel()

		payments := &stubPaymentService{}
		h := NewPaymentHandler(payments, &stubReportService{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()

		h.MakePayment(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, payments.calls)

		var e paymentv1.Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
		assert.Equal(t, int32(http.StatusBadRequest), e.Code)
		assert.Equal(t, "invalid request body", e.Message)
	})

	t.Run("rejects a non-numeric price modifier", func(t *testing.T) {
		t.Parallel()

		payments := &stubPaymentService{}
		h := NewPaymentHandler(payments, &stubReportService{})

		body := `{
			"customerId": "12345",
			"price": "100.00",
			"priceModifier": "cheap",
			"paymentMethod": "CASH",
			"datetime": "2022-09-01T00:00:00Z"
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.MakePayment(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, 0, payments.calls)
	})

	t.Run("maps validation errors to 400", func(t *testing.T) {
		t.Parallel()

		for _, sentinel := range []error{
			model.ErrInvalidCustomerID,
			model.ErrInvalidPrice,
			model.ErrInvalidDatetime,
			model.ErrUnknownMethod,
			model.ErrModifierOutOfRange,
			model.ErrMissingRequiredField,
			model.ErrInvalidFieldFormat,
		} {
			payments := &stubPaymentService{
				err: fmt.Errorf("payment.service.MakePayment: %w", sentinel),
			}
			h := NewPaymentHandler(payments, &stubReportService{})

			body := `{
				"customerId": "12345",
				"price": "100.00",
				"priceModifier": 0.95,
				"paymentMethod": "CASH",
				"datetime": "2022-09-01T00:00:00Z"
			}`
			req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
			rec := httptest.NewRecorder()

			h.MakePayment(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code, "sentinel %v", sentinel)
		}
	})

	t.Run("maps storage errors to 500", func(t *testing.T) {
		t.Parallel()

		payments := &stubPaymentService{
			err: fmt.Errorf("payment.service.MakePayment: %w", model.ErrStorage),
		}
		h := NewPaymentHandler(payments, &stubReportService{})

		body := `{
			"customerId": "12345",
			"price": "100.00",
			"priceModifier": 0.95,
			"paymentMethod": "CASH",
			"datetime": "2022-09-01T00:00:00Z"
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.MakePayment(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var e paymentv1.Error
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
		assert.Equal(t, int32(http.StatusInternalServerError), e.Code)
	})
}

func TestHandlerSalesReport(t *testing.T) {
	t.Parallel()

	t.Run("returns hourly buckets", func(t *testing.T) {
		t.Parallel()

		reports := &stubReportService{
			buckets: []model.SalesBucket{
				{
					BucketStart: time.Date(2022, 9, 1, 0, 0, 0, 0, time.UTC),
					TotalSales:  decimal.RequireFromString("165.12"),
					TotalPoints: decimal.RequireFromString("6.30"),
				},
				{
					BucketStart: time.Date(2022, 9, 1, 2, 0, 0, 0, time.UTC),
					TotalSales:  decimal.RequireFromString("35.50"),
					TotalPoints: decimal.RequireFromString("0.71"),
				},
			},
		}
		h := NewPaymentHandler(&stubPaymentService{}, reports)

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/sales?startDatetime=2022-09-01T00:00:00Z&endDatetime=2022-09-01T04:00:00Z", nil)
		rec := httptest.NewRecorder()

		h.SalesReport(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp paymentv1.SalesReportResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Sales, 2)
		assert.Equal(t, "2022-09-01T00:00:00Z", resp.Sales[0].Datetime)
		assert.Equal(t, "165.12", resp.Sales[0].Sales)
		assert.Equal(t, "6.3", resp.Sales[0].Points)
		assert.Equal(t, "2022-09-01T02:00:00Z", resp.Sales[1].Datetime)

		assert.Equal(t, "2022-09-01T00:00:00Z", reports.gotParams.StartDatetime)
		assert.Equal(t, "2022-09-01T04:00:00Z", reports.gotParams.EndDatetime)
	})

	t.Run("empty report serializes as an empty array", func(t *testing.T) {
		t.Parallel()

		h := NewPaymentHandler(&stubPaymentService{}, &stubReportService{
			buckets: []model.SalesBucket{},
		})

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/sales?startDatetime=2022-09-01T00:00:00Z&endDatetime=2022-09-01T04:00:00Z", nil)
		rec := httptest.NewRecorder()

		h.SalesReport(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"sales": []}`, rec.Body.String())
	})

	t.Run("maps range errors to 400", func(t *testing.T) {
		t.Parallel()

		h := NewPaymentHandler(&stubPaymentService{}, &stubReportService{
			err: fmt.Errorf("report.service.SalesReport: %w", model.ErrInvalidRange),
		})

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/sales?startDatetime=2022-09-01T00:00:00Z&endDatetime=2022-09-01T00:00:00Z", nil)
		rec := httptest.NewRecorder()

		h.SalesReport(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps storage errors to 500", func(t *testing.T) {
		t.Parallel()

		h := NewPaymentHandler(&stubPaymentService{}, &stubReportService{
			err: fmt.Errorf("report.service.SalesReport: %w", model.ErrStorage),
		})

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/sales?startDatetime=2022-09-01T00:00:00Z&endDatetime=2022-09-01T04:00:00Z", nil)
		rec := httptest.NewRecorder()

		h.SalesReport(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
