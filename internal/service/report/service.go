package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/logger"
	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/model"
)

type PaymentRepository interface {
	ListByPeriod(ctx context.Context, from, to time.Time) ([]model.Payment, error)
}

type service struct {
	repo          PaymentRepository
	readDBTimeout time.Duration
}

func NewReportService(repo PaymentRepository, readDBTimeout time.Duration) *service {
	return &service{
		repo:          repo,
		readDBTimeout: readDBTimeout,
	}
}

// SalesReport sums final price and points per hour over the closed range
// [start, end]. Hours with no payments are omitted; an empty range result
// yields an empty slice.
func (svc *service) SalesReport(
	ctx context.Context,
	params model.SalesReportParams,
) ([]model.SalesBucket, error) {
	const op = "report.service.SalesReport"
	log := logger.With(
		logger.String("start_datetime", params.StartDatetime),
		logger.String("end_datetime", params.EndDatetime),
	)

	start, err := time.Parse(time.RFC3339, params.StartDatetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %q", op, model.ErrInvalidDatetime, params.StartDatetime)
	}

	end, err := time.Parse(time.RFC3339, params.EndDatetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %q", op, model.ErrInvalidDatetime, params.EndDatetime)
	}

	if !start.Before(end) {
		return nil, fmt.Errorf("%s: %w: start must be before end", op, model.ErrInvalidRange)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	payments, err := svc.repo.ListByPeriod(ctx, start, end)
	if err != nil {
		log.Error(ctx, "repository list payments", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, model.ErrStorage)
	}

	grouped := lo.GroupBy(payments, func(p model.Payment) time.Time {
		return p.PaidAt.UTC().Truncate(time.Hour)
	})

	buckets := make([]model.SalesBucket, 0, len(grouped))
	for hour, group := range grouped {
		b := model.SalesBucket{BucketStart: hour}
		for _, p := range group {
			b.TotalSales = b.TotalSales.Add(p.FinalPrice)
			b.TotalPoints = b.TotalPoints.Add(p.Points)
		}
		buckets = append(buckets, b)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].BucketStart.Before(buckets[j].BucketStart)
	})

	return buckets, nil
}
