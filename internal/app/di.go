package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/closer"
	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/config"
	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/method"
	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/migrator"
	repository "github.com/TheOfficialNikolaStoykov/anymind-pos/internal/repository/payment"
	paymentsvc "github.com/TheOfficialNikolaStoykov/anymind-pos/internal/service/payment"
	reportsvc "github.com/TheOfficialNikolaStoykov/anymind-pos/internal/service/report"
	thttp "github.com/TheOfficialNikolaStoykov/anymind-pos/internal/transport/http/payment/v1"
)

// PaymentRepository joins the write side used by the payment service and the
// read side used by the report service; one pgx repository backs both.
type PaymentRepository interface {
	paymentsvc.PaymentRepository
	reportsvc.PaymentRepository
}

type di struct {
	dbPool     *pgxpool.Pool
	migrator   *migrator.Migrator
	repository PaymentRepository

	registry *method.Registry

	paymentService thttp.PaymentService
	reportService  thttp.ReportService

	handler *thttp.Handler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) PaymentRepository(ctx context.Context) PaymentRepository {
	if d.repository == nil {
		d.repository = repository.NewPaymentRepository(d.DBPool(ctx))
	}

	return d.repository
}

func (d *di) MethodRegistry(_ context.Context) *method.Registry {
	if d.registry == nil {
		d.registry = method.NewRegistry()
	}

	return d.registry
}

func (d *di) PaymentService(ctx context.Context) thttp.PaymentService {
	if d.paymentService == nil {
		d.paymentService = paymentsvc.NewPaymentService(
			d.MethodRegistry(ctx),
			d.PaymentRepository(ctx),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.paymentService
}

func (d *di) ReportService(ctx context.Context) thttp.ReportService {
	if d.reportService == nil {
		d.reportService = reportsvc.NewReportService(
			d.PaymentRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.reportService
}

func (d *di) PaymentHandler(ctx context.Context) *thttp.Handler {
	if d.handler == nil {
		d.handler = thttp.NewPaymentHandler(
			d.PaymentService(ctx),
			d.ReportService(ctx),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
