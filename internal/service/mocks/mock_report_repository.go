package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/model"
)

type MockReportRepository struct {
	mock.Mock
}

func NewMockReportRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportRepository {
	m := &MockReportRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockReportRepository) ListByPeriod(ctx context.Context, from, to time.Time) ([]model.Payment, error) {
	ret := _m.Called(ctx, from, to)

	var r0 []model.Payment
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, time.Time) []model.Payment); ok {
		r0 = rf(ctx, from, to)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Payment)
	}

	return r0, ret.Error(1)
}
