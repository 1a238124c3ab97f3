package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/model"
)

type MockPaymentRepository struct {
	mock.Mock
}

func NewMockPaymentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPaymentRepository {
	m := &MockPaymentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockPaymentRepository) Create(ctx context.Context, p *model.Payment) (uuid.UUID, error) {
	ret := _m.Called(ctx, p)

	var r0 uuid.UUID
	if rf, ok := ret.Get(0).(func(context.Context, *model.Payment) uuid.UUID); ok {
		r0 = rf(ctx, p)
	} else {
		r0 = ret.Get(0).(uuid.UUID)
	}

	return r0, ret.Error(1)
}
