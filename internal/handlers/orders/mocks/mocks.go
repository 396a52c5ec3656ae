package mocks

import (
	"context"

	"cafepos/internal/models"

	"github.com/stretchr/testify/mock"
)

type Service struct {
	mock.Mock
}

func (m *Service) ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *Service) GetOrder(ctx context.Context, number string) (models.Order, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *Service) AdvanceStatus(ctx context.Context, number string, status models.OrderStatus) (models.Order, error) {
	args := m.Called(ctx, number, status)
	return args.Get(0).(models.Order), args.Error(1)
}
