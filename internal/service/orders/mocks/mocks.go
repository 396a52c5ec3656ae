package mocks

import (
	"context"

	"cafepos/internal/models"

	"github.com/stretchr/testify/mock"
)

type Storage struct {
	mock.Mock
}

func (m *Storage) ListOrders(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *Storage) OrderByNumber(ctx context.Context, number string) (models.Order, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *Storage) UpdateOrderStatus(ctx context.Context, number string, status models.OrderStatus) (models.Order, error) {
	args := m.Called(ctx, number, status)
	return args.Get(0).(models.Order), args.Error(1)
}
