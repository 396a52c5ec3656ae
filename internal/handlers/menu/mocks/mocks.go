package mocks

import (
	"context"

	"cafepos/internal/models"

	"github.com/stretchr/testify/mock"
)

type Service struct {
	mock.Mock
}

func (m *Service) ListProducts(ctx context.Context, category models.Category, search string) ([]models.Product, error) {
	args := m.Called(ctx, category, search)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *Service) GetProduct(ctx context.Context, id int) (models.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *Service) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *Service) UpdateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *Service) DeleteProduct(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
